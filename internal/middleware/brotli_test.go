package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrotliEngine(cfg BrotliConfig, handlers map[string]gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(BrotliWithConfig(cfg))
	for path, h := range handlers {
		r.GET(path, h)
	}
	return r
}

func getBrotli(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept-Encoding", "br")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBrotli(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	decoded, err := io.ReadAll(brotli.NewReader(w.Body))
	require.NoError(t, err, "body must be a valid brotli stream")
	return string(decoded)
}

func TestBrotliSmallBodyStaysPlain(t *testing.T) {
	r := newBrotliEngine(BrotliConfig{MinLength: 64}, map[string]gin.HandlerFunc{
		"/small": func(c *gin.Context) {
			c.String(http.StatusOK, "tiny")
		},
	})

	w := getBrotli(t, r, "/small")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, "tiny", w.Body.String())
}

func TestBrotliCompressesLargeBody(t *testing.T) {
	payload := strings.Repeat("the quick brown fox ", 200)
	r := newBrotliEngine(BrotliConfig{}, map[string]gin.HandlerFunc{
		"/large": func(c *gin.Context) {
			c.String(http.StatusOK, payload)
		},
	})

	w := getBrotli(t, r, "/large")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "br", w.Header().Get("Content-Encoding"))
	assert.Equal(t, payload, decodeBrotli(t, w))
}

// A handler that writes many chunks, where the final chunk alone sits under
// the threshold, must still produce a single decodable stream. The residual
// tail has to go through the compressor, not around it.
func TestBrotliMultiWriteWithShortTail(t *testing.T) {
	chunk := strings.Repeat("x", 300)
	tail := "short tail"

	r := newBrotliEngine(BrotliConfig{MinLength: 1024}, map[string]gin.HandlerFunc{
		"/chunked": func(c *gin.Context) {
			c.Status(http.StatusOK)
			for i := 0; i < 5; i++ {
				_, err := c.Writer.Write([]byte(chunk))
				require.NoError(t, err)
			}
			_, err := c.Writer.Write([]byte(tail))
			require.NoError(t, err)
		},
	})

	w := getBrotli(t, r, "/chunked")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "br", w.Header().Get("Content-Encoding"))
	assert.Equal(t, strings.Repeat(chunk, 5)+tail, decodeBrotli(t, w))
}

func TestBrotliWriteReportsConsumedBytes(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	bw := &brotliWriter{
		ResponseWriter: c.Writer,
		minLength:      32,
		writer:         brotli.NewWriterLevel(c.Writer, brotli.DefaultCompression),
	}

	// Buffered write below the threshold.
	n, err := bw.Write([]byte("0123456789"))
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	// This write pushes the accumulated buffer past the threshold. The
	// returned count covers this call's bytes only, not the whole buffer.
	big := strings.Repeat("a", 30)
	n, err = bw.Write([]byte(big))
	require.NoError(t, err)
	assert.Equal(t, len(big), n)

	require.NoError(t, bw.close())
}

func TestBrotliSkippedWithoutAcceptHeader(t *testing.T) {
	payload := strings.Repeat("plain ", 400)
	r := newBrotliEngine(BrotliConfig{}, map[string]gin.HandlerFunc{
		"/large": func(c *gin.Context) {
			c.String(http.StatusOK, payload)
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/large", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, payload, w.Body.String())
}
