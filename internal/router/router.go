package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/culturelens/culturelens-backend/internal/config"
	"github.com/culturelens/culturelens-backend/internal/handler"
	"github.com/culturelens/culturelens-backend/internal/metrics"
	"github.com/culturelens/culturelens-backend/internal/middleware"
	"github.com/culturelens/culturelens-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Question   *handler.QuestionHandler
	Assessment *handler.AssessmentHandler
	Culture    *handler.CultureHandler
}

// SetupRouter configures the Gin engine: global middleware, operational
// endpoints, and the public API routes.
func SetupRouter(handlers *Handlers, m *metrics.Metrics, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID, metrics and compression apply to every route.
	router.Use(response.RequestIDMiddleware())
	router.Use(m.Middleware())
	router.Use(middleware.Brotli())

	// Health check and Prometheus scrape endpoint.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// Submissions are the only unauthenticated write; rate-limit them per IP.
	submitLimiter := middleware.NewRateLimiter(cfg.SubmitRateLimit, cfg.SubmitRateWindow)

	api := router.Group("/api")
	{
		// Static catalog reads: cacheable for the process lifetime.
		api.GET("/questions",
			middleware.CacheControl(cfg.CatalogMaxAge),
			handlers.Question.ListQuestions,
		)
		api.GET("/cultures",
			middleware.CacheControl(cfg.CatalogMaxAge),
			handlers.Culture.ListCultures,
		)
		api.GET("/cultures/:type",
			middleware.CacheControl(cfg.CatalogMaxAge),
			handlers.Culture.GetCulture,
		)

		api.POST("/assessments",
			submitLimiter.Middleware(),
			handlers.Assessment.CreateAssessment,
		)
		api.GET("/assessments/:id", handlers.Assessment.GetAssessment)
		api.GET("/assessments/:id/export", handlers.Assessment.ExportAssessment)
	}

	return router
}
