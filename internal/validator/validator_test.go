package validator

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	govalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailsNonValidationError(t *testing.T) {
	details := Details(errors.New("unexpected EOF"))

	require.Len(t, details, 1)
	assert.Empty(t, details[0].Path)
	assert.Equal(t, "unexpected EOF", details[0].Message)
}

func TestDetailsValidationErrors(t *testing.T) {
	Setup()

	v, ok := binding.Validator.Engine().(*govalidator.Validate)
	require.True(t, ok)

	type payload struct {
		Name string `json:"name" binding:"required"`
	}
	err := v.Struct(payload{})
	require.Error(t, err)

	details := Details(err)
	require.Len(t, details, 1)
	assert.Equal(t, []string{"name"}, details[0].Path, "path uses the JSON tag name")
	assert.Contains(t, details[0].Message, "required")
}
