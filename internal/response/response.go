// Package response centralizes the API's wire-level error shapes. The error
// bodies are part of the public contract and must not change: plain errors
// are {"error": message}, validation failures add a details array.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Detail is one entry of a validation failure's details array.
type Detail struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// Client-visible messages. Fixed strings; internal causes are never leaked.
const (
	MsgInvalidRequest         = "Invalid request data"
	MsgResponsesNotObject     = "responses must be an object"
	MsgNoValidResponses       = "no valid responses provided"
	MsgAssessmentNotFound     = "Assessment not found"
	MsgCultureNotFound        = "Culture type not found"
	MsgExportNotImplemented   = "PDF export not implemented"
	MsgFailedFetchQuestions   = "Failed to fetch questions"
	MsgFailedCreateAssessment = "Failed to create assessment"
	MsgFailedFetchAssessment  = "Failed to fetch assessment"
	MsgTooManyRequests        = "Too many requests"
)

// Fail sends a plain error body with the given status code.
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// FailWithDetails sends an error body carrying field-level details.
func FailWithDetails(c *gin.Context, statusCode int, message string, details []Detail) {
	c.JSON(statusCode, gin.H{"error": message, "details": details})
}

// InvalidResponses sends the 400 body for a rejected responses payload.
// Both rejection modes (malformed shape, nothing valid left after filtering)
// share this structure and differ only in the detail message.
func InvalidResponses(c *gin.Context, message string) {
	FailWithDetails(c, http.StatusBadRequest, MsgInvalidRequest, []Detail{
		{Path: []string{"responses"}, Message: message},
	})
}

// AbortFail aborts the middleware chain and sends a plain error body.
func AbortFail(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"error": message})
}
