package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/culturelens/culturelens-backend/internal/model"
	"github.com/culturelens/culturelens-backend/internal/response"
	"github.com/culturelens/culturelens-backend/internal/service"
	"github.com/culturelens/culturelens-backend/internal/validator"
)

type AssessmentHandler struct {
	assessmentService *service.AssessmentService
	log               zerolog.Logger
}

func NewAssessmentHandler(assessmentService *service.AssessmentService, log zerolog.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
		log:               log.With().Str("component", "assessment_handler").Logger(),
	}
}

// CreateAssessment godoc
// POST /api/assessments
//
// Body: {"responses": {questionID: cultureTag, ...}}. The created record is
// returned as-is, with its generated id, the filtered responses, the computed
// results and the completion timestamp.
func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	var req model.CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A bind failure means responses is an array, a scalar, or the body
		// is not JSON. The client-facing detail is fixed by the API
		// contract; the underlying cause goes to the debug log only.
		h.log.Debug().Interface("details", validator.Details(err)).Msg("Rejected malformed submission")
		response.InvalidResponses(c, response.MsgResponsesNotObject)
		return
	}
	if req.Responses == nil {
		// Field absent or explicitly null. An empty object is not caught
		// here: it binds fine and is rejected below as having no valid
		// entries.
		response.InvalidResponses(c, response.MsgResponsesNotObject)
		return
	}

	assessment, err := h.assessmentService.Create(c.Request.Context(), req.Responses)
	if err != nil {
		if errors.Is(err, service.ErrNoValidResponses) {
			response.InvalidResponses(c, response.MsgNoValidResponses)
			return
		}
		h.log.Error().Err(err).Msg("Assessment creation failed")
		response.Fail(c, http.StatusInternalServerError, response.MsgFailedCreateAssessment)
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// GetAssessment godoc
// GET /api/assessments/:id
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	assessment, err := h.assessmentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			response.Fail(c, http.StatusNotFound, response.MsgAssessmentNotFound)
			return
		}
		h.log.Error().Err(err).Msg("Assessment fetch failed")
		response.Fail(c, http.StatusInternalServerError, response.MsgFailedFetchAssessment)
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// ExportAssessment godoc
// GET /api/assessments/:id/export
//
// PDF export is intentionally not implemented. The route exists so clients
// get a stable 501 instead of a 404 for records that do exist.
func (h *AssessmentHandler) ExportAssessment(c *gin.Context) {
	if _, err := h.assessmentService.Get(c.Request.Context(), c.Param("id")); err != nil {
		response.Fail(c, http.StatusNotFound, response.MsgAssessmentNotFound)
		return
	}

	response.Fail(c, http.StatusNotImplemented, response.MsgExportNotImplemented)
}
