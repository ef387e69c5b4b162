package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culturelens/culturelens-backend/internal/response"
	"github.com/culturelens/culturelens-backend/internal/service"
)

type QuestionHandler struct {
	assessmentService *service.AssessmentService
}

func NewQuestionHandler(assessmentService *service.AssessmentService) *QuestionHandler {
	return &QuestionHandler{assessmentService: assessmentService}
}

// ListQuestions godoc
// GET /api/questions
//
// Returns the full catalog as a bare JSON array, in catalog order.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions := h.assessmentService.Questions(c.Request.Context())
	if questions == nil {
		response.Fail(c, http.StatusInternalServerError, response.MsgFailedFetchQuestions)
		return
	}

	c.JSON(http.StatusOK, questions)
}
