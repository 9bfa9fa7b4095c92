package handlers

import (
	"io"
	"net/http"

	"github.com/Rokuonji/soundcompare/internal/services"
	"github.com/Rokuonji/soundcompare/internal/validation"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	submissionService *services.SubmissionService
}

func NewSubmissionHandler(submissionService *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// Submit godoc
// @Summary      Submit a completed study session
// @Description  Store one participant's pairwise comparison answers
// @Tags         study
// @Accept       json
// @Produce      json
// @Success      200 {object} StatusResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/submit [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	sub, err := validation.ParseSubmission(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.submissionService.Create(sub); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to store submission"})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}
