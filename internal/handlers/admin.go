package handlers

import (
	"net/http"

	"github.com/Rokuonji/soundcompare/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	submissionService *services.SubmissionService
	generatorService  *services.GeneratorService
}

func NewAdminHandler(submissionService *services.SubmissionService, generatorService *services.GeneratorService) *AdminHandler {
	return &AdminHandler{submissionService: submissionService, generatorService: generatorService}
}

type GenerateTestRequest struct {
	Code  string `json:"code" example:"admin123"`
	Count *int   `json:"count" example:"5"`
}

// ListData godoc
// @Summary      List all submissions
// @Description  Return every stored submission in insertion order
// @Tags         admin
// @Produce      json
// @Param        code query string true "Admin code"
// @Success      200 {array} services.SubmissionView
// @Failure      403 {object} ErrorResponse
// @Router       /api/admin-data [get]
func (h *AdminHandler) ListData(c *gin.Context) {
	subs, err := h.submissionService.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list submissions"})
		return
	}

	views := make([]services.SubmissionView, 0, len(subs))
	for _, sub := range subs {
		views = append(views, h.submissionService.View(sub))
	}

	c.JSON(http.StatusOK, views)
}

// Clear godoc
// @Summary      Delete all submissions
// @Description  Irreversibly wipe the submissions table
// @Tags         admin
// @Accept       json
// @Produce      json
// @Success      200 {object} StatusResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/admin-clear [post]
func (h *AdminHandler) Clear(c *gin.Context) {
	if err := h.submissionService.ClearAll(); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to clear submissions"})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Status: "cleared"})
}

// GenerateTest godoc
// @Summary      Generate synthetic submissions
// @Description  Insert a batch of randomized test submissions
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body GenerateTestRequest true "Generation options"
// @Success      200 {object} GenerateResponse
// @Failure      403 {object} ErrorResponse
// @Router       /api/admin-generate-test [post]
func (h *AdminHandler) GenerateTest(c *gin.Context) {
	var req GenerateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	count := services.DefaultGenerateCount
	if req.Count != nil {
		count = *req.Count
	}

	if err := h.generatorService.Generate(count); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to generate submissions"})
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{Status: "generated", Count: count})
}
