package handlers

import (
	"joinerypro/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type InsightHandler struct {
	usecase usecase.IInsightUseCase
}

func NewInsightHandler(uc usecase.IInsightUseCase) *InsightHandler {
	return &InsightHandler{usecase: uc}
}

// GenerateInsights always answers 200 with a list; provider failures come
// back as a single explanatory insight.
func (h *InsightHandler) GenerateInsights(c *gin.Context) {
	insights, err := h.usecase.GenerateInsights(c.Request.Context())
	if err != nil {
		respondError(c, "insight", err)
		return
	}
	c.JSON(http.StatusOK, insights)
}
