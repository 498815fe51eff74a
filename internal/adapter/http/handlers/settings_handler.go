package handlers

import (
	"joinerypro/internal/domain/entities"
	"joinerypro/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	s, err := h.usecase.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, "settings", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var payload entities.AppSettings
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "settings", err)
		return
	}

	saved, err := h.usecase.SaveSettings(c.Request.Context(), payload)
	if err != nil {
		respondError(c, "settings", err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
