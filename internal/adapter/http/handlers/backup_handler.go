package handlers

import (
	"fmt"
	"joinerypro/internal/usecase"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type BackupHandler struct {
	usecase usecase.IBackupUseCase
}

func NewBackupHandler(uc usecase.IBackupUseCase) *BackupHandler {
	return &BackupHandler{usecase: uc}
}

// ExportBackup downloads the whole ledger as a JSON attachment.
func (h *BackupHandler) ExportBackup(c *gin.Context) {
	raw, err := h.usecase.ExportJSON(c.Request.Context())
	if err != nil {
		respondError(c, "backup", err)
		return
	}
	name := fmt.Sprintf("joinerypro_backup_%s.json", time.Now().Format(dateLayout))
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// RestoreBackup replaces every collection with the uploaded backup.
func (h *BackupHandler) RestoreBackup(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		respondInvalidPayload(c, "backup", err)
		return
	}
	if err := h.usecase.ImportJSON(c.Request.Context(), raw); err != nil {
		respondError(c, "backup", err)
		return
	}
	log.Printf("[backup][handler] restore success bytes=%d", len(raw))
	c.Status(http.StatusNoContent)
}
