package handlers

import (
	"errors"
	response "joinerypro/internal/adapter/http/dto/response"
	"joinerypro/internal/usecase"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

var errInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// AnalyticsHandler serves the derived, read-only financial views.
type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

func (h *AnalyticsHandler) ProjectFinancials(c *gin.Context) {
	fin, err := h.usecase.ProjectFinancials(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "analytics", err)
		return
	}
	c.JSON(http.StatusOK, fin)
}

func (h *AnalyticsHandler) ClientProfile(c *gin.Context) {
	profile, err := h.usecase.ClientProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "analytics", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *AnalyticsHandler) ClientHistory(c *gin.Context) {
	items, err := h.usecase.ClientHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "analytics", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *AnalyticsHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.FinancialStatsWithTrends(c.Request.Context())
	if err != nil {
		respondError(c, "analytics", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) MonthlyRevenue(c *gin.Context) {
	months, err := h.usecase.MonthlyRevenue(c.Request.Context())
	if err != nil {
		respondError(c, "analytics", err)
		return
	}
	c.JSON(http.StatusOK, months)
}

// GlobalHistory accepts optional from/to dates (YYYY-MM-DD), both inclusive.
func (h *AnalyticsHandler) GlobalHistory(c *gin.Context) {
	from, err := parseDateQuery(c.Query("from"))
	if err != nil {
		respondInvalidPayload(c, "analytics", err)
		return
	}
	to, err := parseDateQuery(c.Query("to"))
	if err != nil {
		respondInvalidPayload(c, "analytics", err)
		return
	}

	items, err := h.usecase.GlobalHistory(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, "analytics", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *AnalyticsHandler) OutstandingBalance(c *gin.Context) {
	total, err := h.usecase.OutstandingBalance(c.Request.Context())
	if err != nil {
		respondError(c, "analytics", err)
		return
	}
	c.JSON(http.StatusOK, response.OutstandingResponse{Outstanding: total})
}

func (h *AnalyticsHandler) Snapshot(c *gin.Context) {
	snap, err := h.usecase.CombinedSnapshot(c.Request.Context())
	if err != nil {
		respondError(c, "analytics", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func parseDateQuery(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}
