package handlers

import (
	request "joinerypro/internal/adapter/http/dto/request"
	"joinerypro/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InventoryHandler serves materials, restocks, consumption and stock counts.
type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

func (h *InventoryHandler) ListMaterials(c *gin.Context) {
	materials, err := h.usecase.ListMaterials(c.Request.Context())
	if err != nil {
		respondError(c, "inventory", err)
		return
	}
	c.JSON(http.StatusOK, materials)
}

func (h *InventoryHandler) LowStockMaterials(c *gin.Context) {
	materials, err := h.usecase.LowStockMaterials(c.Request.Context())
	if err != nil {
		respondError(c, "inventory", err)
		return
	}
	c.JSON(http.StatusOK, materials)
}

func (h *InventoryHandler) GetMaterial(c *gin.Context) {
	material, err := h.usecase.GetMaterial(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "inventory", err)
		return
	}
	c.JSON(http.StatusOK, material)
}

func (h *InventoryHandler) AddMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "inventory", err)
		return
	}

	created, err := h.usecase.AddMaterial(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, "inventory", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *InventoryHandler) RestockMaterial(c *gin.Context) {
	var payload request.RestockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "inventory", err)
		return
	}

	res, err := h.usecase.RestockMaterial(c.Request.Context(), c.Param("id"), payload.Quantity, payload.UnitCost, payload.Supplier)
	if err != nil {
		respondError(c, "inventory", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *InventoryHandler) ConsumeMaterial(c *gin.Context) {
	var payload request.ConsumeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "inventory", err)
		return
	}

	usage, err := h.usecase.ConsumeMaterial(c.Request.Context(), payload.ProjectID, c.Param("id"), payload.Quantity)
	if err != nil {
		respondError(c, "inventory", err)
		return
	}
	c.JSON(http.StatusCreated, usage)
}

func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var payload request.AdjustStockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "inventory", err)
		return
	}

	updated, err := h.usecase.AdjustStock(c.Request.Context(), c.Param("id"), *payload.Quantity)
	if err != nil {
		respondError(c, "inventory", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListMaterialUsage accepts an optional projectId query filter.
func (h *InventoryHandler) ListMaterialUsage(c *gin.Context) {
	usage, err := h.usecase.ListMaterialUsage(c.Request.Context(), c.Query("projectId"))
	if err != nil {
		respondError(c, "inventory", err)
		return
	}
	c.JSON(http.StatusOK, usage)
}
