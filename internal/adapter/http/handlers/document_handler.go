package handlers

import (
	request "joinerypro/internal/adapter/http/dto/request"
	response "joinerypro/internal/adapter/http/dto/response"
	"joinerypro/internal/domain/entities"
	"joinerypro/internal/usecase"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves quotes (DEV) and invoices (FAC).
type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// NextDocumentID previews the next id for ?type=QUOTE|INVOICE. Nothing is reserved.
func (h *DocumentHandler) NextDocumentID(c *gin.Context) {
	docType := entities.DocumentType(strings.ToUpper(strings.TrimSpace(c.Query("type"))))
	id, err := h.usecase.GenerateDocumentID(c.Request.Context(), docType)
	if err != nil {
		respondError(c, "document", err)
		return
	}
	c.JSON(http.StatusOK, response.DocumentIDResponse{ID: id})
}

func (h *DocumentHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context())
	if err != nil {
		respondError(c, "document", err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *DocumentHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "document", err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *DocumentHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "document", err)
		return
	}

	created, err := h.usecase.CreateQuote(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, "document", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(created))
}

func (h *DocumentHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "document", err)
		return
	}

	q := payload.ToEntity()
	q.ID = c.Param("id")
	updated, err := h.usecase.UpdateQuote(c.Request.Context(), q)
	if err != nil {
		respondError(c, "document", err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(updated))
}

func (h *DocumentHandler) ConvertQuote(c *gin.Context) {
	inv, err := h.usecase.ConvertQuoteToInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "document", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

func (h *DocumentHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.usecase.ListInvoices(c.Request.Context())
	if err != nil {
		respondError(c, "document", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *DocumentHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "document", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func (h *DocumentHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "document", err)
		return
	}

	created, err := h.usecase.CreateInvoice(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, "document", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(created))
}

func (h *DocumentHandler) UpdateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "document", err)
		return
	}

	inv := payload.ToEntity()
	inv.ID = c.Param("id")
	updated, err := h.usecase.UpdateInvoice(c.Request.Context(), inv)
	if err != nil {
		respondError(c, "document", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(updated))
}

func (h *DocumentHandler) UpdateInvoiceStatus(c *gin.Context) {
	var payload request.InvoiceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "document", err)
		return
	}

	status := entities.DocStatus(strings.ToUpper(strings.TrimSpace(payload.Status)))
	updated, err := h.usecase.UpdateInvoiceStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondError(c, "document", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(updated))
}
