package handlers

import (
	request "joinerypro/internal/adapter/http/dto/request"
	"joinerypro/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	usecase usecase.ITransactionUseCase
}

func NewTransactionHandler(uc usecase.ITransactionUseCase) *TransactionHandler {
	return &TransactionHandler{usecase: uc}
}

func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	txs, err := h.usecase.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, "transaction", err)
		return
	}
	c.JSON(http.StatusOK, txs)
}

func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	tx, err := h.usecase.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "transaction", err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var payload request.TransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "transaction", err)
		return
	}

	created, err := h.usecase.CreateTransaction(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, "transaction", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var payload request.TransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "transaction", err)
		return
	}

	updated, err := h.usecase.UpdateTransaction(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, "transaction", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
