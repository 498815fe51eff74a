package handlers

import (
	request "joinerypro/internal/adapter/http/dto/request"
	"joinerypro/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ClientHandler serves the client directory.
type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.ListClients(c.Request.Context())
	if err != nil {
		respondError(c, "client", err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "client", err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "client", err)
		return
	}

	created, err := h.usecase.CreateClient(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, "client", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "client", err)
		return
	}

	updated, err := h.usecase.UpdateClient(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, "client", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
