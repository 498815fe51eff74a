package handlers

import (
	request "joinerypro/internal/adapter/http/dto/request"
	"joinerypro/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, "project", err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.usecase.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "project", err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "project", err)
		return
	}

	created, err := h.usecase.CreateProject(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, "project", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, "project", err)
		return
	}

	updated, err := h.usecase.UpdateProject(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, "project", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
