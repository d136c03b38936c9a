package handlers

import (
	"net/http"

	"contentcraft_backend/internal/services"
	"contentcraft_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	*BaseHandler
	projectService services.ProjectService
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    base,
		projectService: projectService,
	}
}

func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	{
		projects.GET("", h.List)
		projects.POST("", h.Create)
		projects.GET("/:id", h.Get)
		projects.PUT("/:id", h.Update)
		projects.DELETE("/:id", h.Delete)
		projects.POST("/:id/duplicate", h.Duplicate)
	}
}

func (h *ProjectHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ListProjectsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	db := h.GetDB(c)

	projects, err := h.projectService.List(db, userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *ProjectHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	project, err := h.projectService.Get(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	project, err := h.projectService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var patch dto.ProjectPatch
	if !h.BindAndValidateJSON(c, &patch) {
		return
	}

	db := h.GetDB(c)

	project, err := h.projectService.Update(db, userID, c.Param("id"), &patch)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.projectService.Delete(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

func (h *ProjectHandler) Duplicate(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	project, err := h.projectService.Duplicate(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}
