package handlers

import (
	"net/http"

	"contentcraft_backend/internal/services"
	"contentcraft_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type WorkspaceHandler struct {
	*BaseHandler
	workspaceService services.WorkspaceService
}

func NewWorkspaceHandler(base *BaseHandler, workspaceService services.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{
		BaseHandler:      base,
		workspaceService: workspaceService,
	}
}

func (h *WorkspaceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	workspaces := rg.Group("/workspaces")
	{
		workspaces.GET("", h.List)
		workspaces.POST("", h.Create)
		workspaces.GET("/:id", h.Get)
		workspaces.PUT("/:id", h.Update)
		workspaces.DELETE("/:id", h.Delete)
		workspaces.GET("/:id/stats", h.Stats)
	}
}

func (h *WorkspaceHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	workspaces, err := h.workspaceService.List(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workspaces": workspaces})
}

func (h *WorkspaceHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	workspace, err := h.workspaceService.Get(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workspace)
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateWorkspaceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	workspace, err := h.workspaceService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, workspace)
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateWorkspaceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	workspace, err := h.workspaceService.Update(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, workspace)
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.workspaceService.Delete(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workspace deleted"})
}

func (h *WorkspaceHandler) Stats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	stats, err := h.workspaceService.Stats(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
