package handlers

import (
	"net/http"

	"contentcraft_backend/internal/services"
	"contentcraft_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	*BaseHandler
	contentService services.ContentService
}

func NewContentHandler(base *BaseHandler, contentService services.ContentService) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    base,
		contentService: contentService,
	}
}

func (h *ContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	content := rg.Group("/content")
	{
		content.POST("/generate-text", h.GenerateText)
		content.POST("/generate-image", h.GenerateImage)
		content.GET("/templates", h.Templates)
		content.GET("/history", h.History)
		content.GET("/:id", h.Get)
		content.DELETE("/:id", h.Delete)
	}
}

func (h *ContentHandler) GenerateText(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.GenerateTextRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.contentService.GenerateText(c.Request.Context(), db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ContentHandler) GenerateImage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.GenerateImageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.contentService.GenerateImage(c.Request.Context(), db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ContentHandler) Templates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": h.contentService.Templates()})
}

func (h *ContentHandler) History(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	limit := ParseQueryInt(c, "limit", 20)
	offset := ParseQueryInt(c, "offset", 0)

	history, err := h.contentService.History(db, userID, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

func (h *ContentHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	generation, err := h.contentService.Get(db, userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, generation)
}

func (h *ContentHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.contentService.Delete(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Generation deleted"})
}
