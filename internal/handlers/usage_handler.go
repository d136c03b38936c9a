package handlers

import (
	"net/http"

	"contentcraft_backend/internal/models"
	"contentcraft_backend/internal/services"
	"contentcraft_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UsageHandler struct {
	*BaseHandler
	usageService services.UsageService
}

func NewUsageHandler(base *BaseHandler, usageService services.UsageService) *UsageHandler {
	return &UsageHandler{
		BaseHandler:  base,
		usageService: usageService,
	}
}

func (h *UsageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	usage := rg.Group("/usage")
	{
		usage.GET("/current", h.Current)
		usage.POST("/log", h.Log)
		usage.POST("/check-limit", h.CheckLimit)
		usage.GET("/history", h.History)
		usage.GET("/analytics", h.Analytics)
	}
}

func (h *UsageHandler) Current(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	usage, err := h.usageService.CurrentUsage(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, usage)
}

func (h *UsageHandler) Log(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.LogUsageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.usageService.LogUsage(db, userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Usage logged"})
}

func (h *UsageHandler) CheckLimit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CheckLimitRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	result, err := h.usageService.CheckLimit(db, userID, models.ResourceType(req.ResourceType), req.Amount)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *UsageHandler) History(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	history, err := h.usageService.History(db, userID, c.Query("period"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

func (h *UsageHandler) Analytics(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	analytics, err := h.usageService.Analytics(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}
