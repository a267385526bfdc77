package api

import (
	"net/http"
	"strconv"

	"github.com/avevent/backend/internal/domain"
	"github.com/avevent/backend/internal/service/portfolio"
	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	service portfolio.PortfolioUseCase
}

func NewPortfolioHandler(service portfolio.PortfolioUseCase) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

func (h *PortfolioHandler) RegisterPublic(router *gin.RouterGroup) {
	router.GET("", h.list)
}

func (h *PortfolioHandler) RegisterStaff(router *gin.RouterGroup) {
	router.POST("", h.create)
}

func (h *PortfolioHandler) create(c *gin.Context) {
	var input portfolio.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	item, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		if errs, ok := validationErrors(err); ok {
			respondValidation(c, errs)
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Portfolio item created successfully",
		"data":    item,
	})
}

func (h *PortfolioHandler) list(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	var filter domain.PortfolioFilter
	if eventType := c.Query("eventType"); eventType != "" {
		e := domain.EventType(eventType)
		filter.EventType = &e
	}
	if featured := c.Query("featured"); featured != "" {
		f := featured == "true"
		filter.Featured = &f
	}
	isPublic := c.Query("isPublic") != "false"
	filter.IsPublic = &isPublic

	items, pagination, err := h.service.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       items,
		"pagination": pagination,
	})
}
