package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/avevent/backend/internal/domain"
	"github.com/avevent/backend/internal/repository"
	"github.com/avevent/backend/internal/service/inquiries"
	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	service inquiries.InquiryUseCase
}

func NewInquiryHandler(service inquiries.InquiryUseCase) *InquiryHandler {
	return &InquiryHandler{service: service}
}

func (h *InquiryHandler) RegisterPublic(router *gin.RouterGroup) {
	router.POST("", h.create)
}

func (h *InquiryHandler) RegisterStaff(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.PATCH("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

func (h *InquiryHandler) create(c *gin.Context) {
	var input inquiries.SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	inquiry, err := h.service.Submit(c.Request.Context(), input)
	if err != nil {
		if errs, ok := validationErrors(err); ok {
			respondValidation(c, errs)
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Inquiry submitted successfully",
		"inquiryId": inquiry.ID,
	})
}

func (h *InquiryHandler) list(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	var filter domain.InquiryFilter
	if status := c.Query("status"); status != "" {
		s := domain.InquiryStatus(status)
		filter.Status = &s
	}
	if priority := c.Query("priority"); priority != "" {
		p := domain.InquiryPriority(priority)
		filter.Priority = &p
	}

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

func (h *InquiryHandler) get(c *gin.Context) {
	inquiry, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondNotFound(c, "Inquiry not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": inquiry})
}

func (h *InquiryHandler) update(c *gin.Context) {
	var input inquiries.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	inquiry, err := h.service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errs, ok := validationErrors(err); ok {
			respondValidation(c, errs)
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			respondNotFound(c, "Inquiry not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Inquiry updated successfully",
		"data":    inquiry,
	})
}

func (h *InquiryHandler) remove(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondNotFound(c, "Inquiry not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Inquiry deleted successfully",
	})
}
