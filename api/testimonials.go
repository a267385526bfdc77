package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/avevent/backend/internal/domain"
	"github.com/avevent/backend/internal/service/identity"
	"github.com/avevent/backend/internal/service/testimonials"
	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	service testimonials.TestimonialUseCase
}

func NewTestimonialHandler(service testimonials.TestimonialUseCase) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

func (h *TestimonialHandler) RegisterPublic(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
}

func (h *TestimonialHandler) create(c *gin.Context) {
	var input testimonials.SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	testimonial, err := h.service.Submit(c.Request.Context(), input)
	if err != nil {
		if errs, ok := validationErrors(err); ok {
			respondValidation(c, errs)
			return
		}
		if errors.Is(err, identity.ErrIdentityRequired) {
			respondBadRequest(c, "Client ID or email is required")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Testimonial submitted successfully. It will be published after admin approval.",
		"data":    testimonial,
	})
}

func (h *TestimonialHandler) list(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))

	filter := domain.TestimonialFilter{
		IsPublic: c.Query("isPublic") != "false",
	}
	if featured := c.Query("featured"); featured != "" {
		f := featured == "true"
		filter.Featured = &f
	}
	if eventType := c.Query("eventType"); eventType != "" {
		e := domain.EventType(eventType)
		filter.EventType = &e
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
