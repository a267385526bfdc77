package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/avevent/backend/internal/domain"
	"github.com/avevent/backend/internal/repository"
	"github.com/avevent/backend/internal/service/bookings"
	"github.com/avevent/backend/internal/service/identity"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service bookings.BookingUseCase
}

func NewBookingHandler(service bookings.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterPublic(router *gin.RouterGroup) {
	router.POST("", h.create)
}

func (h *BookingHandler) RegisterStaff(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
}

func (h *BookingHandler) create(c *gin.Context) {
	var input bookings.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	booking, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		if errs, ok := validationErrors(err); ok {
			respondValidation(c, errs)
			return
		}
		if errors.Is(err, identity.ErrIdentityRequired) {
			respondBadRequest(c, "Client information is required")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Booking created successfully",
		"bookingId": booking.ID,
		"data":      booking,
	})
}

func (h *BookingHandler) list(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	var filter domain.BookingFilter
	if status := c.Query("status"); status != "" {
		s := domain.BookingStatus(status)
		filter.Status = &s
	}
	if eventType := c.Query("eventType"); eventType != "" {
		e := domain.EventType(eventType)
		filter.EventType = &e
	}
	if clientID := c.Query("clientId"); clientID != "" {
		filter.ClientID = &clientID
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

func (h *BookingHandler) get(c *gin.Context) {
	booking, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondNotFound(c, "Booking not found")
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": booking})
}
