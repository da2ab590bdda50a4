package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/services/dto"
)

type BookingHandler struct {
	*BaseHandler
	bookingService services.BookingService
}

func NewBookingHandler(base *BaseHandler, bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{BaseHandler: base, bookingService: bookingService}
}

func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := h.AuthorizedUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.Create(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := h.AuthorizedUserID(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListForUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	userID, ok := h.AuthorizedUserID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetByID(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Update(c *gin.Context) {
	userID, ok := h.AuthorizedUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.Update(userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateStatus handles the lifecycle transition endpoint. Values
// outside the status enum come back as 400 with the booking untouched.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	if _, ok := h.AuthorizedUserID(c); !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// Rate records the mentee's rating for a completed session.
func (h *BookingHandler) Rate(c *gin.Context) {
	userID, ok := h.AuthorizedUserID(c)
	if !ok {
		return
	}

	var req dto.RateBookingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.Rate(userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	userID, ok := h.AuthorizedUserID(c)
	if !ok {
		return
	}

	if err := h.bookingService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
