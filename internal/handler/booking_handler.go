package handler

import (
	"net/http"

	"go-gin-event-commerce/internal/middleware"
	"go-gin-event-commerce/internal/model"
	"go-gin-event-commerce/internal/service"

	"github.com/gin-gonic/gin"
)

const bookingComponent = "booking_handler"

type BookingHandler struct {
	service service.BookingService
}

func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterRoutes(router *gin.RouterGroup, auth *middleware.Authenticator) {
	private := router.Group("", auth.RequireActor())
	{
		private.POST("events/:uuid/interest", h.MarkInterested)
		private.POST("events/:uuid/checkout", h.Checkout)
		private.POST("events/:uuid/join", h.Join)
		private.GET("events/:uuid/bookings", h.ListEventBookings)

		private.GET("bookings/:uuid", h.GetBooking)
		private.POST("bookings/:uuid/cancel", h.Cancel)
		private.POST("bookings/:uuid/refund", h.Refund)
		private.POST("bookings/:uuid/verify", h.VerifyManualPayment)
		private.POST("bookings/:uuid/check-in", h.CheckIn)
	}
}

func (h *BookingHandler) MarkInterested(c *gin.Context) {
	eventID, ok := BindUUID(c, "uuid")
	if !ok {
		return
	}
	booking, err := h.service.MarkInterested(c.Request.Context(), actor(c), eventID)
	respond(c, booking, err, http.StatusOK, bookingComponent, "MarkInterested")
}

func (h *BookingHandler) Checkout(c *gin.Context) {
	eventID, ok := BindUUID(c, "uuid")
	if !ok {
		return
	}
	var req model.CheckoutRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	result, err := h.service.Checkout(c.Request.Context(), actor(c), eventID, req)
	respond(c, result, err, http.StatusCreated, bookingComponent, "Checkout")
}

func (h *BookingHandler) Join(c *gin.Context) {
	eventID, ok := BindUUID(c, "uuid")
	if !ok {
		return
	}
	booking, err := h.service.Join(c.Request.Context(), actor(c), eventID)
	respond(c, booking, err, http.StatusCreated, bookingComponent, "Join")
}

func (h *BookingHandler) ListEventBookings(c *gin.Context) {
	eventID, ok := BindUUID(c, "uuid")
	if !ok {
		return
	}
	bookings, err := h.service.ListEventBookings(c.Request.Context(), actor(c), eventID)
	if err != nil {
		handleError(c, err, bookingComponent, "ListEventBookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID, ok := BindUUID(c, "uuid")
	if !ok {
		return
	}
	booking, err := h.service.GetBooking(c.Request.Context(), actor(c), bookingID)
	respond(c, booking, err, http.StatusOK, bookingComponent, "GetBooking")
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID, ok := BindUUID(c, "uuid")
	if !ok {
		return
	}
	booking, err := h.service.Cancel(c.Request.Context(), actor(c), bookingID)
	respond(c, booking, err, http.StatusOK, bookingComponent, "Cancel")
}

func (h *BookingHandler) Refund(c *gin.Context) {
	bookingID, ok := BindUUID(c, "uuid")
	if !ok {
		return
	}
	var req model.RefundRequest
	// body is optional
	if c.Request.ContentLength > 0 {
		if err := BindJson(c, &req); err != nil {
			return
		}
	}
	booking, err := h.service.RefundBooking(c.Request.Context(), actor(c), bookingID, req)
	respond(c, booking, err, http.StatusOK, bookingComponent, "Refund")
}

func (h *BookingHandler) VerifyManualPayment(c *gin.Context) {
	bookingID, ok := BindUUID(c, "uuid")
	if !ok {
		return
	}
	var req model.ManualVerification
	if err := BindJson(c, &req); err != nil {
		return
	}
	booking, err := h.service.VerifyManualPayment(c.Request.Context(), actor(c), bookingID, req)
	respond(c, booking, err, http.StatusOK, bookingComponent, "VerifyManualPayment")
}

func (h *BookingHandler) CheckIn(c *gin.Context) {
	bookingID, ok := BindUUID(c, "uuid")
	if !ok {
		return
	}
	booking, err := h.service.CheckIn(c.Request.Context(), actor(c), bookingID)
	respond(c, booking, err, http.StatusOK, bookingComponent, "CheckIn")
}
