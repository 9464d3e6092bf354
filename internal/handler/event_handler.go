package handler

import (
	"net/http"
	"time"

	"go-gin-event-commerce/internal/middleware"
	"go-gin-event-commerce/internal/model"
	"go-gin-event-commerce/internal/service"

	"github.com/gin-gonic/gin"
)

const eventComponent = "event_handler"

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(router *gin.RouterGroup, auth *middleware.Authenticator) {
	router.GET("events", h.List)
	router.GET("events/:uuid", h.GetByEventID)
	router.GET("events/:uuid/quote", h.Quote)
	router.POST("events", auth.RequireActor(), h.Create)
	router.PUT("events/:uuid", auth.RequireActor(), h.UpdateByEventID)
	router.GET("me/events", auth.RequireActor(), h.ListMine)
}

// UpdateEventRequest 更新活動請求
type UpdateEventRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Capacity    *int       `json:"capacity" binding:"omitempty,min=1"`
	StartTime   *time.Time `json:"start_time"`
}

type QuoteQuery struct {
	Quantity int `form:"quantity"`
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err, eventComponent, "List")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) ListMine(c *gin.Context) {
	events, err := h.service.ListByHost(c.Request.Context(), actor(c))
	if err != nil {
		handleError(c, err, eventComponent, "ListMine")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetByEventID(c *gin.Context) {
	eventID, ok := BindUUID(c, "uuid")
	if !ok {
		return
	}
	event, err := h.service.GetByEventID(c.Request.Context(), eventID)
	respond(c, event, err, http.StatusOK, eventComponent, "GetByEventID")
}

func (h *EventHandler) Create(c *gin.Context) {
	var req model.CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c.Request.Context(), actor(c), req)
	respond(c, created, err, http.StatusCreated, eventComponent, "Create")
}

func (h *EventHandler) UpdateByEventID(c *gin.Context) {
	eventID, ok := BindUUID(c, "uuid")
	if !ok {
		return
	}
	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Name == nil && req.Description == nil && req.Capacity == nil && req.StartTime == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required"})
		return
	}
	params := model.UpdateEventParams{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		StartTime:   req.StartTime,
	}
	updated, err := h.service.UpdateByEventID(c.Request.Context(), actor(c), eventID, params)
	respond(c, updated, err, http.StatusOK, eventComponent, "UpdateByEventID")
}

func (h *EventHandler) Quote(c *gin.Context) {
	eventID, ok := BindUUID(c, "uuid")
	if !ok {
		return
	}
	query := QuoteQuery{Quantity: 1}
	if err := BindQuery(c, &query); err != nil {
		return
	}
	quote, err := h.service.Quote(c.Request.Context(), eventID, query.Quantity)
	respond(c, &quote, err, http.StatusOK, eventComponent, "Quote")
}
