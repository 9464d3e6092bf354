package handler

import (
	"net/http"

	"go-gin-event-commerce/internal/middleware"
	"go-gin-event-commerce/internal/model"
	"go-gin-event-commerce/internal/service"

	"github.com/gin-gonic/gin"
)

const waitlistComponent = "waitlist_handler"

type WaitlistHandler struct {
	service service.WaitlistService
}

func NewWaitlistHandler(service service.WaitlistService) *WaitlistHandler {
	return &WaitlistHandler{service: service}
}

// 加入與離開以登入者的 email 為準，查詢排名不需要登入
func (h *WaitlistHandler) RegisterRoutes(router *gin.RouterGroup, auth *middleware.Authenticator) {
	router.GET("events/:uuid/waitlist/status", h.Status)

	private := router.Group("", auth.RequireActor())
	private.POST("events/:uuid/waitlist", h.Join)
	private.DELETE("events/:uuid/waitlist", h.Leave)
	private.GET("events/:uuid/waitlist", h.List)
}

type WaitlistEmailQuery struct {
	Email string `form:"email" binding:"required,email"`
}

type JoinWaitlistBody struct {
	Name string `json:"name" binding:"required"`
}

func (h *WaitlistHandler) Join(c *gin.Context) {
	eventID, ok := BindUUID(c, "uuid")
	if !ok {
		return
	}
	var body JoinWaitlistBody
	if err := BindJson(c, &body); err != nil {
		return
	}
	entry, err := h.service.Join(c.Request.Context(), eventID, model.JoinWaitlistRequest{
		Email: actor(c).Email,
		Name:  body.Name,
	})
	respond(c, entry, err, http.StatusCreated, waitlistComponent, "Join")
}

func (h *WaitlistHandler) Status(c *gin.Context) {
	eventID, ok := BindUUID(c, "uuid")
	if !ok {
		return
	}
	var query WaitlistEmailQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	view, err := h.service.Status(c.Request.Context(), eventID, query.Email)
	respond(c, view, err, http.StatusOK, waitlistComponent, "Status")
}

func (h *WaitlistHandler) Leave(c *gin.Context) {
	eventID, ok := BindUUID(c, "uuid")
	if !ok {
		return
	}
	if err := h.service.Leave(c.Request.Context(), eventID, actor(c).Email); err != nil {
		handleError(c, err, waitlistComponent, "Leave")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WaitlistHandler) List(c *gin.Context) {
	eventID, ok := BindUUID(c, "uuid")
	if !ok {
		return
	}
	entries, err := h.service.List(c.Request.Context(), actor(c), eventID)
	if err != nil {
		handleError(c, err, waitlistComponent, "List")
		return
	}
	c.JSON(http.StatusOK, entries)
}
