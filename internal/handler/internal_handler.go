package handler

import (
	"net/http"

	"go-gin-event-commerce/internal/middleware"
	"go-gin-event-commerce/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	internalComponent    = "internal_handler"
	defaultDispatchLimit = 100
)

// InternalHandler exposes the periodic jobs to an external scheduler.
type InternalHandler struct {
	waitlist  service.WaitlistService
	reminders service.ReminderService
}

func NewInternalHandler(waitlist service.WaitlistService, reminders service.ReminderService) *InternalHandler {
	return &InternalHandler{waitlist: waitlist, reminders: reminders}
}

func (h *InternalHandler) RegisterRoutes(r gin.IRouter, internalToken string) {
	router := r.Group("/internal", middleware.RequireInternalToken(internalToken))
	{
		router.POST("waitlist/sweep", h.SweepWaitlist)
		router.POST("reminders/dispatch", h.DispatchReminders)
	}
}

type DispatchQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=1000"`
}

func (h *InternalHandler) SweepWaitlist(c *gin.Context) {
	result, err := h.waitlist.SweepExpired(c.Request.Context())
	respond(c, result, err, http.StatusOK, internalComponent, "SweepWaitlist")
}

func (h *InternalHandler) DispatchReminders(c *gin.Context) {
	query := DispatchQuery{Limit: defaultDispatchLimit}
	if err := BindQuery(c, &query); err != nil {
		return
	}
	sent, err := h.reminders.DispatchDue(c.Request.Context(), query.Limit)
	if err != nil {
		handleError(c, err, internalComponent, "DispatchReminders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": sent})
}
