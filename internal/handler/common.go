package handler

import (
	"errors"
	"net/http"

	"go-gin-event-commerce/internal/middleware"
	"go-gin-event-commerce/internal/model"
	apperrors "go-gin-event-commerce/pkg/app_errors"
	"go-gin-event-commerce/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// BindUUID parses the named path parameter, answering 400 when it is not a UUID.
func BindUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

func actor(c *gin.Context) model.Actor {
	return middleware.ActorFrom(c)
}

// respond writes result, treating an idempotent replay as success.
func respond[T any](c *gin.Context, result *T, err error, status int, component, operation string) {
	if err == nil {
		c.JSON(status, result)
		return
	}
	if errors.Is(err, apperrors.ErrAlreadyProcessed) {
		logger.WithComponent(component).Info("Request already processed", zap.String("operation", operation))
		if result != nil {
			c.JSON(http.StatusOK, result)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "already_processed"})
		return
	}
	handleError(c, err, component, operation)
}

// handleError 將 domain error 對應到 HTTP status
func handleError(c *gin.Context, err error, component, operation string) {
	log := logger.WithComponent(component).With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidSignature):
		log.Warn("Invalid signature")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
	case errors.Is(err, apperrors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
	case errors.Is(err, apperrors.ErrForbidden):
		log.Warn("Forbidden")
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrNotFound):
		log.Info("Not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrCapacityExceeded),
		errors.Is(err, apperrors.ErrAlreadyBooked),
		errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrEventNotFull),
		errors.Is(err, apperrors.ErrLocked):
		log.Info("Conflict")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRefundNotEligible):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrGateway):
		log.Error("Payment gateway error")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment gateway unavailable"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
