package util

import (
	"errors"
	"net/http"
	"pretty_exam_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the unified envelope for every endpoint.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Type    string      `json:"type,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func InternalServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}

// FromError maps a typed failure to its HTTP status and forwards the type tag
// plus the message list. Anything untyped is logged and hidden behind a 500.
func FromError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		logger.Log.Error("Internal server error", zap.Error(err))
		InternalServerError(c)
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Type {
	case TypeValidation:
		status = http.StatusBadRequest
	case TypeNotFound:
		status = http.StatusNotFound
	case TypeConflict:
		status = http.StatusConflict
	case TypeCreate, TypeUpdate, TypeDelete:
		status = http.StatusUnprocessableEntity
	case TypeExternal:
		status = http.StatusBadGateway
	}

	if appErr.Unwrap() != nil {
		logger.Log.Error("Operation failed",
			zap.String("type", appErr.Type),
			zap.Error(appErr.Unwrap()),
		)
	}

	message := "error"
	if len(appErr.Messages) > 0 {
		message = appErr.Messages[0]
	}

	c.JSON(status, Response{
		Code:    status,
		Message: message,
		Type:    appErr.Type,
		Errors:  appErr.Messages,
	})
}
