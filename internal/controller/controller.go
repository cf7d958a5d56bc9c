package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hamzahq/turath/internal/dto"
	"github.com/hamzahq/turath/internal/service"
)

// writeError maps service-layer errors to the uniform error envelope.
func writeError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	label := "Internal Server Error"

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		status, label = http.StatusBadRequest, "Bad Request"
	case errors.Is(err, service.ErrQuestionNotFound), errors.Is(err, service.ErrUserNotFound):
		status, label = http.StatusNotFound, "Not Found"
	case errors.Is(err, service.ErrConflict):
		status, label = http.StatusConflict, "Conflict"
	case errors.Is(err, service.ErrInvalidQuestionType):
		// Corrupt question data, not a client problem.
		status, label = http.StatusInternalServerError, "Internal Server Error"
	}

	ctx.JSON(status, dto.ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     label,
		Message:   err.Error(),
		Path:      ctx.Request.URL.Path,
	})
}

func writeBadRequest(ctx *gin.Context, message string, details ...string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Timestamp: time.Now(),
		Status:    http.StatusBadRequest,
		Error:     "Bad Request",
		Message:   message,
		Path:      ctx.Request.URL.Path,
		Details:   details,
	})
}
