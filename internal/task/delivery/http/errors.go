package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tasq/internal/task"
	"tasq/pkg/response"
)

// respondError translates domain errors into the HTTP envelope.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c)
	case errors.Is(err, task.ErrEmptyTitle):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
