package http

import (
	"github.com/gin-gonic/gin"

	"intent-gateway/internal/intent"
	"intent-gateway/pkg/log"
)

// Handler is the public interface for the intent HTTP delivery layer.
type Handler interface {
	Dispatch(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc intent.UseCase
}

// New creates a new HTTP handler for the intent domain.
func New(l log.Logger, uc intent.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
