package usecase

import (
	"intent-gateway/internal/intent"
	"intent-gateway/internal/metrics"
	"intent-gateway/internal/router"
	pkgLog "intent-gateway/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	classifier intent.Classifier
	schema     *intent.Schema
	router     router.Router
	session    intent.Session
	metrics    *metrics.Metrics
}

// New creates a new intent UseCase instance. m may be nil.
func New(
	l pkgLog.Logger,
	classifier intent.Classifier,
	schema *intent.Schema,
	r router.Router,
	session intent.Session,
	m *metrics.Metrics,
) *implUseCase {
	return &implUseCase{
		l:          l,
		classifier: classifier,
		schema:     schema,
		router:     r,
		session:    session,
		metrics:    m,
	}
}

var _ intent.UseCase = (*implUseCase)(nil)
