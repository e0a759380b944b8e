package middleware

import (
	"context"

	"github.com/aretw0/scriptsync/pkg/domain"
	"github.com/aretw0/scriptsync/pkg/observability"
	"github.com/aretw0/scriptsync/pkg/ports"
)

type metricsMiddleware struct {
	next    ports.TranslationVendor
	metrics *observability.Metrics
}

// NewMetricsMiddleware counts vendor calls by operation and outcome.
func NewMetricsMiddleware(metrics *observability.Metrics) Middleware {
	return func(next ports.TranslationVendor) ports.TranslationVendor {
		return &metricsMiddleware{next: next, metrics: metrics}
	}
}

func (m *metricsMiddleware) Pull(ctx context.Context, res domain.Resource, lang string) (map[string]string, error) {
	translated, err := m.next.Pull(ctx, res, lang)
	m.observe(observability.OpPull, err)
	return translated, err
}

func (m *metricsMiddleware) Push(ctx context.Context, res domain.Resource, source map[string]string) error {
	err := m.next.Push(ctx, res, source)
	m.observe(observability.OpPush, err)
	return err
}

func (m *metricsMiddleware) observe(op string, err error) {
	status := observability.StatusOK
	if err != nil {
		status = observability.StatusError
	}
	m.metrics.VendorRequests.WithLabelValues(op, status).Inc()
}
