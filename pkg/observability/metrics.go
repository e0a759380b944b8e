package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Vendor operations recorded by VendorRequests.
const (
	OpPull = "pull"
	OpPush = "push"
)

// Request outcomes recorded by VendorRequests.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics holds the counters of a sync run.
type Metrics struct {
	registry *prometheus.Registry

	NodesStamped        *prometheus.CounterVec
	KeysDiscovered      *prometheus.CounterVec
	TranslationsSpliced *prometheus.CounterVec
	VendorRequests      *prometheus.CounterVec
	DocumentsWritten    *prometheus.CounterVec
}

// NewMetrics creates the run counters in a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		NodesStamped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scriptsync_nodes_stamped_total",
				Help: "Nodes that received a uid",
			},
			[]string{"kind"},
		),
		KeysDiscovered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scriptsync_keys_discovered_total",
				Help: "Translatable strings found by the key walk",
			},
			[]string{"kind"},
		),
		TranslationsSpliced: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scriptsync_translations_spliced_total",
				Help: "Strings replaced by a translation carrier",
			},
			[]string{"kind"},
		),
		VendorRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scriptsync_vendor_requests_total",
				Help: "Translation vendor calls by operation and outcome",
			},
			[]string{"op", "status"},
		),
		DocumentsWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scriptsync_documents_written_total",
				Help: "Artifacts written",
			},
			[]string{"kind"},
		),
	}
	m.registry.MustRegister(
		m.NodesStamped,
		m.KeysDiscovered,
		m.TranslationsSpliced,
		m.VendorRequests,
		m.DocumentsWritten,
	)
	return m
}

// WriteTextfile writes the counters in the text exposition format, atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
