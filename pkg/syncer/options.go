package syncer

import (
	"log/slog"
	"slices"

	"github.com/aretw0/scriptsync/pkg/domain"
	"github.com/aretw0/scriptsync/pkg/observability"
	"github.com/aretw0/scriptsync/pkg/ports"
)

// Config selects what a run processes.
type Config struct {
	// Languages are pulled from the vendor, in order.
	Languages []string
	// ScriptFields are the step fields whose strings are translatable.
	ScriptFields []string
	ScriptKinds  []domain.Kind
	DatasetKinds []domain.Kind
	// DatasetSource is the editor document embedding the datasets.
	DatasetSource domain.Kind
}

// DefaultConfig mirrors the production layout.
func DefaultConfig() Config {
	return Config{
		Languages:     []string{"ar", "am", "en", "ru"},
		ScriptFields:  []string{"show", "say"},
		ScriptKinds:   slices.Clone(domain.ScriptKinds),
		DatasetKinds:  slices.Clone(domain.DatasetKinds),
		DatasetSource: domain.KindAgent,
	}
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithSource sets where editor-mode runs fetch documents from.
func WithSource(source ports.DocumentSource) Option {
	return func(d *Driver) {
		d.source = source
	}
}

// WithVendor enables translation sync. Without a vendor, documents are stamped
// and written untranslated.
func WithVendor(vendor ports.TranslationVendor) Option {
	return func(d *Driver) {
		d.vendor = vendor
	}
}

// WithMetrics records run counters.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(d *Driver) {
		d.metrics = metrics
	}
}

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(d *Driver) {
		d.cfg = cfg
	}
}
