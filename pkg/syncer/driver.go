package syncer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/scriptsync/internal/logging"
	"github.com/aretw0/scriptsync/pkg/domain"
	"github.com/aretw0/scriptsync/pkg/identity"
	"github.com/aretw0/scriptsync/pkg/observability"
	"github.com/aretw0/scriptsync/pkg/ports"
	"github.com/aretw0/scriptsync/pkg/txkey"
	"gopkg.in/yaml.v3"
)

// Driver runs the fetch, transform and sync pipeline over a workspace.
type Driver struct {
	workspace ports.Workspace
	source    ports.DocumentSource
	vendor    ports.TranslationVendor
	metrics   *observability.Metrics
	logger    *slog.Logger
	cfg       Config
	assigner  *identity.Assigner
}

// New creates a Driver over a workspace.
func New(workspace ports.Workspace, opts ...Option) *Driver {
	d := &Driver{
		workspace: workspace,
		logger:    logging.NewNop(),
		cfg:       DefaultConfig(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.assigner = identity.New(identity.WithLogger(d.logger))
	return d
}

// Run processes every configured script and dataset.
// It stops at the first failure; documents already written stay written.
func (d *Driver) Run(ctx context.Context, source domain.Source) (*Report, error) {
	if source == domain.SourceEditor && d.source == nil {
		return nil, fmt.Errorf("editor mode requires a document source")
	}
	if d.vendor == nil {
		d.logger.Info("No vendor credential, translation sync disabled")
	}

	report := &Report{Source: source}
	for _, kind := range d.cfg.ScriptKinds {
		doc, err := d.script(ctx, source, kind)
		if err != nil {
			return report, fmt.Errorf("script %s: %w", kind, err)
		}
		report.Documents = append(report.Documents, *doc)
	}

	var editorDatasets map[string]any
	for _, kind := range d.cfg.DatasetKinds {
		if source == domain.SourceEditor && editorDatasets == nil {
			var err error
			if editorDatasets, err = d.fetchDatasets(ctx); err != nil {
				return report, fmt.Errorf("dataset %s: %w", kind, err)
			}
		}
		doc, err := d.dataset(ctx, kind, editorDatasets)
		if err != nil {
			return report, fmt.Errorf("dataset %s: %w", kind, err)
		}
		report.Documents = append(report.Documents, *doc)
	}
	return report, nil
}

func (d *Driver) script(ctx context.Context, source domain.Source, kind domain.Kind) (*DocumentReport, error) {
	path := d.workspace.ScriptPath(kind)
	d.logger.Info("Processing script", "kind", kind, "path", path)

	if source == domain.SourceEditor {
		raw, err := d.source.Fetch(ctx, kind)
		if err != nil {
			return nil, err
		}
		var fetched any
		if err := yaml.Unmarshal([]byte(raw), &fetched); err != nil {
			return nil, fmt.Errorf("failed to parse editor document: %w", err)
		}
		if err := d.workspace.SaveScript(ctx, kind, fetched); err != nil {
			return nil, err
		}
	}

	tree, err := d.workspace.LoadScript(ctx, kind)
	if err != nil {
		return nil, err
	}

	stamped, err := d.assigner.Assign(tree, path)
	if err != nil {
		return nil, err
	}
	doc := &DocumentReport{Kind: kind, Path: path, Stamped: stamped.Stamped, Items: itemCount(stamped.Tree)}
	d.record(func(m *observability.Metrics) { m.NodesStamped.WithLabelValues(string(kind)).Add(float64(stamped.Stamped)) })

	out := stamped.Tree
	if d.vendor != nil {
		opts := txkey.Options{Fields: d.cfg.ScriptFields, Logger: d.logger}
		if out, err = d.translate(ctx, doc, out, opts); err != nil {
			return nil, err
		}
	}

	if err := d.workspace.WriteScriptArtifact(ctx, kind, out); err != nil {
		return nil, err
	}
	d.record(func(m *observability.Metrics) { m.DocumentsWritten.WithLabelValues(string(kind)).Inc() })
	return doc, nil
}

func (d *Driver) dataset(ctx context.Context, kind domain.Kind, editor map[string]any) (*DocumentReport, error) {
	path := d.workspace.DatasetPath(kind)
	d.logger.Info("Processing dataset", "kind", kind, "path", path)

	if editor != nil {
		items, ok := editor[string(kind)].([]any)
		if !ok {
			return nil, fmt.Errorf("%w: editor has no %s list", domain.ErrInvalidDocument, kind)
		}
		if err := d.workspace.SaveDataset(ctx, kind, items); err != nil {
			return nil, err
		}
	}

	items, err := d.workspace.LoadDataset(ctx, kind)
	if err != nil {
		return nil, err
	}
	if err := expandScenarios(items); err != nil {
		return nil, err
	}
	doc := &DocumentReport{Kind: kind, Path: path, Items: len(items)}

	out := items
	if d.vendor != nil {
		opts := txkey.Options{Fields: recordFields(items), FieldInKey: true, Logger: d.logger}
		translated, err := d.translate(ctx, doc, items, opts)
		if err != nil {
			return nil, err
		}
		out = translated.([]any)
	}

	d.logger.Info("Dataset processed", "kind", kind, "entries", len(out))
	if err := d.workspace.WriteDatasetArtifact(ctx, kind, out); err != nil {
		return nil, err
	}
	d.record(func(m *observability.Metrics) { m.DocumentsWritten.WithLabelValues(string(kind)).Inc() })
	return doc, nil
}

// fetchDatasets returns the first record of the dataset-carrying editor document.
func (d *Driver) fetchDatasets(ctx context.Context) (map[string]any, error) {
	raw, err := d.source.Fetch(ctx, d.cfg.DatasetSource)
	if err != nil {
		return nil, err
	}
	var fetched any
	if err := yaml.Unmarshal([]byte(raw), &fetched); err != nil {
		return nil, fmt.Errorf("failed to parse editor document: %w", err)
	}
	normalized, err := domain.Clone(fetched)
	if err != nil {
		return nil, err
	}
	list, ok := normalized.([]any)
	if !ok || len(list) == 0 {
		return nil, fmt.Errorf("%w: %s is not a non-empty list", domain.ErrInvalidDocument, d.cfg.DatasetSource)
	}
	first, ok := list[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s[0] is not a mapping", domain.ErrInvalidDocument, d.cfg.DatasetSource)
	}
	return first, nil
}

func (d *Driver) record(fn func(*observability.Metrics)) {
	if d.metrics != nil {
		fn(d.metrics)
	}
}

func itemCount(tree any) int {
	if list, ok := tree.([]any); ok {
		return len(list)
	}
	return 1
}
