// Package file implements the local workspace: the YAML and JSON copies of the
// documents under the source directory and the artifacts written next to them.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/aretw0/scriptsync/pkg/domain"
	"github.com/aretw0/scriptsync/pkg/ports"
	"gopkg.in/yaml.v3"
)

// DefaultSourceDir is the workspace root relative to the working directory.
const DefaultSourceDir = "src"

const (
	scriptFile       = "script.yaml"
	scriptArtifact   = "script.json"
	datasetDir       = "datasets"
	datasetExt       = ".datapackage.json"
	datasetTxExt     = ".datapackage.tx.json"
	scriptsArtifactK = "s"
)

// ErrNotFound is returned when a document has no local copy.
var ErrNotFound = errors.New("document not found")

// Workspace implements ports.Workspace on the local filesystem.
type Workspace struct {
	// Root is the directory holding one folder per script kind and the datasets folder.
	Root string
}

var _ ports.Workspace = (*Workspace)(nil)

// New creates a Workspace rooted at dir.
// If dir is empty, it defaults to DefaultSourceDir.
func New(dir string) *Workspace {
	if dir == "" {
		dir = DefaultSourceDir
	}
	return &Workspace{Root: dir}
}

// ScriptPath returns the slash-separated path of a script's YAML copy, e.g. "src/user/script.yaml".
func (w *Workspace) ScriptPath(kind domain.Kind) string {
	return path.Join(filepath.ToSlash(w.Root), string(kind), scriptFile)
}

// DatasetPath returns the slash-separated path of a dataset's JSON copy.
func (w *Workspace) DatasetPath(kind domain.Kind) string {
	return path.Join(filepath.ToSlash(w.Root), datasetDir, string(kind)+datasetExt)
}

func (w *Workspace) scriptArtifactPath(kind domain.Kind) string {
	return filepath.Join(w.Root, string(kind), scriptArtifact)
}

func (w *Workspace) datasetArtifactPath(kind domain.Kind) string {
	return filepath.Join(w.Root, datasetDir, string(kind)+datasetTxExt)
}

// LoadScript parses the YAML copy of a script.
func (w *Workspace) LoadScript(ctx context.Context, kind domain.Kind) (any, error) {
	data, err := w.read(w.ScriptPath(kind))
	if err != nil {
		return nil, err
	}
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", w.ScriptPath(kind), err)
	}
	return tree, nil
}

// SaveScript writes tree as YAML with a two-space indent.
func (w *Workspace) SaveScript(ctx context.Context, kind domain.Kind, tree any) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(tree); err != nil {
		return fmt.Errorf("failed to encode %s: %w", kind, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode %s: %w", kind, err)
	}
	return writeAtomic(filepath.FromSlash(w.ScriptPath(kind)), buf.Bytes())
}

// LoadDataset parses the JSON copy of a dataset. The document must be an array.
func (w *Workspace) LoadDataset(ctx context.Context, kind domain.Kind) ([]any, error) {
	data, err := w.read(w.DatasetPath(kind))
	if err != nil {
		return nil, err
	}
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", w.DatasetPath(kind), err)
	}
	return items, nil
}

// SaveDataset writes items as compact JSON.
func (w *Workspace) SaveDataset(ctx context.Context, kind domain.Kind, items []any) error {
	data, err := marshal(items, "")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", kind, err)
	}
	return writeAtomic(filepath.FromSlash(w.DatasetPath(kind)), data)
}

// WriteScriptArtifact writes {"s": tree} as compact JSON next to the script.
func (w *Workspace) WriteScriptArtifact(ctx context.Context, kind domain.Kind, tree any) error {
	data, err := marshal(map[string]any{scriptsArtifactK: tree}, "")
	if err != nil {
		return fmt.Errorf("failed to encode %s artifact: %w", kind, err)
	}
	return writeAtomic(w.scriptArtifactPath(kind), data)
}

// WriteDatasetArtifact writes items as indented JSON next to the dataset.
func (w *Workspace) WriteDatasetArtifact(ctx context.Context, kind domain.Kind, items []any) error {
	data, err := marshal(items, "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s artifact: %w", kind, err)
	}
	return writeAtomic(w.datasetArtifactPath(kind), data)
}

func (w *Workspace) read(p string) ([]byte, error) {
	data, err := os.ReadFile(filepath.FromSlash(p))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
		}
		return nil, fmt.Errorf("failed to read %s: %w", p, err)
	}
	return data, nil
}

// marshal encodes v with sorted keys, keeping non-ASCII and HTML characters literal.
func marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
