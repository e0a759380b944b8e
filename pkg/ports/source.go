package ports

import (
	"context"

	"github.com/aretw0/scriptsync/pkg/domain"
)

// DocumentSource fetches the raw YAML definition of a script document.
type DocumentSource interface {
	Fetch(ctx context.Context, kind domain.Kind) (string, error)
}

// Workspace is the local working copy of the scripts and datasets.
// Paths are relative to the workspace root and double as hashing context
// and vendor resource names.
type Workspace interface {
	ScriptPath(kind domain.Kind) string
	DatasetPath(kind domain.Kind) string

	// LoadScript parses the local YAML copy of a script.
	LoadScript(ctx context.Context, kind domain.Kind) (any, error)
	// SaveScript replaces the local YAML copy of a script.
	SaveScript(ctx context.Context, kind domain.Kind, tree any) error

	// LoadDataset parses the local JSON copy of a dataset.
	LoadDataset(ctx context.Context, kind domain.Kind) ([]any, error)
	// SaveDataset replaces the local JSON copy of a dataset.
	SaveDataset(ctx context.Context, kind domain.Kind, items []any) error

	// WriteScriptArtifact writes the processed script for the runtime.
	WriteScriptArtifact(ctx context.Context, kind domain.Kind, tree any) error
	// WriteDatasetArtifact writes the processed dataset for the runtime.
	WriteDatasetArtifact(ctx context.Context, kind domain.Kind, items []any) error
}
