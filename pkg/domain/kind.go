package domain

import "fmt"

// Kind names a document processed by a run.
type Kind string

// Script document kinds.
const (
	KindUser  Kind = "user"
	KindAgent Kind = "agent"
)

// Auxiliary dataset kinds, stored next to the scripts as datapackages.
const (
	DatasetInfocards     Kind = "infocards"
	DatasetOrganizations Kind = "organizations"
	DatasetTaskTemplates Kind = "taskTemplates"
)

// ScriptKinds lists the script documents in processing order.
var ScriptKinds = []Kind{KindUser, KindAgent}

// DatasetKinds lists the dataset documents in processing order.
var DatasetKinds = []Kind{DatasetInfocards, DatasetOrganizations, DatasetTaskTemplates}

// Source selects where script documents are read from.
type Source string

const (
	// SourceEditor fetches documents from the remote editor's document store
	// and refreshes the local copies before processing.
	SourceEditor Source = "editor"
	// SourceLocal processes the local copies as they are.
	SourceLocal Source = "local"
)

// ParseSource validates a source mode given on the command line.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceEditor, SourceLocal:
		return Source(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSource, s)
	}
}
