package memory

import (
	"context"
	"fmt"

	"github.com/aretw0/scriptsync/pkg/domain"
)

// Source implements ports.DocumentSource using an in-memory map of raw YAML documents.
type Source struct {
	docs map[domain.Kind]string
}

// NewSource creates a Source with the provided raw documents.
func NewSource(docs map[domain.Kind]string) *Source {
	copied := make(map[domain.Kind]string, len(docs))
	for k, v := range docs {
		copied[k] = v
	}
	return &Source{docs: copied}
}

// Fetch returns the raw definition of a document kind.
func (s *Source) Fetch(ctx context.Context, kind domain.Kind) (string, error) {
	doc, ok := s.docs[kind]
	if !ok {
		return "", fmt.Errorf("document not found: %s", kind)
	}
	return doc, nil
}
