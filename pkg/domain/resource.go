package domain

import (
	"path/filepath"
	"strings"
)

// Resource identifies one document's strings at the translation vendor.
type Resource struct {
	// Slug is the vendor-side identifier.
	Slug string
	// Name is the human-readable name, the local file path.
	Name string
}

// ResourceFor derives the vendor resource of a local file: path segments are
// joined with "_" and dots replaced, so "src/user/script.yaml" becomes
// "src_user_script_yaml".
func ResourceFor(path string) Resource {
	clean := filepath.ToSlash(filepath.Clean(path))
	parts := strings.FieldsFunc(clean, func(r rune) bool { return r == '/' })
	slug := strings.ReplaceAll(strings.Join(parts, "_"), ".", "_")
	return Resource{Slug: slug, Name: clean}
}
