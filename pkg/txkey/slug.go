package txkey

import "github.com/gosimple/slug"

// Slugify returns the lowercase, dash-separated ASCII form of a display name.
// Non-Latin scripts are transliterated.
func Slugify(s string) string {
	return slug.Make(s)
}
