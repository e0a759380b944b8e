package txkey

import (
	"fmt"
	"iter"

	"github.com/aretw0/scriptsync/pkg/domain"
	"github.com/samber/lo"
)

// Catalog accumulates the source strings of a document by translation key.
type Catalog struct {
	texts map[string]string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{texts: make(map[string]string)}
}

// Add records an entry. Re-adding a key with the same text is a no-op; a
// different text fails with domain.ErrDuplicateKey.
func (c *Catalog) Add(e domain.Entry) error {
	if prev, ok := c.texts[e.Key]; ok && prev != e.Text {
		return fmt.Errorf("%w %s (v=%q, existing=%q)", domain.ErrDuplicateKey, e.Key, e.Text, prev)
	}
	c.texts[e.Key] = e.Text
	return nil
}

// AddAll records every entry of seq, stopping at the first duplicate.
func (c *Catalog) AddAll(seq iter.Seq[domain.Entry]) error {
	for e := range seq {
		if err := c.Add(e); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of distinct keys.
func (c *Catalog) Len() int {
	return len(c.texts)
}

// Strings returns a copy of the key to source text mapping.
func (c *Catalog) Strings() map[string]string {
	return lo.Assign(c.texts)
}
