package syncer

import "github.com/aretw0/scriptsync/pkg/domain"

// DocumentReport describes what happened to one document.
type DocumentReport struct {
	Kind domain.Kind
	// Path is the local copy the document was read from.
	Path string
	// Items counts top-level entries (scripts or dataset records).
	Items int
	// Stamped counts nodes that received a uid. Always zero for datasets.
	Stamped int
	// Keys counts distinct translation keys pushed to the vendor.
	Keys int
	// Spliced counts strings replaced by a translation carrier.
	Spliced int
	// Synced reports whether the vendor was contacted.
	Synced bool
}

// Report summarizes a run.
type Report struct {
	Source    domain.Source
	Documents []DocumentReport
}
