package domain

import "errors"

// ErrMissingIdentity is returned when a node carries none of the identity-relevant fields.
var ErrMissingIdentity = errors.New("node has no identity field")

// ErrDuplicateKey is returned when two different texts resolve to the same translation key.
var ErrDuplicateKey = errors.New("duplicate translation key")

// ErrNotATree is returned when a mapping or sequence is reachable more than once.
var ErrNotATree = errors.New("structure is not a tree")

// ErrInvalidSteps is returned when a "steps" field does not hold a sequence.
var ErrInvalidSteps = errors.New("steps must be a sequence")

// ErrUnknownSource is returned when the requested source mode is neither editor nor local.
var ErrUnknownSource = errors.New("unknown source mode")

// ErrInvalidDocument is returned when a document does not have the expected shape.
var ErrInvalidDocument = errors.New("unexpected document shape")

// ErrNoTranslations is returned with an empty result when the vendor answered
// without usable translation data.
var ErrNoTranslations = errors.New("no translation data")
