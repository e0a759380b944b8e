// Package syncer drives a run: for each script and dataset document it refreshes
// the local copy from the editor when asked to, stamps identifiers, exchanges
// strings with the translation vendor and writes the runtime artifact.
//
// Documents are processed one at a time and a document's artifact is written
// only after it was fully processed, so a failure never leaves a half-translated
// artifact behind.
package syncer
