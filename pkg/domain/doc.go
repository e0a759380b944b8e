/*
Package domain contains the core data model shared by the scriptsync components.

It defines the generic script tree, the structural field names the algorithms rely on,
the translation entries exchanged with the vendor, and the sentinel errors of the
pipeline. This package is kept pure and free of external dependencies like I/O,
following Hexagonal Architecture principles.

# Key Entities

  - Node: A mapping representing one unit of the script (step, menu entry, dataset record).
  - Kind: A script document kind ("user" or "agent") or an auxiliary dataset kind.
  - Entry: A discovered (translation key, source text) pair.
  - Translations: Translated strings keyed by translation key and language.
*/
package domain
