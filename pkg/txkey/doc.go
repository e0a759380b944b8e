/*
Package txkey derives translation keys for the translatable strings of a script tree.

A key is the slash-joined path of slugs, short uid prefixes and sequence indexes
leading to a string. Walk lazily produces the (key, text) pairs of a tree without
touching it; Apply returns a copy in which strings with a known translation are
replaced by a carrier object holding the original text and its translations.

Keys are only unique if the tree is: callers collect entries in a Catalog, which
rejects a key seen twice with different texts.
*/
package txkey
