/*
Package identity stamps script trees with deterministic node identifiers.

A UID is a short content-addressed hash of a node's identity-relevant fields,
its ancestry stack and, for steps, its position among its siblings. Nothing is
persisted between runs: identifiers are stable only because the computation is.

	tree, err := identity.Assign(raw, "src/user/script.yaml")

Only nodes that declare "steps", and the direct children of such a "steps"
sequence, receive a uid. Sequences under any other field are walked without
positional context: their order is not meaningful to the script.
*/
package identity
