package identity

import "strings"

// Lookup resolves a dotted path ("wait.variable") inside a node.
// It reports false when any segment is missing, when an intermediate value
// is not a mapping, or when the final value is nil.
func Lookup(node map[string]any, path string) (any, bool) {
	var cur any = node
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}
