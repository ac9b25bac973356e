// Package updates renders the partial field maps carried by UPDATE_*
// operations into SET clauses, against a per-table column whitelist.
package updates

import (
	"fmt"
	"sort"
	"strings"
)

// BuildSet returns "col1 = $n, col2 = $n+1, ..." plus the matching argument
// slice for the whitelisted keys of m, with placeholders starting at firstArg.
// An unlisted key is an error: a payload naming unknown columns is malformed
// and must not reach the backend.
func BuildSet(m map[string]any, allowed map[string]bool, firstArg int) (string, []any, error) {
	if len(m) == 0 {
		return "", nil, fmt.Errorf("empty update map")
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		if !allowed[k] {
			return "", nil, fmt.Errorf("column %q is not updatable", k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	args := make([]any, 0, len(keys))
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q = $%d", k, firstArg+i)
		args = append(args, Normalize(m[k]))
	}
	return b.String(), args, nil
}

// Normalize converts JSON-decoded values into shapes pgx can bind: a []any
// holding only strings becomes []string (text[] columns), everything else
// passes through.
func Normalize(v any) any {
	items, ok := v.([]any)
	if !ok {
		return v
	}
	ss := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return v
		}
		ss[i] = s
	}
	return ss
}
