// Package pathclean brings request targets to the canonical form the route
// table is keyed by. This is deliberately NOT filesystem normalization:
// dot-dot segments are dropped, never resolved against ancestors. Traversal
// safety comes from the fact that lookups only ever hit a pre-enumerated
// table, so the cleaner just has to be total and deterministic.
package pathclean

import "strings"

// Clean splits the path on slashes, drops empty, "." and ".." segments and
// reassembles the rest with a single leading slash. An empty result collapses
// to "/". Segments merely containing dots ("..secret") are kept as-is.
func Clean(path string) string {
	var b strings.Builder
	b.Grow(len(path))

	for _, segment := range strings.Split(path, "/") {
		switch segment {
		case "", ".", "..":
			continue
		}

		b.WriteByte('/')
		b.WriteString(segment)
	}

	if b.Len() == 0 {
		return "/"
	}

	return b.String()
}
