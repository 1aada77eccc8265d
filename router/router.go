// Package router holds the static route table: a mapping from canonical URL
// paths to servable files. The table is built once before the server starts
// and is immutable afterwards, which is what makes lock-free concurrent
// lookups from all the workers legal.
package router

import "github.com/hearth-web/hearth/internal/pathclean"

type Table struct {
	routes map[string]string
}

// New builds a table from the given mapping. Keys are canonicalized, values
// are taken verbatim. The map is copied, so the caller is free to reuse it.
func New(routes map[string]string) *Table {
	t := &Table{
		routes: make(map[string]string, len(routes)),
	}

	for path, file := range routes {
		t.routes[pathclean.Clean(path)] = file
	}

	return t
}

// Lookup resolves a canonical path into a filesystem path. A miss is a
// normal outcome, not an error.
func (t *Table) Lookup(path string) (file string, found bool) {
	file, found = t.routes[path]
	return file, found
}

func (t *Table) Len() int {
	return len(t.routes)
}

// Paths returns all the registered paths. Mainly for startup logging.
func (t *Table) Paths() []string {
	paths := make([]string, 0, len(t.routes))
	for path := range t.routes {
		paths = append(paths, path)
	}

	return paths
}
