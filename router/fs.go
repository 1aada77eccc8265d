package router

import (
	"os"
	"path"
	"path/filepath"
)

const (
	indexPage    = "index.html"
	notFoundPage = "not_found.html"
)

// servableExtensions filters what the directory scanner picks up. Anything
// else in the tree is invisible to the server.
var servableExtensions = map[string]bool{
	".html": true,
	".css":  true,
	".js":   true,
}

// FromDir builds a table by recursively scanning a directory. A file
// `dir/a/b.css` becomes the route `/a/b.css`; an index.html maps to its
// directory's path; not_found.html is reserved for the 404 page and gets no
// route of its own.
func FromDir(dir string) (*Table, error) {
	routes := make(map[string]string)
	if err := scan(routes, "/", dir); err != nil {
		return nil, err
	}

	return New(routes), nil
}

func scan(routes map[string]string, route, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		file := filepath.Join(dir, name)

		if entry.IsDir() {
			if err = scan(routes, path.Join(route, name), file); err != nil {
				return err
			}

			continue
		}

		if !servableExtensions[filepath.Ext(name)] || name == notFoundPage {
			continue
		}

		if name == indexPage {
			routes[route] = file
		} else {
			routes[path.Join(route, name)] = file
		}
	}

	return nil
}
