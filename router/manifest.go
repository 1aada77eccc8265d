package router

import (
	"fmt"
	"os"

	json "github.com/json-iterator/go"
)

// FromManifest builds a table from a JSON file of the form
// {"/path": "relative/or/absolute/file", ...}. Paths are canonicalized the
// same way request targets are, so a sloppy manifest still produces
// matchable routes.
func FromManifest(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("router: manifest: %w", err)
	}

	routes := make(map[string]string)

	iterator := json.ConfigDefault.BorrowIterator(data)
	iterator.ReadVal(&routes)
	err = iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	if err != nil {
		return nil, fmt.Errorf("router: manifest %s: %w", path, err)
	}

	return New(routes), nil
}
