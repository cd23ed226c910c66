package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// ErrTreeInvalid is returned when a tree definition cannot be used.
var ErrTreeInvalid = errors.New("invalid tree definition")

// TreeSpec describes a tree to build in the demo. Files are JSON with
// comments and trailing commas allowed:
//
//	{
//	  // the root node
//	  "name": "Root",
//	  "children": [{"name": "Child1"}, {"name": "Child2"}],
//	}
type TreeSpec struct {
	Name     string     `json:"name"`
	Children []TreeSpec `json:"children,omitempty"`
}

// DefaultTree is the tree built when no definition file is given.
var DefaultTree = TreeSpec{
	Name: "Root",
	Children: []TreeSpec{
		{Name: "Child1"},
		{Name: "Child2"},
	},
}

// LoadTree reads a tree definition from path.
func LoadTree(path string) (TreeSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TreeSpec{}, fmt.Errorf("reading tree %s: %w", path, err)
	}

	tree, err := parseTree(data)
	if err != nil {
		return TreeSpec{}, fmt.Errorf("%w %s: %w", ErrTreeInvalid, path, err)
	}
	return tree, nil
}

func parseTree(data []byte) (TreeSpec, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return TreeSpec{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var tree TreeSpec
	if err := json.Unmarshal(standardized, &tree); err != nil {
		return TreeSpec{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := tree.validate(); err != nil {
		return TreeSpec{}, err
	}
	return tree, nil
}

func (s TreeSpec) validate() error {
	if s.Name == "" {
		return errors.New("node without name")
	}
	for _, c := range s.Children {
		if err := c.validate(); err != nil {
			return err
		}
	}
	return nil
}
