package fstree

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// nodeDTO is the YAML shape of a node. A present children key, even an
// empty list, marks a Directory; an absent one marks a File.
type nodeDTO struct {
	Name     string     `yaml:"name"`
	Children *[]nodeDTO `yaml:"children"`
}

// ParseYAML builds a tree from a YAML document.
func ParseYAML(data []byte) (Node, error) {
	return DecodeYAML(bytes.NewReader(data))
}

// DecodeYAML reads a single YAML document from r and builds the tree it
// describes. Returns ErrEmptyName for unnamed nodes and a wrapped yaml error
// for malformed or empty input.
func DecodeYAML(r io.Reader) (Node, error) {
	var root nodeDTO
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("fstree: decode yaml: %w", err)
	}

	return root.toNode("")
}

// toNode converts d and its descendants; parent is the slash-joined path
// used in error messages.
func (d nodeDTO) toNode(parent string) (Node, error) {
	if d.Name == "" {
		if parent == "" {
			return nil, fmt.Errorf("fstree: root: %w", ErrEmptyName)
		}
		return nil, fmt.Errorf("fstree: child of %q: %w", parent, ErrEmptyName)
	}
	if d.Children == nil {
		return NewFile(d.Name), nil
	}

	path := d.Name
	if parent != "" {
		path = parent + "/" + d.Name
	}
	dir := NewDirectory(d.Name)
	for _, c := range *d.Children {
		n, err := c.toNode(path)
		if err != nil {
			return nil, err
		}
		dir.Add(n)
	}

	return dir, nil
}
