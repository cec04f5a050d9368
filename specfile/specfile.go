// Package specfile loads dimension specifications from YAML or JSON
// documents into ordered form.
//
// Regular unmarshaling into a Go map would shuffle dimensions, and dimension
// order is exactly what gives product indices their meaning. Parsing walks
// the yaml.v3 node tree instead, so dimensions come out in document order and
// every scalar keeps its source text: 30 and "30" both load as the string
// "30". JSON documents parse the same way, being valid YAML.
package specfile

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/iamtheburd/lazy-cartesian-product/cartesian"
)

// Spec is an ordered dimension specification: Keys[i] names Dimensions[i].
// Order follows the source document.
type Spec struct {
	Keys       []string
	Dimensions [][]string
}

// Space returns the dimension contents as a cartesian.Space.
func (s *Spec) Space() cartesian.Space[string] {
	return cartesian.Space[string](s.Dimensions)
}

// Load reads and parses the spec file at path.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse reads a spec from a YAML document. Two shapes are accepted: a
// mapping of dimension name to value list,
//
//	color: [red, green, blue]
//	size: [s, m]
//
// or a sequence of single-pair mappings, for documents that must survive
// tools which re-serialize mappings in their own order:
//
//	- color: [red, green, blue]
//	- size: [s, m]
//
// An empty value list is legal and yields an empty dimension, hence an empty
// product domain. Duplicate dimension names and non-scalar values are
// errors.
func Parse(data []byte) (*Spec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty document")
	}

	root := deref(doc.Content[0])
	spec := &Spec{}
	switch root.Kind {
	case yaml.MappingNode:
		if err := spec.addPairs(root); err != nil {
			return nil, err
		}
	case yaml.SequenceNode:
		for _, item := range root.Content {
			item = deref(item)
			if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
				return nil, fmt.Errorf("line %d: sequence items must be single-pair mappings", item.Line)
			}
			if err := spec.addPairs(item); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("line %d: top level must be a mapping or a sequence of mappings", root.Line)
	}
	return spec, nil
}

func (s *Spec) addPairs(mapping *yaml.Node) error {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valueNode := mapping.Content[i], deref(mapping.Content[i+1])
		key, ok := scalarValue(keyNode)
		if !ok {
			return fmt.Errorf("line %d: dimension names must be scalars", keyNode.Line)
		}
		if slices.Contains(s.Keys, key) {
			return fmt.Errorf("line %d: duplicate dimension %q", keyNode.Line, key)
		}
		if valueNode.Kind != yaml.SequenceNode {
			return fmt.Errorf("line %d: dimension %q must list its values", valueNode.Line, key)
		}
		values := make([]string, 0, len(valueNode.Content))
		for _, el := range valueNode.Content {
			v, ok := scalarValue(el)
			if !ok {
				return fmt.Errorf("line %d: dimension %q holds a non-scalar value", el.Line, key)
			}
			values = append(values, v)
		}
		s.Keys = append(s.Keys, key)
		s.Dimensions = append(s.Dimensions, values)
	}
	return nil
}

func deref(node *yaml.Node) *yaml.Node {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		return node.Alias
	}
	return node
}

func scalarValue(node *yaml.Node) (string, bool) {
	node = deref(node)
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		return "", false
	}
	return node.Value, true
}
