package parser

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"mercator-hq/atlas/pkg/template/ast"
)

// converter turns decoded yaml.Node trees into the tagged-variant AST.
// It tracks which container nodes are currently being converted so that a
// cyclic alias graph (an anchor referencing itself, directly or through
// children) is reported as a parse error instead of recursing forever.
type converter struct {
	sourcePath string
	active     map[*yaml.Node]struct{}
}

func newConverter(sourcePath string) *converter {
	return &converter{
		sourcePath: sourcePath,
		active:     make(map[*yaml.Node]struct{}),
	}
}

// convert converts a decoded yaml.Node into the AST, preserving line and
// column information for error reporting.
func (c *converter) convert(node *yaml.Node) (*ast.Node, error) {
	if node == nil {
		return ast.NullNode(), nil
	}

	loc := ast.Location{
		File:   c.sourcePath,
		Line:   node.Line,
		Column: node.Column,
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			n := ast.NullNode()
			n.Location = loc
			return n, nil
		}
		return c.convert(node.Content[0])

	case yaml.AliasNode:
		// yaml.v3 registers an anchor before composing its children, so a
		// self-referential anchor yields a cyclic node graph.
		if _, busy := c.active[node.Alias]; busy {
			return nil, fmt.Errorf("cyclic alias %q at %s", node.Value, loc.String())
		}
		return c.convert(node.Alias)

	case yaml.MappingNode:
		c.active[node] = struct{}{}
		defer delete(c.active, node)

		entries := make([]ast.Entry, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			value, err := c.convert(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			entries = append(entries, ast.Entry{
				Key:   keyNode.Value,
				Value: value,
			})
		}
		return &ast.Node{
			Kind:     ast.KindMapping,
			Entries:  entries,
			Location: loc,
		}, nil

	case yaml.SequenceNode:
		c.active[node] = struct{}{}
		defer delete(c.active, node)

		items := make([]*ast.Node, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := c.convert(child)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return &ast.Node{
			Kind:     ast.KindSequence,
			Items:    items,
			Location: loc,
		}, nil

	case yaml.ScalarNode:
		return convertScalar(node, loc)

	default:
		return nil, fmt.Errorf("unsupported YAML node kind %d at %s", node.Kind, loc.String())
	}
}

// convertScalar converts a YAML scalar node based on its resolved tag.
// Unrecognized tags (e.g. custom intrinsic-function shorthand) are kept as
// strings; this loader never evaluates them.
func convertScalar(node *yaml.Node, loc ast.Location) (*ast.Node, error) {
	var n *ast.Node

	switch node.Tag {
	case "!!null":
		n = ast.NullNode()

	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			// Non-canonical booleans fall back to their string form
			n = ast.StringNode(node.Value)
			break
		}
		n = ast.BoolNode(b)

	case "!!int", "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			n = ast.StringNode(node.Value)
			break
		}
		n = ast.NumberNode(f)

	default:
		n = ast.StringNode(node.Value)
	}

	n.Location = loc
	return n, nil
}

// parseYAMLBytes parses raw YAML into the AST root node.
func parseYAMLBytes(data []byte, sourcePath string) (*ast.Node, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	return newConverter(sourcePath).convert(&node)
}
