package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind represents the kind of a parsed template node.
// Every node in a parsed document is exactly one of these kinds,
// so shape checks are pattern matches rather than untyped probing.
type Kind string

const (
	KindMapping  Kind = "mapping"
	KindSequence Kind = "sequence"
	KindString   Kind = "string"
	KindNumber   Kind = "number"
	KindBool     Kind = "boolean"
	KindNull     Kind = "null"
)

// Entry is a single key/value pair in a mapping node.
// Entries preserve the order they appeared in the source document.
type Entry struct {
	Key   string
	Value *Node
}

// Node is a tagged-variant tree node for a parsed template document.
// Exactly one payload field is meaningful, selected by Kind:
// Str for strings, Num for numbers, Bool for booleans, Entries for
// mappings, Items for sequences. Null nodes carry no payload.
type Node struct {
	Kind     Kind
	Str      string
	Num      float64
	Bool     bool
	Entries  []Entry
	Items    []*Node
	Location Location
}

// IsMapping returns true if the node is a mapping.
func (n *Node) IsMapping() bool {
	return n != nil && n.Kind == KindMapping
}

// IsNull returns true if the node is nil or an explicit null.
func (n *Node) IsNull() bool {
	return n == nil || n.Kind == KindNull
}

// Len returns the number of direct children: entries for mappings,
// items for sequences, 0 for everything else.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case KindMapping:
		return len(n.Entries)
	case KindSequence:
		return len(n.Items)
	default:
		return 0
	}
}

// Get returns the value for the given key in a mapping node,
// or nil if the node is not a mapping or the key is absent.
func (n *Node) Get(key string) *Node {
	if !n.IsMapping() {
		return nil
	}
	for _, e := range n.Entries {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// Has returns true if the node is a mapping containing the given key.
// The key counts as present even if its value is null.
func (n *Node) Has(key string) bool {
	if !n.IsMapping() {
		return false
	}
	for _, e := range n.Entries {
		if e.Key == key {
			return true
		}
	}
	return false
}

// Keys returns the mapping keys in source order, or nil for non-mappings.
func (n *Node) Keys() []string {
	if !n.IsMapping() {
		return nil
	}
	keys := make([]string, 0, len(n.Entries))
	for _, e := range n.Entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// StringValue returns the node's string payload.
// The second return value is false if the node is not a string scalar.
func (n *Node) StringValue() (string, bool) {
	if n == nil || n.Kind != KindString {
		return "", false
	}
	return n.Str, true
}

// String renders the node as a compact flow-style representation.
// This is a structural serialization for textual scans and diagnostics,
// not a YAML round-trip.
func (n *Node) String() string {
	if n == nil {
		return "null"
	}
	switch n.Kind {
	case KindNull:
		return "null"
	case KindString:
		return n.Str
	case KindNumber:
		return strconv.FormatFloat(n.Num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(n.Bool)
	case KindSequence:
		parts := make([]string, 0, len(n.Items))
		for _, item := range n.Items {
			parts = append(parts, item.String())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMapping:
		parts := make([]string, 0, len(n.Entries))
		for _, e := range n.Entries {
			parts = append(parts, fmt.Sprintf("%s: %s", e.Key, e.Value.String()))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return ""
	}
}

// StringNode creates a string scalar node.
func StringNode(s string) *Node {
	return &Node{Kind: KindString, Str: s}
}

// NumberNode creates a number scalar node.
func NumberNode(f float64) *Node {
	return &Node{Kind: KindNumber, Num: f}
}

// BoolNode creates a boolean scalar node.
func BoolNode(b bool) *Node {
	return &Node{Kind: KindBool, Bool: b}
}

// NullNode creates an explicit null node.
func NullNode() *Node {
	return &Node{Kind: KindNull}
}

// SequenceNode creates a sequence node from the given items.
func SequenceNode(items ...*Node) *Node {
	return &Node{Kind: KindSequence, Items: items}
}

// MappingNode creates a mapping node from the given entries, preserving order.
func MappingNode(entries ...Entry) *Node {
	return &Node{Kind: KindMapping, Entries: entries}
}
