// Package ast provides the parsed tree representation for infrastructure templates.
//
// A parsed template is a tagged-variant tree of Nodes (mapping, sequence,
// string, number, boolean, null), so shape questions like "is this a mapping
// with a non-empty string field Type" are type-safe pattern matches rather
// than untyped property probing. All nodes preserve source location
// information for precise error reporting.
//
// # Core Types
//
// Node: Tagged-variant tree node with a Kind discriminator
//
// Document: Root structure with the recognized top-level sections broken out
// (format version, description, parameters, resources, outputs) and unknown
// sections carried opaquely
//
// Location: Source location (file, line, column)
//
// # Basic Usage
//
// Documents are normally produced by the parser package, but can be built
// directly from in-memory nodes, which is how malformed-document scenarios
// are constructed in tests:
//
//	root := ast.MappingNode(
//	    ast.Entry{Key: ast.KeyResources, Value: ast.MappingNode(
//	        ast.Entry{Key: "Bucket", Value: ast.MappingNode(
//	            ast.Entry{Key: ast.KeyType, Value: ast.StringNode("AWS::S3::Bucket")},
//	        )},
//	    )},
//	)
//	doc, err := ast.NewDocument(root, "inline.yaml")
//
// Documents are immutable by convention after construction; validators and
// introspection queries only read them.
package ast
