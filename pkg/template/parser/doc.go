// Package parser loads infrastructure template files into parsed Documents.
//
// The parser reads YAML via gopkg.in/yaml.v3, converts the decoded node tree
// into the tagged-variant AST (preserving line and column information), and
// breaks out the recognized top-level sections. It performs no evaluation:
// intrinsic functions, substitution placeholders, and unknown sections pass
// through as opaque nodes.
//
// The parser is the only component in the template core that performs I/O.
// It fails fast on unreadable sources, oversize files, YAML syntax errors,
// and documents whose root is not a mapping; everything inside an otherwise
// parseable document is left to the validator to report.
//
// # Basic Usage
//
//	p := parser.NewParser()
//	doc, err := p.Parse("templates/network.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("resources:", doc.Resources.Len())
//
// Parse from memory:
//
//	doc, err := p.ParseBytes(data, "inline.yaml")
package parser
