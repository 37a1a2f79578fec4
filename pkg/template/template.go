package template

import (
	"mercator-hq/atlas/pkg/template/ast"
	"mercator-hq/atlas/pkg/template/parser"
	"mercator-hq/atlas/pkg/template/validator"
)

// Load parses the template file at the given path without validating it.
// Use this if you want to inspect the document before validation.
func Load(path string) (*ast.Document, error) {
	p := parser.NewParser()
	return p.Parse(path)
}

// LoadBytes parses template YAML from memory without validating it.
func LoadBytes(data []byte, sourcePath string) (*ast.Document, error) {
	p := parser.NewParser()
	return p.ParseBytes(data, sourcePath)
}

// Validate runs the full structural validation pass over a parsed document.
func Validate(doc *ast.Document) *validator.Result {
	v := validator.NewValidator()
	return v.Validate(doc)
}

// LoadAndValidate is a convenience function that parses and validates a
// template file. The error is non-nil only for loader failures (unreadable
// or unparseable input); structural problems are reported in the Result.
func LoadAndValidate(path string) (*ast.Document, *validator.Result, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	return doc, Validate(doc), nil
}

// LoadAndValidateBytes is the in-memory variant of LoadAndValidate.
func LoadAndValidateBytes(data []byte, sourcePath string) (*ast.Document, *validator.Result, error) {
	doc, err := LoadBytes(data, sourcePath)
	if err != nil {
		return nil, nil, err
	}
	return doc, Validate(doc), nil
}
