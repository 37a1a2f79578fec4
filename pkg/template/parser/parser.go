package parser

import (
	"fmt"
	"os"

	"mercator-hq/atlas/pkg/template/ast"
	tplErrors "mercator-hq/atlas/pkg/template/errors"
)

// Parser loads template files into parsed Documents.
// It is the only component in the template core that performs I/O, and the
// only place a fatal (returned rather than collected) error is appropriate:
// unreadable sources and unparseable content abort the whole operation.
type Parser struct {
	maxFileSize int64 // Maximum file size in bytes (default: 10MB)
}

// NewParser creates a new parser with default configuration.
func NewParser() *Parser {
	return &Parser{
		maxFileSize: 10 * 1024 * 1024, // 10MB
	}
}

// WithMaxFileSize sets the maximum file size limit.
func (p *Parser) WithMaxFileSize(size int64) *Parser {
	p.maxFileSize = size
	return p
}

// Parse loads and parses the template file at the given path.
// It returns a tplErrors.Error with KindIO for unreadable or oversize files
// and KindSyntax for content that cannot be parsed into a structured tree
// or whose root is not a mapping.
func (p *Parser) Parse(path string) (*ast.Document, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, &tplErrors.Error{
			Kind:     tplErrors.KindIO,
			Severity: tplErrors.SeverityError,
			Detail:   err.Error(),
			Location: ast.Location{File: path},
		}
	}

	if fileInfo.Size() > p.maxFileSize {
		return nil, &tplErrors.Error{
			Kind:     tplErrors.KindIO,
			Severity: tplErrors.SeverityError,
			Detail:   fmt.Sprintf("file size %d exceeds maximum %d bytes", fileInfo.Size(), p.maxFileSize),
			Location: ast.Location{File: path},
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &tplErrors.Error{
			Kind:     tplErrors.KindIO,
			Severity: tplErrors.SeverityError,
			Detail:   err.Error(),
			Location: ast.Location{File: path},
		}
	}

	return p.ParseBytes(data, path)
}

// ParseBytes parses template YAML from a byte slice.
// This is useful for testing or parsing templates from memory.
func (p *Parser) ParseBytes(data []byte, sourcePath string) (*ast.Document, error) {
	if int64(len(data)) > p.maxFileSize {
		return nil, &tplErrors.Error{
			Kind:     tplErrors.KindIO,
			Severity: tplErrors.SeverityError,
			Detail:   fmt.Sprintf("data size %d exceeds maximum %d bytes", len(data), p.maxFileSize),
			Location: ast.Location{File: sourcePath},
		}
	}

	root, err := parseYAMLBytes(data, sourcePath)
	if err != nil {
		return nil, &tplErrors.Error{
			Kind:       tplErrors.KindSyntax,
			Severity:   tplErrors.SeverityError,
			Detail:     err.Error(),
			Location:   ast.Location{File: sourcePath, Line: 1, Column: 1},
			Suggestion: "Check YAML syntax (indentation, colons, quotes)",
		}
	}

	doc, err := ast.NewDocument(root, sourcePath)
	if err != nil {
		// A valid parse yields at least a root mapping, so a non-mapping
		// root is a loader-time fatal error, not a collected one.
		return nil, &tplErrors.Error{
			Kind:       tplErrors.KindSyntax,
			Severity:   tplErrors.SeverityError,
			Detail:     err.Error(),
			Location:   root.Location,
			Suggestion: "The template root must be a mapping with Resources, Parameters, and Outputs sections",
		}
	}

	return doc, nil
}
