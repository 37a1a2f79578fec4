package validator

import (
	"reflect"
	"testing"

	"mercator-hq/atlas/pkg/template/ast"
	tplErrors "mercator-hq/atlas/pkg/template/errors"
	"mercator-hq/atlas/pkg/template/parser"
)

func mustParse(t *testing.T, input string) *ast.Document {
	t.Helper()
	doc, err := parser.NewParser().ParseBytes([]byte(input), "test.yaml")
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return doc
}

const wellFormedTemplate = `
AWSTemplateFormatVersion: "2010-09-09"
Description: Fully well-formed stack
Parameters:
  Env:
    Type: String
    Default: dev
Resources:
  WebServer:
    Type: AWS::EC2::Instance
    Properties:
      InstanceType: t3.micro
  Bucket:
    Type: AWS::S3::Bucket
    DeletionPolicy: Retain
Outputs:
  ServerId:
    Value: !Ref WebServer
    Description: Instance identifier
`

func TestValidateWellFormedTemplate(t *testing.T) {
	doc := mustParse(t, wellFormedTemplate)
	result := NewValidator().Validate(doc)

	if !result.Valid() {
		t.Errorf("Valid() = false, errors: %v", result.ErrorMessages())
	}
	if len(result.Errors()) != 0 {
		t.Errorf("Errors() = %v, want none", result.ErrorMessages())
	}
	if len(result.Warnings()) != 0 {
		t.Errorf("Warnings() = %v, want none", result.WarningMessages())
	}
}

func TestValidateFormatVersion(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantKind    tplErrors.Kind
		wantMessage string
	}{
		{
			"absent version",
			"Resources:\n  A:\n    Type: T\n",
			tplErrors.KindMissingFormatVersion,
			"Missing format version",
		},
		{
			"unaccepted version",
			"AWSTemplateFormatVersion: \"2020-01-01\"\nResources:\n  A:\n    Type: T\n",
			tplErrors.KindInvalidFormatVersion,
			"Invalid format version: 2020-01-01",
		},
		{
			"non-scalar version",
			"AWSTemplateFormatVersion:\n  - \"2010-09-09\"\nResources:\n  A:\n    Type: T\n",
			tplErrors.KindInvalidFormatVersion,
			"Invalid format version: [2010-09-09]",
		},
		{
			"null version",
			"AWSTemplateFormatVersion: null\nResources:\n  A:\n    Type: T\n",
			tplErrors.KindInvalidFormatVersion,
			"Invalid format version: null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.input)
			result := NewValidator().ValidateFormatVersion(doc)

			if result.Valid() {
				t.Fatal("Valid() = true, want format-version error")
			}
			errs := result.Errors()
			if len(errs) != 1 {
				t.Fatalf("Errors() = %d, want 1", len(errs))
			}
			if errs[0].Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", errs[0].Kind, tt.wantKind)
			}
			if got := errs[0].Message(); got != tt.wantMessage {
				t.Errorf("Message() = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestValidateFormatVersionCustomAccepted(t *testing.T) {
	doc := mustParse(t, "AWSTemplateFormatVersion: \"2024-06-01\"\nResources:\n  A:\n    Type: T\n")

	if result := NewValidator().ValidateFormatVersion(doc); result.Valid() {
		t.Error("default validator accepted 2024-06-01")
	}

	v := NewValidatorWithFormatVersions("2010-09-09", "2024-06-01")
	if result := v.ValidateFormatVersion(doc); !result.Valid() {
		t.Errorf("custom validator rejected 2024-06-01: %v", result.ErrorMessages())
	}
}

func TestValidateResources(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantMessages []string
	}{
		{
			"absent section is an error",
			"AWSTemplateFormatVersion: \"2010-09-09\"\n",
			[]string{"Missing Resources section"},
		},
		{
			"empty section is an error",
			"Resources: {}\n",
			[]string{"Resources section is empty"},
		},
		{
			"null section is an error",
			"Resources: null\n",
			[]string{"Resources section is empty"},
		},
		{
			"sequence section is an error",
			"Resources:\n  - Type: T\n",
			[]string{"Resources section must be a mapping"},
		},
		{
			"scalar section is an error",
			"Resources: just-a-string\n",
			[]string{"Resources section must be a mapping"},
		},
		{
			"null entry",
			"Resources:\n  Broken:\n",
			[]string{"Invalid resource structure: Broken"},
		},
		{
			"scalar entry",
			"Resources:\n  Broken: just-a-string\n",
			[]string{"Invalid resource structure: Broken"},
		},
		{
			"entry missing Type",
			"Resources:\n  Broken:\n    Properties:\n      Size: 1\n",
			[]string{"Invalid resource structure: Broken"},
		},
		{
			"entry with non-string Type",
			"Resources:\n  Broken:\n    Type: 42\n",
			[]string{"Invalid resource structure: Broken"},
		},
		{
			"entry with empty Type",
			"Resources:\n  Broken:\n    Type: \"\"\n",
			[]string{"Invalid resource structure: Broken"},
		},
		{
			"every bad entry reported, in order",
			"Resources:\n  First:\n  Good:\n    Type: T\n  Second: scalar\n",
			[]string{
				"Invalid resource structure: First",
				"Invalid resource structure: Second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.input)
			result := NewValidator().ValidateResources(doc)

			if got := result.ErrorMessages(); !reflect.DeepEqual(got, tt.wantMessages) {
				t.Errorf("ErrorMessages() = %v, want %v", got, tt.wantMessages)
			}
			if len(result.Warnings()) != 0 {
				t.Errorf("Warnings() = %v, want none from resources", result.WarningMessages())
			}
		})
	}
}

func TestValidateOutputs(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantErrors   []string
		wantWarnings []string
	}{
		{
			"absent section only warns",
			"Resources:\n  A:\n    Type: T\n",
			[]string{},
			[]string{"No Outputs section defined"},
		},
		{
			"empty section only warns",
			"Outputs: {}\n",
			[]string{},
			[]string{"Outputs section is empty"},
		},
		{
			"sequence section only warns",
			"Outputs:\n  - Value: x\n",
			[]string{},
			[]string{"Outputs section must be a mapping"},
		},
		{
			"entry missing Value",
			"Outputs:\n  SiteURL:\n    Description: no value here\n",
			[]string{"Invalid output structure: SiteURL"},
			[]string{},
		},
		{
			"scalar entry",
			"Outputs:\n  SiteURL: http://example.com\n",
			[]string{"Invalid output structure: SiteURL"},
			[]string{},
		},
		{
			"null Value still counts as present",
			"Outputs:\n  SiteURL:\n    Value: null\n",
			[]string{},
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.input)
			result := NewValidator().ValidateOutputs(doc)

			if got := result.ErrorMessages(); !reflect.DeepEqual(got, tt.wantErrors) {
				t.Errorf("ErrorMessages() = %v, want %v", got, tt.wantErrors)
			}
			if got := result.WarningMessages(); !reflect.DeepEqual(got, tt.wantWarnings) {
				t.Errorf("WarningMessages() = %v, want %v", got, tt.wantWarnings)
			}
		})
	}
}

func TestValidateParameters(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantErrors   []string
		wantWarnings []string
	}{
		{
			"absent section only warns",
			"Resources:\n  A:\n    Type: T\n",
			[]string{},
			[]string{"No Parameters section defined"},
		},
		{
			"empty section only warns",
			"Parameters: {}\n",
			[]string{},
			[]string{"Parameters section is empty"},
		},
		{
			"sequence section only warns",
			"Parameters:\n  - Type: String\n",
			[]string{},
			[]string{"Parameters section must be a mapping"},
		},
		{
			"entry missing Type",
			"Parameters:\n  Env:\n    Default: dev\n",
			[]string{"Invalid parameter structure: Env"},
			[]string{},
		},
		{
			"null entry",
			"Parameters:\n  Env:\n",
			[]string{"Invalid parameter structure: Env"},
			[]string{},
		},
		{
			"well-formed entry",
			"Parameters:\n  Env:\n    Type: String\n",
			[]string{},
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.input)
			result := NewValidator().ValidateParameters(doc)

			if got := result.ErrorMessages(); !reflect.DeepEqual(got, tt.wantErrors) {
				t.Errorf("ErrorMessages() = %v, want %v", got, tt.wantErrors)
			}
			if got := result.WarningMessages(); !reflect.DeepEqual(got, tt.wantWarnings) {
				t.Errorf("WarningMessages() = %v, want %v", got, tt.wantWarnings)
			}
		})
	}
}

func TestValidateNeverShortCircuits(t *testing.T) {
	// A document failing every check surfaces every problem in one pass.
	doc := mustParse(t, "Description: nothing else here\n")
	result := NewValidator().Validate(doc)

	wantErrors := []string{
		"Missing format version",
		"Missing Resources section",
	}
	wantWarnings := []string{
		"No Outputs section defined",
		"No Parameters section defined",
	}

	if got := result.ErrorMessages(); !reflect.DeepEqual(got, wantErrors) {
		t.Errorf("ErrorMessages() = %v, want %v", got, wantErrors)
	}
	if got := result.WarningMessages(); !reflect.DeepEqual(got, wantWarnings) {
		t.Errorf("WarningMessages() = %v, want %v", got, wantWarnings)
	}
}

func TestValidateAggregateOrdering(t *testing.T) {
	// Errors from different sections keep the fixed pass order: format
	// version, then resources, then outputs, then parameters.
	input := `
AWSTemplateFormatVersion: "1999-01-01"
Parameters:
  Env:
    Default: dev
Resources:
  Broken:
Outputs:
  SiteURL: scalar
`
	doc := mustParse(t, input)
	result := NewValidator().Validate(doc)

	want := []string{
		"Invalid format version: 1999-01-01",
		"Invalid resource structure: Broken",
		"Invalid output structure: SiteURL",
		"Invalid parameter structure: Env",
	}
	if got := result.ErrorMessages(); !reflect.DeepEqual(got, want) {
		t.Errorf("ErrorMessages() = %v, want %v", got, want)
	}
	if len(result.Warnings()) != 0 {
		t.Errorf("Warnings() = %v, want none", result.WarningMessages())
	}
}

func TestValidateSequenceResourcesSectionIsInvalid(t *testing.T) {
	// A sequence-valued Resources section carries no name-to-definition
	// entries, so the template must not pass as valid.
	root := ast.MappingNode(
		ast.Entry{Key: ast.KeyFormatVersion, Value: ast.StringNode("2010-09-09")},
		ast.Entry{Key: ast.KeyResources, Value: ast.SequenceNode(
			ast.MappingNode(ast.Entry{Key: ast.KeyType, Value: ast.StringNode("T")}),
		)},
	)
	doc, err := ast.NewDocument(root, "")
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}

	result := NewValidator().Validate(doc)
	if result.Valid() {
		t.Fatal("Valid() = true for sequence-valued Resources section")
	}
	if !result.HasKind(tplErrors.KindMalformedResources) {
		t.Errorf("errors = %v, want malformed-resources kind", result.ErrorMessages())
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	doc := mustParse(t, "Outputs:\n  X: scalar\n")
	v := NewValidator()

	first := v.Validate(doc)
	second := v.Validate(doc)

	if !reflect.DeepEqual(first.ErrorMessages(), second.ErrorMessages()) {
		t.Errorf("repeated validation differs: %v vs %v",
			first.ErrorMessages(), second.ErrorMessages())
	}
	if !reflect.DeepEqual(first.WarningMessages(), second.WarningMessages()) {
		t.Errorf("repeated validation warnings differ: %v vs %v",
			first.WarningMessages(), second.WarningMessages())
	}
}

func TestValidateWarningsNeverAffectValidity(t *testing.T) {
	input := `
AWSTemplateFormatVersion: "2010-09-09"
Resources:
  A:
    Type: T
`
	doc := mustParse(t, input)
	result := NewValidator().Validate(doc)

	if !result.Valid() {
		t.Errorf("Valid() = false with only warnings: %v", result.ErrorMessages())
	}
	if len(result.Warnings()) != 2 {
		t.Errorf("Warnings() = %v, want outputs and parameters warnings", result.WarningMessages())
	}
}

func TestResultMergePreservesOrder(t *testing.T) {
	doc := mustParse(t, "Description: empty\n")
	v := NewValidator()

	merged := NewResult()
	merged.Merge(v.ValidateResources(doc))
	merged.Merge(v.ValidateFormatVersion(doc))
	merged.Merge(nil) // nil merge is a no-op

	want := []string{"Missing Resources section", "Missing format version"}
	if got := merged.ErrorMessages(); !reflect.DeepEqual(got, want) {
		t.Errorf("ErrorMessages() = %v, want merge order %v", got, want)
	}
}

func TestResultHasKind(t *testing.T) {
	doc := mustParse(t, "Description: empty\n")
	result := NewValidator().Validate(doc)

	if !result.HasKind(tplErrors.KindMissingResources) {
		t.Error("HasKind(missing_resources) = false, want true")
	}
	if result.HasKind(tplErrors.KindEmptyResources) {
		t.Error("HasKind(empty_resources) = true, want false")
	}
}
