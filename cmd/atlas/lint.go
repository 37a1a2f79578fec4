package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"mercator-hq/atlas/pkg/cli"
	"mercator-hq/atlas/pkg/config"
	"mercator-hq/atlas/pkg/template/inspect"
	"mercator-hq/atlas/pkg/template/parser"
	"mercator-hq/atlas/pkg/template/validator"
)

var lintFlags struct {
	file   string
	dir    string
	strict bool
	format string
}

// lintFileResult is the per-file report emitted by the lint command.
type lintFileResult struct {
	Path          string   `json:"path"`
	Valid         bool     `json:"valid"`
	Errors        []string `json:"errors,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
	ResourceCount int      `json:"resource_count"`
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate the structure of template files",
	Long: `Validate the structural requirements of one or more template files.

Every template is checked in a single pass for:
  - A recognized format version
  - A non-empty Resources section with well-formed resource entries
  - Well-formed Outputs and Parameters sections (advisory when absent)

All problems are reported at once; an error never hides later ones.
The command exits non-zero if any file has errors, or, with --strict,
if any file has warnings.`,
	Example: `  # Lint a single template
  atlas lint --file templates/network.yaml

  # Lint every template in a directory
  atlas lint --dir templates/

  # Treat warnings as failures, report as JSON
  atlas lint --dir templates/ --strict --format json`,
	RunE: runLint,
}

func init() {
	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "template file to lint")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of templates to lint")
	lintCmd.Flags().BoolVar(&lintFlags.strict, "strict", false, "treat warnings as errors")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format (text or json)")

	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return cli.NewCommandError("lint", err)
	}

	paths, err := collectTemplatePaths(lintFlags.file, lintFlags.dir)
	if err != nil {
		return cli.NewCommandError("lint", err)
	}

	strict := lintFlags.strict || cfg.Lint.Strict

	results, failed := lintPaths(cfg, paths, strict)

	switch lintFlags.format {
	case "json":
		formatter := cli.NewFormatter(cli.FormatJSON)
		if err := formatter.FormatTo(os.Stdout, results); err != nil {
			return cli.NewCommandError("lint", err)
		}
	default:
		printLintResults(results)
	}

	if failed > 0 {
		return cli.NewCommandError("lint", fmt.Errorf("%d of %d template(s) failed validation", failed, len(results)))
	}
	return nil
}

// collectTemplatePaths resolves the --file/--dir flags into the list of
// template files to lint. Exactly one of the two must be set.
func collectTemplatePaths(file, dir string) ([]string, error) {
	switch {
	case file != "" && dir != "":
		return nil, fmt.Errorf("--file and --dir are mutually exclusive")
	case file != "":
		return []string{file}, nil
	case dir != "":
		var paths []string
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(dir, pattern))
			if err != nil {
				return nil, fmt.Errorf("failed to scan directory %q: %w", dir, err)
			}
			paths = append(paths, matches...)
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("no template files found in %q", dir)
		}
		sort.Strings(paths)
		return paths, nil
	default:
		return nil, fmt.Errorf("either --file or --dir is required")
	}
}

// lintPaths validates each path and returns the per-file reports plus the
// number of files that count as failed under the given strictness.
func lintPaths(cfg *config.Config, paths []string, strict bool) ([]lintFileResult, int) {
	p := parser.NewParser().WithMaxFileSize(cfg.Lint.MaxFileSize)
	v := validator.NewValidatorWithFormatVersions(cfg.Lint.FormatVersions...)

	results := make([]lintFileResult, 0, len(paths))
	failed := 0

	for _, path := range paths {
		doc, err := p.Parse(path)
		if err != nil {
			results = append(results, lintFileResult{
				Path:   path,
				Valid:  false,
				Errors: []string{err.Error()},
			})
			failed++
			continue
		}

		result := v.Validate(doc)
		fr := lintFileResult{
			Path:          path,
			Valid:         result.Valid(),
			Errors:        result.ErrorMessages(),
			Warnings:      result.WarningMessages(),
			ResourceCount: inspect.CountResources(doc),
		}
		results = append(results, fr)

		if !fr.Valid || (strict && len(fr.Warnings) > 0) {
			failed++
		}
	}

	return results, failed
}

func printLintResults(results []lintFileResult) {
	for _, r := range results {
		if r.Valid && len(r.Warnings) == 0 {
			fmt.Printf("%s: OK (%d resources)\n", r.Path, r.ResourceCount)
			continue
		}

		if r.Valid {
			fmt.Printf("%s: OK with warnings (%d resources)\n", r.Path, r.ResourceCount)
		} else {
			fmt.Printf("%s: INVALID\n", r.Path)
		}
		for _, msg := range r.Errors {
			fmt.Printf("  error: %s\n", msg)
		}
		for _, msg := range r.Warnings {
			fmt.Printf("  warning: %s\n", msg)
		}
	}
}
