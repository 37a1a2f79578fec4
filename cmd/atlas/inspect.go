package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mercator-hq/atlas/pkg/cli"
	"mercator-hq/atlas/pkg/config"
	"mercator-hq/atlas/pkg/template"
	"mercator-hq/atlas/pkg/template/inspect"
)

var inspectFlags struct {
	file      string
	token     string
	retention string
	format    string
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Report structural facts about a template",
	Long: `Report structural introspection facts about a single template file:
resource, parameter, and output counts, whether any resource body embeds
the configured naming token, and whether any resource carries the
configured retention policy.

Inspection is purely structural. No intrinsic is evaluated and nothing
is deployed; the report is a read-only function of the parsed document.
Absent sections count as zero and never fail the command.`,
	Example: `  # Summarize a template
  atlas inspect --file templates/network.yaml

  # Probe for a custom naming token, report as JSON
  atlas inspect --file templates/network.yaml --token '${Env}' --format json`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectFlags.file, "file", "f", "", "template file to inspect (required)")
	inspectCmd.Flags().StringVar(&inspectFlags.token, "token", "", "naming token to probe for (default from config)")
	inspectCmd.Flags().StringVar(&inspectFlags.retention, "retention", "", "retention policy value to probe for (default from config)")
	inspectCmd.Flags().StringVar(&inspectFlags.format, "format", "text", "output format (text or json)")
	_ = inspectCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return cli.NewCommandError("inspect", err)
	}

	token := inspectFlags.token
	if token == "" {
		token = cfg.Lint.NamingToken
	}
	retention := inspectFlags.retention
	if retention == "" {
		retention = cfg.Lint.RetentionPolicy
	}

	doc, err := template.Load(inspectFlags.file)
	if err != nil {
		return cli.NewCommandError("inspect", err)
	}

	summary := inspect.Summarize(doc, token, retention)

	switch inspectFlags.format {
	case "json":
		formatter := cli.NewFormatter(cli.FormatJSON)
		if err := formatter.FormatTo(os.Stdout, summary); err != nil {
			return cli.NewCommandError("inspect", err)
		}
	default:
		printSummary(summary, token, retention)
	}

	return nil
}

func printSummary(s inspect.Summary, token, retention string) {
	fmt.Printf("Template: %s\n", s.SourceFile)
	fmt.Printf("  Resources:  %d\n", s.ResourceCount)
	fmt.Printf("  Parameters: %d\n", s.ParameterCount)
	fmt.Printf("  Outputs:    %d\n", s.OutputCount)
	fmt.Printf("  Uses naming token %q:     %v\n", token, s.UsesToken)
	fmt.Printf("  Uses retention policy %q: %v\n", retention, s.RetainsOnDrop)
}
