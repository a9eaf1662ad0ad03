package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/stylegen"
)

var checkCmd = &cobra.Command{
	Use:     "check",
	Aliases: []string{"lint"},
	Short:   "Check style documents for conflicts and malformed values",
	Long: `Compile every style document in memory and report selector conflicts,
malformed values, invalid emitted CSS and dynamic fragments.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.String("source", "web/styles", "Source style document directory")
	f.StringSlice("include", nil, "Glob patterns for style documents to include")
	f.Bool("friendly-names", true, "Sanitize scopes into valid CSS identifiers")
	f.String("prefix", "", "Prefix for every generated class name")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-linter-name", true, "Show (stylecheck) suffix on issues")
}

// runCheck is shared between `stylegen check` and `stylegen compile --check`.
func runCheck(cmd *cobra.Command, _ []string) error {
	log := commandLogger()
	defer func() { _ = log.Sync() }()

	config := buildCheckConfig(log)

	result, err := stylegen.Check(config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := stylegen.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := stylegen.WriteOutput(cmd.OutOrStdout(), result, format, config); err != nil {
			return err
		}
	}

	// Exit code logic - "Soft Gate" approach
	if config.Strict {
		// Strict mode: any error or warning fails the build
		if result.ErrorCount+result.WarningCount > 0 {
			return exitError(1)
		}
	} else if result.ErrorCount > 0 {
		// Default "Soft Gate" mode: only errors fail the build
		return exitError(1)
	}

	return nil
}
