package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/stylegen"
)

var compileCmd = &cobra.Command{
	Use:     "compile",
	Aliases: []string{"build"},
	Short:   "Compile style documents into CSS and Go constants",
	Long: `Render every style document into styles.css and generate one Go
constant per selector in styles.gen.go.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCompile,
}

func init() {
	f := compileCmd.Flags()
	f.String("source", "web/styles", "Source style document directory")
	f.String("output-dir", "internal/web/ui", "Output directory for generated files")
	f.StringSlice("include", nil, "Glob patterns for style documents to include")
	f.Bool("friendly-names", true, "Sanitize scopes into valid CSS identifiers")
	f.String("prefix", "", "Prefix for every generated class name")
	f.Bool("manifest", false, "Also write styles.json")
	f.Bool("check", false, "Run checks after compilation")
}

func runCompile(cmd *cobra.Command, _ []string) error {
	log := commandLogger()
	defer func() { _ = log.Sync() }()

	config := buildCompileConfig(log)

	result, err := stylegen.Compile(config)
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	if !quiet {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Generated files in %s\n", config.OutputDir)
		fmt.Fprintf(out, "  Files scanned: %d\n", result.FilesScanned)
		fmt.Fprintf(out, "  Classes generated: %d\n", result.ClassesGenerated)
		fmt.Fprintf(out, "  Rules generated: %d\n", result.RulesGenerated)
		if result.DynamicFragments > 0 {
			fmt.Fprintf(out, "  Dynamic fragments: %d\n", result.DynamicFragments)
		}

		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  Warning: %s\n", w)
		}
	}

	// Run check after compile if --check flag set
	check, _ := cmd.Flags().GetBool("check")
	if check {
		return runCheck(cmd, nil)
	}

	return nil
}
