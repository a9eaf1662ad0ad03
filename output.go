package stylegen

import (
	"fmt"
	"io"

	"github.com/yacobolo/stylegen/internal/report"
)

// DetermineOutputFormat selects the appropriate output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit -quiet flag wins (exit code only)
	if quiet {
		return OutputIssues // Issues only, suppressed by the CLI
	}

	// Explicit format flag wins
	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	}

	return DetermineDefaultOutputFormat()
}

// DetermineDefaultOutputFormat returns the default output format
// Following golangci-lint's UX: issues only by default
func DetermineDefaultOutputFormat() OutputFormat {
	return OutputIssues
}

// WriteOutput writes the check result in the specified format
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, config CheckConfig) error {
	opts := report.Options{
		UseColors:       config.UseColors,
		PrintLinterName: config.PrintLinterName,
	}

	switch format {
	case OutputIssues:
		// Issues only (golangci-lint format)
		reporter := report.NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, result.TruncatedCount)

	case OutputSummary:
		// Statistics only (no individual issues)
		verboseReporter := report.NewVerboseReporter(w, report.ShouldUseColors(config.UseColors))
		verboseReporter.PrintStatistics(result.Stats)
		verboseReporter.PrintWarnings(result.Warnings)

	case OutputFull:
		// Everything: issues + statistics
		reporter := report.NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, result.TruncatedCount)

		verboseReporter := report.NewVerboseReporter(w, reporter.UseColors())
		verboseReporter.PrintStatistics(result.Stats)
		verboseReporter.PrintWarnings(result.Warnings)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("write json: %w", err)
		}

	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	return nil
}
