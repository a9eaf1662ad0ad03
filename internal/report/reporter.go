package report

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// Options configures a Reporter
type Options struct {
	UseColors       bool // Force color output
	PrintLinterName bool // Show (stylecheck) suffix
}

// Reporter handles formatting and outputting check results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(opts.UseColors),
		printLinterName: opts.PrintLinterName,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// SortIssues orders issues by file, then style path
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		return issues[i].Pos.Path < issues[j].Pos.Path
	})
}

// PrintIssues outputs issues in golangci-lint format
func (r *Reporter) PrintIssues(issues []Issue) {
	SortIssues(issues)
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue: file: path: message (linter)
func (r *Reporter) printIssue(issue Issue) {
	location := issue.Pos.Filename + ":"
	if issue.Pos.Path != "" {
		location += " " + issue.Pos.Path + ":"
	}

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	text := issue.Text
	switch issue.Severity {
	case SeverityError:
		text = RenderStyle(StyleRed, text, r.useColors)
	case SeverityWarning:
		text = RenderStyle(StyleYellow, text, r.useColors)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(issues []Issue, truncated int) {
	errors, warnings := CountSeverities(issues)
	total := len(issues)

	fmt.Fprintln(r.w, "")

	switch {
	case errors > 0 && warnings > 0 && truncated > 0:
		fmt.Fprintf(r.w, "%s (%s, %s; %s truncated)\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"),
			pluralizeCount(truncated, "issue", "issues"))
	case errors > 0 && warnings > 0:
		fmt.Fprintf(r.w, "%s (%s, %s)\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
	case truncated > 0:
		fmt.Fprintf(r.w, "%s (%s truncated)\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(truncated, "issue", "issues"))
	default:
		fmt.Fprintf(r.w, "%s\n", pluralizeCount(total, "issue", "issues"))
	}

	if total > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --output-format full to see build statistics", r.useColors))
	}
}

// CountSeverities returns the number of error and warning issues
func CountSeverities(issues []Issue) (errors, warnings int) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
