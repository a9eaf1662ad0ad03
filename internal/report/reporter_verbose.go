package report

import (
	"fmt"
	"io"
)

// VerboseReporter prints build statistics and warnings
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs build statistics
func (r *VerboseReporter) PrintStatistics(stats Stats) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Style Build Statistics", r.useColors))
	fmt.Fprintln(r.w, "----------------------")

	fmt.Fprintf(r.w, "Files Scanned:     %d\n", stats.FilesScanned)
	fmt.Fprintf(r.w, "Components:        %d\n", stats.Components)
	fmt.Fprintf(r.w, "Classes:           %d\n", stats.Classes)
	fmt.Fprintf(r.w, "Rules:             %d\n", stats.Rules)
	fmt.Fprintf(r.w, "Media Queries:     %d\n", stats.MediaQueries)
	fmt.Fprintf(r.w, "Dynamic Fragments: %d\n", stats.DynamicFragments)

	conflicts := fmt.Sprintf("Conflicts:         %d", stats.Conflicts)
	if stats.Conflicts > 0 {
		conflicts = RenderStyle(StyleRed, conflicts, r.useColors)
	} else {
		conflicts = RenderStyle(StyleGreen, conflicts, r.useColors)
	}
	fmt.Fprintln(r.w, conflicts)
}

// PrintWarnings shows build warnings
func (r *VerboseReporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}
