package stylegen

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"github.com/yacobolo/stylegen/internal/report"
	"github.com/yacobolo/stylegen/internal/style"
)

// Issue messages
const (
	IssueLoadFailed      = "failed to load style document: %v"
	IssueConflict        = "selector %q%s redefined with different properties"
	IssueNoValue         = "property %q has no value"
	IssueUnsupported     = "property %q has unsupported value of type %T"
	IssueInvalidCSS      = "emitted rule %q is not valid CSS: %v"
	IssueInvalidClass    = "class name %q is not a valid CSS identifier (enable friendly names)"
	IssueDynamicFragment = "class %q has %d dynamic %s resolved at runtime"
)

var cssIdent = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)

// Check compiles every style document in memory and reports problems a
// static build would silently carry into the stylesheet.
func Check(config CheckConfig) (*CheckResult, error) {
	log := loggerFor(config.Config).Named("check")

	b, err := runBuild(config.Config, log)
	if err != nil {
		return nil, err
	}

	var issues []Issue
	for _, f := range b.failures {
		issues = append(issues, newIssue(report.SeverityError, f.File, "", IssueLoadFailed, f.Err))
	}

	container := b.sheet.Container()
	rules := container.Rules()
	conflicts := container.Conflicts()
	for _, o := range b.origins {
		issues = append(issues, checkOrigin(o, container, rules, conflicts)...)
	}

	log.Debug("Checked styles", zap.Int("origins", len(b.origins)), zap.Int("issues", len(issues)))

	report.SortIssues(issues)
	issues, truncated := limitIssues(issues, config)
	errs, warnings := report.CountSeverities(issues)

	return &CheckResult{
		Issues:         issues,
		TruncatedCount: truncated,
		ErrorCount:     errs,
		WarningCount:   warnings,
		Stats: report.Stats{
			FilesScanned:     b.stats.FilesScanned,
			Components:       len(b.components),
			Classes:          len(b.classes),
			Rules:            container.Len(),
			MediaQueries:     len(container.MediaQueries()),
			DynamicFragments: len(container.DynamicClassNames()),
			Conflicts:        len(conflicts),
		},
		Warnings: b.warnings,
	}, nil
}

// checkOrigin reports the issues of a single rendered selector.
func checkOrigin(o origin, container *Container, rules []style.Rule, conflicts []style.Conflict) []Issue {
	var issues []Issue

	if !cssIdent.MatchString(o.ClassName) {
		issues = append(issues, newIssue(report.SeverityWarning, o.File, o.Path, IssueInvalidClass, o.ClassName))
	}

	for _, c := range conflicts[o.ConflictStart:o.ConflictEnd] {
		issues = append(issues, newIssue(report.SeverityError, o.File, o.Path, IssueConflict, c.Selector, mediaSuffix(c.Media)))
	}

	issues = append(issues, malformedValues(o.File, o.Path, o.Styles)...)

	for _, rule := range rules[o.RuleStart:o.RuleEnd] {
		if err := validateRule(rule); err != nil {
			issues = append(issues, newIssue(report.SeverityError, o.File, o.Path, IssueInvalidCSS, rule.Selector, err))
		}
	}

	if dynamic, ok := container.Dynamic(o.ClassName); ok && o.Dynamic {
		n := leafCount(dynamic)
		issues = append(issues, newIssue(report.SeverityInfo, o.File, o.Path, IssueDynamicFragment, o.ClassName, n, pluralWord(n, "property", "properties")))
	}

	return issues
}

// malformedValues walks styles and reports values the renderer would pass
// through unchanged.
func malformedValues(file, path string, styles StyleMap) []Issue {
	var issues []Issue
	for _, key := range sortedKeys(styles) {
		value := styles[key]
		keyPath := path + "." + key

		if nested, ok := value.(StyleMap); ok {
			issues = append(issues, malformedValues(file, keyPath, nested)...)
			continue
		}
		if items, ok := value.([]any); ok {
			for _, item := range items {
				if item == nil || !style.IsWellFormed(item) {
					issues = append(issues, newIssue(report.SeverityWarning, file, keyPath, IssueUnsupported, key, item))
					break
				}
			}
			continue
		}
		switch {
		case value == nil:
			issues = append(issues, newIssue(report.SeverityWarning, file, keyPath, IssueNoValue, key))
		case !style.IsWellFormed(value):
			issues = append(issues, newIssue(report.SeverityWarning, file, keyPath, IssueUnsupported, key, value))
		}
	}
	return issues
}

// validateRule re-tokenizes the serialized rule and returns the first
// parse error.
func validateRule(rule style.Rule) error {
	text := style.FormatRule(rule.Selector, rule.Properties)
	if rule.Media != "" {
		text = "@media " + rule.Media + "{" + text + "}"
	}

	p := css.NewParser(parse.NewInputString(text), false)
	for {
		gt, _, _ := p.Next()
		if gt != css.ErrorGrammar {
			continue
		}
		if p.HasParseError() {
			return p.Err()
		}
		if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}
}

// leafCount counts the properties of a dynamic fragment, looking through
// pseudo-class and media blocks.
func leafCount(m StyleMap) int {
	n := 0
	for _, v := range m {
		if nested, ok := v.(StyleMap); ok && len(nested) > 0 {
			n += leafCount(nested)
			continue
		}
		n++
	}
	return n
}

func newIssue(severity, file, path, format string, args ...any) Issue {
	return Issue{
		FromLinter: report.Linter,
		Text:       fmt.Sprintf(format, args...),
		Severity:   severity,
		Pos:        report.IssuePos{Filename: file, Path: path},
	}
}

func pluralWord(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config CheckConfig) ([]Issue, int) {
	originalCount := len(issues)

	// Apply max-issues-per-linter
	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	// Apply max-same-issues (deduplication by message text)
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	truncatedCount := originalCount - len(issues)
	return issues, truncatedCount
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
