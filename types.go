package stylegen

import (
	"go.uber.org/zap"

	"github.com/yacobolo/stylegen/internal/plugin"
	"github.com/yacobolo/stylegen/internal/report"
	"github.com/yacobolo/stylegen/internal/style"
)

// StyleMap maps CSS properties, pseudo classes (":hover") and media
// queries ("@media (min-width: 600px)") to values.
type StyleMap = style.StyleMap

// Props is the runtime context stateful values are resolved against.
type Props = style.Props

// StatefulValue is a property value computed from runtime props.
type StatefulValue = style.StatefulValue

// Container accumulates rendered rules and dynamic fragments.
type Container = style.Container

// Rule is a single registered CSS rule.
type Rule = style.Rule

// Plugin is a StyleTransform or a ClassNameTransform.
type Plugin = plugin.Plugin

// StyleTransform rewrites a style map before it is rendered.
type StyleTransform = plugin.StyleTransform

// ClassNameTransform rewrites the scope a class name is generated from.
type ClassNameTransform = plugin.ClassNameTransform

// Issue is a single check finding.
type Issue = report.Issue

// NewContainer creates an empty container.
func NewContainer() *Container {
	return style.NewContainer()
}

// Config holds compiler configuration
type Config struct {
	SourceDir     string   // "web/styles"
	OutputDir     string   // "internal/web/ui" (output directory for generated files)
	PackageName   string   // "ui"
	Includes      []string // ["**/*.style.yaml"]
	Verbose       bool     // Enable debug logging
	FriendlyNames bool     // Sanitize scopes into valid CSS identifiers (default: true)
	ClassPrefix   string   // Prefix for every generated class name
	EmitManifest  bool     // Also write styles.json (default: false)
	Plugins       []Plugin // Extra plugins, run after the built-in ones
	Logger        *zap.Logger
}

// CompileResult contains compilation stats
type CompileResult struct {
	FilesScanned     int
	FilesSkipped     int
	Components       int
	ClassesGenerated int
	RulesGenerated   int
	DynamicFragments int
	Classes          []GeneratedClass
	Warnings         []string
	OutputFiles      []string
}

// GeneratedClass maps a component selector to its class name.
type GeneratedClass struct {
	Scope     string `json:"scope"`
	Selector  string `json:"selector"`
	ClassName string `json:"class"`
	GoName    string `json:"go_name"`
	File      string `json:"file"`
	Dynamic   bool   `json:"dynamic,omitempty"`
}

// CheckConfig holds check configuration
type CheckConfig struct {
	Config

	Strict             bool // Exit with code 1 on any issue
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintLinterName    bool // Show (stylecheck) suffix (default: true)
	UseColors          bool // Enable color output (default: auto-detect)
}

// CheckResult contains check findings and build statistics
type CheckResult struct {
	Issues         []Issue
	TruncatedCount int
	ErrorCount     int
	WarningCount   int
	Stats          report.Stats
	Warnings       []string
}

// OutputFormat represents the check output format
type OutputFormat string

const (
	// OutputIssues shows only issues in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows build statistics only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
