package stylegen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/stylegen/internal/plugin"
	"github.com/yacobolo/stylegen/internal/style"
)

// Output file names written into Config.OutputDir.
const (
	cssFileName      = "styles.css"
	goFileName       = "styles.gen.go"
	manifestFileName = "styles.json"
)

// Names the generated Go file declares itself.
var reservedGoNames = map[string]bool{
	"Stylesheet":    true,
	"AllClassNames": true,
}

// origin records what a single render registered in the container.
type origin struct {
	File          string
	Path          string
	Styles        StyleMap
	ClassName     string
	RuleStart     int
	RuleEnd       int
	ConflictStart int
	ConflictEnd   int
	Dynamic       bool
}

// build is an in-memory compilation shared by Compile and Check.
type build struct {
	sheet      *Sheet
	stats      ScanStats
	components []Component
	classes    []GeneratedClass
	origins    []origin
	failures   []loadFailure
	warnings   []string
}

// loadFailure is a style document that could not be loaded.
type loadFailure struct {
	File string
	Err  error
}

// Compile renders every style document under config.SourceDir and writes
// the stylesheet, the Go constants file and optionally a JSON manifest.
func Compile(config Config) (*CompileResult, error) {
	log := loggerFor(config).Named("compile")

	b, err := runBuild(config, log)
	if err != nil {
		return nil, err
	}

	result := &CompileResult{
		FilesScanned:     b.stats.FilesScanned,
		FilesSkipped:     b.stats.FilesSkipped,
		Components:       len(b.components),
		ClassesGenerated: len(b.classes),
		RulesGenerated:   b.sheet.Container().Len(),
		DynamicFragments: len(b.sheet.Container().DynamicClassNames()),
		Classes:          b.classes,
		Warnings:         b.warnings,
	}

	files, err := writeOutputs(config, b)
	result.OutputFiles = files
	if err != nil {
		return result, fmt.Errorf("write failed: %w", err)
	}

	log.Info("Compiled styles",
		zap.Int("files", result.FilesScanned),
		zap.Int("components", result.Components),
		zap.Int("classes", result.ClassesGenerated),
		zap.Int("rules", result.RulesGenerated))

	return result, nil
}

func loggerFor(config Config) *zap.Logger {
	if config.Logger == nil {
		return zap.NewNop()
	}
	return config.Logger
}

// defaultPlugins returns the plugins every build runs, followed by the
// caller's own.
func defaultPlugins(config Config, log *zap.Logger) []Plugin {
	plugins := []Plugin{
		plugin.Mixin("extend", plugin.Extend),
		plugin.Mixin("css", plugin.ExtractCSS(log)),
	}
	if config.FriendlyNames || config.ClassPrefix != "" {
		plugins = append(plugins, plugin.FriendlyClassName(config.ClassPrefix))
	}
	if config.Verbose {
		plugins = append(plugins, plugin.StyleLogger(log))
	}
	return append(plugins, config.Plugins...)
}

// runBuild scans, loads and renders every style document.
func runBuild(config Config, log *zap.Logger) (*build, error) {
	// 1. Scan style documents
	files, stats, err := scanStyleFiles(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	log.Debug("Scanned style documents",
		zap.Int("discovered", stats.FilesDiscovered),
		zap.Int("scanned", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped))

	b := &build{
		sheet: New(WithLogger(log), WithPlugins(defaultPlugins(config, log)...)),
		stats: stats,
	}

	// 2. Load documents. A broken file is a warning, not a failed build.
	seen := make(map[string]string) // scope.selector -> file
	for _, file := range files {
		log.Debug("Loading", zap.String("file", file))

		components, err := loadStyleFile(file)
		if err != nil {
			b.failures = append(b.failures, loadFailure{File: file, Err: err})
			b.warnings = append(b.warnings, fmt.Sprintf("Failed to load %s: %v", file, err))
			continue
		}

		for _, component := range components {
			kept := component
			kept.Selectors = nil
			for _, sel := range component.Selectors {
				key := component.Scope + "." + sel.Name
				if prev, dup := seen[key]; dup {
					b.warnings = append(b.warnings, fmt.Sprintf(
						"Duplicate selector '%s' found in %s and %s - first definition kept",
						key, prev, file))
					continue
				}
				seen[key] = file
				kept.Selectors = append(kept.Selectors, sel)
			}
			b.components = append(b.components, kept)
		}
	}

	// 3. Render
	goNames := make(map[string]string)
	container := b.sheet.Container()
	for _, component := range b.components {
		for _, sel := range component.Selectors {
			o := origin{
				File:          component.File,
				Path:          component.Scope + "." + sel.Name,
				Styles:        sel.Styles,
				RuleStart:     container.Len(),
				ConflictStart: len(container.Conflicts()),
			}
			o.ClassName = b.sheet.Render(sel.Styles, component.Scope, sel.Name)
			o.RuleEnd = container.Len()
			o.ConflictEnd = len(container.Conflicts())
			_, o.Dynamic = container.Dynamic(o.ClassName)
			b.origins = append(b.origins, o)

			goName := toGoName(component.Scope, sel.Name)
			if reservedGoNames[goName] {
				goName += "Class"
			}
			if prev, clash := goNames[goName]; clash {
				b.warnings = append(b.warnings, fmt.Sprintf(
					"Constant %s for '%s' collides with '%s' - skipped",
					goName, o.Path, prev))
				continue
			}
			goNames[goName] = o.Path

			b.classes = append(b.classes, GeneratedClass{
				Scope:     component.Scope,
				Selector:  sel.Name,
				ClassName: o.ClassName,
				GoName:    goName,
				File:      component.File,
				Dynamic:   o.Dynamic,
			})
		}
	}

	for _, c := range container.Conflicts() {
		b.warnings = append(b.warnings, fmt.Sprintf(
			"Selector '%s'%s redefined with different properties - first definition kept",
			c.Selector, mediaSuffix(c.Media)))
	}

	return b, nil
}

func mediaSuffix(media string) string {
	if media == "" {
		return ""
	}
	return " in @media " + media
}

// writeOutputs writes every output file. Independent write failures are
// aggregated so one bad file does not hide the others.
func writeOutputs(config Config, b *build) ([]string, error) {
	outputDir := config.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var written []string
	var errs error

	write := func(name string, data []byte) {
		path := filepath.Join(outputDir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("write %s: %w", path, err))
			return
		}
		written = append(written, path)
	}

	write(cssFileName, []byte(b.sheet.CSS()))

	packageName := config.PackageName
	if packageName == "" {
		packageName = defaultPackageName(outputDir)
	}
	if src, err := renderGoFile(packageName, b.classes); err != nil {
		errs = multierr.Append(errs, err)
	} else {
		write(goFileName, src)
	}

	if config.EmitManifest {
		if data, err := buildManifest(b); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("encode manifest: %w", err))
		} else {
			write(manifestFileName, data)
		}
	}

	return written, errs
}

// defaultPackageName derives a package name from the output directory.
func defaultPackageName(outputDir string) string {
	abs, err := filepath.Abs(outputDir)
	if err != nil {
		return "styles"
	}
	name := strings.ToLower(toGoName(filepath.Base(abs), ""))
	if name == "" || name == "class" {
		return "styles"
	}
	return name
}

// Manifest is the JSON description of a build.
type Manifest struct {
	Classes []GeneratedClass          `json:"classes"`
	Dynamic map[string]style.StyleMap `json:"dynamic,omitempty"`
	Media   []string                  `json:"media,omitempty"`
}

func buildManifest(b *build) ([]byte, error) {
	container := b.sheet.Container()
	m := Manifest{
		Classes: b.classes,
		Media:   container.MediaQueries(),
	}
	for _, name := range container.DynamicClassNames() {
		if m.Dynamic == nil {
			m.Dynamic = make(map[string]style.StyleMap)
		}
		m.Dynamic[name], _ = container.Dynamic(name)
	}
	if m.Classes == nil {
		m.Classes = []GeneratedClass{}
	}
	return json.MarshalIndent(m, "", "  ")
}
