package stylegen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultIncludes are the style document globs used when none are configured.
var DefaultIncludes = []string{"**/*.style.yaml", "**/*.style.yml", "**/*.style.json"}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// loadGitIgnore loads the .gitignore of dir.
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore(dir string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// shouldSkipFile reports whether path is ignored by the source dir's
// .gitignore. Paths are matched relative to the source dir.
func shouldSkipFile(gi *ignore.GitIgnore, sourceDir, path string) bool {
	if gi == nil {
		return false
	}
	rel, err := filepath.Rel(sourceDir, path)
	if err != nil {
		return false
	}
	return gi.MatchesPath(filepath.ToSlash(rel))
}

// scanStyleFiles expands include globs under sourceDir into the sorted list
// of style documents to load.
func scanStyleFiles(sourceDir string, includes []string) ([]string, ScanStats, error) {
	if len(includes) == 0 {
		includes = DefaultIncludes
	}

	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}
	gi := loadGitIgnore(sourceDir)

	for _, pattern := range includes {
		// Combine source dir with pattern
		fullPattern := filepath.Join(sourceDir, pattern)

		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(fullPattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			// Only include files (not directories)
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(gi, sourceDir, match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	sort.Strings(files)
	return files, stats, nil
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
