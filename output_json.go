package stylegen

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains build statistics
type JSONStats struct {
	Components       int `json:"components"`
	Classes          int `json:"classes"`
	Rules            int `json:"rules"`
	MediaQueries     int `json:"media_queries"`
	DynamicFragments int `json:"dynamic_fragments"`
	Conflicts        int `json:"conflicts"`
}

// JSONIssue represents a single check issue
type JSONIssue struct {
	File     string `json:"file"`
	Path     string `json:"path,omitempty"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
}

// timeNow is replaced in tests.
var timeNow = time.Now

// WriteJSON writes the check result as JSON
func WriteJSON(w io.Writer, result *CheckResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts CheckResult to JSONOutput
func buildJSONOutput(result *CheckResult) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		severity := issue.Severity
		if severity == "" {
			severity = "info"
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Path:     issue.Pos.Path,
			Severity: severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: timeNow().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.Stats.FilesScanned,
		},
		Stats: JSONStats{
			Components:       result.Stats.Components,
			Classes:          result.Stats.Classes,
			Rules:            result.Stats.Rules,
			MediaQueries:     result.Stats.MediaQueries,
			DynamicFragments: result.Stats.DynamicFragments,
			Conflicts:        result.Stats.Conflicts,
		},
		Issues:   jsonIssues,
		Warnings: result.Warnings,
	}
}
