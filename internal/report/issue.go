package report

// Issue represents a single check finding in golangci-lint format
type Issue struct {
	FromLinter string   `json:"FromLinter"` // "stylecheck"
	Text       string   `json:"Text"`       // "selector \".Btn-default-1x:hover\" registered twice with different content"
	Severity   string   `json:"Severity"`   // "", "warning", "error"
	Pos        IssuePos `json:"Pos"`        // Style location
}

// IssuePos locates an issue inside a style document
type IssuePos struct {
	Filename string `json:"Filename"` // "web/styles/button.style.yaml"
	Path     string `json:"Path"`     // "Btn.primary.:hover.color"
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Linter is the FromLinter value of every check issue.
const Linter = "stylecheck"

// Stats summarizes a style build
type Stats struct {
	FilesScanned     int
	Components       int
	Classes          int
	Rules            int
	MediaQueries     int
	DynamicFragments int
	Conflicts        int
}
