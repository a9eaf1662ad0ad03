package stylegen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/stylegen/internal/report"
)

func issuesAt(issues []Issue, path string) []Issue {
	var out []Issue
	for _, issue := range issues {
		if issue.Pos.Path == path {
			out = append(out, issue)
		}
	}
	return out
}

func TestCheck(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.style.yaml"), `
Btn:
  default:
    color: red
    border:
    "9x": red
  themed:
    color:
      light: black
      dark: white
`)
	writeFile(t, filepath.Join(src, "broken.style.yaml"), "Btn: [oops\n")

	result, err := Check(CheckConfig{Config: Config{SourceDir: src}})
	require.NoError(t, err)

	broken := issuesAt(result.Issues, "")
	require.Len(t, broken, 1)
	assert.Equal(t, report.SeverityError, broken[0].Severity)
	assert.Equal(t, filepath.Join(src, "broken.style.yaml"), broken[0].Pos.Filename)

	border := issuesAt(result.Issues, "Btn.default.border")
	require.Len(t, border, 1)
	assert.Equal(t, report.SeverityWarning, border[0].Severity)
	assert.Equal(t, `property "border" has no value`, border[0].Text)

	rule := issuesAt(result.Issues, "Btn.default")
	require.Len(t, rule, 1)
	assert.Equal(t, report.SeverityError, rule[0].Severity)
	assert.Contains(t, rule[0].Text, "is not valid CSS")

	themed := issuesAt(result.Issues, "Btn.themed")
	require.Len(t, themed, 1)
	assert.Equal(t, report.SeverityInfo, themed[0].Severity)
	assert.Contains(t, themed[0].Text, "has 2 dynamic properties")

	assert.Equal(t, 2, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)
	assert.Equal(t, 2, result.Stats.FilesScanned)
	assert.Equal(t, 2, result.Stats.Classes)
	assert.Equal(t, 1, result.Stats.DynamicFragments)
}

func TestCheck_Clean(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.style.yaml"), "Btn:\n  default:\n    color: red\n    \":hover\":\n      color: blue\n")

	result, err := Check(CheckConfig{Config: Config{SourceDir: src}})
	require.NoError(t, err)

	assert.Empty(t, result.Issues)
	assert.Equal(t, 2, result.Stats.Rules)
	assert.Zero(t, result.Stats.Conflicts)
}

func TestCheck_InvalidClassName(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.style.yaml"), "\"my btn\":\n  default:\n    color: red\n")

	result, err := Check(CheckConfig{Config: Config{SourceDir: src}})
	require.NoError(t, err)

	issues := issuesAt(result.Issues, "my btn.default")
	require.NotEmpty(t, issues)
	assert.Contains(t, issues[0].Text, "not a valid CSS identifier")

	friendly, err := Check(CheckConfig{Config: Config{SourceDir: src, FriendlyNames: true}})
	require.NoError(t, err)
	assert.Empty(t, friendly.Issues)
}

func TestCheck_Conflicts(t *testing.T) {
	// Both scopes sanitize to the same class name but carry different
	// hover styles.
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.style.yaml"), `
"my btn":
  default:
    color: red
    ":hover":
      color: blue
"my_btn":
  default:
    color: red
    ":hover":
      color: green
`)

	result, err := Check(CheckConfig{Config: Config{SourceDir: src, FriendlyNames: true}})
	require.NoError(t, err)

	conflicts := issuesAt(result.Issues, "my_btn.default")
	require.Len(t, conflicts, 1)
	assert.Equal(t, report.SeverityError, conflicts[0].Severity)
	assert.Contains(t, conflicts[0].Text, "redefined with different properties")
	assert.Equal(t, 1, result.Stats.Conflicts)
	assert.NotEmpty(t, result.Warnings)
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{Text: "a"}, {Text: "a"}, {Text: "a"}, {Text: "b"},
	}

	limited, truncated := limitIssues(issues, CheckConfig{MaxSameIssues: 2})
	assert.Len(t, limited, 3)
	assert.Equal(t, 1, truncated)

	limited, truncated = limitIssues(issues, CheckConfig{MaxIssuesPerLinter: 1})
	assert.Len(t, limited, 1)
	assert.Equal(t, 3, truncated)
}

func TestValidateRule(t *testing.T) {
	assert.NoError(t, validateRule(Rule{Selector: ".a", Properties: StyleMap{"color": "red"}}))
	assert.NoError(t, validateRule(Rule{Selector: ".a", Properties: StyleMap{"color": "red"}, Media: "(min-width: 1px)"}))
	assert.Error(t, validateRule(Rule{Selector: ".a", Properties: StyleMap{"9x": "red"}}))
}
