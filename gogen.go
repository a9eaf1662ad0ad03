package stylegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"
)

const goFileTemplate = `// Code generated by stylegen. DO NOT EDIT.

package {{ .PackageName }}

import _ "embed"

// Stylesheet is the compiled CSS of every component.
//
//go:embed {{ .CSSFile }}
var Stylesheet string
{{ range .Groups }}
// {{ .Scope }} ({{ .File }})
const (
{{- range .Classes }}
	{{ .GoName }} = {{ printf "%q" .ClassName }}{{ if .Dynamic }} // has dynamic styles{{ end }}
{{- end }}
)
{{ end }}
// AllClassNames lists every generated class name.
var AllClassNames = map[string]bool{
{{- range .Groups }}{{ range .Classes }}
	{{ printf "%q" .ClassName }}: true,
{{- end }}{{ end }}
}
`

var goFileTmpl = template.Must(template.New("styles").Parse(goFileTemplate))

type goFileGroup struct {
	Scope   string
	File    string
	Classes []GeneratedClass
}

type goFileData struct {
	PackageName string
	CSSFile     string
	Groups      []goFileGroup
}

// renderGoFile produces the gofmt'd constants file for classes, which must
// be ordered by scope.
func renderGoFile(packageName string, classes []GeneratedClass) ([]byte, error) {
	data := goFileData{PackageName: packageName, CSSFile: cssFileName}

	for _, class := range classes {
		n := len(data.Groups)
		if n == 0 || data.Groups[n-1].Scope != class.Scope {
			data.Groups = append(data.Groups, goFileGroup{Scope: class.Scope, File: class.File})
			n++
		}
		data.Groups[n-1].Classes = append(data.Groups[n-1].Classes, class)
	}

	var buf bytes.Buffer
	if err := goFileTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return formatted, nil
}

// toGoName converts a scope and selector into an exported PascalCase
// identifier: ("primary-btn", "hover_state") -> PrimaryBtnHoverState.
func toGoName(scope, selector string) string {
	parts := strings.FieldsFunc(scope+"-"+selector, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	// PascalCase
	for i, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}

	result := strings.Join(parts, "")
	if result == "" {
		return "Class"
	}
	if first := []rune(result)[0]; !unicode.IsUpper(first) {
		// Digits and uncased letters cannot start an exported name.
		result = "C" + result
	}
	return result
}
