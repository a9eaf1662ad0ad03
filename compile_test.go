package stylegen

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const buttonDoc = `
Btn:
  default:
    color: red
    ":hover":
      color: blue
    "@media (min-width: 600px)":
      padding: 8px
  themed:
    color:
      light: black
      dark: white
`

const cardDoc = `{"Card": {"title": {"css": "font-weight: bold; margin: 0"}}}`

func TestCompile_EndToEnd(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "ui")
	writeFile(t, filepath.Join(src, "button.style.yaml"), buttonDoc)
	writeFile(t, filepath.Join(src, "card.style.json"), cardDoc)

	result, err := Compile(Config{
		SourceDir:    src,
		OutputDir:    out,
		PackageName:  "ui",
		EmitManifest: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesScanned)
	assert.Equal(t, 2, result.Components)
	assert.Equal(t, 3, result.ClassesGenerated)
	assert.Equal(t, 1, result.DynamicFragments)
	assert.Empty(t, result.Warnings)
	assert.Len(t, result.OutputFiles, 3)

	classes := make(map[string]GeneratedClass)
	for _, c := range result.Classes {
		classes[c.Scope+"."+c.Selector] = c
	}
	btn := classes["Btn.default"]
	assert.Equal(t, "BtnDefault", btn.GoName)
	assert.True(t, strings.HasPrefix(btn.ClassName, "Btn-default-"))
	assert.True(t, classes["Btn.themed"].Dynamic)

	css, err := os.ReadFile(filepath.Join(out, "styles.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), "."+btn.ClassName+"{color:red}\n")
	assert.Contains(t, string(css), "."+btn.ClassName+":hover{color:blue}\n")
	assert.Contains(t, string(css), "@media (min-width: 600px){."+btn.ClassName+"{padding:8px}}\n")
	assert.Contains(t, string(css), "."+classes["Card.title"].ClassName+"{font-weight:bold;margin:0}\n")

	goSrc, err := os.ReadFile(filepath.Join(out, "styles.gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(goSrc), "package ui")
	assert.Contains(t, string(goSrc), `"`+btn.ClassName+`"`)

	data, err := os.ReadFile(filepath.Join(out, "styles.json"))
	require.NoError(t, err)
	var manifest Manifest
	require.NoError(t, json.Unmarshal(data, &manifest))
	assert.Len(t, manifest.Classes, 3)
	assert.Equal(t, []string{"(min-width: 600px)"}, manifest.Media)
	assert.Contains(t, manifest.Dynamic, classes["Btn.themed"].ClassName)
}

func TestCompile_Warnings(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.style.yaml"), "Btn:\n  default:\n    color: red\n")
	writeFile(t, filepath.Join(src, "b.style.yaml"), "Btn:\n  default:\n    color: blue\n")
	writeFile(t, filepath.Join(src, "c.style.yaml"), "Btn: [broken\n")

	result, err := Compile(Config{SourceDir: src, OutputDir: t.TempDir(), PackageName: "ui"})
	require.NoError(t, err)

	// Files load in sorted order: the duplicate in b is seen before c fails.
	require.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "Duplicate selector 'Btn.default'")
	assert.Contains(t, result.Warnings[1], "Failed to load")
	assert.Equal(t, 1, result.ClassesGenerated)
}

func TestCompile_FriendlyNames(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.style.yaml"), "\"my btn\":\n  default:\n    color: red\n")

	result, err := Compile(Config{
		SourceDir:     src,
		OutputDir:     t.TempDir(),
		PackageName:   "ui",
		FriendlyNames: true,
		ClassPrefix:   "app",
	})
	require.NoError(t, err)

	require.Len(t, result.Classes, 1)
	assert.True(t, strings.HasPrefix(result.Classes[0].ClassName, "app-my_btn-default-"))
	assert.Equal(t, "MyBtnDefault", result.Classes[0].GoName)
}

func TestCompile_ReservedGoName(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.style.yaml"), "All:\n  class-names:\n    color: red\n")

	result, err := Compile(Config{SourceDir: src, OutputDir: t.TempDir(), PackageName: "ui"})
	require.NoError(t, err)

	assert.Equal(t, "AllClassNamesClass", result.Classes[0].GoName)
}

func TestCompile_WriteFailure(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.style.yaml"), "Btn:\n  default:\n    color: red\n")

	// A regular file where the output directory should be.
	out := filepath.Join(t.TempDir(), "out")
	writeFile(t, out, "")

	_, err := Compile(Config{SourceDir: src, OutputDir: out, PackageName: "ui"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write failed")
}

func TestDefaultPackageName(t *testing.T) {
	assert.Equal(t, "ui", defaultPackageName("internal/web/ui"))
	assert.Equal(t, "webui", defaultPackageName("web-ui"))
}
