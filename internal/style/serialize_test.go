package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHyphenate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"color", "color"},
		{"fontSize", "font-size"},
		{"borderTopLeftRadius", "border-top-left-radius"},
		{"WebkitFlex", "-webkit-flex"},
		{"msTransform", "ms-transform"},
		{"font-size", "font-size"},
		{"--brand-color", "--brand-color"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Hyphenate(tt.in))
		})
	}
}

func TestFormatRule(t *testing.T) {
	got := FormatRule(".a", StyleMap{
		"fontSize": "12px",
		"color":    "red",
		"display":  []string{"-webkit-flex", "flex"},
		"opacity":  0.5,
		"zIndex":   3,
	})

	assert.Equal(t, ".a{color:red;display:-webkit-flex;display:flex;font-size:12px;opacity:0.5;z-index:3}", got)
}

func TestContainerCSS(t *testing.T) {
	c := NewContainer()
	c.Add(".a", StyleMap{"color": "red"})
	c.Add(".a", StyleMap{"color": "blue"}, "(min-width: 100px)")
	c.Add(".b:hover", StyleMap{"color": "green"})
	c.Add(".b", StyleMap{"margin": 0}, "(min-width: 100px)")
	c.Add(".c", StyleMap{"margin": 1}, "print")

	want := ".a{color:red}\n" +
		".b:hover{color:green}\n" +
		"@media (min-width: 100px){.a{color:blue}.b{margin:0}}\n" +
		"@media print{.c{margin:1}}\n"

	assert.Equal(t, want, c.CSS())
}

func TestFormatValue_PassThrough(t *testing.T) {
	type unknown struct{ A int }

	assert.Equal(t, "{7}", FormatValue(unknown{A: 7}))
	assert.Equal(t, "<nil>", FormatValue(nil))
	assert.Equal(t, "true", FormatValue(true))
}
