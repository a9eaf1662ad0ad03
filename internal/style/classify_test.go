package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifiers(t *testing.T) {
	tests := []struct {
		key    string
		pseudo bool
		media  bool
	}{
		{key: ":hover", pseudo: true},
		{key: "::before", pseudo: true},
		{key: ":nth-child(2n)", pseudo: true},
		{key: "@media (min-width: 100px)", media: true},
		{key: "@media print", media: true},
		{key: "color"},
		{key: "@supports (display: grid)"},
		{key: "hover"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.pseudo, IsPseudo(tt.key))
			assert.Equal(t, tt.media, IsMediaQuery(tt.key))
		})
	}
}

func TestMediaPredicate(t *testing.T) {
	assert.Equal(t, "(min-width: 100px)", mediaPredicate("@media (min-width: 100px)"))
	assert.Equal(t, "print", mediaPredicate("@media print"))
}

func TestSortPseudoClasses(t *testing.T) {
	styles := StyleMap{
		":active":               nil,
		"color":                 nil,
		":hover":                nil,
		"@media (min-width: 1)": nil,
		":link":                 nil,
		":first-child":          nil,
		":focus":                nil,
		":visited":              nil,
	}

	want := []string{
		":first-child", "@media (min-width: 1)", "color",
		":link", ":visited", ":hover", ":focus", ":active",
	}

	for i := 0; i < 5; i++ {
		assert.Equal(t, want, SortPseudoClasses(styles))
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, kindPrimitive, kindOf("red"))
	assert.Equal(t, kindPrimitive, kindOf(12))
	assert.Equal(t, kindPrimitive, kindOf(nil))
	assert.Equal(t, kindPrimitive, kindOf(uint8(3)))
	assert.Equal(t, kindArray, kindOf([]any{"a", 1}))
	assert.Equal(t, kindArray, kindOf([2]string{"a", "b"}))
	assert.Equal(t, kindMap, kindOf(StyleMap{}))
	assert.Equal(t, kindMap, kindOf(map[string]any{}))
	assert.Equal(t, kindFunc, kindOf(StatefulValue(widthFromProps)))
	assert.Equal(t, kindFunc, kindOf(func() string { return "" }))
}

func TestIsWellFormed(t *testing.T) {
	assert.True(t, IsWellFormed("red"))
	assert.True(t, IsWellFormed(1.5))
	assert.True(t, IsWellFormed([]string{"a"}))
	assert.True(t, IsWellFormed(StyleMap{}))
	assert.True(t, IsWellFormed(StatefulValue(widthFromProps)))
	assert.False(t, IsWellFormed(nil))
	assert.False(t, IsWellFormed(struct{}{}))
}
