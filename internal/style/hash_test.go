package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateClassName(t *testing.T) {
	tests := []struct {
		name  string
		a, b  StyleMap
		equal bool
	}{
		{
			name:  "identical maps",
			a:     StyleMap{"color": "red", "margin": 0},
			b:     StyleMap{"margin": 0, "color": "red"},
			equal: true,
		},
		{
			name:  "different values",
			a:     StyleMap{"color": "red"},
			b:     StyleMap{"color": "blue"},
			equal: false,
		},
		{
			name:  "different keys",
			a:     StyleMap{"color": "red"},
			b:     StyleMap{"background": "red"},
			equal: false,
		},
		{
			name:  "number versus string",
			a:     StyleMap{"opacity": 1},
			b:     StyleMap{"opacity": "1"},
			equal: false,
		},
		{
			name:  "integral float matches int",
			a:     StyleMap{"zIndex": 10},
			b:     StyleMap{"zIndex": 10.0},
			equal: true,
		},
		{
			name:  "fractional float",
			a:     StyleMap{"opacity": 0.5},
			b:     StyleMap{"opacity": 0.6},
			equal: false,
		},
		{
			name:  "array order matters",
			a:     StyleMap{"display": []string{"-webkit-flex", "flex"}},
			b:     StyleMap{"display": []string{"flex", "-webkit-flex"}},
			equal: false,
		},
		{
			name:  "array versus joined string",
			a:     StyleMap{"display": []string{"a", "b"}},
			b:     StyleMap{"display": "ab"},
			equal: false,
		},
		{
			name:  "key value boundary",
			a:     StyleMap{"ab": "c"},
			b:     StyleMap{"a": "bc"},
			equal: false,
		},
		{
			name:  "bool versus string",
			a:     StyleMap{"flag": true},
			b:     StyleMap{"flag": "true"},
			equal: false,
		},
		{
			name:  "empty maps",
			a:     StyleMap{},
			b:     nil,
			equal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := GenerateClassName(tt.a), GenerateClassName(tt.b)
			if tt.equal {
				assert.Equal(t, a, b)
			} else {
				assert.NotEqual(t, a, b)
			}
		})
	}
}

func TestGenerateClassName_IdentifierSafe(t *testing.T) {
	name := GenerateClassName(StyleMap{"color": "red"})
	assert.Regexp(t, `^[0-9a-z]+$`, name)
	assert.LessOrEqual(t, len(name), 13)
}

func TestClassName(t *testing.T) {
	base := StyleMap{"color": "red"}
	hash := GenerateClassName(base)

	assert.Equal(t, "Btn-default-"+hash, ClassName("Btn", "", base))
	assert.Equal(t, "Btn-label-"+hash, ClassName("Btn", "label", base))
}
