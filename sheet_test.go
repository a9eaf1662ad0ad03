package stylegen

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var classPattern = regexp.MustCompile(`^Btn-primary-[0-9a-z]+$`)

func TestSheetRender(t *testing.T) {
	sheet := New()

	class := sheet.Render(StyleMap{
		"color":  "red",
		":hover": StyleMap{"color": "blue"},
	}, "Btn", "primary")

	require.Regexp(t, classPattern, class)
	assert.Equal(t,
		"."+class+"{color:red}\n"+
			"."+class+":hover{color:blue}\n",
		sheet.CSS())
}

func TestSheetRender_DoesNotModifyInput(t *testing.T) {
	sheet := New(WithPlugins(Mixin("extend", Extend)))
	in := StyleMap{
		"extend": StyleMap{"margin": 0},
		"width":  StatefulValue(func(p Props) any { return p["w"] }),
		":hover": StyleMap{"color": "blue"},
	}

	sheet.Render(in, "Btn", "primary")

	assert.Len(t, in, 3)
	assert.Contains(t, in, "extend")
	assert.Contains(t, in, "width")
	assert.Equal(t, StyleMap{"color": "blue"}, in[":hover"])
}

func TestSheetRender_ClassNamePlugins(t *testing.T) {
	sheet := New(WithPlugins(FriendlyClassName("app")))

	class := sheet.Render(StyleMap{"color": "red"}, "My Btn", "primary")

	assert.True(t, strings.HasPrefix(class, "app-My_Btn-primary-"), class)
	assert.Contains(t, sheet.CSS(), "."+class+"{color:red}")
}

func TestSheetRender_StylePluginsRunFirst(t *testing.T) {
	sheet := New(WithPlugins(Mixin("css", ExtractCSS(nil))))

	class := sheet.Render(StyleMap{"css": "color: red; padding: 2px"}, "Card", "")

	assert.True(t, strings.HasPrefix(class, "Card-default-"), class)
	assert.Equal(t, "."+class+"{color:red;padding:2px}\n", sheet.CSS())
}

func TestSheetRender_Deterministic(t *testing.T) {
	styles := StyleMap{"color": "red", "@media (min-width: 600px)": StyleMap{"padding": "8px"}}

	first := New().Render(styles, "Btn", "primary")
	second := New().Render(styles, "Btn", "primary")

	assert.Equal(t, first, second)
}

func TestSheetCreate(t *testing.T) {
	sheet := New()

	classes := sheet.Create("Card", map[string]StyleMap{
		"title": {"font-weight": "bold"},
		"body":  {"padding": "4px"},
	})

	require.Len(t, classes, 2)
	assert.True(t, strings.HasPrefix(classes["title"], "Card-title-"))
	assert.True(t, strings.HasPrefix(classes["body"], "Card-body-"))

	// body sorts before title
	rules := sheet.Container().Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "."+classes["body"], rules[0].Selector)
	assert.Equal(t, "."+classes["title"], rules[1].Selector)
}

func TestSheetSharedContainer(t *testing.T) {
	container := NewContainer()
	a := New(WithContainer(container))
	b := New(WithContainer(container))

	a.Render(StyleMap{"color": "red"}, "A", "")
	b.Render(StyleMap{"color": "blue"}, "B", "")

	assert.Equal(t, 2, container.Len())
	assert.Equal(t, a.CSS(), b.CSS())
}

func TestSheetResolve(t *testing.T) {
	sheet := New()

	class := sheet.Render(StyleMap{
		"color": "red",
		"width": StatefulValue(func(p Props) any { return p["w"] }),
	}, "Bar", "")

	resolved, ok := sheet.Resolve(class, Props{"w": "10px"})
	require.True(t, ok)
	assert.Equal(t, StyleMap{"width": "10px"}, resolved)

	_, ok = sheet.Resolve("missing", nil)
	assert.False(t, ok)
}

func TestSheetReset(t *testing.T) {
	sheet := New()
	sheet.Render(StyleMap{"color": "red"}, "A", "")

	sheet.Reset()

	assert.Empty(t, sheet.CSS())
	assert.Zero(t, sheet.Container().Len())
}

func TestSheetUse(t *testing.T) {
	sheet := New()
	sheet.Use(StyleTransform(func(s StyleMap) StyleMap {
		s["display"] = "flex"
		return s
	}))

	class := sheet.Render(StyleMap{}, "Row", "")

	assert.Equal(t, "."+class+"{display:flex}\n", sheet.CSS())
}

func TestSheetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sheet := New(WithLogger(zap.New(core)))

	sheet.Render(StyleMap{"color": "red"}, "A", "")

	entries := logs.FilterMessage("Rendered styles").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "sheet.renderer", entries[0].LoggerName)
}
