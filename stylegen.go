// Package stylegen compiles style objects into CSS.
//
// A style object is a map of CSS properties, pseudo-class blocks (":hover")
// and media-query blocks ("@media (min-width: 600px)"). Rendering one
// registers its rules in a Container under a content-addressed class name
// and returns that name. Values computed from runtime props are set aside
// as dynamic fragments and resolved later.
//
// # Rendering
//
//	sheet := stylegen.New(stylegen.WithPlugins(stylegen.FriendlyClassName("app")))
//	class := sheet.Render(stylegen.StyleMap{
//		"color":  "red",
//		":hover": stylegen.StyleMap{"color": "blue"},
//	}, "Btn", "primary")
//	css := sheet.CSS()
//
// # Compiling style documents
//
// Style documents are YAML or JSON files shaped as scope -> selector ->
// style map:
//
//	result, err := stylegen.Compile(stylegen.Config{
//		SourceDir:   "web/styles",
//		OutputDir:   "internal/ui",
//		PackageName: "ui",
//	})
//
// Compile writes styles.css, a styles.gen.go file with one constant per
// selector and, when enabled, a styles.json manifest. Check runs the same
// build in memory and reports conflicts and malformed values.
//
// # CLI Tool
//
//	go install github.com/yacobolo/stylegen/cmd/stylegen@latest
package stylegen
