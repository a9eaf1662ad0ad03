package plugin

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"github.com/yacobolo/stylegen/internal/style"
)

// ParseDeclarations parses a CSS declaration list ("color: red; width: 1px")
// into a style map. Declarations parsed before a syntax error are kept.
func ParseDeclarations(text string) (style.StyleMap, error) {
	styles := make(style.StyleMap)
	parser := css.NewParser(parse.NewInputString(text), true)

	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return styles, fmt.Errorf("parse declarations: %w", err)
			}
			return styles, nil

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			name := string(data)
			value := declarationValue(parser.Values())
			if value == "" {
				continue
			}
			styles[name] = value
		}
	}
}

func declarationValue(tokens []css.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.Write(tok.Data)
	}
	return strings.TrimSpace(b.String())
}

// ExtractCSS returns a mixin expanding CSS declaration text into
// properties. Unparseable text is logged and whatever parsed is kept.
func ExtractCSS(log *zap.Logger) MixinFunc {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("extract-css")

	return func(value any) style.StyleMap {
		text, ok := value.(string)
		if !ok {
			log.Debug("Ignoring non-string CSS text", zap.Any("value", value))
			return nil
		}
		styles, err := ParseDeclarations(text)
		if err != nil {
			log.Warn("Invalid CSS text", zap.String("css", text), zap.Error(err))
		}
		return styles
	}
}
