package pipeline

import (
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// maxLintProblems bounds the warnings logged for one stylesheet.
const maxLintProblems = 20

// lintStyleSheet logs syntax problems in a caller stylesheet. The
// stylesheet is embedded unchanged whatever the outcome.
func (p *Pipeline) lintStyleSheet(sheet string) {
	for _, problem := range lintCSS(sheet) {
		p.logger.Warn("stylesheet syntax problem", zap.String("near", problem))
	}
}

// lintCSS returns the text around each construct the CSS grammar rejects.
func lintCSS(sheet string) []string {
	parser := css.NewParser(parse.NewInputString(sheet), false)

	var problems []string
	for len(problems) < maxLintProblems {
		gt, _, data := parser.Next()
		if gt != css.ErrorGrammar {
			continue
		}

		err := parser.Err()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			problems = append(problems, err.Error())
			break
		}
		problems = append(problems, problemText(data, parser.Values()))
	}
	return problems
}

func problemText(data []byte, values []css.Token) string {
	var b strings.Builder
	b.Write(data)
	for _, v := range values {
		b.Write(v.Data)
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "(unexpected token)"
	}
	return text
}
