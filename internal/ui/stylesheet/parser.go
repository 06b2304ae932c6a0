package stylesheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS parses a stylesheet of ".class" and "#id" rules with "key: value;" declarations.
// Rules with any other selector (element names, combinators, @rules) are skipped. Later
// rules override earlier ones for the same selector.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInputString(content), false)

	var current *Rule
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != io.EOF {
				return sheet, fmt.Errorf("css: %w", err)
			}
			return sheet, nil
		case css.BeginRulesetGrammar:
			selector := joinTokens(p.Values())
			if !simpleSelector(selector) {
				current = nil
				continue
			}
			sheet.Rules = append(sheet.Rules, Rule{Selector: selector, Props: make(map[string]string)})
			current = &sheet.Rules[len(sheet.Rules)-1]
		case css.DeclarationGrammar:
			if current == nil {
				continue
			}
			current.Props[strings.ToLower(string(data))] = joinTokens(p.Values())
		case css.EndRulesetGrammar:
			current = nil
		}
	}
}

func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

func simpleSelector(sel string) bool {
	if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
		return false
	}
	return !strings.ContainsAny(sel[1:], " >+~,:.#[")
}
