package ui

import (
	"fmt"
	"strings"
)

// ParseCSS parses a small CSS subset: selectors .class, #id, optionally with an :active
// suffix, comma-separated selector lists, and blocks of "key: value;". No combinators,
// no @rules. Blocks with other selectors are skipped. An unterminated block is an error.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	rest := stripCSSComments(content)
	for {
		open := strings.Index(rest, "{")
		if open == -1 {
			if strings.TrimSpace(rest) != "" {
				return sheet, fmt.Errorf("ui: css: trailing text %q", strings.TrimSpace(rest))
			}
			return sheet, nil
		}
		closeIdx := findMatchingBrace(rest, open)
		if closeIdx == -1 {
			return sheet, fmt.Errorf("ui: css: unterminated block after %q", strings.TrimSpace(rest[:open]))
		}
		props := parseDeclarations(rest[open+1 : closeIdx])
		for _, sel := range strings.Split(rest[:open], ",") {
			sel = strings.TrimSpace(sel)
			if validSelector(sel) {
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
			}
		}
		rest = rest[closeIdx+1:]
	}
}

func validSelector(sel string) bool {
	if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
		return false
	}
	name, _ := splitPseudo(sel[1:])
	return name != "" && !strings.ContainsAny(name, " >+~.#:")
}

// splitPseudo splits "tab:active" into ("tab", true).
func splitPseudo(s string) (string, bool) {
	if name, ok := strings.CutSuffix(s, ":active"); ok {
		return name, true
	}
	return s, false
}

func stripCSSComments(s string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "/*")
		if start == -1 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		end := strings.Index(s[start+2:], "*/")
		if end == -1 {
			return b.String()
		}
		s = s[start+2+end+2:]
	}
}

func findMatchingBrace(s string, openIdx int) int {
	depth := 1
	for i := openIdx + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		if k = strings.TrimSpace(k); k != "" {
			props[k] = strings.TrimSpace(v)
		}
	}
	return props
}
