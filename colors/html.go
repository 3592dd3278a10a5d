package colors

import (
	"html"
	"regexp"
	"strings"
)

var sgr = regexp.MustCompile("\033\\[([0-9;]*)m")

var htmlColors = map[string]string{
	"31": "#e06c75",
	"32": "#98c379",
	"33": "#e5c07b",
	"34": "#61afef",
	"35": "#c678dd",
	"36": "#56b6c2",
	"90": "#7f848e",
}

// ConvertANSIToHTML turns colored terminal output into HTML spans. Text is
// escaped; unknown escape sequences are dropped.
func ConvertANSIToHTML(s string) string {
	var b strings.Builder
	open := false
	last := 0
	for _, m := range sgr.FindAllStringSubmatchIndex(s, -1) {
		b.WriteString(html.EscapeString(s[last:m[0]]))
		last = m[1]

		if open {
			b.WriteString("</span>")
			open = false
		}
		if span := styleFor(s[m[2]:m[3]]); span != "" {
			b.WriteString(span)
			open = true
		}
	}
	b.WriteString(html.EscapeString(s[last:]))
	if open {
		b.WriteString("</span>")
	}
	return b.String()
}

func styleFor(params string) string {
	var style []string
	for _, p := range strings.Split(params, ";") {
		if p == "1" {
			style = append(style, "font-weight:bold")
		}
		if c, ok := htmlColors[p]; ok {
			style = append(style, "color:"+c)
		}
	}
	if len(style) == 0 {
		return ""
	}
	return `<span style="` + strings.Join(style, ";") + `">`
}
