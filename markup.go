package main

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// renderMarkup turns the iframe field into something safe to paint on a
// terminal. Untrusted markup is reduced to its text content; trusted markup
// is shown as typed, minus control characters.
func renderMarkup(markup string, trusted bool) string {
	if trusted {
		return stripControl(markup)
	}
	return markupText(markup)
}

func markupText(markup string) string {
	var b strings.Builder
	skip := 0
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return collapseLines(b.String())
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			a := atom.Lookup(name)
			if a == atom.Iframe {
				b.WriteString("\n[iframe: " + attrValue(z, hasAttr, "src") + "]\n")
			}
			if hidesContent(a) && tt == html.StartTagToken {
				skip++
			}
			if breaksLine(a) {
				b.WriteString("\n")
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if hidesContent(a) && skip > 0 {
				skip--
			}
			if breaksLine(a) {
				b.WriteString("\n")
			}
		}
	}
}

func attrValue(z *html.Tokenizer, hasAttr bool, want string) string {
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		if string(key) == want {
			return string(val)
		}
	}
	return ""
}

func hidesContent(a atom.Atom) bool {
	switch a {
	case atom.Script, atom.Style, atom.Iframe, atom.Noscript, atom.Template, atom.Title:
		return true
	}
	return false
}

func breaksLine(a atom.Atom) bool {
	switch a {
	case atom.Br, atom.P, atom.Div, atom.Li, atom.Tr, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

// collapseLines squeezes runs of whitespace and drops blank lines.
func collapseLines(text string) string {
	var out []string
	for _, line := range strings.Split(stripControl(text), "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			out = append(out, strings.Join(fields, " "))
		}
	}
	return strings.Join(out, "\n")
}

// stripControl removes anything that could be read as a terminal escape
// sequence. Newlines survive and tabs become spaces.
func stripControl(text string) string {
	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n':
			result.WriteRune(r)
		case r == '\t':
			result.WriteRune(' ')
		case r < 32 || r == 127 || (r >= 0x80 && r < 0xa0):
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}
