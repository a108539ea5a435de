package template

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"cv-studio/internal/i18n"
	"cv-studio/internal/model"
)

// Three interchangeable layouts render the same document. A variant never
// filters or mutates the document: every populated field must show up in
// its output, and empty sections are dropped entirely.
const (
	Classic  = "classic"
	Modern   = "modern"
	Regional = "regional"
)

//go:embed templates/*.html templates/style.css
var files embed.FS

var funcs = template.FuncMap{
	// skill bar width, level out of 5
	"pct": func(level int) int { return level * 20 },
	// photo references are data URIs produced by our own ingestion step;
	// html/template would otherwise strip the data: scheme
	"photoURL": func(p *string) template.URL {
		if p == nil {
			return ""
		}
		return template.URL(*p)
	},
	// the model does not clamp levels, so a bad one must not panic a render
	"seq": func(n int) []int {
		if n < 0 {
			n = 0
		}
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	},
}

var variants = map[string]*template.Template{}

func init() {
	for _, id := range []string{Classic, Modern, Regional} {
		variants[id] = template.Must(
			template.New(id + ".html").Funcs(funcs).ParseFS(files, "templates/"+id+".html"),
		)
	}
}

// IDs lists the registered template ids.
func IDs() []string { return []string{Classic, Modern, Regional} }

// Known reports whether id names a registered variant.
func Known(id string) bool {
	_, ok := variants[id]
	return ok
}

type renderData struct {
	R model.Resume
	T func(string) string
}

// Render projects the document through the named variant and returns the
// layout fragment. Captions come from the injected text lookup; the variant
// itself carries no language-specific strings.
func Render(id string, r model.Resume, t i18n.Lookup) (string, error) {
	tpl, ok := variants[id]
	if !ok {
		return "", fmt.Errorf("unknown template %q", id)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, renderData{R: r, T: t}); err != nil {
		return "", fmt.Errorf("render %s: %w", id, err)
	}
	return buf.String(), nil
}

// StyleSheet returns the stylesheet shared by the live preview, the capture
// surface, and the print document. Deriving all three from one sheet is what
// keeps the raster and print paths visually aligned.
func StyleSheet() string {
	b, err := files.ReadFile("templates/style.css")
	if err != nil {
		// embedded file, missing only if the build is broken
		panic(err)
	}
	return string(b)
}

// Page wraps a rendered fragment into a complete standalone HTML document:
// font links, the shared stylesheet, the theme class, and print color
// directives. Every surface that shows a layout goes through here.
func Page(fragment, lang, theme string) string {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html><html class=\"")
	if theme == "dark" {
		buf.WriteString("dark")
	}
	buf.WriteString("\"><head><meta charset=\"utf-8\"><title>Resume</title>")
	buf.WriteString(`<link rel="preconnect" href="https://fonts.googleapis.com">`)
	buf.WriteString(`<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>`)
	buf.WriteString(`<link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&family=Kantumruy+Pro:wght@400;500;600;700&display=swap" rel="stylesheet">`)
	buf.WriteString("<style>")
	buf.WriteString(StyleSheet())
	buf.WriteString("body { -webkit-print-color-adjust: exact; print-color-adjust: exact; }")
	buf.WriteString("</style></head><body class=\"")
	if lang == "km" {
		buf.WriteString("font-khmer")
	} else {
		buf.WriteString("font-sans")
	}
	buf.WriteString("\"><div id=\"resume\">")
	buf.WriteString(fragment)
	buf.WriteString("</div></body></html>")
	return buf.String()
}
