package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"cv-studio/internal/i18n"
	"cv-studio/internal/model"
	tmpl "cv-studio/internal/template"
)

// Dev helper: renders a resume to a standalone HTML file so a layout can
// be inspected in a browser without running the server.
func main() {
	variant := flag.String("template", tmpl.Classic, "layout variant (classic, modern, regional)")
	lang := flag.String("lang", "km", "caption language (en, km)")
	theme := flag.String("theme", "light", "theme (light, dark)")
	in := flag.String("in", "", "resume JSON file (seed data when empty)")
	out := flag.String("out", "resume_preview.html", "output HTML file")
	flag.Parse()

	r := model.Seed()
	if *in != "" {
		b, err := os.ReadFile(*in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read resume: %v\n", err)
			os.Exit(2)
		}
		if err := json.Unmarshal(b, &r); err != nil {
			fmt.Fprintf(os.Stderr, "unmarshal resume: %v\n", err)
			os.Exit(2)
		}
	}

	fragment, err := tmpl.Render(*variant, r, i18n.For(*lang))
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}

	doc := tmpl.Page(fragment, *lang, *theme)
	if err := os.WriteFile(*out, []byte(doc), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write out: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", *out)
}
