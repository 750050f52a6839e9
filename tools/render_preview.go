package main

import (
	"encoding/json"
	"fmt"
	"os"

	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
)

// Dev helper: render a resume JSON file to a standalone HTML page for
// eyeballing template output without the server or Chrome.
func main() {
	in := "resume.json"
	if len(os.Args) > 1 {
		in = os.Args[1]
	}
	b, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read resume: %v\n", err)
		os.Exit(2)
	}
	var doc model.Resume
	if err := json.Unmarshal(b, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}
	html, err := usecase.RenderPage(model.Normalize(doc))
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}
	out := "resume_preview.html"
	if len(os.Args) > 2 {
		out = os.Args[2]
	}
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write out: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", out)
}
