package schematic

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MichaelAyles/kicad-snippets/pkg/kicad/sexpr"
)

// WrapOptions control the synthesized header of a wrapped snippet. Zero
// values fall back to sensible defaults: a generated UUID, A4 paper,
// today's date and an empty title.
type WrapOptions struct {
	Title string
	UUID  string
	Paper string
	Date  string
}

// WrapSnippet wraps a bare clipboard snippet into a standalone schematic
// document by synthesizing a header and closing the root list. The
// snippet body is preserved byte-for-byte between header and footer, so
// ExtractSnippet recovers a tree-equal snippet.
//
// Like all conversion functions, WrapSnippet assumes pre-validated input
// and does not defend against malformed text.
func WrapSnippet(snippet string, opts WrapOptions) string {
	id := opts.UUID
	if id == "" {
		id = uuid.New().String()
	}
	paper := opts.Paper
	if paper == "" {
		paper = "A4"
	}
	date := opts.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var sb strings.Builder
	sb.WriteString("(kicad_sch\n")
	fmt.Fprintf(&sb, "\t(version %d)\n", CurrentVersion)
	fmt.Fprintf(&sb, "\t(generator %q)\n", Generator)
	fmt.Fprintf(&sb, "\t(uuid %q)\n", id)
	fmt.Fprintf(&sb, "\t(paper %q)\n", paper)
	sb.WriteString("\t(title_block\n")
	fmt.Fprintf(&sb, "\t\t(title %q)\n", opts.Title)
	fmt.Fprintf(&sb, "\t\t(date %q)\n", date)
	sb.WriteString("\t)\n")
	sb.WriteString(snippet)
	sb.WriteString("\n)\n")
	return sb.String()
}

// ExtractSnippet is the structural inverse of WrapSnippet: it parses a
// full document and re-serializes only the top-level lib_symbols and
// symbol children, discarding the header, title block and paper. The
// result is what a user would want on the clipboard for their next paste.
func ExtractSnippet(full string) string {
	root, err := sexpr.Parse(full)
	if err != nil {
		return extractSnippetFallback(full)
	}
	rootList, ok := root.(*sexpr.List)
	if !ok {
		return extractSnippetFallback(full)
	}

	var parts []string
	for _, item := range rootList.Items {
		sub, ok := item.(*sexpr.List)
		if !ok {
			continue
		}
		if sub.Tag() == "lib_symbols" || sub.Tag() == "symbol" {
			parts = append(parts, sexpr.Format(sub))
		}
	}
	return strings.Join(parts, "\n")
}

var snippetBlockRe = regexp.MustCompile(`\(\s*(lib_symbols|symbol)[\s(]`)

// extractSnippetFallback recovers the lib_symbols and symbol blocks
// textually from input that fails to parse cleanly: each block start is
// located by regex and cut at its balancing paren. A defensive path for
// damaged documents; kept deliberately even though the structural path
// handles all well-formed input.
func extractSnippetFallback(full string) string {
	var parts []string
	pos := 0
	for pos < len(full) {
		loc := snippetBlockRe.FindStringIndex(full[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		end, ok := matchParen(full, start)
		if !ok {
			break
		}
		parts = append(parts, full[start:end])
		pos = end
	}
	return strings.Join(parts, "\n")
}

// matchParen returns the index just past the paren balancing the one at
// start. Quoted strings are not special-cased, matching the validator's
// raw balance scan.
func matchParen(text string, start int) (int, bool) {
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}
