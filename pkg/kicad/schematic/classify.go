package schematic

import "strings"

// DetectFormat decides whether text is a standalone schematic document or
// a bare clipboard snippet. It is a substring heuristic, deliberately run
// before any parse attempt: a snippet is by construction not a parseable
// standalone document.
//
// Priority: a (kicad_sch root anywhere means full; otherwise (lib_symbols
// or (symbol means snippet; anything else defaults to full.
func DetectFormat(text string) Format {
	if strings.Contains(text, "(kicad_sch") {
		return FormatFull
	}
	if strings.Contains(text, "(lib_symbols") {
		return FormatSnippet
	}
	if strings.Contains(text, "(symbol") {
		return FormatSnippet
	}
	return FormatFull
}

// IsSnippet reports whether text classifies as a clipboard snippet.
func IsSnippet(text string) bool {
	return DetectFormat(text) == FormatSnippet
}
