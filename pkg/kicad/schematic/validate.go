package schematic

import (
	"fmt"
	"strings"

	"github.com/MichaelAyles/kicad-snippets/pkg/kicad/sexpr"
)

// Validate checks schematic text for structural and version compatibility
// and extracts its metadata. It always returns a structured result; parse
// failures become validation errors, never panics or returned errors.
//
// Snippets are validated against a disposable wrapped working copy; the
// caller's original text is never replaced.
func Validate(text string) ValidationResult {
	result := ValidationResult{OriginalFormat: FormatFull}

	if strings.TrimSpace(text) == "" {
		result.Errors = append(result.Errors, "input is empty")
		return result
	}

	if err := checkBalance(text); err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	result.OriginalFormat = DetectFormat(text)
	result.IsSnippet = result.OriginalFormat == FormatSnippet

	working := text
	if result.IsSnippet {
		working = WrapSnippet(text, WrapOptions{})
	}

	root, err := sexpr.Parse(working)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	rootList, ok := root.(*sexpr.List)
	if !ok || rootList.Tag() != "kicad_sch" {
		result.Errors = append(result.Errors, "not a KiCad schematic: root element must be (kicad_sch ...)")
		return result
	}

	versionNode, ok := rootList.Find("version")
	if !ok {
		result.Errors = append(result.Errors, "missing (version ...) declaration; only KiCad 6.0 and newer schematics are supported")
		return result
	}
	version, ok := versionNode.Int(1)
	if !ok {
		result.Errors = append(result.Errors, "malformed (version ...) declaration")
		return result
	}
	if version < MinSupportedVersion {
		result.Errors = append(result.Errors, fmt.Sprintf(
			"unsupported KiCad version %d (minimum %d / KiCad 6.0); open the schematic in KiCad 6 or newer and re-save it",
			version, MinSupportedVersion))
		return result
	}

	meta, err := Extract(working)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	result.Valid = true
	result.Metadata = meta

	if meta.ComponentCount == 0 {
		result.Warnings = append(result.Warnings, "no components found")
	}
	if meta.Footprints.Unassigned > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%d component(s) have no footprint assigned", meta.Footprints.Unassigned))
	}
	if meta.WireCount == 0 && meta.ComponentCount > 1 {
		result.Warnings = append(result.Warnings, "multiple components but no wires; connections may be missing")
	}
	result.Warnings = append(result.Warnings, meta.Warnings...)

	return result
}

// checkBalance scans raw characters for parenthesis balance before any
// parse attempt. Parens inside quoted strings are still counted, an
// inherited simplification kept on purpose: correct behavior for literal
// parens in title text is unspecified upstream.
func checkBalance(text string) error {
	depth := 0
	for _, ch := range text {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return fmt.Errorf("unbalanced parentheses: unexpected ')'")
			}
		}
	}
	if depth > 0 {
		return fmt.Errorf("unbalanced parentheses: %d unclosed '('", depth)
	}
	return nil
}
