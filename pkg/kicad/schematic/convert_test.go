package schematic

import (
	"strings"
	"testing"

	"github.com/MichaelAyles/kicad-snippets/pkg/kicad/sexpr"
)

const testSnippet = `(lib_symbols
	(symbol "Device:R"
		(property "Reference" "R" (at 0 0 0))
		(property "Value" "R" (at 0 0 0))
	)
)
(symbol (lib_id "Device:R")
	(at 100 50 0)
	(uuid "sym-1")
	(property "Reference" "R1" (at 100 45 0))
	(property "Value" "10k" (at 100 55 0))
)`

func TestWrapSnippet(t *testing.T) {
	full := WrapSnippet(testSnippet, WrapOptions{
		Title: "Test Circuit",
		UUID:  "fixed-uuid",
		Paper: "A3",
		Date:  "2024-06-01",
	})

	for _, want := range []string{
		"(kicad_sch",
		"(version 20231120)",
		`(generator "kicad_snippets")`,
		`(uuid "fixed-uuid")`,
		`(paper "A3")`,
		`(title "Test Circuit")`,
		`(date "2024-06-01")`,
	} {
		if !strings.Contains(full, want) {
			t.Errorf("Wrapped output missing %q", want)
		}
	}

	// The snippet body is preserved byte-for-byte.
	if !strings.Contains(full, testSnippet) {
		t.Error("Wrapped output does not contain the verbatim snippet body")
	}

	result := Validate(full)
	if !result.Valid {
		t.Errorf("Wrapped snippet should validate, got %v", result.Errors)
	}
}

func TestWrapSnippetDefaults(t *testing.T) {
	full := WrapSnippet(testSnippet, WrapOptions{})

	if !strings.Contains(full, `(paper "A4")`) {
		t.Error("Default paper should be A4")
	}
	root, err := sexpr.Parse(full)
	if err != nil {
		t.Fatalf("Wrapped output should parse: %v", err)
	}
	uuidNode, ok := root.(*sexpr.List).Find("uuid")
	if !ok {
		t.Fatal("Wrapped output missing uuid")
	}
	if v, _ := uuidNode.Text(1); len(v) != 36 {
		t.Errorf("Expected a generated UUID, got %q", v)
	}
}

func TestExtractSnippet(t *testing.T) {
	full := WrapSnippet(testSnippet, WrapOptions{Title: "T", UUID: "u", Date: "2024-01-01"})
	got := ExtractSnippet(full)

	if strings.Contains(got, "kicad_sch") || strings.Contains(got, "title_block") || strings.Contains(got, "paper") {
		t.Errorf("Extracted snippet still carries header content:\n%s", got)
	}
	if !strings.Contains(got, "lib_symbols") {
		t.Error("Extracted snippet lost lib_symbols block")
	}
}

// unwrap(wrap(S)) must be tree-equal to S, though not byte-identical.
func TestWrapUnwrapRoundTrip(t *testing.T) {
	full := WrapSnippet(testSnippet, WrapOptions{Title: "RT", Date: "2024-01-01"})
	unwrapped := ExtractSnippet(full)

	orig, err := sexpr.ParseAll(testSnippet)
	if err != nil {
		t.Fatalf("ParseAll(original) failed: %v", err)
	}
	back, err := sexpr.ParseAll(unwrapped)
	if err != nil {
		t.Fatalf("ParseAll(unwrapped) failed: %v", err)
	}

	if len(orig) != len(back) {
		t.Fatalf("Round-trip changed top-level expression count: %d -> %d", len(orig), len(back))
	}
	for i := range orig {
		if !sexpr.Equal(orig[i], back[i]) {
			t.Errorf("Round-trip changed expression %d:\norig: %s\nback: %s", i, orig[i], back[i])
		}
	}
}

// Input that fails to parse cleanly falls back to textual block recovery.
func TestExtractSnippetFallback(t *testing.T) {
	// A dangling paren at the end defeats the structural path.
	damaged := `(kicad_sch
	(version 20231120)
	(lib_symbols
		(symbol "Device:R" (property "Reference" "R"))
	)
	(symbol (lib_id "Device:R") (at 0 0 0))
` // missing closing paren

	got := ExtractSnippet(damaged)
	if !strings.Contains(got, "lib_symbols") {
		t.Errorf("Fallback lost lib_symbols block:\n%s", got)
	}
	if !strings.Contains(got, `(lib_id "Device:R")`) {
		t.Errorf("Fallback lost symbol instance:\n%s", got)
	}
	if strings.Contains(got, "version") {
		t.Errorf("Fallback kept header content:\n%s", got)
	}
}
