package schematic

import (
	"strings"
	"testing"
)

func validDoc(version string) string {
	return `(kicad_sch
		(version ` + version + `)
		(generator "eeschema")
		(uuid "doc-uuid")
		(paper "A4")
		(lib_symbols)
		(symbol (lib_id "Device:R")
			(at 100 50 0)
			(uuid "sym-1")
			(property "Reference" "R1" (at 100 45 0))
			(property "Value" "10k" (at 100 55 0))
			(property "Footprint" "Resistor_SMD:R_0603" (at 100 50 0))
		)
		(wire (pts (xy 100 50) (xy 150 50)))
	)`
}

func TestValidateFullDocument(t *testing.T) {
	result := Validate(validDoc("20231120"))

	if !result.Valid {
		t.Fatalf("Expected valid, got errors: %v", result.Errors)
	}
	if result.IsSnippet {
		t.Error("Full document should not be flagged as snippet")
	}
	if result.OriginalFormat != FormatFull {
		t.Errorf("Expected format full, got %v", result.OriginalFormat)
	}
	if result.Metadata == nil {
		t.Fatal("Expected metadata on valid result")
	}
	if result.Metadata.ComponentCount != 1 {
		t.Errorf("Expected 1 component, got %d", result.Metadata.ComponentCount)
	}
}

func TestValidateEmpty(t *testing.T) {
	for _, input := range []string{"", "   \n\t "} {
		result := Validate(input)
		if result.Valid {
			t.Errorf("Validate(%q) should be invalid", input)
		}
		if len(result.Errors) == 0 {
			t.Errorf("Validate(%q) should report an error", input)
		}
	}
}

func TestValidateBalance(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"missing close", "(a (b)", "unclosed"},
		{"extra close", "(a) )", "unexpected ')'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.input)
			if result.Valid {
				t.Fatal("Expected invalid result")
			}
			if !strings.Contains(strings.Join(result.Errors, "; "), tt.wantMsg) {
				t.Errorf("Errors %v should mention %q", result.Errors, tt.wantMsg)
			}
		})
	}
}

// Parens inside quoted strings are counted by the raw balance scan. The
// behavior is inherited and preserved, not corrected.
func TestValidateBalanceCountsQuotedParens(t *testing.T) {
	input := `(kicad_sch (version 20231120) (title_block (comment 1 "a ( stray")))`
	result := Validate(input)
	if result.Valid {
		t.Error("A quoted '(' should still unbalance the raw scan")
	}
}

func TestValidateVersionBoundary(t *testing.T) {
	if result := Validate(validDoc("20211013")); result.Valid {
		t.Error("Version 20211013 should be rejected")
	} else if !strings.Contains(strings.Join(result.Errors, " "), "KiCad 6") {
		t.Errorf("Expected an upgrade message, got %v", result.Errors)
	}

	if result := Validate(validDoc("20211014")); !result.Valid {
		t.Errorf("Version 20211014 should be accepted, got %v", result.Errors)
	}
}

func TestValidateMissingVersion(t *testing.T) {
	result := Validate(`(kicad_sch (generator "eeschema") (lib_symbols))`)
	if result.Valid {
		t.Error("Document without version should be invalid")
	}
}

func TestValidateWrongRoot(t *testing.T) {
	// Contains no snippet markers, so it classifies full and must carry
	// the kicad_sch root.
	result := Validate(`(kicad_pcb (version 20231120))`)
	if result.Valid {
		t.Error("kicad_pcb root should be invalid")
	}
	if !strings.Contains(strings.Join(result.Errors, " "), "kicad_sch") {
		t.Errorf("Expected root tag error, got %v", result.Errors)
	}
}

func TestValidateSnippet(t *testing.T) {
	snippet := `(lib_symbols
		(symbol "Device:R" (property "Reference" "R" (at 0 0 0)))
	)
	(symbol (lib_id "Device:R")
		(at 10 20 0)
		(property "Reference" "R1" (at 10 15 0))
		(property "Value" "10k" (at 10 25 0))
	)`

	result := Validate(snippet)
	if !result.Valid {
		t.Fatalf("Snippet should validate via wrapped working copy, got %v", result.Errors)
	}
	if !result.IsSnippet {
		t.Error("Expected IsSnippet=true")
	}
	if result.OriginalFormat != FormatSnippet {
		t.Errorf("Expected original format snippet, got %v", result.OriginalFormat)
	}
	if result.Metadata.ComponentCount != 1 {
		t.Errorf("Expected 1 component from snippet, got %d", result.Metadata.ComponentCount)
	}
}

func TestValidateWarnings(t *testing.T) {
	t.Run("no components", func(t *testing.T) {
		result := Validate(`(kicad_sch (version 20231120) (lib_symbols))`)
		if !result.Valid {
			t.Fatalf("Expected valid, got %v", result.Errors)
		}
		if !hasWarning(result.Warnings, "no components") {
			t.Errorf("Expected no-components warning, got %v", result.Warnings)
		}
	})

	t.Run("unassigned footprints and no wires", func(t *testing.T) {
		input := `(kicad_sch (version 20231120)
			(symbol (lib_id "Device:R") (at 0 0 0) (property "Reference" "R1") (property "Value" "1k"))
			(symbol (lib_id "Device:C") (at 10 10 0) (property "Reference" "C1") (property "Value" "100n"))
		)`
		result := Validate(input)
		if !result.Valid {
			t.Fatalf("Expected valid, got %v", result.Errors)
		}
		if !hasWarning(result.Warnings, "no footprint") {
			t.Errorf("Expected footprint warning, got %v", result.Warnings)
		}
		if !hasWarning(result.Warnings, "no wires") {
			t.Errorf("Expected no-wires warning, got %v", result.Warnings)
		}
	})

	t.Run("unannotated references", func(t *testing.T) {
		input := `(kicad_sch (version 20231120)
			(symbol (lib_id "Device:R") (at 0 0 0)
				(property "Reference" "R?")
				(property "Value" "1k")
				(property "Footprint" "Resistor_SMD:R_0603"))
		)`
		result := Validate(input)
		if !result.Valid {
			t.Fatalf("Expected valid, got %v", result.Errors)
		}
		if !hasWarning(result.Warnings, "unannotated") {
			t.Errorf("Expected unannotated-reference warning, got %v", result.Warnings)
		}
	})
}

func hasWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}
