package refdes

import (
	"sort"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input       string
		power       bool
		prefix      string
		number      int
		unit        string
		unannotated bool
	}{
		{"R1", false, "R", 1, "", false},
		{"C42", false, "C", 42, "", false},
		{"SW3", false, "SW", 3, "", false},
		{"U3A", false, "U", 3, "A", false},
		{"#PWR01", true, "PWR", 1, "", false},
		{"#FLG02", true, "FLG", 2, "", false},
		{"R?", false, "R", -1, "", true},
		{"U?", false, "U", -1, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if d.Power != tt.power {
				t.Errorf("Power = %v, want %v", d.Power, tt.power)
			}
			if d.Prefix != tt.prefix {
				t.Errorf("Prefix = %q, want %q", d.Prefix, tt.prefix)
			}
			if d.Num() != tt.number {
				t.Errorf("Num() = %d, want %d", d.Num(), tt.number)
			}
			if d.Unit != tt.unit {
				t.Errorf("Unit = %q, want %q", d.Unit, tt.unit)
			}
			if d.Unannotated != tt.unannotated {
				t.Errorf("Unannotated = %v, want %v", d.Unannotated, tt.unannotated)
			}
			if d.String() != tt.input {
				t.Errorf("String() = %q, want %q", d.String(), tt.input)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "42", "?", "#"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) should have failed", input)
		}
	}
}

func TestNaturalOrdering(t *testing.T) {
	refs := []string{"R10", "R2", "C1", "R1", "U3B", "U3A", "R?"}
	sort.Slice(refs, func(i, j int) bool { return Less(refs[i], refs[j]) })

	want := "C1 R1 R2 R10 R? U3A U3B"
	if got := strings.Join(refs, " "); got != want {
		t.Errorf("Sorted order = %q, want %q", got, want)
	}
}

func TestGroupByPrefix(t *testing.T) {
	groups := GroupByPrefix([]string{"R1", "C3", "R2", "#PWR01", "U1"})

	if len(groups["R"]) != 2 {
		t.Errorf("Expected 2 refs under R, got %v", groups["R"])
	}
	if len(groups["C"]) != 1 || groups["C"][0] != "C3" {
		t.Errorf("Expected [C3] under C, got %v", groups["C"])
	}
	if len(groups["PWR"]) != 1 || groups["PWR"][0] != "#PWR01" {
		t.Errorf("Expected [#PWR01] under PWR, got %v", groups["PWR"])
	}
	if len(groups["U"]) != 1 {
		t.Errorf("Expected 1 ref under U, got %v", groups["U"])
	}
}
