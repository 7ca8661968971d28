package sexpr

import (
	"strings"
	"testing"
)

func TestStringCompact(t *testing.T) {
	node, err := Parse(`(symbol  (lib_id   "Device:R")
		(at 10 20 0))`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := `(symbol (lib_id "Device:R") (at 10 20 0))`
	if got := node.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStringEscapesReparse(t *testing.T) {
	orig := &List{Items: []Node{Atom("title"), Str(`quote " and back\slash`)}}

	reparsed, err := Parse(orig.String())
	if err != nil {
		t.Fatalf("Reparse of %q failed: %v", orig.String(), err)
	}
	if !Equal(orig, reparsed) {
		t.Errorf("Write/reparse changed the tree: %q -> %q", orig.String(), reparsed.String())
	}
}

func TestFormatIndents(t *testing.T) {
	node, err := Parse(`(symbol (lib_id "Device:R") (at 10 20 0) (property "Reference" "R1"))`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	out := Format(node)
	if !strings.Contains(out, "\n\t(lib_id \"Device:R\")") {
		t.Errorf("Expected tab-indented lib_id line, got:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n)") {
		t.Errorf("Expected closing paren on its own line, got:\n%s", out)
	}

	reparsed, err := Parse(out)
	if err != nil {
		t.Fatalf("Reparse of formatted output failed: %v", err)
	}
	if !Equal(node, reparsed) {
		t.Error("Format/reparse changed the tree")
	}
}

func TestFormatFlatListStaysOnOneLine(t *testing.T) {
	node, err := Parse(`(at 10 20 90)`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := Format(node); got != "(at 10 20 90)" {
		t.Errorf("Format of flat list = %q, want single line", got)
	}
}
