// Package refdes parses schematic reference designators such as "R1",
// "U3A", "#PWR01" and the unannotated form "R?".
package refdes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// RefLexer defines the token structure of a reference designator.
var RefLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Power symbols carry a leading # (e.g. #PWR01, #FLG02)
	{Name: "Hash", Pattern: `#`},

	// Prefix and unit suffix are letter runs (R, U, SW, A of U3A)
	{Name: "Letters", Pattern: `[A-Za-z]+`},

	{Name: "Number", Pattern: `[0-9]+`},

	// Unannotated placeholder written by the editor before annotation
	{Name: "Query", Pattern: `\?`},
})

// Designator is a parsed reference designator.
// Number is nil for bare prefixes and unannotated references.
type Designator struct {
	Power       bool    `parser:"@Hash?"`
	Prefix      string  `parser:"@Letters"`
	Number      *string `parser:"@Number?"`
	Unit        string  `parser:"@Letters?"`
	Unannotated bool    `parser:"@Query?"`
}

var parser = participle.MustBuild[Designator](
	participle.Lexer(RefLexer),
)

// Parse parses a single reference designator.
func Parse(ref string) (*Designator, error) {
	d, err := parser.ParseString("", ref)
	if err != nil {
		return nil, fmt.Errorf("invalid reference designator %q: %w", ref, err)
	}
	return d, nil
}

// Num returns the designator's number, or -1 when unannotated or absent.
func (d *Designator) Num() int {
	if d.Number == nil {
		return -1
	}
	n, err := strconv.Atoi(*d.Number)
	if err != nil {
		return -1
	}
	return n
}

// String reassembles the canonical textual form.
func (d *Designator) String() string {
	var sb strings.Builder
	if d.Power {
		sb.WriteByte('#')
	}
	sb.WriteString(d.Prefix)
	if d.Number != nil {
		sb.WriteString(*d.Number)
	}
	sb.WriteString(d.Unit)
	if d.Unannotated {
		sb.WriteByte('?')
	}
	return sb.String()
}

// Less orders references naturally: by prefix, then numerically (R2 before
// R10), then by unit letter. Unannotated references sort after annotated
// ones with the same prefix. Unparseable references fall back to plain
// string order.
func Less(a, b string) bool {
	da, errA := Parse(a)
	db, errB := Parse(b)
	if errA != nil || errB != nil {
		return a < b
	}
	if da.Prefix != db.Prefix {
		return da.Prefix < db.Prefix
	}
	na, nb := da.Num(), db.Num()
	if na != nb {
		if na == -1 {
			return false
		}
		if nb == -1 {
			return true
		}
		return na < nb
	}
	return da.Unit < db.Unit
}

// GroupByPrefix buckets references by prefix, preserving each bucket's
// insertion order. Power symbols group under their #-less prefix.
func GroupByPrefix(refs []string) map[string][]string {
	groups := make(map[string][]string)
	for _, ref := range refs {
		d, err := Parse(ref)
		if err != nil {
			groups[ref] = append(groups[ref], ref)
			continue
		}
		groups[d.Prefix] = append(groups[d.Prefix], ref)
	}
	return groups
}
