package sexpr

import "strings"

// String renders the list on one line: children separated by single spaces.
func (l *List) String() string {
	var sb strings.Builder
	writeCompact(&sb, l)
	return sb.String()
}

func (a Atom) String() string {
	return string(a)
}

// String renders the quoted form. Backslashes and quotes are escaped so
// that parsing the output yields an equal tree under the parser's literal
// drop-backslash rule.
func (s Str) String() string {
	var sb strings.Builder
	writeStr(&sb, s)
	return sb.String()
}

// Format renders a node as indented multi-line text, the layout KiCad
// itself writes: a list whose children are all leaves stays on one line,
// a list containing sub-lists breaks each sub-list onto its own line.
func Format(n Node) string {
	var sb strings.Builder
	writeIndented(&sb, n, 0)
	return sb.String()
}

func writeIndented(sb *strings.Builder, n Node, depth int) {
	list, ok := n.(*List)
	if !ok || isFlat(list) {
		writeCompact(sb, n)
		return
	}
	sb.WriteByte('(')
	broke := false
	for i, item := range list.Items {
		sub, isList := item.(*List)
		if isList && (broke || !isFlat(sub) || i > 0) {
			// Every list child after the head group goes on its own line.
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat("\t", depth+1))
			writeIndented(sb, sub, depth+1)
			broke = true
			continue
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeCompact(sb, item)
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("\t", depth))
	sb.WriteByte(')')
}

// isFlat reports whether the list has no list children.
func isFlat(l *List) bool {
	for _, item := range l.Items {
		if _, ok := item.(*List); ok {
			return false
		}
	}
	return true
}

func writeCompact(sb *strings.Builder, n Node) {
	switch v := n.(type) {
	case Atom:
		sb.WriteString(string(v))
	case Str:
		writeStr(sb, v)
	case *List:
		sb.WriteByte('(')
		for i, item := range v.Items {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeCompact(sb, item)
		}
		sb.WriteByte(')')
	}
}

func writeStr(sb *strings.Builder, s Str) {
	sb.WriteByte('"')
	for _, ch := range string(s) {
		if ch == '"' || ch == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteRune(ch)
	}
	sb.WriteByte('"')
}
