package schematic

import "regexp"

// Hierarchical sheet blocks reference nested sheet files that do not
// exist outside the original multi-sheet project. The trailing character
// class keeps sheet from matching sheet_instances.
var (
	sheetInstancesRe = regexp.MustCompile(`\(sheet_instances[\s(]`)
	sheetRe          = regexp.MustCompile(`\(sheet[\s(]`)
)

// RemoveHierarchicalSheets deletes (sheet_instances ...) blocks and
// standalone (sheet ...) elements from schematic text. The result no
// longer references missing sub-sheet files, at the cost of losing the
// hierarchy: explicitly lossy, intended for preview and thumbnail
// contexts only, never for stored canonical text.
func RemoveHierarchicalSheets(text string) string {
	text = removeBlocks(text, sheetInstancesRe)
	text = removeBlocks(text, sheetRe)
	return text
}

// removeBlocks cuts every regex-located block at its balancing paren,
// together with a trailing newline when present.
func removeBlocks(text string, re *regexp.Regexp) string {
	for {
		loc := re.FindStringIndex(text)
		if loc == nil {
			return text
		}
		end, ok := matchParen(text, loc[0])
		if !ok {
			return text
		}
		if end < len(text) && text[end] == '\n' {
			end++
		}
		text = text[:loc[0]] + text[end:]
	}
}
