package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/MichaelAyles/kicad-snippets/pkg/kicad/refdes"
	"github.com/MichaelAyles/kicad-snippets/pkg/kicad/schematic"
	"github.com/spf13/cobra"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info <schematic_file>",
	Short: "Show schematic metadata",
	Long: `Display the metadata extracted from a KiCad schematic document or
snippet: components grouped by reference prefix, unique parts, nets,
footprint assignment, measured bounding box and the recommended sheet
size.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "emit metadata as JSON")
}

func runInfo(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	result := schematic.Validate(text)
	if !result.Valid {
		cmd.SilenceUsage = true
		return fmt.Errorf("invalid schematic: %s", strings.Join(result.Errors, "; "))
	}
	meta := result.Metadata
	sheet := schematic.SelectSheetSize(meta.BoundingBox)

	if infoJSON {
		out := struct {
			*schematic.ParsedMetadata
			SheetSize schematic.SheetSizeResult `json:"sheetSize"`
			IsSnippet bool                      `json:"isSnippet"`
		}{meta, sheet, result.IsSnippet}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	printInfo(args[0], result, sheet)
	return nil
}

func printInfo(filename string, result schematic.ValidationResult, sheet schematic.SheetSizeResult) {
	meta := result.Metadata

	fmt.Printf("Schematic: %s\n", filename)
	fmt.Printf("Format: %s\n", result.OriginalFormat)
	if meta.Version != 0 {
		fmt.Printf("Version: %d\n", meta.Version)
	}
	if meta.Generator != "" {
		fmt.Printf("Generator: %s\n", meta.Generator)
	}
	if meta.Title != "" {
		fmt.Printf("Title: %s\n", meta.Title)
	}
	fmt.Println()

	fmt.Println("Statistics:")
	fmt.Printf("  Components: %d\n", meta.ComponentCount)
	fmt.Printf("  Unique parts: %d\n", len(meta.UniqueComponents))
	fmt.Printf("  Wires: %d\n", meta.WireCount)
	fmt.Printf("  Nets: %d\n", meta.NetCount)
	if meta.SheetCount > 0 {
		fmt.Printf("  Hierarchical sheets: %d\n", meta.SheetCount)
	}
	fmt.Printf("  Footprints: %d assigned, %d unassigned\n", meta.Footprints.Assigned, meta.Footprints.Unassigned)
	fmt.Println()

	if len(meta.Components) > 0 {
		fmt.Println("Components:")
		var refs []string
		for _, c := range meta.Components {
			if c.Reference != "" {
				refs = append(refs, c.Reference)
			}
		}
		groups := refdes.GroupByPrefix(refs)
		var prefixes []string
		for p := range groups {
			prefixes = append(prefixes, p)
		}
		sort.Strings(prefixes)
		for _, prefix := range prefixes {
			group := groups[prefix]
			sort.Slice(group, func(i, j int) bool { return refdes.Less(group[i], group[j]) })
			fmt.Printf("  %s: %s\n", prefix, strings.Join(group, ", "))
		}
		fmt.Println()
	}

	if len(meta.Nets) > 0 {
		fmt.Println("Nets:")
		for _, n := range meta.Nets {
			fmt.Printf("  %s (%s)\n", n.Name, n.Kind)
		}
		fmt.Println()
	}

	fmt.Printf("Bounding box: %.1f x %.1f mm\n", meta.BoundingBox.Width(), meta.BoundingBox.Height())
	if sheet.IsOversized {
		fmt.Printf("Recommended sheet: %s (oversized; content exceeds the largest standard sheet)\n", sheet.Size)
	} else {
		fmt.Printf("Recommended sheet: %s\n", sheet.Size)
	}

	for _, w := range result.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
}
