package cmd

import (
	"fmt"

	"github.com/MichaelAyles/kicad-snippets/pkg/kicad/schematic"
	"github.com/spf13/cobra"
)

var (
	wrapTitle  string
	wrapUUID   string
	wrapPaper  string
	wrapOutput string
)

var wrapCmd = &cobra.Command{
	Use:   "wrap <snippet_file>",
	Short: "Wrap a clipboard snippet into a full schematic file",
	Long: `Wrap a bare clipboard snippet into a standalone .kicad_sch document
by synthesizing a file header. The snippet body is preserved byte-for-byte.

When no --paper is given, the sheet size is chosen from the snippet's
measured component geometry.`,
	Args: cobra.ExactArgs(1),
	RunE: runWrap,
}

func init() {
	rootCmd.AddCommand(wrapCmd)
	wrapCmd.Flags().StringVar(&wrapTitle, "title", "", "title block title")
	wrapCmd.Flags().StringVar(&wrapUUID, "uuid", "", "document UUID (generated when omitted)")
	wrapCmd.Flags().StringVar(&wrapPaper, "paper", "", "paper size (chosen from geometry when omitted)")
	wrapCmd.Flags().StringVarP(&wrapOutput, "output", "o", "", "output file (stdout when omitted)")
}

func runWrap(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	result := schematic.Validate(text)
	if !result.Valid {
		cmd.SilenceUsage = true
		return fmt.Errorf("refusing to wrap invalid input: %v", result.Errors)
	}
	if !result.IsSnippet {
		cmd.SilenceUsage = true
		return fmt.Errorf("input is already a full schematic document")
	}

	paper := wrapPaper
	if paper == "" {
		sheet := schematic.SelectSheetSize(result.Metadata.BoundingBox)
		paper = sheet.Size
		if sheet.IsOversized {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: content exceeds %s, the largest standard sheet\n", sheet.Size)
		}
	}

	full := schematic.WrapSnippet(text, schematic.WrapOptions{
		Title: wrapTitle,
		UUID:  wrapUUID,
		Paper: paper,
	})
	return writeOutput(wrapOutput, full)
}
