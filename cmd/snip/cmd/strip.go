package cmd

import (
	"github.com/MichaelAyles/kicad-snippets/pkg/kicad/schematic"
	"github.com/spf13/cobra"
)

var stripOutput string

var stripCmd = &cobra.Command{
	Use:   "strip <schematic_file>",
	Short: "Remove hierarchical sheet references",
	Long: `Remove (sheet ...) elements and the (sheet_instances ...) block from
a schematic. The referenced sub-sheet files are not available outside the
original multi-sheet project, so a renderer would fail on them.

The removal is lossy; use it for preview and thumbnail contexts, not for
stored canonical text.`,
	Args: cobra.ExactArgs(1),
	RunE: runStrip,
}

func init() {
	rootCmd.AddCommand(stripCmd)
	stripCmd.Flags().StringVarP(&stripOutput, "output", "o", "", "output file (stdout when omitted)")
}

func runStrip(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}
	return writeOutput(stripOutput, schematic.RemoveHierarchicalSheets(text))
}
