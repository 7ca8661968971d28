package cmd

import (
	"fmt"

	"github.com/MichaelAyles/kicad-snippets/pkg/kicad/schematic"
	"github.com/spf13/cobra"
)

var unwrapOutput string

var unwrapCmd = &cobra.Command{
	Use:   "unwrap <schematic_file>",
	Short: "Extract the snippet from a full schematic file",
	Long: `Extract the clipboard snippet from a standalone .kicad_sch document:
only the lib_symbols and symbol blocks survive, so the next paste into a
schematic editor carries no foreign title block or paper setting.`,
	Args: cobra.ExactArgs(1),
	RunE: runUnwrap,
}

func init() {
	rootCmd.AddCommand(unwrapCmd)
	unwrapCmd.Flags().StringVarP(&unwrapOutput, "output", "o", "", "output file (stdout when omitted)")
}

func runUnwrap(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	if schematic.IsSnippet(text) {
		cmd.SilenceUsage = true
		return fmt.Errorf("input is already a snippet")
	}

	snippet := schematic.ExtractSnippet(text)
	if snippet == "" {
		cmd.SilenceUsage = true
		return fmt.Errorf("no symbol content found in %s", args[0])
	}
	return writeOutput(unwrapOutput, snippet+"\n")
}
