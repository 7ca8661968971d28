package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "snip",
	Short: "KiCad schematic snippet tools",
	Long: `snip validates, inspects and converts KiCad schematic text:
complete .kicad_sch documents or bare clipboard snippets copied out of
the schematic editor.

Examples:
  snip check circuit.kicad_sch        # Validate a schematic or snippet
  snip info circuit.kicad_sch         # Show extracted metadata
  snip wrap - < clipboard.txt         # Wrap a snippet into a full file
  snip unwrap circuit.kicad_sch       # Recover the snippet for re-pasting
  snip attrib --author "Jane" in.kicad_sch
  snip strip circuit.kicad_sch        # Drop hierarchical sheet references`,
	Version: "0.9.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// readInput reads schematic text from a file path, or from stdin when the
// path is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// writeOutput writes transformed text to a file, or to stdout when the
// path is empty or "-".
func writeOutput(path, text string) error {
	if path == "" || path == "-" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
