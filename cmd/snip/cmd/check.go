package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/MichaelAyles/kicad-snippets/pkg/kicad/schematic"
	"github.com/spf13/cobra"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check <schematic_file>",
	Short: "Validate schematic text",
	Long: `Validate a KiCad schematic document or clipboard snippet.

Checks parenthesis balance, S-expression structure and the KiCad format
version (6.0 or newer), then reports extracted statistics and any content
warnings. Exits non-zero when the input is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "emit the validation result as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	result := schematic.Validate(text)

	if checkJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		printCheckResult(result)
	}

	if !result.Valid {
		cmd.SilenceUsage = true
		return fmt.Errorf("validation failed")
	}
	return nil
}

func printCheckResult(result schematic.ValidationResult) {
	if result.Valid {
		fmt.Println("Valid KiCad schematic")
	} else {
		fmt.Println("Invalid KiCad schematic")
	}
	fmt.Printf("Format: %s\n", result.OriginalFormat)

	for _, e := range result.Errors {
		fmt.Printf("  error: %s\n", e)
	}
	for _, w := range result.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}

	if result.Metadata != nil {
		m := result.Metadata
		fmt.Printf("Components: %d  Wires: %d  Nets: %d\n", m.ComponentCount, m.WireCount, m.NetCount)
	}
}
