package cmd

import (
	"fmt"
	"strings"

	"github.com/MichaelAyles/kicad-snippets/pkg/kicad/schematic"
	"github.com/spf13/cobra"
)

var (
	attribAuthor  string
	attribURL     string
	attribLicense string
	attribDate    string
	attribConfig  string
	attribGitHub  string
	attribOutput  string
)

var attribCmd = &cobra.Command{
	Use:   "attrib <schematic_file>",
	Short: "Add provenance comment lines to a schematic header",
	Long: `Splice author/source/license/date comment lines into a full
schematic document's header. Flags override values loaded from an
optional YAML defaults file.

With --github owner/repo the author and source are derived from the
repository, the form used by the batch-import pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: runAttrib,
}

func init() {
	rootCmd.AddCommand(attribCmd)
	attribCmd.Flags().StringVar(&attribAuthor, "author", "", "author name")
	attribCmd.Flags().StringVar(&attribURL, "url", "", "source URL")
	attribCmd.Flags().StringVar(&attribLicense, "license", "", "license identifier")
	attribCmd.Flags().StringVar(&attribDate, "date", "", "import date (today when omitted)")
	attribCmd.Flags().StringVar(&attribConfig, "config", "", "YAML file with attribution defaults")
	attribCmd.Flags().StringVar(&attribGitHub, "github", "", "GitHub repository as owner/repo")
	attribCmd.Flags().StringVarP(&attribOutput, "output", "o", "", "output file (stdout when omitted)")
}

func runAttrib(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	if schematic.IsSnippet(text) {
		cmd.SilenceUsage = true
		return fmt.Errorf("attribution requires a full schematic document; wrap the snippet first")
	}

	attr := schematic.Attribution{}
	if attribConfig != "" {
		attr, err = schematic.LoadAttributionFile(attribConfig)
		if err != nil {
			return err
		}
	}
	if attribAuthor != "" {
		attr.Author = attribAuthor
	}
	if attribURL != "" {
		attr.URL = attribURL
	}
	if attribLicense != "" {
		attr.License = attribLicense
	}
	if attribDate != "" {
		attr.Date = attribDate
	}

	var out string
	if attribGitHub != "" {
		owner, repo, ok := strings.Cut(attribGitHub, "/")
		if !ok {
			return fmt.Errorf("--github expects owner/repo, got %q", attribGitHub)
		}
		url := attr.URL
		if url == "" {
			url = fmt.Sprintf("https://github.com/%s/%s", owner, repo)
		}
		out = schematic.AddGitHubAttribution(text, owner, repo, url, attr.License)
	} else {
		out = schematic.AddAttribution(text, attr)
	}
	return writeOutput(attribOutput, out)
}
