package schematic

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ghodss/yaml"
)

// Attribution is the provenance block spliced into a schematic header.
type Attribution struct {
	Author  string `json:"author"`
	URL     string `json:"url"`
	License string `json:"license"`
	Date    string `json:"date"`
}

// LoadAttributionFile reads attribution defaults from a YAML file.
func LoadAttributionFile(path string) (Attribution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Attribution{}, fmt.Errorf("failed to read attribution file: %w", err)
	}
	var attr Attribution
	if err := yaml.Unmarshal(data, &attr); err != nil {
		return Attribution{}, fmt.Errorf("failed to parse attribution file: %w", err)
	}
	return attr, nil
}

// AddAttribution splices four (comment N "...") provenance lines into a
// full schematic document: after the version/generator/uuid header lines
// and before the (paper ...) declaration, matching the anchor's
// indentation. It operates on full files only; calling it on a bare
// snippet is a caller contract violation and is not defended against.
func AddAttribution(text string, attr Attribution) string {
	date := attr.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	lines := strings.Split(text, "\n")
	insertAt := -1
	indent := "\t"
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "(paper") {
			insertAt = i
			indent = line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			break
		}
	}
	if insertAt == -1 {
		// No paper declaration; append after the last header line instead.
		for i, line := range lines {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "(version") ||
				strings.HasPrefix(trimmed, "(generator") ||
				strings.HasPrefix(trimmed, "(uuid") {
				insertAt = i + 1
				indent = line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			}
		}
	}
	if insertAt == -1 {
		return text
	}

	comments := []string{
		fmt.Sprintf("%s(comment 1 %q)", indent, "Author: "+attr.Author),
		fmt.Sprintf("%s(comment 2 %q)", indent, "Source: "+attr.URL),
		fmt.Sprintf("%s(comment 3 %q)", indent, "License: "+attr.License),
		fmt.Sprintf("%s(comment 4 %q)", indent, "Imported: "+date),
	}

	out := make([]string, 0, len(lines)+len(comments))
	out = append(out, lines[:insertAt]...)
	out = append(out, comments...)
	out = append(out, lines[insertAt:]...)
	return strings.Join(out, "\n")
}

// AddGitHubAttribution records provenance for a circuit imported from a
// GitHub repository, defaulting the license note when none is known.
func AddGitHubAttribution(text, owner, repo, url, license string) string {
	if license == "" {
		license = "see repository"
	}
	return AddAttribution(text, Attribution{
		Author:  fmt.Sprintf("%s (github.com/%s/%s)", owner, owner, repo),
		URL:     url,
		License: license,
	})
}
