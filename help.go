package main

import (
	"fmt"
	"strings"
)

// RenderHelpFromFlags renders help text from flag categories.
func RenderHelpFromFlags(programName string, categories []FlagCategory) string {
	var result strings.Builder

	// Write the header
	result.WriteString(fmt.Sprintf(`Usage: %s [flags] CHANGE_ID

Add reviewers to a Gerrit change.

Reads reviewer emails from the addresses file, one per line, and adds
them to CHANGE_ID by running "gerrit set-reviewers" over SSH.

CHANGE_ID may be a change number, a Change-Id, or a change URL
(e.g. "https://review.openstack.org/#/c/235550/").

Options not given on the command line are read from ~/.gar/config,
a JSON object keyed by long flag name (e.g. {"host": "review.example.org"}).
--keypass and --passfile are mutually exclusive.

`, programName))

	// Find the maximum flag display width for consistent alignment
	maxWidth := 0
	for _, category := range categories {
		for _, flag := range category.Flags {
			flagDisplay := flag.Display()
			if len(flagDisplay) > maxWidth {
				maxWidth = len(flagDisplay)
			}
		}
	}

	// Ensure minimum width for readability
	if maxWidth < 20 {
		maxWidth = 20
	}

	// Write each category
	for _, category := range categories {
		result.WriteString(fmt.Sprintf("%s\n", category.Name))

		for _, flag := range category.Flags {
			flagDisplay := flag.Display()
			padding := strings.Repeat(" ", maxWidth-len(flagDisplay)+2)
			description := flag.Description
			if s, ok := flag.Default.(string); ok && s != "" {
				description += fmt.Sprintf(" (default %q)", s)
			}
			if n, ok := flag.Default.(int); ok && flag.Type == "int" {
				description += fmt.Sprintf(" (default %d)", n)
			}
			result.WriteString(fmt.Sprintf("  %s%s%s\n", flagDisplay, padding, description))
		}
		result.WriteString("\n")
	}

	// Write examples section
	result.WriteString(fmt.Sprintf(`Examples:
  # Add the reviewers listed in ~/.gar/reviewers to change 235550.
  %s 235550

  # Use another Gerrit server and reviewer list.
  %s -s review.example.org -u alice -a ./reviewers 1234

  # Show the command without connecting.
  %s -n https://review.openstack.org/#/c/235550/
`, programName, programName, programName))

	return result.String()
}
