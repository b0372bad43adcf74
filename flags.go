package main

import (
	"fmt"

	"github.com/sorrowless/gar/gerrit"
	"github.com/spf13/pflag"
)

// FlagInfo contains information about a command-line flag.
type FlagInfo struct {
	Name        string
	ShortName   string
	Type        string // "bool", "count", "int", "string"
	Description string
	Default     interface{}
}

// Display formats the flag for display in help text.
func (flag FlagInfo) Display() string {
	display := "--" + flag.Name

	// Add short flag if available.
	if flag.ShortName != "" {
		display = fmt.Sprintf("-%s, --%s", flag.ShortName, flag.Name)
	}

	// Add type indicator for flags that take a value.
	switch flag.Type {
	case "string":
		display += " string"
	case "int":
		display += " int"
	}

	return display
}

// FlagCategory represents a group of related flags.
type FlagCategory struct {
	Name  string
	Flags []FlagInfo
}

// DefineAllFlags returns gar's flags grouped for the help text.
func DefineAllFlags() []FlagCategory {
	return []FlagCategory{
		{
			Name: "Connection:",
			Flags: []FlagInfo{
				{Name: "host", ShortName: "s", Type: "string", Description: "Gerrit host to connect to", Default: "review.openstack.org"},
				{Name: "port", ShortName: "p", Type: "int", Description: "Gerrit SSH port", Default: gerrit.DefaultPort},
				{Name: "user", ShortName: "u", Type: "string", Description: "Remote username (default is your login name)", Default: ""},
				{Name: "key", ShortName: "k", Type: "string", Description: "Path to the private key", Default: "~/.ssh/id_rsa"},
				{Name: "keypass", Type: "string", Description: "Passphrase for the private key", Default: ""},
				{Name: "passfile", Type: "string", Description: "File holding the private key passphrase", Default: ""},
			},
		},
		{
			Name: "Review:",
			Flags: []FlagInfo{
				{Name: "project", Type: "string", Description: "Gerrit project the change belongs to", Default: "openstack/fuel-library"},
				{Name: "addresses", ShortName: "a", Type: "string", Description: "File with reviewer emails, one per line", Default: "~/.gar/reviewers"},
			},
		},
		{
			Name: "Behaviour:",
			Flags: []FlagInfo{
				{Name: "dry-run", ShortName: "n", Type: "bool", Description: "Print the Gerrit command instead of running it", Default: false},
				{Name: "strict", Type: "bool", Description: "Fail when Gerrit reports an error", Default: false},
			},
		},
		{
			Name: "Utility:",
			Flags: []FlagInfo{
				{Name: "verbose", ShortName: "v", Type: "count", Description: "Raise log verbosity, repeat for more (-vvvv)", Default: 0},
				{Name: "help", ShortName: "h", Type: "bool", Description: "Show this help", Default: false},
				{Name: "version", Type: "bool", Description: "Show version information", Default: false},
			},
		},
	}
}

// registerFlags registers every flag in categories on fs.
func registerFlags(fs *pflag.FlagSet, categories []FlagCategory) {
	for _, category := range categories {
		for _, flag := range category.Flags {
			switch flag.Type {
			case "bool":
				fs.BoolP(flag.Name, flag.ShortName, flag.Default.(bool), flag.Description)
			case "count":
				fs.CountP(flag.Name, flag.ShortName, flag.Description)
			case "int":
				fs.IntP(flag.Name, flag.ShortName, flag.Default.(int), flag.Description)
			case "string":
				fs.StringP(flag.Name, flag.ShortName, flag.Default.(string), flag.Description)
			}
		}
	}
}
