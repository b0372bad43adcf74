package main

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestFlagInfoDisplay(t *testing.T) {
	tests := []struct {
		name     string
		flag     FlagInfo
		expected string
	}{
		{
			name:     "string flag with shorthand",
			flag:     FlagInfo{Name: "host", ShortName: "s", Type: "string"},
			expected: "-s, --host string",
		},
		{
			name:     "string flag without shorthand",
			flag:     FlagInfo{Name: "keypass", Type: "string"},
			expected: "--keypass string",
		},
		{
			name:     "int flag",
			flag:     FlagInfo{Name: "port", ShortName: "p", Type: "int"},
			expected: "-p, --port int",
		},
		{
			name:     "bool flag",
			flag:     FlagInfo{Name: "strict", Type: "bool"},
			expected: "--strict",
		},
		{
			name:     "count flag",
			flag:     FlagInfo{Name: "verbose", ShortName: "v", Type: "count"},
			expected: "-v, --verbose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flag.Display(); got != tt.expected {
				t.Errorf("Display() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRegisterFlags(t *testing.T) {
	categories := DefineAllFlags()
	fs := pflag.NewFlagSet("gar", pflag.ContinueOnError)
	registerFlags(fs, categories)

	seenShort := make(map[string]string)
	for _, category := range categories {
		for _, info := range category.Flags {
			flag := fs.Lookup(info.Name)
			if flag == nil {
				t.Errorf("flag --%s was not registered", info.Name)
				continue
			}
			if flag.Shorthand != info.ShortName {
				t.Errorf("flag --%s shorthand = %q, want %q", info.Name, flag.Shorthand, info.ShortName)
			}
			if info.ShortName != "" {
				if other, dup := seenShort[info.ShortName]; dup {
					t.Errorf("shorthand -%s used by both --%s and --%s", info.ShortName, other, info.Name)
				}
				seenShort[info.ShortName] = info.Name
			}
		}
	}

	for _, opt := range options {
		if fs.Lookup(opt.name) == nil {
			t.Errorf("option %q has no matching flag", opt.name)
		}
	}
}

func TestFlagDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("gar", pflag.ContinueOnError)
	registerFlags(fs, DefineAllFlags())

	expected := map[string]string{
		"key":       "~/.ssh/id_rsa",
		"host":      "review.openstack.org",
		"port":      "29418",
		"user":      "",
		"project":   "openstack/fuel-library",
		"addresses": "~/.gar/reviewers",
		"verbose":   "0",
		"strict":    "false",
		"dry-run":   "false",
	}
	for name, want := range expected {
		if got := fs.Lookup(name).DefValue; got != want {
			t.Errorf("--%s default = %q, want %q", name, got, want)
		}
	}
}
