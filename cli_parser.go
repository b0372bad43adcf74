package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Arguments is the parsed command line.
type Arguments struct {
	Flags    *pflag.FlagSet
	ChangeID string
}

// Explicit reports whether the user typed the named flag.
func (a *Arguments) Explicit(name string) bool {
	f := a.Flags.Lookup(name)
	return f != nil && f.Changed
}

// Verbosity is the -v count given on the command line.
func (a *Arguments) Verbosity() int {
	n, _ := a.Flags.GetCount("verbose")
	return n
}

// LogValue lists the explicit flags without their values so that
// passphrases never reach the log.
func (a *Arguments) LogValue() slog.Value {
	var explicit []string
	a.Flags.Visit(func(f *pflag.Flag) { explicit = append(explicit, f.Name) })
	return slog.GroupValue(
		slog.Any("explicit", explicit),
		slog.String("change_id", a.ChangeID),
	)
}

// ParseArgs parses env.Args. It returns nil Arguments and a nil error when
// help or version output was requested and has already been written.
// Every other failure is a *UsageError.
func ParseArgs(env *Environment) (*Arguments, error) {
	categories := DefineAllFlags()
	usage := RenderHelpFromFlags(env.Program, categories)

	var parsed *Arguments
	cmd := &cobra.Command{
		Use:           env.Program + " [flags] CHANGE_ID",
		Short:         "Add reviewers to a Gerrit change",
		Version:       Get().Version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed = &Arguments{
				Flags:    cmd.Flags(),
				ChangeID: ParseChangeID(args[0]),
			}
			return nil
		},
	}

	registerFlags(cmd.Flags(), categories)
	cmd.MarkFlagsMutuallyExclusive("keypass", "passfile")

	cmd.SetArgs(env.Args)
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)
	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), usage)
	})
	cmd.SetVersionTemplate(versionText(env.Program))

	if err := cmd.Execute(); err != nil {
		return nil, &UsageError{Usage: usage, Err: err}
	}

	return parsed, nil
}
