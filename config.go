package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cast"
)

// Source records where a resolved option value came from.
type Source int

const (
	SourceDefault Source = iota
	SourceConfig
	SourceFlag
)

func (s Source) String() string {
	switch s {
	case SourceConfig:
		return "config"
	case SourceFlag:
		return "flag"
	default:
		return "default"
	}
}

// maxVerbosity is the -v count that enables trace logging.
const maxVerbosity = 5

// Options holds the resolved configuration for one run.
type Options struct {
	Key       string
	KeyPass   string
	PassFile  string
	Host      string
	Port      int
	User      string
	Project   string
	Addresses string
	Verbose   int
	Strict    bool
	DryRun    bool
	ChangeID  string

	sources map[string]Source
}

// Source reports where the named option was resolved from.
func (o *Options) Source(name string) Source {
	return o.sources[name]
}

// LogValue implements slog.LogValuer. Passphrases are redacted.
func (o *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("key", o.Key),
		slog.String("keypass", redact(o.KeyPass)),
		slog.String("passfile", o.PassFile),
		slog.String("host", o.Host),
		slog.Int("port", o.Port),
		slog.String("user", o.User),
		slog.String("project", o.Project),
		slog.String("addresses", o.Addresses),
		slog.Int("verbose", o.Verbose),
		slog.Bool("strict", o.Strict),
		slog.Bool("dry_run", o.DryRun),
		slog.String("change_id", o.ChangeID),
	)
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "[redacted]"
}

// option binds a flag name, which doubles as its config file key, to the
// Options field it fills.
type option struct {
	name string
	set  func(o *Options, value interface{}) error
}

func stringOption(name string, field func(*Options) *string) option {
	return option{name: name, set: func(o *Options, v interface{}) error {
		s, err := cast.ToStringE(v)
		*field(o) = s
		return err
	}}
}

func intOption(name string, field func(*Options) *int) option {
	return option{name: name, set: func(o *Options, v interface{}) error {
		if err := checkWhole(v); err != nil {
			return err
		}
		n, err := cast.ToIntE(v)
		*field(o) = n
		return err
	}}
}

// checkWhole rejects fractional numbers, which cast would truncate.
func checkWhole(v interface{}) error {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	default:
		return nil
	}
	if f != math.Trunc(f) {
		return fmt.Errorf("%v is not a whole number", v)
	}
	return nil
}

func boolOption(name string, field func(*Options) *bool) option {
	return option{name: name, set: func(o *Options, v interface{}) error {
		b, err := cast.ToBoolE(v)
		*field(o) = b
		return err
	}}
}

// options is the fixed set of keys merged from the command line and the
// config file.
var options = []option{
	stringOption("key", func(o *Options) *string { return &o.Key }),
	stringOption("keypass", func(o *Options) *string { return &o.KeyPass }),
	stringOption("passfile", func(o *Options) *string { return &o.PassFile }),
	stringOption("host", func(o *Options) *string { return &o.Host }),
	intOption("port", func(o *Options) *int { return &o.Port }),
	stringOption("user", func(o *Options) *string { return &o.User }),
	stringOption("project", func(o *Options) *string { return &o.Project }),
	stringOption("addresses", func(o *Options) *string { return &o.Addresses }),
	intOption("verbose", func(o *Options) *int { return &o.Verbose }),
	boolOption("strict", func(o *Options) *bool { return &o.Strict }),
	boolOption("dry-run", func(o *Options) *bool { return &o.DryRun }),
}

func isOption(name string) bool {
	for _, opt := range options {
		if opt.name == name {
			return true
		}
	}
	return false
}

// passphraseOptions are resolved as a group: if either is given on the
// command line, neither is taken from the config file.
var passphraseOptions = map[string]bool{"keypass": true, "passfile": true}

// ResolveOptions merges the command line with the config file. For every
// option an explicit flag wins, even when empty, then the config file, then
// the flag's built-in default.
func ResolveOptions(args *Arguments, cfg *ConfigFile, env *Environment) (*Options, error) {
	opts := &Options{
		ChangeID: args.ChangeID,
		sources:  make(map[string]Source, len(options)),
	}

	passphraseOnCLI := args.Explicit("keypass") || args.Explicit("passfile")

	for _, opt := range options {
		flag := args.Flags.Lookup(opt.name)

		var value interface{} = flag.DefValue
		source := SourceDefault

		if flag.Changed {
			value, source = flag.Value.String(), SourceFlag
		} else if v, ok := cfg.Values[opt.name]; ok && v != nil && !(passphraseOnCLI && passphraseOptions[opt.name]) {
			value, source = v, SourceConfig
		}

		if err := opt.set(opts, value); err != nil {
			if source == SourceConfig {
				return nil, &ConfigFormatError{Path: cfg.Path, Key: opt.name, Err: err}
			}
			return nil, err
		}
		opts.sources[opt.name] = source
	}

	if opts.User == "" {
		opts.User = env.Username
	}
	opts.Verbose = max(0, min(opts.Verbose, maxVerbosity))

	opts.Key = env.ExpandPath(opts.Key)
	opts.Addresses = env.ExpandPath(opts.Addresses)
	if opts.PassFile != "" {
		opts.PassFile = env.ExpandPath(opts.PassFile)
	}

	return opts, nil
}
