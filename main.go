// Package main implements gar, a tool that adds reviewers to a Gerrit
// change.
//
// gar reads reviewer email addresses from a file, one per line, and adds
// them to a change by running "gerrit set-reviewers" over Gerrit's SSH
// interface.
//
// Options come from the command line first, then from the JSON config file
// at ~/.gar/config, then from built-in defaults, decided per option.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

func main() {
	env, err := NewOSEnvironment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(execute(context.Background(), env, DialGerrit))
}

// execute runs gar in env and returns the process exit status.
func execute(ctx context.Context, env *Environment, dial Dialer) int {
	level := new(slog.LevelVar)
	level.Set(LevelCritical)
	logger := newLogger(env.Stderr, level)

	args, err := ParseArgs(env)
	if err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprint(env.Stderr, usageErr.Usage)
			fmt.Fprintf(env.Stderr, "\nError: %v\n", usageErr.Err)
			return 1
		}
		logger.Log(ctx, LevelCritical, err.Error())
		return 1
	}
	if args == nil {
		return 0
	}

	level.Set(levelForVerbosity(args.Verbosity()))
	logger.Debug("passed arguments", "args", args)

	cfg, err := LoadConfig(env, logger)
	if err != nil {
		logger.Log(ctx, LevelCritical, err.Error())
		return 1
	}

	opts, err := ResolveOptions(args, cfg, env)
	if err != nil {
		logger.Log(ctx, LevelCritical, err.Error())
		return 1
	}
	level.Set(levelForVerbosity(opts.Verbose))
	logger.Info("resolved options", "options", opts)

	if err := Run(ctx, opts, env, dial, logger); err != nil {
		logger.Log(ctx, LevelCritical, err.Error())
		return 1
	}
	return 0
}
