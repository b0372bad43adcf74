package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sorrowless/gar/gerrit"
)

// Run adds the reviewers from opts.Addresses to opts.ChangeID. It resolves
// the key passphrase, loads the reviewer list, connects through dial and
// runs a single set-reviewers command. The session is closed on every path
// once it has been opened.
func Run(ctx context.Context, opts *Options, env *Environment, dial Dialer, logger *slog.Logger) error {
	passphrase, err := resolveCredential(env.Fs, opts, logger)
	if err != nil {
		return err
	}

	reviewers, err := loadReviewers(env.Fs, opts.Addresses, logger)
	if err != nil {
		return err
	}
	logger.Log(ctx, LevelTrace, "loaded reviewers", "reviewers", reviewers)

	command := SetReviewers{
		Project:   opts.Project,
		Reviewers: reviewers,
		ChangeID:  opts.ChangeID,
	}.Command()

	if opts.DryRun {
		_, err := fmt.Fprintln(env.Stdout, command)
		return err
	}

	session, err := dial(ctx, gerrit.Config{
		Host:            opts.Host,
		Port:            opts.Port,
		User:            opts.User,
		KeyPath:         opts.Key,
		KeyOptional:     opts.Source("key") == SourceDefault,
		Passphrase:      passphrase,
		UseAgent:        true,
		KnownHostsFiles: []string{env.ExpandPath("~/.ssh/known_hosts")},
		SSHConfigFile:   env.ExpandPath("~/.ssh/config"),
		Fs:              env.Fs,
		Logger:          logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Debug("failed to close session", "err", err)
		}
	}()

	logger.Debug("add reviewers to change", "change_id", opts.ChangeID, "count", len(reviewers))

	res, err := session.Run(ctx, command)
	if err != nil {
		return fmt.Errorf("failed to run %q: %w", command, err)
	}
	if err := reportResult(res, opts.Strict, logger); err != nil {
		return err
	}

	logger.Info("end adding reviewers to change", "change_id", opts.ChangeID)
	return nil
}
