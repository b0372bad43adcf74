package main

import (
	"context"

	"github.com/sorrowless/gar/gerrit"
)

// Session defines the interface for running commands on a Gerrit server.
type Session interface {
	Run(ctx context.Context, command string) (*gerrit.Result, error)
	Close() error
}

// Dialer opens a Session.
type Dialer func(ctx context.Context, cfg gerrit.Config) (Session, error)

// DialGerrit is the Dialer used outside of tests.
func DialGerrit(ctx context.Context, cfg gerrit.Config) (Session, error) {
	client, err := gerrit.Dial(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}
