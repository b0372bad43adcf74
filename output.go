package main

import (
	"log/slog"
	"strings"

	"github.com/sorrowless/gar/gerrit"
)

// reportResult logs what Gerrit printed. In strict mode any output on
// stderr, or a non-zero exit status, is returned as a *RemoteCommandError.
func reportResult(res *gerrit.Result, strict bool, logger *slog.Logger) error {
	stderr := strings.TrimRight(string(res.Stderr), "\n")
	stdout := strings.TrimRight(string(res.Stdout), "\n")

	if stderr != "" {
		logger.Error(stderr)
	}
	if stdout != "" {
		logger.Info(stdout)
	}
	logger.Debug("remote command finished", "exit_status", res.ExitStatus)

	if strict && (stderr != "" || res.ExitStatus > 0) {
		return &RemoteCommandError{
			Command:    res.Command,
			ExitStatus: res.ExitStatus,
			Stderr:     stderr,
		}
	}
	return nil
}
