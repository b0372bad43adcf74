package main

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoReviewers is returned when the addresses file holds no addresses.
var ErrNoReviewers = errors.New("no reviewers found")

// UsageError reports a command line that does not match gar's grammar.
// Usage holds the help text to show alongside it.
type UsageError struct {
	Usage string
	Err   error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ConfigFormatError reports a config file that exists but cannot be used.
type ConfigFormatError struct {
	Path string
	Key  string // empty when the whole file failed to parse
	Err  error
}

func (e *ConfigFormatError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("config file %s: invalid value for %q: %v", e.Path, e.Key, e.Err)
	}
	return fmt.Sprintf("config file %s is not valid JSON: %v", e.Path, e.Err)
}

func (e *ConfigFormatError) Unwrap() error { return e.Err }

// CredentialFileNotFoundError reports a missing passphrase file.
type CredentialFileNotFoundError struct {
	Path string
	Err  error
}

func (e *CredentialFileNotFoundError) Error() string {
	return fmt.Sprintf("file with credentials was not found: %s", e.Path)
}

func (e *CredentialFileNotFoundError) Unwrap() error { return e.Err }

// ReviewersFileNotFoundError reports a missing addresses file.
type ReviewersFileNotFoundError struct {
	Path string
	Err  error
}

func (e *ReviewersFileNotFoundError) Error() string {
	return fmt.Sprintf("file with reviewers was not found: %s", e.Path)
}

func (e *ReviewersFileNotFoundError) Unwrap() error { return e.Err }

// RemoteCommandError reports a set-reviewers command that Gerrit refused.
// It is only produced in strict mode.
type RemoteCommandError struct {
	Command    string
	ExitStatus int
	Stderr     string
}

func (e *RemoteCommandError) Error() string {
	msg := fmt.Sprintf("remote command %q failed with exit status %d", e.Command, e.ExitStatus)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}
