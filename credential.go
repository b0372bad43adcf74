package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"unicode"

	"github.com/spf13/afero"
)

// resolveCredential returns the private key passphrase: the inline
// passphrase if set, otherwise the contents of the passphrase file with
// trailing whitespace removed, otherwise "".
func resolveCredential(fsys afero.Fs, opts *Options, logger *slog.Logger) (string, error) {
	logger.Debug("read private key password")

	if opts.KeyPass != "" {
		return opts.KeyPass, nil
	}
	if opts.PassFile == "" {
		return "", nil
	}

	data, err := afero.ReadFile(fsys, opts.PassFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &CredentialFileNotFoundError{Path: opts.PassFile, Err: err}
		}
		return "", fmt.Errorf("failed to read passphrase file: %w", err)
	}
	return strings.TrimRightFunc(string(data), unicode.IsSpace), nil
}
