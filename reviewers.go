package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"unicode"

	"github.com/spf13/afero"
)

// loadReviewers reads one reviewer per line from path. Trailing whitespace
// and blank lines are dropped; order and duplicates are kept.
func loadReviewers(fsys afero.Fs, path string, logger *slog.Logger) ([]string, error) {
	logger.Debug("load reviewers list", "path", path)

	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ReviewersFileNotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("failed to open reviewers file: %w", err)
	}
	defer f.Close()

	var reviewers []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)
		if line == "" {
			continue
		}
		reviewers = append(reviewers, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviewers file %s: %w", path, err)
	}

	if len(reviewers) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoReviewers, path)
	}
	return reviewers, nil
}
