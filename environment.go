package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Environment carries everything gar reads from the process it runs in.
// Nothing below main looks at os.Args, the OS user database or the real
// filesystem directly.
type Environment struct {
	Program  string
	Args     []string
	Username string
	HomeDir  string
	Fs       afero.Fs
	Stdout   io.Writer
	Stderr   io.Writer
}

// NewOSEnvironment captures the current process environment.
func NewOSEnvironment() (*Environment, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine home directory: %w", err)
	}

	username := os.Getenv("USER")
	if u, err := user.Current(); err == nil {
		username = u.Username
	}

	return &Environment{
		Program:  filepath.Base(os.Args[0]),
		Args:     os.Args[1:],
		Username: username,
		HomeDir:  home,
		Fs:       afero.NewOsFs(),
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}, nil
}

// ExpandPath replaces a leading "~" with the home directory.
func (e *Environment) ExpandPath(path string) string {
	switch {
	case path == "~":
		return e.HomeDir
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(e.HomeDir, path[2:])
	default:
		return path
	}
}

// ConfigPath is the location of gar's optional JSON config file.
func (e *Environment) ConfigPath() string {
	return filepath.Join(e.HomeDir, ".gar", "config")
}
