// Package gerrit talks to a Gerrit server over its SSH command interface.
//
// A Client wraps one authenticated SSH connection. Commands are run one at a
// time on a fresh session and both output streams are captured in full before
// the call returns.
package gerrit

import (
	"log/slog"

	"github.com/spf13/afero"
)

// DefaultPort is the port Gerrit's SSH daemon listens on.
const DefaultPort = 29418

// Config describes how to reach and authenticate against a Gerrit host.
type Config struct {
	Host string
	Port int
	User string

	// KeyPath is the private key used for public key authentication.
	// When KeyOptional is set and the file does not exist, the key is
	// skipped and only the SSH agent is tried.
	KeyPath     string
	KeyOptional bool
	Passphrase  string

	// UseAgent enables authentication through SSH_AUTH_SOCK.
	UseAgent bool

	// KnownHostsFiles are consulted for host key verification. Hosts
	// missing from every file are trusted on first use.
	KnownHostsFiles []string

	// SSHConfigFile is an OpenSSH client config used to resolve HostName
	// aliases.
	SSHConfigFile string

	// Fs is used to read the private key and the ssh config file, and to
	// check which known_hosts files exist.
	Fs     afero.Fs
	Logger *slog.Logger
}

// Result holds the captured output of a remote command.
type Result struct {
	Command    string
	Stdout     []byte
	Stderr     []byte
	ExitStatus int // -1 when the server did not report one
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c Config) fs() afero.Fs {
	if c.Fs != nil {
		return c.Fs
	}
	return afero.NewOsFs()
}
