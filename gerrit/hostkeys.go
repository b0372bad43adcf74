package gerrit

import (
	"errors"
	"io/fs"
	"log/slog"
	"net"

	"github.com/skeema/knownhosts"
	"github.com/spf13/afero"
	"golang.org/x/crypto/ssh"
)

// hostKeyPolicy trusts unknown hosts on first use and verifies hosts that
// already have a known_hosts entry.
type hostKeyPolicy struct {
	db     *knownhosts.HostKeyDB
	logger *slog.Logger
}

// newHostKeyPolicy loads the known_hosts files that exist in fsys. The
// knownhosts database opens its files by path, so a listed file must also be
// readable from the OS filesystem.
func newHostKeyPolicy(fsys afero.Fs, files []string, logger *slog.Logger) *hostKeyPolicy {
	p := &hostKeyPolicy{logger: logger}

	var existing []string
	for _, f := range files {
		if _, err := fsys.Stat(f); err == nil {
			existing = append(existing, f)
		} else if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("cannot read known_hosts file", "path", f, "err", err)
		}
	}
	if len(existing) == 0 {
		return p
	}

	db, err := knownhosts.NewDB(existing...)
	if err != nil {
		logger.Warn("ignoring unreadable known_hosts", "files", existing, "err", err)
		return p
	}
	p.db = db
	return p
}

func (p *hostKeyPolicy) check(hostname string, remote net.Addr, key ssh.PublicKey) error {
	fingerprint := ssh.FingerprintSHA256(key)
	if p.db == nil {
		p.logger.Info("trusting host key on first use", "host", hostname, "fingerprint", fingerprint)
		return nil
	}

	err := p.db.HostKeyCallback()(hostname, remote, key)
	switch {
	case err == nil:
		p.logger.Debug("host key verified", "host", hostname, "fingerprint", fingerprint)
		return nil
	case knownhosts.IsHostUnknown(err):
		p.logger.Info("trusting host key on first use", "host", hostname, "fingerprint", fingerprint)
		return nil
	case knownhosts.IsHostKeyChanged(err):
		return &HostKeyError{Host: hostname, Fingerprint: fingerprint, Err: err}
	default:
		return err
	}
}

// algorithms returns the host key algorithms recorded for addr so the server
// offers a key type we can verify. Nil means the library defaults.
func (p *hostKeyPolicy) algorithms(addr string) []string {
	if p.db == nil {
		return nil
	}
	return p.db.HostKeyAlgorithms(addr)
}
