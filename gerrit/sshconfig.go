package gerrit

import (
	"log/slog"
	"strings"

	"github.com/kevinburke/ssh_config"
	"github.com/spf13/afero"
)

// resolveHostName maps a Host alias from an OpenSSH client config to its
// HostName. Anything that goes wrong falls back to the alias itself.
func resolveHostName(fsys afero.Fs, path, alias string, logger *slog.Logger) string {
	if path == "" {
		return alias
	}

	f, err := fsys.Open(path)
	if err != nil {
		return alias
	}
	defer f.Close()

	cfg, err := ssh_config.Decode(f)
	if err != nil {
		logger.Warn("ignoring unparsable ssh config", "path", path, "err", err)
		return alias
	}

	name := lookupHostName(cfg, alias)
	if name == "" {
		return alias
	}
	name = strings.ReplaceAll(name, "%h", alias)
	if name != alias {
		logger.Debug("resolved host alias", "alias", alias, "hostname", name)
	}
	return name
}

func lookupHostName(cfg *ssh_config.Config, alias string) (name string) {
	// ssh_config panics on Match directives.
	defer func() {
		if recover() != nil {
			name = ""
		}
	}()
	name, _ = cfg.Get(alias, "HostName")
	return name
}
