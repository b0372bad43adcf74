package gerrit

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/afero"
	sshagent "github.com/xanzy/ssh-agent"
	"golang.org/x/crypto/ssh"
)

// authMethods builds the client auth chain: the private key first, then the
// SSH agent. The returned closer owns the agent connection, if any.
func authMethods(cfg Config) ([]ssh.AuthMethod, io.Closer, error) {
	logger := cfg.logger()

	var methods []ssh.AuthMethod
	signer, err := loadSigner(cfg)
	if err != nil {
		return nil, nil, err
	}
	if signer != nil {
		logger.Debug("using private key", "path", cfg.KeyPath, "type", signer.PublicKey().Type())
		methods = append(methods, ssh.PublicKeys(signer))
	}

	var closer io.Closer
	if cfg.UseAgent && sshagent.Available() {
		agentClient, conn, err := sshagent.New()
		if err != nil {
			logger.Warn("ssh agent unavailable", "err", err)
		} else {
			logger.Debug("using ssh agent")
			methods = append(methods, ssh.PublicKeysCallback(agentClient.Signers))
			if conn != nil {
				closer = conn
			}
		}
	}

	if len(methods) == 0 {
		return nil, nil, &AuthError{
			Kind:    KeyInvalid,
			User:    cfg.User,
			KeyPath: cfg.KeyPath,
			Err:     fmt.Errorf("no private key found and no ssh agent available: %w", fs.ErrNotExist),
		}
	}
	return methods, closer, nil
}

// loadSigner reads and parses the configured private key. It returns a nil
// signer without error when the key is optional and absent.
func loadSigner(cfg Config) (ssh.Signer, error) {
	if cfg.KeyPath == "" {
		return nil, nil
	}

	pemBytes, err := afero.ReadFile(cfg.fs(), cfg.KeyPath)
	if err != nil {
		if cfg.KeyOptional && errors.Is(err, fs.ErrNotExist) {
			cfg.logger().Debug("default private key not found, skipping", "path", cfg.KeyPath)
			return nil, nil
		}
		return nil, &AuthError{Kind: KeyInvalid, User: cfg.User, KeyPath: cfg.KeyPath, Err: err}
	}

	return parseSigner(pemBytes, cfg.Passphrase, cfg.KeyPath)
}

// parseSigner parses an unencrypted key as-is and only uses the passphrase
// for keys that need one, so a stray passphrase does not break a plain key.
func parseSigner(pemBytes []byte, passphrase, keyPath string) (ssh.Signer, error) {
	signer, err := ssh.ParsePrivateKey(pemBytes)
	if err == nil {
		return signer, nil
	}

	var missing *ssh.PassphraseMissingError
	if !errors.As(err, &missing) {
		return nil, &AuthError{Kind: KeyInvalid, KeyPath: keyPath, Err: err}
	}
	if passphrase == "" {
		return nil, &AuthError{Kind: PassphraseRequired, KeyPath: keyPath, Err: err}
	}

	signer, err = ssh.ParsePrivateKeyWithPassphrase(pemBytes, []byte(passphrase))
	if err != nil {
		return nil, &AuthError{Kind: KeyInvalid, KeyPath: keyPath, Err: err}
	}
	return signer, nil
}
