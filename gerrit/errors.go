package gerrit

import "fmt"

// AuthErrorKind tells apart the ways authentication can fail.
type AuthErrorKind int

const (
	// KeyInvalid means the private key could not be read or parsed, or
	// the passphrase did not decrypt it.
	KeyInvalid AuthErrorKind = iota + 1
	// PassphraseRequired means the key is encrypted and no passphrase
	// was supplied.
	PassphraseRequired
	// Rejected means the server refused every offered credential.
	Rejected
)

func (k AuthErrorKind) String() string {
	switch k {
	case KeyInvalid:
		return "key invalid"
	case PassphraseRequired:
		return "passphrase required"
	case Rejected:
		return "rejected"
	default:
		return fmt.Sprintf("AuthErrorKind(%d)", int(k))
	}
}

// AuthError reports a failure to authenticate against the server.
type AuthError struct {
	Kind    AuthErrorKind
	User    string
	KeyPath string
	Err     error
}

func (e *AuthError) Error() string {
	switch e.Kind {
	case KeyInvalid:
		return fmt.Sprintf("unable to parse private key %s, wrong passphrase or unsupported key format: %v", e.KeyPath, e.Err)
	case PassphraseRequired:
		return fmt.Sprintf("private key %s is encrypted and no passphrase was given", e.KeyPath)
	case Rejected:
		return fmt.Sprintf("authentication as %q failed, the server did not accept the user or key: %v", e.User, e.Err)
	default:
		return fmt.Sprintf("authentication failed: %v", e.Err)
	}
}

func (e *AuthError) Unwrap() error { return e.Err }

// HostKeyError reports a server key that differs from the one recorded in
// known_hosts.
type HostKeyError struct {
	Host        string
	Fingerprint string
	Err         error
}

func (e *HostKeyError) Error() string {
	return fmt.Sprintf("host key for %s has changed (server offered %s); remove the stale known_hosts entry if this is expected", e.Host, e.Fingerprint)
}

func (e *HostKeyError) Unwrap() error { return e.Err }

// ConnectError reports a transport failure while reaching the server.
type ConnectError struct {
	Addr string
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("unable to connect to %s: %v", e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }
