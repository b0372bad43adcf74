package gerrit

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"io"
	"net"
	"sync"
	"testing"

	"golang.org/x/crypto/ssh"
)

// testServer is a minimal SSH server that answers exec requests with canned
// output, standing in for Gerrit's SSH daemon.
type testServer struct {
	addr    string
	port    int
	hostKey ssh.Signer

	user       string
	authorized ssh.PublicKey
	stdout     string
	stderr     string
	exitStatus uint32

	mu       sync.Mutex
	commands []string
}

func newTestServer(t *testing.T, user string, authorized ssh.PublicKey) *testServer {
	t.Helper()

	_, hostPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	hostKey, err := ssh.NewSignerFromKey(hostPriv)
	if err != nil {
		t.Fatal(err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ln.Close() })

	s := &testServer{
		addr:       ln.Addr().String(),
		port:       ln.Addr().(*net.TCPAddr).Port,
		hostKey:    hostKey,
		user:       user,
		authorized: authorized,
	}

	config := &ssh.ServerConfig{
		PublicKeyCallback: func(meta ssh.ConnMetadata, key ssh.PublicKey) (*ssh.Permissions, error) {
			if meta.User() == s.user && bytes.Equal(key.Marshal(), s.authorized.Marshal()) {
				return nil, nil
			}
			return nil, fmt.Errorf("key not authorized for %q", meta.User())
		},
	}
	config.AddHostKey(hostKey)

	go s.serve(ln, config)
	return s
}

func (s *testServer) serve(ln net.Listener, config *ssh.ServerConfig) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		go s.handle(conn, config)
	}
}

func (s *testServer) handle(conn net.Conn, config *ssh.ServerConfig) {
	sconn, chans, reqs, err := ssh.NewServerConn(conn, config)
	if err != nil {
		conn.Close()
		return
	}
	defer sconn.Close()
	go ssh.DiscardRequests(reqs)

	for nc := range chans {
		if nc.ChannelType() != "session" {
			nc.Reject(ssh.UnknownChannelType, "only sessions are supported")
			continue
		}
		ch, chReqs, err := nc.Accept()
		if err != nil {
			continue
		}
		go s.session(ch, chReqs)
	}
}

func (s *testServer) session(ch ssh.Channel, reqs <-chan *ssh.Request) {
	defer ch.Close()
	for req := range reqs {
		if req.Type != "exec" {
			if req.WantReply {
				req.Reply(false, nil)
			}
			continue
		}

		var payload struct{ Command string }
		if err := ssh.Unmarshal(req.Payload, &payload); err != nil {
			req.Reply(false, nil)
			return
		}
		s.mu.Lock()
		s.commands = append(s.commands, payload.Command)
		s.mu.Unlock()

		req.Reply(true, nil)
		io.WriteString(ch, s.stdout)
		io.WriteString(ch.Stderr(), s.stderr)
		ch.SendRequest("exit-status", false, ssh.Marshal(struct{ Status uint32 }{s.exitStatus}))
		return
	}
}

func (s *testServer) received() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.commands...)
}

// newKeyPair returns a fresh ed25519 public key and its OpenSSH PEM encoded
// private key, encrypted when passphrase is non-empty.
func newKeyPair(t *testing.T, passphrase string) (ssh.PublicKey, []byte) {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	var block *pem.Block
	if passphrase == "" {
		block, err = ssh.MarshalPrivateKey(priv, "gar-test")
	} else {
		block, err = ssh.MarshalPrivateKeyWithPassphrase(priv, "gar-test", []byte(passphrase))
	}
	if err != nil {
		t.Fatal(err)
	}

	sshPub, err := ssh.NewPublicKey(pub)
	if err != nil {
		t.Fatal(err)
	}
	return sshPub, pem.EncodeToMemory(block)
}
