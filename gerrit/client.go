package gerrit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"strings"

	"golang.org/x/crypto/ssh"
)

// Client is an open SSH connection to a Gerrit server.
type Client struct {
	conn   *ssh.Client
	agent  io.Closer
	addr   string
	logger *slog.Logger
	closed bool
}

// Dial connects and authenticates to the Gerrit host described by cfg.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	logger := cfg.logger()

	port := cfg.Port
	if port == 0 {
		port = DefaultPort
	}
	host := resolveHostName(cfg.fs(), cfg.SSHConfigFile, cfg.Host, logger)
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	auths, agentConn, err := authMethods(cfg)
	if err != nil {
		return nil, err
	}

	policy := newHostKeyPolicy(cfg.fs(), cfg.KnownHostsFiles, logger)
	clientConfig := &ssh.ClientConfig{
		User:              cfg.User,
		Auth:              auths,
		HostKeyCallback:   policy.check,
		HostKeyAlgorithms: policy.algorithms(addr),
	}

	logger.Debug("connecting", "addr", addr, "user", cfg.User)
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		closeQuietly(agentConn)
		return nil, &ConnectError{Addr: addr, Err: err}
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, clientConfig)
	if err != nil {
		conn.Close()
		closeQuietly(agentConn)
		return nil, classifyHandshakeError(err, addr, cfg.User)
	}
	logger.Debug("connected", "addr", addr, "server_version", string(sshConn.ServerVersion()))

	return &Client{
		conn:   ssh.NewClient(sshConn, chans, reqs),
		agent:  agentConn,
		addr:   addr,
		logger: logger,
	}, nil
}

// Run executes command in a new session and waits for it to finish.
// A non-zero remote exit status is reported in the Result, not as an error.
func (c *Client) Run(ctx context.Context, command string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	session, err := c.conn.NewSession()
	if err != nil {
		return nil, fmt.Errorf("opening session on %s: %w", c.addr, err)
	}
	defer session.Close()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	c.logger.Debug("running remote command", "command", command)
	res := &Result{Command: command}

	err = session.Run(command)
	var exitErr *ssh.ExitError
	var missingErr *ssh.ExitMissingError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitStatus = exitErr.ExitStatus()
	case errors.As(err, &missingErr):
		res.ExitStatus = -1
	default:
		return nil, fmt.Errorf("running %q on %s: %w", command, c.addr, err)
	}

	res.Stdout = stdout.Bytes()
	res.Stderr = stderr.Bytes()
	return res, nil
}

// Close releases the connection. Calling Close more than once is a no-op.
func (c *Client) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	closeQuietly(c.agent)
	c.logger.Debug("closing connection", "addr", c.addr)
	return c.conn.Close()
}

func classifyHandshakeError(err error, addr, user string) error {
	var hostKeyErr *HostKeyError
	if errors.As(err, &hostKeyErr) {
		return hostKeyErr
	}
	if strings.Contains(err.Error(), "unable to authenticate") {
		return &AuthError{Kind: Rejected, User: user, Err: err}
	}
	return &ConnectError{Addr: addr, Err: err}
}

func closeQuietly(c io.Closer) {
	if c != nil {
		c.Close()
	}
}
