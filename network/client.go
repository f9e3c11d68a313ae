package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/automoto/coinarena/shared/messages"
	"github.com/automoto/coinarena/shared/netcomponents"
	"github.com/automoto/coinarena/shared/protocol"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("ClientState(%d)", int(s))
}

var ErrNotConnected = errors.New("not connected")

// Client manages a WebSocket connection to the arena server.
// All shared fields are protected by mu (the read loop runs on its own goroutine).
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	conn      *websocket.Conn
	cancel    context.CancelFunc

	// Server messages in arrival order. The read loop blocks when this is
	// full rather than dropping; every update must reach the mirror.
	inbound chan protocol.Envelope
}

func NewClient() *Client {
	return &Client{
		state:   StateDisconnected,
		inbound: make(chan protocol.Envelope, 256),
	}
}

// ServerURL turns "host:port" into the arena websocket URL. Addresses that
// already carry a ws:// or wss:// scheme are used as given.
func ServerURL(address string) string {
	if strings.HasPrefix(address, "ws://") || strings.HasPrefix(address, "wss://") {
		return address
	}
	return "ws://" + strings.TrimSuffix(address, "/") + "/ws"
}

// Connect dials the server in a background goroutine.
func (c *Client) Connect(address string) {
	go func() {
		if err := c.Dial(context.Background(), ServerURL(address)); err != nil {
			log.Printf("[client] %v", err)
		}
	}()
}

// Dial connects to url and starts the read loop. It blocks until the
// handshake completes or fails.
func (c *Client) Dial(ctx context.Context, url string) error {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		err = fmt.Errorf("connection failed: %w", err)
		c.setError(err)
		return err
	}

	readCtx, cancel := context.WithCancel(context.Background())
	c.mu.Lock()
	oldConn, oldCancel := c.conn, c.cancel
	c.conn = conn
	c.cancel = cancel
	c.state = StateConnected
	c.mu.Unlock()

	// A previous session's read loop sees c.conn != its conn and exits
	// quietly once this tears it down.
	if oldConn != nil {
		_ = oldConn.CloseNow()
	}
	if oldCancel != nil {
		oldCancel()
	}

	log.Printf("[client] connected to %s", url)
	go c.readLoop(readCtx, conn)
	return nil
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var env protocol.Envelope
		if err := wsjson.Read(ctx, conn, &env); err != nil {
			c.disconnected(conn, err)
			return
		}
		if !protocol.IsServerMessage(env.T) {
			log.Printf("[client] ignoring unknown message %q", env.T)
			continue
		}
		select {
		case c.inbound <- env:
		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) disconnected(conn *websocket.Conn, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != conn {
		return
	}
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		log.Printf("[client] disconnected")
		c.state = StateDisconnected
	default:
		log.Printf("[client] disconnected: %v", err)
		c.state = StateError
		c.lastError = err
	}
	c.conn = nil
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	cancel := c.cancel
	c.state = StateDisconnected
	c.conn = nil
	c.cancel = nil
	c.mu.Unlock()

	// Close before cancelling: a cancelled read tears the connection down
	// without the close handshake.
	if conn != nil {
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}
	if cancel != nil {
		cancel()
	}
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// Drain returns all pending server messages in arrival order, non-blocking.
func (c *Client) Drain() []protocol.Envelope {
	return drainChan(c.inbound)
}

// Inbound exposes the message channel for callers that want to block.
func (c *Client) Inbound() <-chan protocol.Envelope {
	return c.inbound
}

func (c *Client) SendMove(ctx context.Context, dir netcomponents.Direction, speed float64) error {
	return c.send(ctx, protocol.MsgMovePlayer, messages.NewMovePlayer(dir, speed))
}

func (c *Client) SendCollision(ctx context.Context, claim messages.Collision) error {
	return c.send(ctx, protocol.MsgCollision, claim)
}

func (c *Client) send(ctx context.Context, t string, payload any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return ErrNotConnected
	}

	env, err := protocol.NewEnvelope(t, payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", t, err)
	}
	return wsjson.Write(ctx, conn, env)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
