package core

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/automoto/coinarena/shared/messages"
	"github.com/automoto/coinarena/shared/protocol"
	"github.com/coder/websocket"
)

// ErrSlowConsumer is returned by Send when a connection's outbound queue is
// full. The server drops such connections rather than stall the loop.
var ErrSlowConsumer = errors.New("outbound queue full")

// wsConn adapts a websocket connection to Conn. Frames are queued and
// written by a dedicated goroutine so the event loop never waits on a peer.
type wsConn struct {
	ws        *websocket.Conn
	out       chan []byte
	closed    chan struct{}
	closeOnce sync.Once
}

func newWSConn(ws *websocket.Conn, queue int) *wsConn {
	if queue <= 0 {
		queue = 1
	}
	return &wsConn{
		ws:     ws,
		out:    make(chan []byte, queue),
		closed: make(chan struct{}),
	}
}

func (c *wsConn) Send(frame []byte) error {
	select {
	case <-c.closed:
		return net.ErrClosed
	default:
	}
	select {
	case c.out <- frame:
		return nil
	default:
		return ErrSlowConsumer
	}
}

func (c *wsConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

func (c *wsConn) writeLoop(ctx context.Context, timeout time.Duration) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.closed:
			_ = c.ws.Close(websocket.StatusGoingAway, "")
			return
		case frame := <-c.out:
			wctx, cancel := context.WithTimeout(ctx, timeout)
			err := c.ws.Write(wctx, websocket.MessageText, frame)
			cancel()
			if err != nil {
				_ = c.ws.CloseNow()
				return
			}
		}
	}
}

// ServeHTTP upgrades the request to a websocket and runs the connection
// through Connecting, Active and Disconnected. It returns when the peer is
// gone and its leave has been submitted.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.cfg.OriginPatterns,
	})
	if err != nil {
		log.Printf("[transport] accept from %s: %v", r.RemoteAddr, err)
		return
	}
	if s.cfg.ReadLimit > 0 {
		ws.SetReadLimit(s.cfg.ReadLimit)
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn := newWSConn(ws, s.cfg.OutboundQueue)
	go conn.writeLoop(ctx, s.cfg.WriteTimeout)

	id, err := s.Join(ctx, conn)
	if err != nil {
		_ = ws.Close(websocket.StatusTryAgainLater, "server unavailable")
		return
	}
	log.Printf("[transport] %s connected as %s", r.RemoteAddr, id)

	err = s.readLoop(ctx, id, ws)
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		log.Printf("[transport] %s disconnected", id)
	default:
		log.Printf("[transport] %s disconnected: %v", id, err)
	}

	// The request context may already be done; the leave must still land.
	if err := s.Leave(context.Background(), id); err != nil && !errors.Is(err, ErrServerStopped) {
		log.Printf("[transport] leave %s: %v", id, err)
	}
	_ = conn.Close()
}

// readLoop decodes frames from ws and feeds intents to the event loop until
// the connection fails. Undecodable frames are dropped.
func (s *Server) readLoop(ctx context.Context, id string, ws *websocket.Conn) error {
	for {
		typ, data, err := ws.Read(ctx)
		if err != nil {
			return err
		}
		if typ != websocket.MessageText {
			continue
		}
		env, err := protocol.DecodeEnvelope(data)
		if err != nil || !protocol.IsClientMessage(env.T) {
			continue
		}
		if err := s.dispatch(ctx, id, env); errors.Is(err, ErrServerStopped) {
			return err
		}
	}
}

func (s *Server) dispatch(ctx context.Context, id string, env protocol.Envelope) error {
	switch env.T {
	case protocol.MsgMovePlayer:
		m, err := protocol.DecodePayload[messages.MovePlayer](env)
		if err != nil {
			return nil
		}
		return s.Move(ctx, id, m)
	case protocol.MsgCollision:
		c, err := protocol.DecodePayload[messages.Collision](env)
		if err != nil {
			return nil
		}
		return s.Collide(ctx, id, c)
	}
	return nil
}
