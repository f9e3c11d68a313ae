package core

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/automoto/coinarena/shared/messages"
	"github.com/automoto/coinarena/shared/protocol"
	"github.com/google/uuid"
)

// Conn is the server's view of one client connection. Send must not block:
// it either queues the frame or reports an error.
type Conn interface {
	Send(frame []byte) error
	Close() error
}

type joinEvent struct {
	conn  Conn
	reply chan<- string
}

type moveEvent struct {
	playerID string
	intent   messages.MovePlayer
}

type collisionEvent struct {
	senderID string
	claim    messages.Collision
}

type leaveEvent struct {
	playerID string
}

// Server is the reconciliation engine. It owns the World and every
// connection; all of it is touched only from the event loop goroutine.
type Server struct {
	cfg   Config
	world *World
	loop  *EventLoop
	newID func() string

	conns   map[string]Conn
	failed  []string
	players atomic.Int64
}

func NewServer(cfg Config) *Server {
	s := &Server{
		cfg:   cfg,
		world: NewWorld(cfg.world()),
		newID: uuid.NewString,
		conns: make(map[string]Conn),
	}
	s.loop = NewEventLoop(cfg.InboxSize, s.handle, s.closeAll)
	return s
}

// Start runs the event loop in the background.
func (s *Server) Start() {
	go s.loop.Run()
}

// Stop halts the event loop and closes every connection.
func (s *Server) Stop() {
	s.loop.Stop()
	<-s.loop.Done()
}

// PlayerCount is safe to call from any goroutine.
func (s *Server) PlayerCount() int {
	return int(s.players.Load())
}

// Join registers conn as a new player and returns its id. The init snapshot
// is queued on conn before any other broadcast can reach it.
func (s *Server) Join(ctx context.Context, conn Conn) (string, error) {
	reply := make(chan string, 1)
	if err := s.loop.Submit(ctx, joinEvent{conn: conn, reply: reply}); err != nil {
		return "", err
	}
	select {
	case id := <-reply:
		return id, nil
	case <-s.loop.Done():
		return "", ErrServerStopped
	}
}

// Move submits a movement intent from playerID.
func (s *Server) Move(ctx context.Context, playerID string, m messages.MovePlayer) error {
	return s.loop.Submit(ctx, moveEvent{playerID: playerID, intent: m})
}

// Collide submits a collection claim received from senderID.
func (s *Server) Collide(ctx context.Context, senderID string, c messages.Collision) error {
	return s.loop.Submit(ctx, collisionEvent{senderID: senderID, claim: c})
}

// Leave submits the disconnect of playerID. Leaving twice is harmless.
func (s *Server) Leave(ctx context.Context, playerID string) error {
	return s.loop.Submit(ctx, leaveEvent{playerID: playerID})
}

func (s *Server) handle(ev any) {
	switch e := ev.(type) {
	case joinEvent:
		s.onJoin(e)
	case moveEvent:
		s.onMove(e)
	case collisionEvent:
		s.onCollision(e)
	case leaveEvent:
		s.onLeave(e.playerID)
	}
	s.dropFailed()
}

func (s *Server) onJoin(e joinEvent) {
	id := s.newID()
	p := s.world.AddPlayer(id)
	s.conns[id] = e.conn
	s.players.Store(int64(s.world.Len()))

	players, coin := s.world.Snapshot()
	s.sendTo(id, protocol.MsgInit, messages.Init{ID: id, Players: players, Coin: coin})
	s.broadcastExcept(id, protocol.MsgNewPlayer, p)

	log.Printf("[server] player %s joined at (%.0f,%.0f), %d online", id, p.X, p.Y, s.world.Len())
	e.reply <- id
}

func (s *Server) onMove(e moveEvent) {
	if err := e.intent.Validate(); err != nil {
		return
	}
	p, ok := s.world.ApplyMovement(e.playerID, e.intent.Direction, *e.intent.Speed)
	if !ok {
		return
	}
	s.broadcast(protocol.MsgUpdatePlayer, p)
}

// onCollision honours the claim for the player it names, as long as that
// player exists and the coin id is current. Rejections are silent.
func (s *Server) onCollision(e collisionEvent) {
	if err := e.claim.Validate(); err != nil {
		return
	}
	res, ok := s.world.TryCollect(e.claim.ID, e.claim.Item.ID)
	if !ok {
		return
	}
	log.Printf("[server] player %s collected coin %d (claim from %s), score %d",
		res.Player.ID, e.claim.Item.ID, e.senderID, res.Player.Score)
	s.broadcast(protocol.MsgUpdatePlayer, res.Player)
	s.broadcast(protocol.MsgUpdateCoin, res.Coin)
}

func (s *Server) onLeave(id string) {
	c, connected := s.conns[id]
	delete(s.conns, id)
	if connected {
		_ = c.Close()
	}
	if !s.world.RemovePlayer(id) {
		return
	}
	s.players.Store(int64(s.world.Len()))
	log.Printf("[server] player %s left, %d online", id, s.world.Len())
	s.broadcast(protocol.MsgRemovePlayer, id)
}

func (s *Server) encode(t string, payload any) []byte {
	frame, err := protocol.Encode(t, payload)
	if err != nil {
		log.Printf("[server] encode %s: %v", t, err)
		return nil
	}
	return frame
}

func (s *Server) sendTo(id, t string, payload any) {
	frame := s.encode(t, payload)
	if frame == nil {
		return
	}
	s.deliver(id, frame)
}

func (s *Server) broadcast(t string, payload any) {
	s.broadcastExcept("", t, payload)
}

// broadcastExcept encodes once and fans the frame out to every connection
// but except. A failed send marks only that connection for removal.
func (s *Server) broadcastExcept(except, t string, payload any) {
	frame := s.encode(t, payload)
	if frame == nil {
		return
	}
	for id := range s.conns {
		if id == except {
			continue
		}
		s.deliver(id, frame)
	}
}

func (s *Server) deliver(id string, frame []byte) {
	c, ok := s.conns[id]
	if !ok {
		return
	}
	if err := c.Send(frame); err != nil {
		log.Printf("[server] send to %s failed: %v", id, err)
		s.failed = append(s.failed, id)
	}
}

// dropFailed disconnects every connection whose send failed while handling
// the current event. Removing one may fail further sends, so it drains until
// nothing is left.
func (s *Server) dropFailed() {
	for len(s.failed) > 0 {
		id := s.failed[0]
		s.failed = s.failed[1:]
		s.onLeave(id)
	}
}

func (s *Server) closeAll() {
	for id, c := range s.conns {
		_ = c.Close()
		delete(s.conns, id)
	}
}
