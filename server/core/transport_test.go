package core

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/automoto/coinarena/shared/messages"
	"github.com/automoto/coinarena/shared/netcomponents"
	"github.com/automoto/coinarena/shared/protocol"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

func dialTest(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	c, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(url, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = c.CloseNow() })
	return c
}

func readEnvelope(t *testing.T, c *websocket.Conn, want string) protocol.Envelope {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	var env protocol.Envelope
	if err := wsjson.Read(ctx, c, &env); err != nil {
		t.Fatalf("read %q: %v", want, err)
	}
	if env.T != want {
		t.Fatalf("got %q, want %q", env.T, want)
	}
	return env
}

func writeEnvelope(t *testing.T, c *websocket.Conn, name string, payload any) {
	t.Helper()
	env, err := protocol.NewEnvelope(name, payload)
	if err != nil {
		t.Fatalf("envelope: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := wsjson.Write(ctx, c, env); err != nil {
		t.Fatalf("write %q: %v", name, err)
	}
}

func TestWebSocketSessionLifecycle(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s)
	defer ts.Close()

	connA := dialTest(t, ts.URL)
	initA := decode[messages.Init](t, readEnvelope(t, connA, protocol.MsgInit))

	connB := dialTest(t, ts.URL)
	initB := decode[messages.Init](t, readEnvelope(t, connB, protocol.MsgInit))
	if len(initB.Players) != 2 {
		t.Fatalf("B sees %d players, want 2", len(initB.Players))
	}
	joined := decode[netcomponents.Player](t, readEnvelope(t, connA, protocol.MsgNewPlayer))
	if joined.ID != initB.ID {
		t.Fatalf("A saw new player %q, want %q", joined.ID, initB.ID)
	}

	// Garbage and unknown frames are ignored without dropping the session.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	_ = connA.Write(ctx, websocket.MessageText, []byte("{not json"))
	cancel()
	writeEnvelope(t, connA, "teleport", map[string]int{"x": 9000})
	writeEnvelope(t, connA, protocol.MsgMovePlayer, map[string]string{"direction": "up"})

	writeEnvelope(t, connA, protocol.MsgMovePlayer, messages.NewMovePlayer(netcomponents.DirRight, 10))
	for _, c := range []*websocket.Conn{connA, connB} {
		p := decode[netcomponents.Player](t, readEnvelope(t, c, protocol.MsgUpdatePlayer))
		if p.ID != initA.ID || p.X != 10 || p.Y != 0 {
			t.Fatalf("update-player = %+v", p)
		}
	}

	coin := initA.Coin
	writeEnvelope(t, connB, protocol.MsgCollision, messages.Collision{Item: &coin, ID: initB.ID})
	for _, c := range []*websocket.Conn{connA, connB} {
		p := decode[netcomponents.Player](t, readEnvelope(t, c, protocol.MsgUpdatePlayer))
		if p.ID != initB.ID || p.Score != 1 {
			t.Fatalf("update-player after collect = %+v", p)
		}
		readEnvelope(t, c, protocol.MsgUpdateCoin)
	}

	if err := connB.Close(websocket.StatusNormalClosure, ""); err != nil {
		t.Fatalf("close B: %v", err)
	}
	removed := decode[string](t, readEnvelope(t, connA, protocol.MsgRemovePlayer))
	if removed != initB.ID {
		t.Fatalf("remove-player = %q, want %q", removed, initB.ID)
	}
}

func TestHealthReportsPlayers(t *testing.T) {
	s := newTestServer(t)
	mux := http.NewServeMux()
	mux.Handle("/ws", s)
	mux.HandleFunc("/health", Health(s))
	ts := httptest.NewServer(mux)
	defer ts.Close()

	conn := dialTest(t, ts.URL+"/ws")
	readEnvelope(t, conn, protocol.MsgInit)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	defer resp.Body.Close()

	var body healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "ok" || body.Players != 1 {
		t.Fatalf("health = %+v", body)
	}
}
