package systems

import (
	"context"
	"errors"
	"log"
	"time"

	cfg "github.com/automoto/coinarena/config"
	"github.com/automoto/coinarena/network"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

const sendTimeout = 250 * time.Millisecond

// UpdateInput turns key presses into predicted moves and move-player
// intents. Held keys repeat after cfg.Movement.RepeatDelay ticks.
// Must run AFTER UpdateSync so prediction starts from the newest state.
func UpdateInput(e *ecs.ECS) {
	s, ok := getSession(e)
	if !ok {
		return
	}

	if state := s.Client.State(); state == network.StateDisconnected || state == network.StateError {
		if actionJustPressed(cfg.ActionReconnect) {
			log.Printf("[client] reconnecting to %s", s.Addr)
			s.Client.Connect(s.Addr)
		}
		return
	}

	if !s.Mirror.Ready() {
		return
	}

	for _, m := range cfg.MoveActions {
		if !actionFires(m.Action) {
			continue
		}
		if !s.Mirror.PredictMove(m.Direction, cfg.Movement.Speed) {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err := s.Client.SendMove(ctx, m.Direction, cfg.Movement.Speed)
		cancel()
		if err != nil && !errors.Is(err, network.ErrNotConnected) {
			log.Printf("[client] send move: %v", err)
		}
	}
}

// actionFires reports whether any key bound to action fires this tick.
func actionFires(action cfg.ActionID) bool {
	for _, key := range cfg.Input.Bindings[action].Keys {
		if !ebiten.IsKeyPressed(key) {
			continue
		}
		held := inpututil.KeyPressDuration(key)
		if repeatFires(held, cfg.Movement.RepeatDelay, cfg.Movement.RepeatInterval) {
			return true
		}
	}
	return false
}

func actionJustPressed(action cfg.ActionID) bool {
	for _, key := range cfg.Input.Bindings[action].Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// repeatFires implements keyboard-style auto repeat: the first tick of a
// press fires, then every interval ticks once delay has passed.
func repeatFires(held, delay, interval int) bool {
	if held == 1 {
		return true
	}
	if interval <= 0 || held <= delay {
		return false
	}
	return (held-delay)%interval == 0
}
