package systems

import (
	"context"
	"errors"
	"log"

	"github.com/automoto/coinarena/network"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClaim sends a collision claim on every tick the local player
// overlaps the mirrored coin. Repeats are expected; the server grants the
// first and ignores the rest.
func UpdateClaim(e *ecs.ECS) {
	s, ok := getSession(e)
	if !ok {
		return
	}
	claim, ok := s.Mirror.CollisionClaim()
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	if err := s.Client.SendCollision(ctx, claim); err != nil && !errors.Is(err, network.ErrNotConnected) {
		log.Printf("[client] send collision: %v", err)
	}
}
