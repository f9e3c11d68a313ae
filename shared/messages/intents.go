package messages

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/coinarena/shared/netcomponents"
)

// ErrMalformed marks an intent that is missing or carries unusable fields.
var ErrMalformed = errors.New("malformed intent")

// MaxSpeed bounds the step a single move-player intent may request.
const MaxSpeed = 1000.0

// MovePlayer is sent by a client to move its own player.
// Speed is a pointer so a missing field can be told apart from zero.
type MovePlayer struct {
	Direction netcomponents.Direction `json:"direction"`
	Speed     *float64                `json:"speed"`
}

// NewMovePlayer builds a MovePlayer intent.
func NewMovePlayer(dir netcomponents.Direction, speed float64) MovePlayer {
	return MovePlayer{Direction: dir, Speed: &speed}
}

func (m MovePlayer) Validate() error {
	if !m.Direction.Valid() {
		return fmt.Errorf("%w: direction %q", ErrMalformed, m.Direction)
	}
	if m.Speed == nil {
		return fmt.Errorf("%w: missing speed", ErrMalformed)
	}
	if v := *m.Speed; math.IsNaN(v) || math.Abs(v) > MaxSpeed {
		return fmt.Errorf("%w: speed %v out of range", ErrMalformed, v)
	}
	return nil
}

// Collision claims that player ID overlapped the coin described by Item.
type Collision struct {
	Item *netcomponents.Collectible `json:"item"`
	ID   string                     `json:"id"`
}

func (c Collision) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: missing player id", ErrMalformed)
	}
	if c.Item == nil || c.Item.ID == 0 {
		return fmt.Errorf("%w: missing item", ErrMalformed)
	}
	return nil
}
