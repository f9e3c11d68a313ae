package netcomponents

import (
	"math"

	"github.com/automoto/coinarena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PlayerSize is the fixed width and height of every player box.
const PlayerSize = 30.0

// PlayerAttrs is the plain attribute bundle a Player is built from.
type PlayerAttrs struct {
	ID    string
	X, Y  float64
	Score int
}

// Player is the wire and world representation of a connected player.
// Width and height are constant and never travel over the network.
type Player struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Score int     `json:"score"`
}

// NetPlayer stores a Player on a server-side world entity.
var NetPlayer = donburi.NewComponentType[Player]()

func NewPlayer(a PlayerAttrs) Player {
	score := a.Score
	if score < 0 {
		score = 0
	}
	return Player{ID: a.ID, X: a.X, Y: a.Y, Score: score}
}

// Move shifts the player by speed along dir. The world is unbounded, so no
// clamping happens. It returns false and leaves p untouched for an unknown
// direction or a step that would leave the coordinates non-finite.
func (p *Player) Move(dir Direction, speed float64) bool {
	if !dir.Valid() {
		return false
	}
	dx, dy := dir.Delta()
	x, y := p.X+dx*speed, p.Y+dy*speed
	if !finite(x) || !finite(y) {
		return false
	}
	p.X, p.Y = x, y
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (p Player) Bounds() gamemath.Rect {
	return gamemath.Rect{X: p.X, Y: p.Y, W: PlayerSize, H: PlayerSize}
}

// Intersects reports whether p's box overlaps other's box.
func (p Player) Intersects(other Boxed) bool {
	return Intersects(p, other)
}
