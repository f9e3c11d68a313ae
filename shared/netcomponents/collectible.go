package netcomponents

import (
	"github.com/automoto/coinarena/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CollectibleSize is the fixed width and height of the coin box.
const CollectibleSize = 20.0

// CollectibleAttrs is the plain attribute bundle a Collectible is built from.
type CollectibleAttrs struct {
	ID    uint64
	X, Y  float64
	Value int
}

// Collectible is the single coin in the world. ID changes on every spawn; an
// ID of zero never names a live coin.
type Collectible struct {
	ID    uint64  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Value int     `json:"value"`
}

var NetCollectible = donburi.NewComponentType[Collectible]()

func NewCollectible(a CollectibleAttrs) Collectible {
	return Collectible{ID: a.ID, X: a.X, Y: a.Y, Value: a.Value}
}

func (c Collectible) Bounds() gamemath.Rect {
	return gamemath.Rect{X: c.X, Y: c.Y, W: CollectibleSize, H: CollectibleSize}
}
