package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CoinPulseData animates the coin's scale when a new coin appears.
type CoinPulseData struct {
	CoinID uint64
	Tween  *gween.Tween
	Scale  float32
}

var CoinPulse = donburi.NewComponentType[CoinPulseData]()
