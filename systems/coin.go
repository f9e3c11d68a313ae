package systems

import (
	"github.com/automoto/coinarena/components"
	cfg "github.com/automoto/coinarena/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCoinPulse restarts the spawn pulse whenever the mirrored coin id
// changes and advances it otherwise.
func UpdateCoinPulse(e *ecs.ECS) {
	s, ok := getSession(e)
	if !ok {
		return
	}
	entry, ok := components.CoinPulse.First(e.World)
	if !ok {
		return
	}
	pulse := components.CoinPulse.Get(entry)

	coin, ok := s.Mirror.Coin()
	if !ok {
		return
	}
	if coin.ID != pulse.CoinID {
		pulse.CoinID = coin.ID
		pulse.Tween = gween.New(cfg.Arena.PulseScale, 1, cfg.Arena.PulseDuration, ease.OutCubic)
		pulse.Scale = cfg.Arena.PulseScale
	}
	if pulse.Tween == nil {
		pulse.Scale = 1
		return
	}
	scale, done := pulse.Tween.Update(1 / float32(ebiten.TPS()))
	pulse.Scale = scale
	if done {
		pulse.Tween = nil
	}
}
