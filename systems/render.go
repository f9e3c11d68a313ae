package systems

import (
	"fmt"

	"github.com/automoto/coinarena/components"
	cfg "github.com/automoto/coinarena/config"
	"github.com/automoto/coinarena/fonts"
	"github.com/automoto/coinarena/network"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Arena.Background)
}

// DrawCoin draws the mirrored coin, scaled about its centre while the
// spawn pulse runs.
func DrawCoin(e *ecs.ECS, screen *ebiten.Image) {
	s, ok := getSession(e)
	if !ok {
		return
	}
	coin, ok := s.Mirror.Coin()
	if !ok {
		return
	}

	scale := float32(1)
	if entry, ok := components.CoinPulse.First(e.World); ok {
		if p := components.CoinPulse.Get(entry); p.CoinID == coin.ID && p.Scale > 0 {
			scale = p.Scale
		}
	}

	size := cfg.CoinSize()
	drawn := size * scale
	x := float32(coin.X) + (size-drawn)/2
	y := float32(coin.Y) + (size-drawn)/2
	vector.DrawFilledRect(screen, x, y, drawn, drawn, cfg.Arena.CoinFill, false)
	vector.StrokeRect(screen, x, y, drawn, drawn, 1, cfg.Arena.CoinLine, false)
}

// DrawPlayers draws every mirrored player, the local one on top.
func DrawPlayers(e *ecs.ECS, screen *ebiten.Image) {
	s, ok := getSession(e)
	if !ok {
		return
	}
	size := cfg.PlayerSize()
	for _, p := range s.Mirror.Players() {
		if p.ID == s.Mirror.SelfID() {
			continue
		}
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), size, size, cfg.Arena.Other, false)
	}
	if self, ok := s.Mirror.Self(); ok {
		vector.DrawFilledRect(screen, float32(self.X), float32(self.Y), size, size, cfg.Arena.Self, false)
	}
}

// DrawHUD renders the rank line and the connection status.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	s, ok := getSession(e)
	if !ok {
		return
	}
	margin := cfg.Arena.HUDMargin
	y := margin + cfg.Arena.LineSpacing

	if s.Mirror.Ready() {
		text.Draw(screen, s.Mirror.RankText(), fonts.Regular.Get(), margin, y, cfg.Arena.HUDText)
		y += cfg.Arena.LineSpacing
		if self, ok := s.Mirror.Self(); ok {
			text.Draw(screen, fmt.Sprintf("Score: %d", self.Score), fonts.Small.Get(), margin, y, cfg.Arena.HUDText)
			y += cfg.Arena.LineSpacing
		}
	}

	state := s.Client.State()
	status := fmt.Sprintf("%s (%s)", state, s.Addr)
	clr := cfg.Arena.StatusText
	if state == network.StateError || state == network.StateDisconnected {
		clr = cfg.Arena.ErrorText
		status += " - press R to reconnect"
	}
	text.Draw(screen, status, fonts.Small.Get(), margin, cfg.C.Height-margin, clr)
	if err := s.Client.LastError(); err != nil && state == network.StateError {
		text.Draw(screen, err.Error(), fonts.Small.Get(), margin, y, clr)
	}
}
