package config

import (
	"image/color"

	"github.com/automoto/coinarena/shared/netcomponents"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in order.
const (
	Default ecs.LayerID = iota
	HUD
)

// Config holds general client configuration
type Config struct {
	Width  int
	Height int

	// Server address used when neither -addr nor a saved address is present.
	DefaultAddr string
}

// MovementConfig controls how held keys turn into move-player intents
type MovementConfig struct {
	Speed float64

	// Key repeat, in ticks. A press fires once, then again every
	// RepeatInterval ticks after RepeatDelay.
	RepeatDelay    int
	RepeatInterval int
}

// ArenaConfig contains the arena's colours and HUD layout
type ArenaConfig struct {
	Background color.RGBA
	Self       color.RGBA
	Other      color.RGBA
	CoinFill   color.RGBA
	CoinLine   color.RGBA
	HUDText    color.RGBA
	StatusText color.RGBA
	ErrorText  color.RGBA

	HUDMargin   int
	LineSpacing int

	// Coin spawn pulse
	PulseScale    float32 // Starting scale, eases to 1
	PulseDuration float32 // Seconds
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Arena ArenaConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Gold      = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	LightGray = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	LightRed  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
)

func init() {
	C = &Config{
		Width:       640,
		Height:      360,
		DefaultAddr: "localhost:3000",
	}

	Movement = MovementConfig{
		Speed:          10,
		RepeatDelay:    15,
		RepeatInterval: 4,
	}

	Arena = ArenaConfig{
		Background: Black,
		Self:       Blue,
		Other:      Red,
		CoinFill:   Gold,
		CoinLine:   White,
		HUDText:    White,
		StatusText: LightGray,
		ErrorText:  LightRed,

		HUDMargin:   8,
		LineSpacing: 16,

		PulseScale:    1.8,
		PulseDuration: 0.35,
	}
}

// PlayerSize and CoinSize are the drawn box sizes in pixels.
func PlayerSize() float32 { return float32(netcomponents.PlayerSize) }
func CoinSize() float32 { return float32(netcomponents.CollectibleSize) }
