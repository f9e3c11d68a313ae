package core

import (
	"math/rand/v2"
	"time"
)

// Config holds the tunables for a Server.
type Config struct {
	SpawnWidth  int
	SpawnHeight int
	CoinValue   int

	InboxSize      int           // pending events before submitters wait
	OutboundQueue  int           // frames buffered per connection before it is dropped
	WriteTimeout   time.Duration // per-frame websocket write deadline
	ReadLimit      int64         // max inbound frame size in bytes
	OriginPatterns []string      // accepted websocket origins; empty means same host only

	// Rand seeds spawn positions. Nil uses a randomly seeded source.
	Rand *rand.Rand
}

func DefaultConfig() Config {
	return Config{
		SpawnWidth:    500,
		SpawnHeight:   300,
		CoinValue:     1,
		InboxSize:     256,
		OutboundQueue: 64,
		WriteTimeout:  5 * time.Second,
		ReadLimit:     4 << 10,
	}
}

func (c Config) world() WorldConfig {
	return WorldConfig{
		SpawnWidth:  c.SpawnWidth,
		SpawnHeight: c.SpawnHeight,
		CoinValue:   c.CoinValue,
		Rand:        c.Rand,
	}
}
