package core

import (
	"math/rand/v2"

	"github.com/automoto/coinarena/shared/netcomponents"
	"github.com/yohamta/donburi"
)

// WorldConfig tunes spawning and scoring for a World.
type WorldConfig struct {
	SpawnWidth  int // spawn x is drawn from [0, SpawnWidth)
	SpawnHeight int // spawn y is drawn from [0, SpawnHeight)
	CoinValue   int
	Rand        *rand.Rand
}

// CollectResult is what a granted collection produces for broadcast.
type CollectResult struct {
	Player netcomponents.Player
	Coin   netcomponents.Collectible
}

// World is the authoritative store of players and the single coin. Entities
// live in a donburi world; the id index and join order are kept alongside.
// A World is not safe for concurrent use: the Server's loop goroutine owns it.
type World struct {
	ecs      donburi.World
	entities map[string]donburi.Entity
	order    []string
	coin     donburi.Entity

	cfg        WorldConfig
	rng        *rand.Rand
	nextCoinID uint64
}

func NewWorld(cfg WorldConfig) *World {
	if cfg.SpawnWidth <= 0 {
		cfg.SpawnWidth = 500
	}
	if cfg.SpawnHeight <= 0 {
		cfg.SpawnHeight = 300
	}
	if cfg.CoinValue <= 0 {
		cfg.CoinValue = 1
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	w := &World{
		ecs:      donburi.NewWorld(),
		entities: make(map[string]donburi.Entity),
		cfg:      cfg,
		rng:      rng,
	}
	w.coin = w.ecs.Create(netcomponents.NetCollectible)
	w.respawnCoin()
	return w
}

func (w *World) randomSpawn() (float64, float64) {
	return float64(w.rng.IntN(w.cfg.SpawnWidth)), float64(w.rng.IntN(w.cfg.SpawnHeight))
}

// respawnCoin replaces the coin in place with a fresh id and position.
func (w *World) respawnCoin() netcomponents.Collectible {
	w.nextCoinID++
	x, y := w.randomSpawn()
	c := netcomponents.NewCollectible(netcomponents.CollectibleAttrs{
		ID:    w.nextCoinID,
		X:     x,
		Y:     y,
		Value: w.cfg.CoinValue,
	})
	netcomponents.NetCollectible.SetValue(w.ecs.Entry(w.coin), c)
	return c
}

// AddPlayer spawns a player for id at a random position with score 0.
// Adding an id that is already present returns the existing player.
func (w *World) AddPlayer(id string) netcomponents.Player {
	if p, ok := w.Player(id); ok {
		return p
	}
	x, y := w.randomSpawn()
	p := netcomponents.NewPlayer(netcomponents.PlayerAttrs{ID: id, X: x, Y: y})

	entity := w.ecs.Create(netcomponents.NetPlayer)
	netcomponents.NetPlayer.SetValue(w.ecs.Entry(entity), p)
	w.entities[id] = entity
	w.order = append(w.order, id)
	return p
}

// RemovePlayer deletes id. It reports whether anything was removed; an
// unknown id is a no-op.
func (w *World) RemovePlayer(id string) bool {
	entity, ok := w.entities[id]
	if !ok {
		return false
	}
	if w.ecs.Valid(entity) {
		w.ecs.Remove(entity)
	}
	delete(w.entities, id)
	for i, oid := range w.order {
		if oid == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

func (w *World) entry(id string) (*donburi.Entry, bool) {
	entity, ok := w.entities[id]
	if !ok || !w.ecs.Valid(entity) {
		return nil, false
	}
	return w.ecs.Entry(entity), true
}

// Player returns a copy of the player with id.
func (w *World) Player(id string) (netcomponents.Player, bool) {
	e, ok := w.entry(id)
	if !ok {
		return netcomponents.Player{}, false
	}
	return *netcomponents.NetPlayer.Get(e), true
}

// ApplyMovement moves player id. Unknown players and unknown directions are
// silently ignored.
func (w *World) ApplyMovement(id string, dir netcomponents.Direction, speed float64) (netcomponents.Player, bool) {
	e, ok := w.entry(id)
	if !ok {
		return netcomponents.Player{}, false
	}
	p := netcomponents.NetPlayer.Get(e)
	if !p.Move(dir, speed) {
		return netcomponents.Player{}, false
	}
	return *p, true
}

// TryCollect grants the current coin to playerID when claimedID names it.
// A claim for a stale or unknown coin, or by an unknown player, changes
// nothing. Each coin id is therefore granted at most once.
func (w *World) TryCollect(playerID string, claimedID uint64) (CollectResult, bool) {
	e, ok := w.entry(playerID)
	if !ok {
		return CollectResult{}, false
	}
	current := w.Collectible()
	if claimedID == 0 || claimedID != current.ID {
		return CollectResult{}, false
	}

	p := netcomponents.NetPlayer.Get(e)
	p.Score += current.Value
	next := w.respawnCoin()
	return CollectResult{Player: *p, Coin: next}, true
}

func (w *World) Collectible() netcomponents.Collectible {
	return *netcomponents.NetCollectible.Get(w.ecs.Entry(w.coin))
}

// Snapshot returns every player in join order plus the current coin.
func (w *World) Snapshot() ([]netcomponents.Player, netcomponents.Collectible) {
	players := make([]netcomponents.Player, 0, len(w.order))
	for _, id := range w.order {
		if p, ok := w.Player(id); ok {
			players = append(players, p)
		}
	}
	return players, w.Collectible()
}

// Len is the number of players in the world.
func (w *World) Len() int {
	return len(w.entities)
}
