package network

import (
	"fmt"
	"slices"

	"github.com/automoto/coinarena/shared/messages"
	"github.com/automoto/coinarena/shared/netcomponents"
	"github.com/automoto/coinarena/shared/protocol"
)

// Mirror is a client's local copy of the world. It is not safe for
// concurrent use; the render goroutine owns it.
type Mirror struct {
	selfID  string
	players []netcomponents.Player
	coin    *netcomponents.Collectible
}

func NewMirror() *Mirror {
	return &Mirror{}
}

// Ready reports whether init has been applied.
func (m *Mirror) Ready() bool {
	return m.selfID != ""
}

func (m *Mirror) SelfID() string {
	return m.selfID
}

// Apply routes one server envelope to the matching handler. Client-bound
// messages with undecodable payloads are reported; unknown names are ignored.
func (m *Mirror) Apply(env protocol.Envelope) error {
	switch env.T {
	case protocol.MsgInit:
		v, err := protocol.DecodePayload[messages.Init](env)
		if err != nil {
			return err
		}
		m.ApplyInit(v)
	case protocol.MsgNewPlayer:
		v, err := protocol.DecodePayload[netcomponents.Player](env)
		if err != nil {
			return err
		}
		m.ApplyNewPlayer(v)
	case protocol.MsgUpdatePlayer:
		v, err := protocol.DecodePayload[netcomponents.Player](env)
		if err != nil {
			return err
		}
		m.ApplyUpdatePlayer(v)
	case protocol.MsgUpdateCoin:
		v, err := protocol.DecodePayload[netcomponents.Collectible](env)
		if err != nil {
			return err
		}
		m.ApplyUpdateCoin(v)
	case protocol.MsgRemovePlayer:
		v, err := protocol.DecodePayload[string](env)
		if err != nil {
			return err
		}
		m.ApplyRemovePlayer(v)
	}
	return nil
}

// ApplyInit replaces the whole mirror with the server snapshot.
func (m *Mirror) ApplyInit(in messages.Init) {
	m.selfID = in.ID
	m.players = m.players[:0]
	for _, p := range in.Players {
		m.players = append(m.players, netcomponents.NewPlayer(netcomponents.PlayerAttrs{
			ID: p.ID, X: p.X, Y: p.Y, Score: p.Score,
		}))
	}
	coin := in.Coin
	m.coin = &coin
}

func (m *Mirror) ApplyNewPlayer(p netcomponents.Player) {
	m.upsert(p)
}

// ApplyUpdatePlayer overwrites the entry for p.ID with the server's value.
// For the local player this is the reconciliation step: any predicted
// position is discarded in favour of the authoritative one.
func (m *Mirror) ApplyUpdatePlayer(p netcomponents.Player) {
	m.upsert(p)
}

func (m *Mirror) ApplyUpdateCoin(c netcomponents.Collectible) {
	m.coin = &c
}

func (m *Mirror) ApplyRemovePlayer(id string) {
	m.players = slices.DeleteFunc(m.players, func(p netcomponents.Player) bool {
		return p.ID == id
	})
}

func (m *Mirror) upsert(p netcomponents.Player) {
	if i := m.index(p.ID); i >= 0 {
		m.players[i] = p
		return
	}
	m.players = append(m.players, p)
}

func (m *Mirror) index(id string) int {
	return slices.IndexFunc(m.players, func(p netcomponents.Player) bool {
		return p.ID == id
	})
}

// PredictMove applies a local move to the own player before the server
// confirms it. It reports whether anything moved.
func (m *Mirror) PredictMove(dir netcomponents.Direction, speed float64) bool {
	i := m.index(m.selfID)
	if i < 0 {
		return false
	}
	return m.players[i].Move(dir, speed)
}

func (m *Mirror) Self() (netcomponents.Player, bool) {
	i := m.index(m.selfID)
	if i < 0 {
		return netcomponents.Player{}, false
	}
	return m.players[i], true
}

func (m *Mirror) Player(id string) (netcomponents.Player, bool) {
	i := m.index(id)
	if i < 0 {
		return netcomponents.Player{}, false
	}
	return m.players[i], true
}

// Players returns a copy of the mirrored players in mirror order.
func (m *Mirror) Players() []netcomponents.Player {
	return slices.Clone(m.players)
}

func (m *Mirror) Coin() (netcomponents.Collectible, bool) {
	if m.coin == nil {
		return netcomponents.Collectible{}, false
	}
	return *m.coin, true
}

// CollisionClaim returns the claim to send when the local player overlaps
// the mirrored coin. It fires on every call while they overlap; the server
// rejects repeats.
func (m *Mirror) CollisionClaim() (messages.Collision, bool) {
	self, ok := m.Self()
	if !ok || m.coin == nil {
		return messages.Collision{}, false
	}
	if !self.Intersects(*m.coin) {
		return messages.Collision{}, false
	}
	item := *m.coin
	return messages.Collision{Item: &item, ID: self.ID}, true
}

// Rank is the 1-based position of the local player by descending score,
// and the number of players. Ties keep mirror order. The mirror itself is
// never reordered.
func (m *Mirror) Rank() (rank, total int) {
	return Rank(m.players, m.selfID)
}

// RankText formats Rank for the HUD.
func (m *Mirror) RankText() string {
	rank, total := m.Rank()
	return fmt.Sprintf("Rank: %d/%d", rank, total)
}

// Rank ranks id within players without modifying the slice. An id that is
// not present ranks first.
func Rank(players []netcomponents.Player, id string) (rank, total int) {
	sorted := slices.Clone(players)
	slices.SortStableFunc(sorted, func(a, b netcomponents.Player) int {
		return b.Score - a.Score
	})
	rank = 1
	for i, p := range sorted {
		if p.ID == id {
			rank = i + 1
			break
		}
	}
	return rank, len(players)
}
