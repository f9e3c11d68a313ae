package messages

import "github.com/automoto/coinarena/shared/netcomponents"

// Init is the full snapshot sent once to a client right after it joins.
type Init struct {
	ID      string                    `json:"id"`
	Players []netcomponents.Player    `json:"players"`
	Coin    netcomponents.Collectible `json:"coin"`
}

// The remaining server events carry a bare entity or id as payload:
//
//	new-player    netcomponents.Player
//	update-player netcomponents.Player
//	update-coin   netcomponents.Collectible
//	remove-player string
