package config

import (
	"github.com/automoto/coinarena/shared/netcomponents"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionReconnect
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

// MoveActions maps each movement action to the direction it sends.
var MoveActions = []struct {
	Action    ActionID
	Direction netcomponents.Direction
}{
	{ActionMoveUp, netcomponents.DirUp},
	{ActionMoveDown, netcomponents.DirDown},
	{ActionMoveLeft, netcomponents.DirLeft},
	{ActionMoveRight, netcomponents.DirRight},
}

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			},
			ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			},
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			},
			ActionReconnect: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
		},
	}
}
