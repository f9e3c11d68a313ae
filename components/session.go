package components

import (
	"github.com/automoto/coinarena/network"
	"github.com/yohamta/donburi"
)

// SessionData ties the scene to its server connection and world mirror.
type SessionData struct {
	Client *network.Client
	Mirror *network.Mirror
	Addr   string
}

var Session = donburi.NewComponentType[SessionData]()
