package systems

import (
	"github.com/automoto/coinarena/components"
	"github.com/yohamta/donburi/ecs"
)

func getSession(e *ecs.ECS) (*components.SessionData, bool) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}
