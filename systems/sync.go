package systems

import (
	"log"

	"github.com/yohamta/donburi/ecs"
)

// UpdateSync applies every server message received since the last tick,
// in arrival order.
func UpdateSync(e *ecs.ECS) {
	s, ok := getSession(e)
	if !ok {
		return
	}
	for _, env := range s.Client.Drain() {
		if err := s.Mirror.Apply(env); err != nil {
			log.Printf("[client] dropping %q: %v", env.T, err)
		}
	}
}
