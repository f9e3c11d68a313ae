package scenes

import (
	"sync"

	"github.com/automoto/coinarena/archetypes"
	"github.com/automoto/coinarena/components"
	cfg "github.com/automoto/coinarena/config"
	"github.com/automoto/coinarena/network"
	"github.com/automoto/coinarena/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene renders the mirrored arena and drives prediction and claims.
type ArenaScene struct {
	ecsWorld  *ecs.ECS
	netClient *network.Client
	addr      string
	once      sync.Once
}

func NewArenaScene(client *network.Client, addr string) *ArenaScene {
	return &ArenaScene{
		netClient: client,
		addr:      addr,
	}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecsWorld.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	if as.ecsWorld == nil {
		return
	}
	as.ecsWorld.Draw(screen)
}

func (as *ArenaScene) configure() {
	as.ecsWorld = ecs.NewECS(donburi.NewWorld())

	session := archetypes.Session.Spawn(as.ecsWorld)
	components.Session.SetValue(session, components.SessionData{
		Client: as.netClient,
		Mirror: network.NewMirror(),
		Addr:   as.addr,
	})
	archetypes.Coin.Spawn(as.ecsWorld)

	as.ecsWorld.AddSystem(systems.UpdateSync)
	as.ecsWorld.AddSystem(systems.UpdateInput)
	as.ecsWorld.AddSystem(systems.UpdateClaim)
	as.ecsWorld.AddSystem(systems.UpdateCoinPulse)
	as.ecsWorld.AddRenderer(cfg.Default, systems.DrawBackground)
	as.ecsWorld.AddRenderer(cfg.Default, systems.DrawCoin)
	as.ecsWorld.AddRenderer(cfg.Default, systems.DrawPlayers)
	as.ecsWorld.AddRenderer(cfg.HUD, systems.DrawHUD)
}
