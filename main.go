package main

import (
	"flag"
	"log"

	"github.com/automoto/coinarena/config"
	"github.com/automoto/coinarena/fonts"
	"github.com/automoto/coinarena/network"
	"github.com/automoto/coinarena/scenes"
	"github.com/automoto/coinarena/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(client *network.Client, addr string) *Game {
	return &Game{
		scene: scenes.NewArenaScene(client, addr),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	addr := flag.String("addr", "", "arena server address (host:port or ws:// URL)")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and pick the server address
	if err := systems.InitPersistence(); err != nil {
		log.Printf("[settings] continuing without persistence: %v", err)
	}
	saved, _ := systems.LoadSettings()
	serverAddr := systems.ResolveAddr(*addr, saved, config.C.DefaultAddr)
	_ = systems.SaveSettings(&systems.SavedSettings{LastAddr: serverAddr})

	client := network.NewClient()
	client.Connect(serverAddr)
	defer client.Disconnect()

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Coin Arena")

	if err := ebiten.RunGame(NewGame(client, serverAddr)); err != nil {
		log.Fatal(err)
	}
}
