package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/automoto/coinarena/server/core"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Could not load .env: %v", err)
	}

	defaults := core.DefaultConfig()
	port := flag.Uint("port", uint(envInt("PORT", 3000)), "Server port")
	origins := flag.String("origins", os.Getenv("ARENA_ORIGINS"), "Comma separated websocket origin patterns")
	coinValue := flag.Int("coinvalue", envInt("ARENA_COIN_VALUE", defaults.CoinValue), "Score granted per coin")
	spawnW := flag.Int("spawnwidth", envInt("ARENA_SPAWN_WIDTH", defaults.SpawnWidth), "Spawn area width")
	spawnH := flag.Int("spawnheight", envInt("ARENA_SPAWN_HEIGHT", defaults.SpawnHeight), "Spawn area height")
	queue := flag.Int("queue", envInt("ARENA_OUTBOUND_QUEUE", defaults.OutboundQueue), "Outbound frames buffered per client")
	writeTimeout := flag.Duration("writetimeout", defaults.WriteTimeout, "Per-frame write timeout")
	flag.Parse()

	cfg := defaults
	cfg.CoinValue = *coinValue
	cfg.SpawnWidth = *spawnW
	cfg.SpawnHeight = *spawnH
	cfg.OutboundQueue = *queue
	cfg.WriteTimeout = *writeTimeout
	cfg.OriginPatterns = splitList(*origins)

	server := core.NewServer(cfg)
	server.Start()

	mux := http.NewServeMux()
	mux.Handle("GET /ws", server)
	mux.HandleFunc("GET /health", core.Health(server))

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Starting coin arena server on port %d (coin value: %d, spawn area: %dx%d)",
		*port, cfg.CoinValue, cfg.SpawnWidth, cfg.SpawnHeight)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
