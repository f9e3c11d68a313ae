package core

import (
	"encoding/json"
	"log"
	"net/http"
)

type healthResponse struct {
	Status  string `json:"status"`
	Players int    `json:"players"`
}

// Health reports liveness and the current player count.
func Health(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(healthResponse{Status: "ok", Players: s.PlayerCount()}); err != nil {
			log.Printf("[server] health encode error: %v", err)
		}
	}
}
