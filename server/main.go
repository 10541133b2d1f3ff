package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tight-lines/internal/game"
)

// NewRouter wires the websocket and HTTP endpoints
func NewRouter(world *World) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ws", HandleWebSocket(world))
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(15 * time.Second))
		NewAPIHandler(world).RegisterRoutes(r)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Tight Lines Server Running"))
		})
	})
	return r
}

func main() {
	cfg := game.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid game config: %v", err)
	}
	catalog, err := game.DefaultCatalog()
	if err != nil {
		log.Fatalf("Invalid species catalog: %v", err)
	}

	// Create the game world
	world := NewWorld(cfg, catalog, NewProgressStore())

	// Start the game loop
	world.Start()

	addr := ":" + strings.TrimSpace(os.Getenv("PORT"))
	if addr == ":" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(world),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Starting server on %s", addr)
	log.Printf("  - WebSocket:    ws://localhost%s/ws", addr)
	log.Printf("  - Field guide:  http://localhost%s/catalog", addr)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server error:", err)
	}
}
