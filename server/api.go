package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tight-lines/internal/game"
)

// APIHandler serves the read-only HTTP endpoints next to the websocket
type APIHandler struct {
	world *World
}

// NewAPIHandler creates the handler
func NewAPIHandler(world *World) *APIHandler {
	return &APIHandler{world: world}
}

// RegisterRoutes mounts the endpoints on r
func (h *APIHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/catalog", h.catalog)
	r.Get("/api/species/{name}", h.species)
	r.Get("/api/progress/{player}", h.progress)
	r.Get("/api/leaderboard", h.leaderboard)
	r.Get("/catalog", h.catalogPage)
}

type speciesNotFound struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions"`
}

func (h *APIHandler) catalog(w http.ResponseWriter, r *http.Request) {
	species := h.world.Catalog.All()
	if habitat := game.Habitat(r.URL.Query().Get("habitat")); habitat != "" {
		if !habitat.Valid() {
			http.Error(w, "unknown habitat", http.StatusBadRequest)
			return
		}
		filtered := species[:0]
		for _, s := range species {
			if s.Habitat.Matches(habitat) {
				filtered = append(filtered, s)
			}
		}
		species = filtered
	}
	writeJSON(w, http.StatusOK, species)
}

func (h *APIHandler) species(w http.ResponseWriter, r *http.Request) {
	s, suggestions, ok := h.world.Catalog.Lookup(chi.URLParam(r, "name"))
	if !ok {
		if suggestions == nil {
			suggestions = []string{}
		}
		writeJSON(w, http.StatusNotFound, speciesNotFound{Error: "unknown species", Suggestions: suggestions})
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *APIHandler) progress(w http.ResponseWriter, r *http.Request) {
	values, ok := h.world.Progress.Get(chi.URLParam(r, "player"))
	if !ok {
		http.Error(w, "no saved progress", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, values)
}

func (h *APIHandler) leaderboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.world.GetLeaderboard())
}

func (h *APIHandler) catalogPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, CatalogPage(h.world.Catalog.All()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
