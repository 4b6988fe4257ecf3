package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/werewolves-night/onenight/internal/store"
)

const inviteSize = 256

// Handler serves the thin HTTP surface next to the websocket endpoint:
// health checks and QR invite images.
type Handler struct {
	store     *store.RoomStore
	publicURL string
}

// NewHandler creates the HTTP handler.
func NewHandler(st *store.RoomStore, publicURL string) *Handler {
	return &Handler{
		store:     st,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// RegisterRoutes sets up the HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("GET /invite/{code}", h.handleInvite)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleInvite returns a QR code PNG pointing at the join URL for an
// existing room, for sharing the code across the table.
func (h *Handler) handleInvite(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(r.PathValue("code"))
	if _, exists := h.store.Get(code); !exists {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	joinURL := fmt.Sprintf("%s/?code=%s", h.publicURL, code)
	png, err := qrcode.Encode(joinURL, qrcode.Medium, inviteSize)
	if err != nil {
		log.Error().Err(err).Str("room", code).Msg("encode invite qr")
		http.Error(w, "Failed to generate invite", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
