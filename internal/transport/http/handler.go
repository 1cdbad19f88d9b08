// Package httptransport is the thin HTTP layer over the solver registry. It
// exposes read-only debug endpoints; all synchronization happens through the
// model change feeds, never through HTTP.
package httptransport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mortar/internal/building"
	"mortar/internal/solver"
	"mortar/pkg/platform/httputil"
	"mortar/pkg/platform/sentinel"
)

// Registry is the view of tracked solver state the endpoints expose.
type Registry interface {
	Tracked(id building.PerimeterID) bool
	Snapshot() solver.Snapshot
}

// Handler wires the registry endpoints to the solver store.
type Handler struct {
	registry Registry
	logger   *slog.Logger
}

// New constructs the handler with its dependencies.
func New(registry Registry, logger *slog.Logger) *Handler {
	return &Handler{registry: registry, logger: logger}
}

// Register mounts the endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/healthz", h.HandleHealth)
	r.Get("/v1/registry", h.HandleRegistry)
	r.Get("/v1/registry/{perimeterID}", h.HandlePerimeter)
}

// HandleHealth handles GET /healthz requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleRegistry handles GET /v1/registry requests.
func (h *Handler) HandleRegistry(w http.ResponseWriter, r *http.Request) {
	snap := h.registry.Snapshot()
	h.logger.DebugContext(r.Context(), "registry dumped", "perimeters", len(snap.Perimeters))
	httputil.WriteJSON(w, http.StatusOK, snap)
}

// HandlePerimeter handles GET /v1/registry/{perimeterID} requests.
func (h *Handler) HandlePerimeter(w http.ResponseWriter, r *http.Request) {
	id := building.PerimeterID(chi.URLParam(r, "perimeterID"))
	if !h.registry.Tracked(id) {
		httputil.WriteError(w, fmt.Errorf("perimeter %s: %w", id, sentinel.ErrUntracked))
		return
	}
	for _, p := range h.registry.Snapshot().Perimeters {
		if p.ID == id {
			httputil.WriteJSON(w, http.StatusOK, p)
			return
		}
	}
	// Untracked between the check and the dump; report it the same way.
	httputil.WriteError(w, fmt.Errorf("perimeter %s: %w", id, sentinel.ErrUntracked))
}
