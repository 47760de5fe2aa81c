package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/bloodage/internal/batch"
	"github.com/wonny/bloodage/internal/formula"
	"github.com/wonny/bloodage/internal/ingest"
	"github.com/wonny/bloodage/pkg/config"
	"github.com/wonny/bloodage/pkg/logger"
)

// Handler serves the persisted batch history and marker tables.
type Handler struct {
	cfg     *config.Config
	targets map[string]batch.Target
	logger  *logger.Logger
}

// New creates a handler over the configured formula targets.
func New(cfg *config.Config, targets []batch.Target, log *logger.Logger) *Handler {
	byName := make(map[string]batch.Target, len(targets))
	for _, t := range targets {
		byName[t.Formula.Name] = t
	}

	return &Handler{
		cfg:     cfg,
		targets: byName,
		logger:  log,
	}
}

// GetHistory returns the persisted entries for one formula.
// GET /api/history/{formula}
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	target, ok := h.targets[mux.Vars(r)["formula"]]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown formula")
		return
	}

	entries, err := target.Store.Load(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load batch entries")
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"formula": target.Formula.Name,
		"count":   len(entries),
		"entries": entries,
	})
}

// GetMarkers returns one formula's canonical IDs with their aliases.
// GET /api/markers/{formula}
func (h *Handler) GetMarkers(w http.ResponseWriter, r *http.Request) {
	f, ok := formula.ByName(mux.Vars(r)["formula"])
	if !ok {
		writeError(w, http.StatusNotFound, "unknown formula")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"formula":  f.Name,
		"required": f.Required,
		"aliases":  f.Resolver.Aliases(),
	})
}

// Refresh runs an incremental update over all configured formulas.
// POST /api/refresh
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	readings, _, err := ingest.Read(h.cfg.Input.CSVPath, h.logger)
	if err != nil {
		h.logger.WithError(err).Error("Failed to read input CSV")
		writeError(w, http.StatusInternalServerError, "failed to read input")
		return
	}

	targets := make([]batch.Target, 0, len(h.targets))
	for _, t := range h.targets {
		targets = append(targets, t)
	}

	updater := batch.NewUpdater(h.cfg.Birthdate, h.logger)
	results, err := updater.Run(r.Context(), readings, targets)
	if err != nil {
		h.logger.WithError(err).Error("Incremental update failed")
		writeError(w, http.StatusInternalServerError, "update failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
