package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/goran-ethernal/BlockLake/internal/logger"
	"github.com/goran-ethernal/BlockLake/internal/rpc"
	"github.com/goran-ethernal/BlockLake/internal/runconfig"
	"github.com/goran-ethernal/BlockLake/internal/streamer"
	"github.com/goran-ethernal/BlockLake/internal/syncpoint"
	"github.com/goran-ethernal/BlockLake/internal/types"
)

// StatusSource reports the progress of the running coordinator.
type StatusSource interface {
	Status() streamer.Status
}

// StoreStats reports the size of the progress database.
type StoreStats interface {
	Size() (int64, error)
}

// Run bundles what the API exposes about the current run.
type Run struct {
	ID     string
	Config runconfig.RunConfiguration
	Status StatusSource
	Probe  syncpoint.HeadProbe
	Store  StoreStats
}

// Handler handles HTTP requests for the API.
type Handler struct {
	run Run
	log *logger.Logger
}

// NewHandler creates a new API handler.
func NewHandler(run Run, log *logger.Logger) *Handler {
	return &Handler{
		run: run,
		log: log,
	}
}

// Health returns the health of the run.
// @Summary Health check
// @Description Report whether the current run is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Run is healthy"
// @Failure 503 {object} HealthResponse "Run has failed"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := h.run.Status.Status()

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		RunID:     h.run.ID,
		State:     status.State,
	}

	code := http.StatusOK
	if status.State == streamer.StateFailed {
		response.Status = "failed"
		code = http.StatusServiceUnavailable
	}

	respondJSON(w, code, response)
}

// GetStatus returns the run configuration and progress.
// @Summary Run status
// @Description Get the run ID, the resolved run configuration and the streaming progress
// @Tags Run
// @Produce json
// @Success 200 {object} StatusResponse "Run status"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /status [get]
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	size, err := h.run.Store.Size()
	if err != nil {
		h.log.Errorw("failed to read progress database size", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to read progress database size")
		return
	}

	respondJSON(w, http.StatusOK, StatusResponse{
		RunID:       h.run.ID,
		Config:      h.run.Config,
		Progress:    h.run.Status.Status(),
		DBSizeBytes: size,
	})
}

// GetHead probes the chain head once.
// @Summary Chain head
// @Description Probe the chain head at a finality level. Defaults to the run's finality.
// @Tags Chain
// @Produce json
// @Param finality query string false "Finality level" Enums(optimistic, near_final, final)
// @Success 200 {object} HeadResponse "Chain head"
// @Failure 400 {object} ErrorResponse "Invalid finality level"
// @Failure 502 {object} ErrorResponse "Node rejected the request"
// @Failure 503 {object} ErrorResponse "Node unreachable"
// @Router /head [get]
func (h *Handler) GetHead(w http.ResponseWriter, r *http.Request) {
	level := h.run.Config.FinalityLevel
	if raw := r.URL.Query().Get("finality"); raw != "" {
		parsed, err := types.ParseFinalityLevel(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		level = parsed
	}

	finality := types.ResolveFinality(level)

	height, err := h.run.Probe.Probe(r.Context(), finality)
	if err != nil {
		respondError(w, probeErrorStatus(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, HeadResponse{
		FinalityLevel: level,
		Finality:      finality,
		Height:        height,
		ObservedAt:    time.Now(),
	})
}

func probeErrorStatus(err error) int {
	if errors.Is(err, rpc.ErrClientRejected) {
		return http.StatusBadGateway
	}
	return http.StatusServiceUnavailable
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")

	// Encode first so a failure can still change the status
	encoded, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)

	if _, err := w.Write(encoded); err != nil {
		// Headers already sent
		return
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	response := ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}
	respondJSON(w, status, response)
}
