package api

import (
	"time"

	"github.com/goran-ethernal/BlockLake/internal/runconfig"
	"github.com/goran-ethernal/BlockLake/internal/streamer"
	"github.com/goran-ethernal/BlockLake/internal/types"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	RunID     string         `json:"run_id"`
	State     streamer.State `json:"state"`
}

// StatusResponse describes the current run.
type StatusResponse struct {
	RunID       string                     `json:"run_id"`
	Config      runconfig.RunConfiguration `json:"config"`
	Progress    streamer.Status            `json:"progress"`
	DBSizeBytes int64                      `json:"db_size_bytes"`
}

// HeadResponse is the chain head observed by a single probe.
type HeadResponse struct {
	FinalityLevel types.FinalityLevel `json:"finality_level"`
	Finality      types.BlockFinality `json:"finality"`
	Height        uint64              `json:"height"`
	ObservedAt    time.Time           `json:"observed_at"`
}
