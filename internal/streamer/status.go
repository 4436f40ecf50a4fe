package streamer

import "time"

// State is the lifecycle stage of a coordinator run.
type State string

const (
	StateIdle         State = "idle"
	StateValidating   State = "validating_genesis"
	StateAwaitingSync State = "awaiting_sync"
	StateStreaming    State = "streaming"
	StateCaughtUp     State = "caught_up"
	StateStopped      State = "stopped"
	StateFailed       State = "failed"
)

// Status is a point-in-time snapshot of a coordinator run.
type Status struct {
	RunID      string    `json:"run_id"`
	State      State     `json:"state"`
	NextHeight uint64    `json:"next_height"`
	LastHeight *uint64   `json:"last_height,omitempty"`
	LastHash   string    `json:"last_hash,omitempty"`
	ChainHead  uint64    `json:"chain_head"`
	Streamed   uint64    `json:"streamed"`
	StartedAt  time.Time `json:"started_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Error      string    `json:"error,omitempty"`
}
