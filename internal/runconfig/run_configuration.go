package runconfig

import (
	"fmt"

	"github.com/goran-ethernal/BlockLake/internal/common"
	"github.com/goran-ethernal/BlockLake/internal/syncpoint"
	"github.com/goran-ethernal/BlockLake/internal/types"
)

// AwaitPolicy decides whether streaming waits for the node to finish syncing.
type AwaitPolicy string

const (
	// WaitForFullSync holds streaming until the node reports it is synced.
	WaitForFullSync AwaitPolicy = "wait_for_full_sync"

	// StreamWhileSyncing streams blocks while the node is still syncing.
	StreamWhileSyncing AwaitPolicy = "stream_while_syncing"
)

// IsValid checks if the AwaitPolicy value is valid.
func (p AwaitPolicy) IsValid() bool {
	switch p {
	case WaitForFullSync, StreamWhileSyncing:
		return true
	default:
		return false
	}
}

func (p AwaitPolicy) String() string {
	return string(p)
}

// RunConfiguration is everything the block-stream coordinator needs for one run.
// It holds only value fields and is handed off by copy; it is never mutated after Build.
type RunConfiguration struct {
	HomeDir         string               `json:"home_dir"`
	SyncMode        string               `json:"sync_mode"`
	SyncPoint       syncpoint.StartPoint `json:"sync_point"`
	AwaitPolicy     AwaitPolicy          `json:"await_policy"`
	FinalityLevel   types.FinalityLevel  `json:"finality_level"`
	Finality        types.BlockFinality  `json:"finality"`
	ValidateGenesis bool                 `json:"validate_genesis"`
	Concurrency     ConcurrencyLevel     `json:"concurrency"`
}

// Params are the resolved inputs of Build.
type Params struct {
	HomeDir         string
	SyncMode        syncpoint.SyncMode
	StartPoint      syncpoint.StartPoint
	AwaitPolicy     AwaitPolicy
	FinalityLevel   types.FinalityLevel
	ValidateGenesis bool
	Concurrency     ConcurrencyLevel
}

// Build aggregates resolved inputs into a RunConfiguration. It performs no I/O.
func Build(p Params) (RunConfiguration, error) {
	if p.HomeDir == "" {
		return RunConfiguration{}, fmt.Errorf("%w: home directory is required", common.ErrInvalidConfiguration)
	}

	if p.SyncMode == nil {
		return RunConfiguration{}, fmt.Errorf("%w: sync mode is required", common.ErrInvalidConfiguration)
	}

	if !p.FinalityLevel.IsValid() {
		return RunConfiguration{}, fmt.Errorf("%w: unknown finality level %q",
			common.ErrInvalidConfiguration, p.FinalityLevel)
	}

	if !p.AwaitPolicy.IsValid() {
		return RunConfiguration{}, fmt.Errorf("%w: unknown await policy %q",
			common.ErrInvalidConfiguration, p.AwaitPolicy)
	}

	if err := checkCombination(p.FinalityLevel, p.SyncMode); err != nil {
		return RunConfiguration{}, fmt.Errorf("%w: %w", common.ErrInvalidConfiguration, err)
	}

	return RunConfiguration{
		HomeDir:         p.HomeDir,
		SyncMode:        p.SyncMode.Name(),
		SyncPoint:       p.StartPoint,
		AwaitPolicy:     p.AwaitPolicy,
		FinalityLevel:   p.FinalityLevel,
		Finality:        types.ResolveFinality(p.FinalityLevel),
		ValidateGenesis: p.ValidateGenesis,
		Concurrency:     p.Concurrency,
	}, nil
}

// checkCombination rejects finality and sync mode pairs the coordinator cannot serve.
// Every pair is currently accepted.
func checkCombination(_ types.FinalityLevel, _ syncpoint.SyncMode) error {
	return nil
}
