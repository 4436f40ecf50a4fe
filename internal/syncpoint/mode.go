package syncpoint

import (
	"fmt"

	"github.com/goran-ethernal/BlockLake/internal/common"
)

// Sync mode names used in configuration files and on the command line.
const (
	ModeFromInterruption = "from_interruption"
	ModeFromLatest       = "from_latest"
	ModeFromBlock        = "from_block"
)

// SyncMode selects where an indexing run starts.
// The set of implementations is closed: FromInterruption, FromLatest and FromBlock.
type SyncMode interface {
	// Name returns the configuration name of the mode.
	Name() string

	isSyncMode()
}

// FromInterruption resumes after the last block persisted by the coordinator.
type FromInterruption struct{}

// FromLatest starts at the final chain head observed when the run starts.
type FromLatest struct{}

// FromBlock starts at an explicit block height.
type FromBlock struct {
	Height uint64
}

func (FromInterruption) Name() string { return ModeFromInterruption }
func (FromLatest) Name() string       { return ModeFromLatest }
func (FromBlock) Name() string        { return ModeFromBlock }

func (FromInterruption) isSyncMode() {}
func (FromLatest) isSyncMode()       {}
func (FromBlock) isSyncMode()        {}

func (m FromBlock) String() string {
	return fmt.Sprintf("%s(%d)", ModeFromBlock, m.Height)
}

// ParseSyncMode builds a SyncMode from its configuration name.
// height is required for from_block and must be unset for the other modes.
func ParseSyncMode(name string, height *uint64) (SyncMode, error) {
	switch common.ToLowerWithTrim(name) {
	case ModeFromInterruption, "sync-from-interruption":
		if height != nil {
			return nil, fmt.Errorf("start height %d is not used by %s", *height, ModeFromInterruption)
		}
		return FromInterruption{}, nil
	case ModeFromLatest, "sync-from-latest":
		if height != nil {
			return nil, fmt.Errorf("start height %d is not used by %s", *height, ModeFromLatest)
		}
		return FromLatest{}, nil
	case ModeFromBlock, "sync-from-block":
		if height == nil {
			return nil, fmt.Errorf("%s requires a start height", ModeFromBlock)
		}
		return FromBlock{Height: *height}, nil
	default:
		return nil, fmt.Errorf("invalid sync mode: %q (must be one of: %s, %s, %s)",
			name, ModeFromInterruption, ModeFromLatest, ModeFromBlock)
	}
}
