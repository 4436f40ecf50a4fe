package syncpoint

import "fmt"

type startKind uint8

const (
	startHeight startKind = iota
	startInterruption
)

// StartPoint is the resolved outcome of a SyncMode: either a literal block height
// or a marker telling the coordinator to continue from its persisted progress.
// The zero value is the literal height 0.
type StartPoint struct {
	kind   startKind
	height uint64
}

// AtHeight returns a start point at a literal block height.
func AtHeight(height uint64) StartPoint {
	return StartPoint{kind: startHeight, height: height}
}

// AtInterruption returns the persisted-progress marker.
func AtInterruption() StartPoint {
	return StartPoint{kind: startInterruption}
}

// IsInterruption reports whether the coordinator must consult its persisted progress.
func (p StartPoint) IsInterruption() bool {
	return p.kind == startInterruption
}

// Height returns the literal height; ok is false for the interruption marker.
func (p StartPoint) Height() (height uint64, ok bool) {
	if p.kind != startHeight {
		return 0, false
	}
	return p.height, true
}

func (p StartPoint) String() string {
	if p.IsInterruption() {
		return "interruption"
	}
	return fmt.Sprintf("height(%d)", p.height)
}

// MarshalText renders "interruption" or the decimal height, used by the status API.
func (p StartPoint) MarshalText() ([]byte, error) {
	if p.IsInterruption() {
		return []byte("interruption"), nil
	}
	return []byte(fmt.Sprintf("%d", p.height)), nil
}
