package syncpoint

import (
	"context"
	"fmt"

	"github.com/goran-ethernal/BlockLake/internal/logger"
	"github.com/goran-ethernal/BlockLake/internal/types"
)

// HeadProbe returns the height of the chain head at the requested finality.
// It issues a single request and never retries.
type HeadProbe interface {
	Probe(ctx context.Context, finality types.BlockFinality) (uint64, error)
}

// latestFinality is the finality used to resolve FromLatest, independent of the
// finality the run streams at.
const latestFinality = types.FinalityFinalized

// Resolver turns a SyncMode into a StartPoint.
type Resolver struct {
	probe HeadProbe
	log   *logger.Logger
}

// NewResolver creates a Resolver using probe for FromLatest.
func NewResolver(probe HeadProbe, log *logger.Logger) *Resolver {
	return &Resolver{
		probe: probe,
		log:   log,
	}
}

// ResolveStart resolves mode into a start point. Only FromLatest touches the chain,
// with exactly one probe; a probe failure is returned as a *ResolveError.
func (r *Resolver) ResolveStart(ctx context.Context, mode SyncMode) (StartPoint, error) {
	switch m := mode.(type) {
	case FromInterruption:
		r.log.Infow("start point resolved", "mode", m.Name(), "start", "persisted progress")
		return AtInterruption(), nil

	case FromBlock:
		r.log.Infow("start point resolved", "mode", m.Name(), "height", m.Height)
		return AtHeight(m.Height), nil

	case FromLatest:
		height, err := r.probe.Probe(ctx, latestFinality)
		if err != nil {
			r.log.Errorw("failed to resolve latest start point", "finality", latestFinality, "error", err)
			return StartPoint{}, &ResolveError{Mode: m.Name(), Err: err}
		}

		r.log.Infow("start point resolved", "mode", m.Name(), "finality", latestFinality, "height", height)
		return AtHeight(height), nil

	default:
		// SyncMode is sealed; reaching this means a new mode was added without a resolution rule.
		panic(fmt.Sprintf("unhandled sync mode %T", mode))
	}
}
