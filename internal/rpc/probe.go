package rpc

import (
	"context"
	"time"

	"github.com/goran-ethernal/BlockLake/internal/logger"
	"github.com/goran-ethernal/BlockLake/internal/syncpoint"
	"github.com/goran-ethernal/BlockLake/internal/types"
	pkgrpc "github.com/goran-ethernal/BlockLake/pkg/rpc"
)

var _ syncpoint.HeadProbe = (*HeadProbe)(nil)

// HeadProbe reports the chain head height at a requested finality.
// Every Probe is a single request to the node; failures are returned, never retried.
type HeadProbe struct {
	client  pkgrpc.ChainClient
	timeout time.Duration
	log     *logger.Logger
}

// NewHeadProbe creates a HeadProbe. A zero timeout leaves the deadline to the caller's context.
func NewHeadProbe(client pkgrpc.ChainClient, timeout time.Duration, log *logger.Logger) *HeadProbe {
	return &HeadProbe{
		client:  client,
		timeout: timeout,
		log:     log,
	}
}

// Probe returns the height of the head at finality.
// Errors are *ProbeError values matching ErrTransportFailure or ErrClientRejected.
func (p *HeadProbe) Probe(ctx context.Context, finality types.BlockFinality) (uint64, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	header, err := p.client.HeaderByFinality(ctx, finality)
	if err == nil && header == nil {
		err = errNoHeader
	}
	ProbeDuration(finality, time.Since(start))

	if err != nil {
		probeErr := newProbeError(finality, err)
		ProbeOutcomeInc(finality, probeErr.Kind.String())
		p.log.Warnw("chain head probe failed", "finality", finality, "kind", probeErr.Kind, "error", err)
		return 0, probeErr
	}

	height := header.Number.Uint64()
	ProbeOutcomeInc(finality, "ok")
	ChainHeadSet(finality, height)
	p.log.Debugw("chain head probed", "finality", finality, "height", height, "hash", header.Hash())

	return height, nil
}
