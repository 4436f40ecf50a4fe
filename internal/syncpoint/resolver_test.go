package syncpoint

import (
	"context"
	"errors"
	"testing"

	"github.com/goran-ethernal/BlockLake/internal/logger"
	"github.com/goran-ethernal/BlockLake/internal/types"
	"github.com/stretchr/testify/require"
)

// countingProbe records every probe and answers with a fixed height or error.
type countingProbe struct {
	height     uint64
	err        error
	calls      int
	finalities []types.BlockFinality
}

func (p *countingProbe) Probe(_ context.Context, finality types.BlockFinality) (uint64, error) {
	p.calls++
	p.finalities = append(p.finalities, finality)
	if p.err != nil {
		return 0, p.err
	}
	return p.height, nil
}

func newTestResolver(probe HeadProbe) *Resolver {
	return NewResolver(probe, logger.NewNopLogger())
}

func TestResolveStart_FromBlock(t *testing.T) {
	heights := []uint64{0, 1, 1000, 5_000_000, ^uint64(0)}

	for _, height := range heights {
		probe := &countingProbe{height: 42}
		point, err := newTestResolver(probe).ResolveStart(context.Background(), FromBlock{Height: height})
		require.NoError(t, err)

		got, ok := point.Height()
		require.True(t, ok)
		require.Equal(t, height, got)
		require.False(t, point.IsInterruption())
		require.Zero(t, probe.calls, "FromBlock must not probe the chain")
	}
}

func TestResolveStart_FromInterruption(t *testing.T) {
	probe := &countingProbe{err: errors.New("must not be called")}
	resolver := newTestResolver(probe)

	for range 3 {
		point, err := resolver.ResolveStart(context.Background(), FromInterruption{})
		require.NoError(t, err)
		require.True(t, point.IsInterruption())
		require.Equal(t, AtInterruption(), point)

		_, ok := point.Height()
		require.False(t, ok)
	}
	require.Zero(t, probe.calls)
}

func TestResolveStart_FromLatest(t *testing.T) {
	probe := &countingProbe{height: 5_000_000}

	point, err := newTestResolver(probe).ResolveStart(context.Background(), FromLatest{})
	require.NoError(t, err)
	require.Equal(t, AtHeight(5_000_000), point)
	require.Equal(t, 1, probe.calls)
	require.Equal(t, []types.BlockFinality{types.FinalityFinalized}, probe.finalities)
}

func TestResolveStart_FromLatestFollowsChain(t *testing.T) {
	probe := &countingProbe{height: 100}
	resolver := newTestResolver(probe)

	first, err := resolver.ResolveStart(context.Background(), FromLatest{})
	require.NoError(t, err)

	probe.height = 105
	second, err := resolver.ResolveStart(context.Background(), FromLatest{})
	require.NoError(t, err)

	require.Equal(t, AtHeight(100), first)
	require.Equal(t, AtHeight(105), second)
}

func TestResolveStart_FromLatestProbeFailure(t *testing.T) {
	probeErr := errors.New("dial tcp 127.0.0.1:8545: connection refused")
	probe := &countingProbe{err: probeErr}

	point, err := newTestResolver(probe).ResolveStart(context.Background(), FromLatest{})
	require.Error(t, err)
	require.Equal(t, StartPoint{}, point)
	require.ErrorIs(t, err, ErrProbeFailed)
	require.ErrorIs(t, err, probeErr)

	var resolveErr *ResolveError
	require.ErrorAs(t, err, &resolveErr)
	require.Equal(t, ModeFromLatest, resolveErr.Mode)
	require.Equal(t, 1, probe.calls, "a failed probe is not retried")
}

func TestParseSyncMode(t *testing.T) {
	height := uint64(1000)

	tests := []struct {
		name    string
		mode    string
		height  *uint64
		want    SyncMode
		wantErr string
	}{
		{name: "interruption", mode: "from_interruption", want: FromInterruption{}},
		{name: "latest", mode: "from_latest", want: FromLatest{}},
		{name: "block", mode: "from_block", height: &height, want: FromBlock{Height: 1000}},
		{name: "command alias", mode: "sync-from-latest", want: FromLatest{}},
		{name: "mixed case", mode: " From_Block ", height: &height, want: FromBlock{Height: 1000}},
		{name: "block without height", mode: "from_block", wantErr: "requires a start height"},
		{name: "latest with height", mode: "from_latest", height: &height, wantErr: "not used"},
		{name: "interruption with height", mode: "from_interruption", height: &height, wantErr: "not used"},
		{name: "unknown", mode: "from_genesis", wantErr: "invalid sync mode"},
		{name: "empty", mode: "", wantErr: "invalid sync mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSyncMode(tt.mode, tt.height)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestStartPoint(t *testing.T) {
	var zero StartPoint
	height, ok := zero.Height()
	require.True(t, ok)
	require.Zero(t, height)

	text, err := AtHeight(1000).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "1000", string(text))

	text, err = AtInterruption().MarshalText()
	require.NoError(t, err)
	require.Equal(t, "interruption", string(text))

	require.Equal(t, AtHeight(7), AtHeight(7))
	require.NotEqual(t, AtHeight(0), AtInterruption())
}
