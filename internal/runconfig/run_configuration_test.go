package runconfig

import (
	"testing"

	"github.com/goran-ethernal/BlockLake/internal/common"
	"github.com/goran-ethernal/BlockLake/internal/syncpoint"
	"github.com/goran-ethernal/BlockLake/internal/types"
	"github.com/stretchr/testify/require"
)

func validParams() Params {
	return Params{
		HomeDir:       "/tmp/lake",
		SyncMode:      syncpoint.FromBlock{Height: 1000},
		StartPoint:    syncpoint.AtHeight(1000),
		AwaitPolicy:   WaitForFullSync,
		FinalityLevel: types.FinalityFinal,
	}
}

func TestBuild(t *testing.T) {
	params := validParams()
	params.ValidateGenesis = true

	cfg, err := Build(params)
	require.NoError(t, err)
	require.Equal(t, RunConfiguration{
		HomeDir:         "/tmp/lake",
		SyncMode:        syncpoint.ModeFromBlock,
		SyncPoint:       syncpoint.AtHeight(1000),
		AwaitPolicy:     WaitForFullSync,
		FinalityLevel:   types.FinalityFinal,
		Finality:        types.FinalityFinalized,
		ValidateGenesis: true,
		Concurrency:     ConcurrencyLevel{},
	}, cfg)
	require.Equal(t, 1, cfg.Concurrency.Value())
}

func TestBuild_IsPure(t *testing.T) {
	params := validParams()

	first, err := Build(params)
	require.NoError(t, err)
	second, err := Build(params)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.True(t, first == second)
}

func TestBuild_AllCombinationsAccepted(t *testing.T) {
	modes := []struct {
		mode  syncpoint.SyncMode
		start syncpoint.StartPoint
	}{
		{syncpoint.FromInterruption{}, syncpoint.AtInterruption()},
		{syncpoint.FromLatest{}, syncpoint.AtHeight(5_000_000)},
		{syncpoint.FromBlock{Height: 0}, syncpoint.AtHeight(0)},
	}

	for _, level := range types.AllFinalityLevels {
		for _, m := range modes {
			params := validParams()
			params.FinalityLevel = level
			params.SyncMode = m.mode
			params.StartPoint = m.start

			cfg, err := Build(params)
			require.NoError(t, err, "level=%s mode=%s", level, m.mode.Name())
			require.Equal(t, types.ResolveFinality(level), cfg.Finality)
			require.Equal(t, m.start, cfg.SyncPoint)
			require.Equal(t, m.mode.Name(), cfg.SyncMode)
		}
	}
}

func TestBuild_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Params)
		wantErr string
	}{
		{
			name:    "missing home",
			mutate:  func(p *Params) { p.HomeDir = "" },
			wantErr: "home directory is required",
		},
		{
			name:    "missing sync mode",
			mutate:  func(p *Params) { p.SyncMode = nil },
			wantErr: "sync mode is required",
		},
		{
			name:    "unknown finality",
			mutate:  func(p *Params) { p.FinalityLevel = "doomslug" },
			wantErr: "unknown finality level",
		},
		{
			name:    "empty finality",
			mutate:  func(p *Params) { p.FinalityLevel = "" },
			wantErr: "unknown finality level",
		},
		{
			name:    "unknown await policy",
			mutate:  func(p *Params) { p.AwaitPolicy = "sometimes" },
			wantErr: "unknown await policy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			tt.mutate(&params)

			cfg, err := Build(params)
			require.ErrorIs(t, err, common.ErrInvalidConfiguration)
			require.ErrorContains(t, err, tt.wantErr)
			require.Equal(t, RunConfiguration{}, cfg)
		})
	}
}

func TestConcurrencyLevel(t *testing.T) {
	var zero ConcurrencyLevel
	require.Equal(t, 1, zero.Value())
	require.True(t, zero.Sequential())

	_, err := NewConcurrencyLevel(0)
	require.ErrorIs(t, err, ErrZeroConcurrency)

	one, err := NewConcurrencyLevel(1)
	require.NoError(t, err)
	require.Equal(t, zero, one)

	four, err := NewConcurrencyLevel(4)
	require.NoError(t, err)
	require.Equal(t, 4, four.Value())
	require.False(t, four.Sequential())
	require.Equal(t, "4", four.String())

	largest, err := NewConcurrencyLevel(65535)
	require.NoError(t, err)
	require.Equal(t, 65535, largest.Value())
	require.Equal(t, MaxConcurrencyLevel(), largest)
}

func TestAwaitPolicy(t *testing.T) {
	require.True(t, WaitForFullSync.IsValid())
	require.True(t, StreamWhileSyncing.IsValid())
	require.False(t, AwaitPolicy("").IsValid())
}
