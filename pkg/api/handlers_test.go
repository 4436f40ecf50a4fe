package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goran-ethernal/BlockLake/internal/logger"
	"github.com/goran-ethernal/BlockLake/internal/rpc"
	"github.com/goran-ethernal/BlockLake/internal/runconfig"
	"github.com/goran-ethernal/BlockLake/internal/streamer"
	"github.com/goran-ethernal/BlockLake/internal/syncpoint"
	syncmocks "github.com/goran-ethernal/BlockLake/internal/syncpoint/mocks"
	"github.com/goran-ethernal/BlockLake/internal/types"
	apimocks "github.com/goran-ethernal/BlockLake/pkg/api/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testRun struct {
	status *apimocks.StatusSource
	store  *apimocks.StoreStats
	probe  *syncmocks.HeadProbe
	run    Run
}

func newTestRun(t *testing.T) *testRun {
	t.Helper()

	conc, err := runconfig.NewConcurrencyLevel(2)
	require.NoError(t, err)

	cfg, err := runconfig.Build(runconfig.Params{
		HomeDir:       "/var/lib/blocklake",
		SyncMode:      syncpoint.FromBlock{Height: 100},
		StartPoint:    syncpoint.AtHeight(100),
		AwaitPolicy:   runconfig.WaitForFullSync,
		FinalityLevel: types.FinalityNearFinal,
		Concurrency:   conc,
	})
	require.NoError(t, err)

	tr := &testRun{
		status: apimocks.NewStatusSource(t),
		store:  apimocks.NewStoreStats(t),
		probe:  syncmocks.NewHeadProbe(t),
	}
	tr.run = Run{
		ID:     "3f1c2a8e-run",
		Config: cfg,
		Status: tr.status,
		Probe:  tr.probe,
		Store:  tr.store,
	}
	return tr
}

func serve(h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	t.Run("streaming run is healthy", func(t *testing.T) {
		t.Parallel()

		tr := newTestRun(t)
		tr.status.EXPECT().Status().Return(streamer.Status{State: streamer.StateStreaming})

		w := serve(NewHandler(tr.run, logger.NewNopLogger()).Health, "/health")
		require.Equal(t, http.StatusOK, w.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "ok", resp.Status)
		require.Equal(t, "3f1c2a8e-run", resp.RunID)
		require.Equal(t, streamer.StateStreaming, resp.State)
	})

	t.Run("failed run", func(t *testing.T) {
		t.Parallel()

		tr := newTestRun(t)
		tr.status.EXPECT().Status().Return(streamer.Status{State: streamer.StateFailed, Error: "reorg"})

		w := serve(NewHandler(tr.run, logger.NewNopLogger()).Health, "/health")
		require.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "failed", resp.Status)
	})
}

func TestHandler_GetStatus(t *testing.T) {
	t.Parallel()

	t.Run("reports config and progress", func(t *testing.T) {
		t.Parallel()

		tr := newTestRun(t)
		last := uint64(141)
		tr.status.EXPECT().Status().Return(streamer.Status{
			RunID:      "3f1c2a8e-run",
			State:      streamer.StateCaughtUp,
			NextHeight: 142,
			LastHeight: &last,
			ChainHead:  141,
			Streamed:   42,
		})
		tr.store.EXPECT().Size().Return(int64(4096), nil)

		w := serve(NewHandler(tr.run, logger.NewNopLogger()).GetStatus, "/api/v1/status")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var raw map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		require.Equal(t, "3f1c2a8e-run", raw["run_id"])
		require.InDelta(t, 4096, raw["db_size_bytes"], 0)

		cfg := raw["config"].(map[string]any)
		require.Equal(t, "from_block", cfg["sync_mode"])
		require.Equal(t, "100", cfg["sync_point"])
		require.Equal(t, "near_final", cfg["finality_level"])
		require.Equal(t, "safe", cfg["finality"])
		require.Equal(t, "wait_for_full_sync", cfg["await_policy"])
		require.Equal(t, "2", cfg["concurrency"])

		progress := raw["progress"].(map[string]any)
		require.Equal(t, "caught_up", progress["state"])
		require.InDelta(t, 141, progress["last_height"], 0)
		require.InDelta(t, 42, progress["streamed"], 0)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		tr := newTestRun(t)
		tr.store.EXPECT().Size().Return(int64(0), errors.New("disk gone"))

		w := serve(NewHandler(tr.run, logger.NewNopLogger()).GetStatus, "/api/v1/status")
		require.Equal(t, http.StatusInternalServerError, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}

func TestHandler_GetHead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		target        string
		probeFinality types.BlockFinality
		probeHeight   uint64
		probeErr      error
		expectedCode  int
		expectedLevel types.FinalityLevel
	}{
		{
			name:          "defaults to run finality",
			target:        "/api/v1/head",
			probeFinality: types.FinalitySafe,
			probeHeight:   200,
			expectedCode:  http.StatusOK,
			expectedLevel: types.FinalityNearFinal,
		},
		{
			name:          "explicit final",
			target:        "/api/v1/head?finality=final",
			probeFinality: types.FinalityFinalized,
			probeHeight:   190,
			expectedCode:  http.StatusOK,
			expectedLevel: types.FinalityFinal,
		},
		{
			name:          "explicit optimistic",
			target:        "/api/v1/head?finality=optimistic",
			probeFinality: types.FinalityLatest,
			probeHeight:   210,
			expectedCode:  http.StatusOK,
			expectedLevel: types.FinalityOptimistic,
		},
		{
			name:         "invalid finality",
			target:       "/api/v1/head?finality=eventually",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:          "node rejected",
			target:        "/api/v1/head?finality=final",
			probeFinality: types.FinalityFinalized,
			probeErr:      &rpc.ProbeError{Kind: rpc.ClientRejected, Finality: types.FinalityFinalized, Err: errors.New("unsupported tag")},
			expectedCode:  http.StatusBadGateway,
		},
		{
			name:          "node unreachable",
			target:        "/api/v1/head?finality=final",
			probeFinality: types.FinalityFinalized,
			probeErr:      &rpc.ProbeError{Kind: rpc.TransportFailure, Finality: types.FinalityFinalized, Err: errors.New("connection refused")},
			expectedCode:  http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := newTestRun(t)
			if tt.probeFinality != "" {
				tr.probe.EXPECT().Probe(mock.Anything, tt.probeFinality).Return(tt.probeHeight, tt.probeErr).Once()
			}

			w := serve(NewHandler(tr.run, logger.NewNopLogger()).GetHead, tt.target)
			require.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode != http.StatusOK {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.NotEmpty(t, resp.Message)
				return
			}

			var resp HeadResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, tt.probeHeight, resp.Height)
			require.Equal(t, tt.expectedLevel, resp.FinalityLevel)
			require.Equal(t, tt.probeFinality, resp.Finality)
		})
	}
}

func TestRespondError(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	respondError(w, http.StatusNotFound, "nothing here")

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, ErrorResponse{Error: "Not Found", Message: "nothing here", Code: http.StatusNotFound}, resp)
}
