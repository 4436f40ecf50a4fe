package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/goran-ethernal/BlockLake/internal/common"
	"github.com/goran-ethernal/BlockLake/internal/logger"
	"github.com/goran-ethernal/BlockLake/internal/metrics"
	"github.com/goran-ethernal/BlockLake/internal/progress"
	"github.com/goran-ethernal/BlockLake/internal/rpc"
	"github.com/goran-ethernal/BlockLake/internal/runconfig"
	"github.com/goran-ethernal/BlockLake/internal/sink"
	"github.com/goran-ethernal/BlockLake/internal/streamer"
	"github.com/goran-ethernal/BlockLake/internal/syncpoint"
	"github.com/goran-ethernal/BlockLake/internal/types"
	"github.com/goran-ethernal/BlockLake/pkg/api"
	"github.com/goran-ethernal/BlockLake/pkg/config"
	"golang.org/x/sync/errgroup"
)

const stopTimeout = 10 * time.Second

// Prepare turns a prepared process configuration into the run configuration.
// Finality, sync mode and concurrency are parsed before the start point is resolved, so a
// configuration error never reaches the chain. Resolution probes at most once, and only for
// from_latest. A failed resolution returns a *syncpoint.ResolveError and no configuration.
func Prepare(
	ctx context.Context,
	cfg *config.Config,
	probe syncpoint.HeadProbe,
	log *logger.Logger,
) (runconfig.RunConfiguration, error) {
	level, err := types.ParseFinalityLevel(cfg.Run.Finality)
	if err != nil {
		return runconfig.RunConfiguration{}, fmt.Errorf("%w: run.finality: %w", common.ErrInvalidConfiguration, err)
	}

	mode, err := cfg.Run.ParseSyncMode()
	if err != nil {
		return runconfig.RunConfiguration{}, fmt.Errorf("%w: run.sync_mode: %w", common.ErrInvalidConfiguration, err)
	}

	concurrency, err := cfg.Run.ConcurrencyLevel()
	if err != nil {
		return runconfig.RunConfiguration{}, fmt.Errorf("%w: run.concurrency: %w", common.ErrInvalidConfiguration, err)
	}

	start, err := syncpoint.NewResolver(probe, log).ResolveStart(ctx, mode)
	if err != nil {
		return runconfig.RunConfiguration{}, err
	}

	runCfg, err := runconfig.Build(runconfig.Params{
		HomeDir:         cfg.Home,
		SyncMode:        mode,
		StartPoint:      start,
		AwaitPolicy:     cfg.Run.AwaitPolicy(),
		FinalityLevel:   level,
		ValidateGenesis: cfg.Run.ValidateGenesis,
		Concurrency:     concurrency,
	})
	if err != nil {
		return runconfig.RunConfiguration{}, err
	}

	log.Infow("run configuration prepared",
		"sync_mode", runCfg.SyncMode,
		"sync_point", start,
		"finality_level", runCfg.FinalityLevel,
		"finality", runCfg.Finality,
		"await_policy", runCfg.AwaitPolicy,
		"concurrency", runCfg.Concurrency.Value(),
	)

	return runCfg, nil
}

// Run prepares the run configuration and streams blocks until ctx is cancelled or the
// coordinator fails. cfg must already be prepared with config.Config.Prepare.
func Run(ctx context.Context, cfg *config.Config) error {
	runID := uuid.NewString()
	log := logger.NewComponentLoggerFromConfig(common.ComponentBootstrap, cfg.Logging)

	client, err := rpc.NewClient(ctx, cfg.Chain.RPCURL, cfg.Chain.Retry)
	if err != nil {
		return fmt.Errorf("failed to create RPC client: %w", err)
	}
	defer client.Close()

	probe := rpc.NewHeadProbe(
		client,
		cfg.Chain.ProbeTimeout.Duration,
		logger.NewComponentLoggerFromConfig(common.ComponentProbe, cfg.Logging),
	)

	runCfg, err := Prepare(ctx, cfg, probe, logger.NewComponentLoggerFromConfig(common.ComponentResolver, cfg.Logging))
	if err != nil {
		return err
	}

	var expectedGenesis *ethcommon.Hash
	if cfg.Chain.GenesisHash != "" {
		hash := ethcommon.HexToHash(cfg.Chain.GenesisHash)
		expectedGenesis = &hash
	}

	store, err := progress.NewStore(cfg.DB, logger.NewComponentLoggerFromConfig(common.ComponentProgress, cfg.Logging))
	if err != nil {
		return fmt.Errorf("failed to open progress store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warnw("failed to close progress store", "error", err)
		}
	}()

	blockSink, err := sink.NewFileSink(cfg.Sink.Path, logger.NewComponentLoggerFromConfig(common.ComponentSink, cfg.Logging))
	if err != nil {
		return err
	}
	defer blockSink.Close()

	coordinator, err := streamer.New(
		runCfg,
		streamer.Options{
			RunID:           runID,
			PollInterval:    cfg.Run.PollInterval.Duration,
			ExpectedGenesis: expectedGenesis,
			ExpectedChainID: cfg.Chain.ChainID,
		},
		client,
		probe,
		store,
		blockSink,
		logger.NewComponentLoggerFromConfig(common.ComponentCoordinator, cfg.Logging),
	)
	if err != nil {
		return fmt.Errorf("failed to create coordinator: %w", err)
	}

	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		metricsServer := metrics.NewServer(cfg.Metrics, logger.NewComponentLoggerFromConfig(common.ComponentMetrics, cfg.Logging))
		if err := metricsServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
			defer cancel()
			if err := metricsServer.Stop(stopCtx); err != nil {
				log.Warnw("failed to stop metrics server", "error", err)
			}
		}()
	}

	metrics.RunStartInc(runCfg.SyncMode, runCfg.FinalityLevel.String())

	g, gctx := errgroup.WithContext(ctx)
	runCtx, stop := context.WithCancel(gctx)
	defer stop()

	if cfg.API != nil && cfg.API.Enabled {
		apiServer := api.NewServer(cfg.API, api.Run{
			ID:     runID,
			Config: runCfg,
			Status: coordinator,
			Probe:  probe,
			Store:  store,
		}, logger.NewComponentLoggerFromConfig(common.ComponentAPI, cfg.Logging))

		g.Go(func() error {
			return apiServer.Start(runCtx)
		})
	}

	g.Go(func() error {
		// the API stops together with the coordinator
		defer stop()
		return coordinator.Run(runCtx)
	})

	log.Infow("run started", "run_id", runID, "home", cfg.Home, "sink", cfg.Sink.Path)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Infow("run finished", "run_id", runID)
	return nil
}
