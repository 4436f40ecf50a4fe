package streamer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	icommon "github.com/goran-ethernal/BlockLake/internal/common"
	"github.com/goran-ethernal/BlockLake/internal/logger"
	"github.com/goran-ethernal/BlockLake/internal/metrics"
	"github.com/goran-ethernal/BlockLake/internal/progress"
	"github.com/goran-ethernal/BlockLake/internal/runconfig"
	"github.com/goran-ethernal/BlockLake/internal/syncpoint"
	"github.com/goran-ethernal/BlockLake/internal/types"
	pkgrpc "github.com/goran-ethernal/BlockLake/pkg/rpc"
	pkgsink "github.com/goran-ethernal/BlockLake/pkg/sink"
	"golang.org/x/sync/errgroup"
)

// interruptionFallbackFinality is probed when resuming from an interruption with no
// persisted progress.
const interruptionFallbackFinality = types.FinalityFinalized

// ProgressStore persists the coordinator's progress marker.
type ProgressStore interface {
	GetState() (*progress.State, error)
	LastProcessedHeight() (height uint64, found bool, err error)
	SaveCheckpoint(height uint64, hash common.Hash) error
	SetGenesisHash(hash common.Hash) error
	BlockHash(height uint64) (hash common.Hash, found bool, err error)
	Rollback(height uint64, hash common.Hash) error
}

var _ ProgressStore = (*progress.Store)(nil)

// Options holds coordinator settings that are not part of the run configuration.
type Options struct {
	// RunID identifies the run in logs and status.
	RunID string

	// PollInterval is the wait between head probes when caught up and between sync checks.
	PollInterval time.Duration

	// ExpectedGenesis, when set, must match the node's genesis hash.
	ExpectedGenesis *common.Hash

	// ExpectedChainID, when non-zero, must match the node's chain ID.
	ExpectedChainID uint64
}

// Coordinator fetches blocks from the chain and publishes them to a sink in height order,
// checkpointing each published block.
type Coordinator struct {
	cfg    runconfig.RunConfiguration
	opts   Options
	client pkgrpc.ChainClient
	probe  syncpoint.HeadProbe
	store  ProgressStore
	sink   pkgsink.Sink
	log    *logger.Logger

	mu       sync.RWMutex
	status   Status
	lastHash *common.Hash
}

// New creates a Coordinator for one run.
func New(
	cfg runconfig.RunConfiguration,
	opts Options,
	client pkgrpc.ChainClient,
	probe syncpoint.HeadProbe,
	store ProgressStore,
	sink pkgsink.Sink,
	log *logger.Logger,
) (*Coordinator, error) {
	if client == nil {
		return nil, errors.New("chain client is required")
	}
	if probe == nil {
		return nil, errors.New("head probe is required")
	}
	if store == nil {
		return nil, errors.New("progress store is required")
	}
	if sink == nil {
		return nil, errors.New("sink is required")
	}
	if log == nil {
		return nil, errors.New("logger is required")
	}
	if opts.PollInterval <= 0 {
		return nil, errors.New("poll interval must be positive")
	}

	c := &Coordinator{
		cfg:    cfg,
		opts:   opts,
		client: client,
		probe:  probe,
		store:  store,
		sink:   sink,
		log:    log,
		status: Status{RunID: opts.RunID, State: StateIdle},
	}

	if !cfg.Concurrency.Sequential() {
		c.log.Warnw("concurrency above 1 fetches blocks out of order; they are still published in height order",
			"concurrency", cfg.Concurrency.Value())
	}

	return c, nil
}

// Status returns a snapshot of the run.
func (c *Coordinator) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()

	status := c.status
	if status.LastHeight != nil {
		last := *status.LastHeight
		status.LastHeight = &last
	}
	return status
}

// Run validates the node, waits for it to sync when required and streams blocks until ctx is
// cancelled or an error occurs. Cancellation returns nil.
func (c *Coordinator) Run(ctx context.Context) error {
	c.updateStatus(func(s *Status) {
		s.StartedAt = time.Now().UTC()
		s.State = StateIdle
	})
	metrics.ComponentHealthSet(icommon.ComponentCoordinator, true)

	err := c.run(ctx)
	if err != nil && ctx.Err() != nil {
		err = nil
	}

	if err != nil {
		metrics.ComponentHealthSet(icommon.ComponentCoordinator, false)
		metrics.ErrorsInc(icommon.ComponentCoordinator, errorType(err))
		c.updateStatus(func(s *Status) {
			s.State = StateFailed
			s.Error = err.Error()
		})
		c.log.Errorw("coordinator stopped with error", "run_id", c.opts.RunID, "error", err)
		return err
	}

	c.updateStatus(func(s *Status) { s.State = StateStopped })
	c.log.Infow("coordinator stopped", "run_id", c.opts.RunID)
	return nil
}

func (c *Coordinator) run(ctx context.Context) error {
	if c.cfg.ValidateGenesis {
		c.updateStatus(func(s *Status) { s.State = StateValidating })
		if err := c.validateGenesis(ctx); err != nil {
			return err
		}
	}

	if c.cfg.AwaitPolicy == runconfig.WaitForFullSync {
		c.updateStatus(func(s *Status) { s.State = StateAwaitingSync })
		if err := c.awaitSync(ctx); err != nil {
			return err
		}
	}

	next, err := c.startHeight(ctx)
	if err != nil {
		return err
	}

	c.log.Infow("streaming blocks",
		"run_id", c.opts.RunID,
		"start_height", next,
		"finality", c.cfg.FinalityLevel,
		"concurrency", c.cfg.Concurrency.Value(),
	)

	return c.stream(ctx, next)
}

// validateGenesis checks the chain ID and block 0 against the configured values and the
// genesis hash recorded by earlier runs, recording it on the first run.
func (c *Coordinator) validateGenesis(ctx context.Context) error {
	chainID, err := c.client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch chain ID: %w", err)
	}

	if c.opts.ExpectedChainID != 0 && (!chainID.IsUint64() || chainID.Uint64() != c.opts.ExpectedChainID) {
		return fmt.Errorf("%w: node reports %s, configuration has %d",
			ErrChainIDMismatch, chainID, c.opts.ExpectedChainID)
	}

	header, err := c.client.HeaderByNumber(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to fetch genesis block: %w", err)
	}
	genesis := header.Hash()

	if c.opts.ExpectedGenesis != nil && *c.opts.ExpectedGenesis != genesis {
		return genesisMismatch("configuration", *c.opts.ExpectedGenesis, genesis)
	}

	state, err := c.store.GetState()
	if err != nil {
		return err
	}

	if state.GenesisHash == nil {
		if err := c.store.SetGenesisHash(genesis); err != nil {
			return err
		}
	} else if *state.GenesisHash != genesis {
		return genesisMismatch("progress store", *state.GenesisHash, genesis)
	}

	c.log.Infow("genesis validated", "hash", genesis.Hex(), "chain_id", chainID)
	return nil
}

// awaitSync polls the node until it reports it is no longer syncing.
func (c *Coordinator) awaitSync(ctx context.Context) error {
	for {
		progress, err := c.client.SyncProgress(ctx)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Warnw("failed to query node sync status", "error", err)
		case progress == nil:
			c.log.Info("node is synced")
			return nil
		default:
			c.log.Infow("waiting for node to sync",
				"current_block", progress.CurrentBlock,
				"highest_block", progress.HighestBlock,
			)
		}

		if err := c.sleep(ctx); err != nil {
			return err
		}
	}
}

// startHeight turns the run's start point into the first height to stream.
func (c *Coordinator) startHeight(ctx context.Context) (uint64, error) {
	if height, ok := c.cfg.SyncPoint.Height(); ok {
		return height, nil
	}

	last, found, err := c.store.LastProcessedHeight()
	if err != nil {
		return 0, fmt.Errorf("failed to read persisted progress: %w", err)
	}

	if found {
		state, err := c.store.GetState()
		if err != nil {
			return 0, fmt.Errorf("failed to read persisted progress: %w", err)
		}

		c.lastHash = state.LastHash
		c.setLast(last, state.LastHash)
		c.log.Infow("resuming from persisted progress", "last_height", last)
		return last + 1, nil
	}

	head, err := c.probe.Probe(ctx, interruptionFallbackFinality)
	if err != nil {
		return 0, fmt.Errorf("resolve start without persisted progress: %w", &syncpoint.ResolveError{
			Mode: syncpoint.ModeFromInterruption,
			Err:  err,
		})
	}

	c.log.Infow("no persisted progress, starting at the final head", "height", head)
	return head, nil
}

// stream is the fetch and publish loop.
func (c *Coordinator) stream(ctx context.Context, next uint64) error {
	c.updateStatus(func(s *Status) { s.NextHeight = next })

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		head, err := c.probe.Probe(ctx, c.cfg.Finality)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Warnw("head probe failed, retrying", "finality", c.cfg.Finality, "error", err)
			if err := c.sleep(ctx); err != nil {
				return err
			}
			continue
		}

		c.updateStatus(func(s *Status) { s.ChainHead = head })

		if head < next {
			c.updateStatus(func(s *Status) { s.State = StateCaughtUp })
			if err := c.sleep(ctx); err != nil {
				return err
			}
			continue
		}

		c.updateStatus(func(s *Status) { s.State = StateStreaming })

		end := min(head, next+uint64(c.cfg.Concurrency.Value())-1)
		blocks, err := c.fetchRange(ctx, next, end)
		if err != nil {
			return err
		}

		next = end + 1
		for _, block := range blocks {
			err := c.publish(ctx, block)

			var reorgErr *ReorgDetectedError
			if errors.As(err, &reorgErr) {
				// the rest of the batch may belong to either branch
				if next, err = c.rollback(ctx, reorgErr); err != nil {
					return err
				}
				break
			}
			if err != nil {
				return err
			}
			metrics.StreamLagSet(head, block.Height)
		}
	}
}

// rollback walks back from the last published block until a recorded hash matches the
// node's header at the same height, rewinds progress to that block and returns the next
// height to stream. A reorg deeper than the recorded hashes is fatal.
func (c *Coordinator) rollback(ctx context.Context, reorg *ReorgDetectedError) (uint64, error) {
	c.log.Warnw("reorg detected, searching for common ancestor",
		"run_id", c.opts.RunID,
		"height", reorg.Height,
		"expected_parent", reorg.ExpectedParent.Hex(),
		"actual_parent", reorg.ActualParent.Hex(),
	)

	for height := reorg.Height; height > 0; {
		height--

		stored, found, err := c.store.BlockHash(height)
		if err != nil {
			return 0, fmt.Errorf("failed to read recorded hash of block %d: %w", height, err)
		}
		if !found {
			break
		}

		header, err := c.client.HeaderByNumber(ctx, height)
		if err != nil {
			return 0, fmt.Errorf("failed to fetch header %d during reorg recovery: %w", height, err)
		}
		if header.Hash() != stored {
			continue
		}

		if err := c.store.Rollback(height, stored); err != nil {
			return 0, fmt.Errorf("failed to roll back to block %d: %w", height, err)
		}

		depth := reorg.Height - 1 - height
		metrics.ReorgRecoveredLog(depth)

		c.lastHash = &stored
		c.setLast(height, &stored)

		c.log.Warnw("rolled back to common ancestor",
			"run_id", c.opts.RunID,
			"ancestor", height,
			"hash", stored.Hex(),
			"orphaned", depth,
		)
		return height + 1, nil
	}

	return 0, fmt.Errorf("no common ancestor among recorded block hashes: %w", reorg)
}

// fetchRange fetches [from, to] with at most Concurrency requests in flight and returns the
// blocks in height order.
func (c *Coordinator) fetchRange(ctx context.Context, from, to uint64) ([]*pkgsink.BlockMessage, error) {
	blocks := make([]*pkgsink.BlockMessage, to-from+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Concurrency.Value())

	for height := from; height <= to; height++ {
		g.Go(func() error {
			block, err := c.fetch(gctx, height)
			if err != nil {
				return err
			}
			blocks[height-from] = block
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return blocks, nil
}

// fetch retrieves one block with its receipts.
func (c *Coordinator) fetch(ctx context.Context, height uint64) (*pkgsink.BlockMessage, error) {
	start := time.Now()

	block, err := c.client.BlockByNumber(ctx, height)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch block %d: %w", height, err)
	}

	receipts, err := c.client.BlockReceipts(ctx, height)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch receipts of block %d: %w", height, err)
	}

	metrics.BlockFetchTimeLog(time.Since(start))

	return &pkgsink.BlockMessage{
		Height:       height,
		Hash:         block.Hash(),
		Finality:     c.cfg.FinalityLevel.String(),
		Header:       block.Header(),
		Transactions: block.Transactions(),
		Receipts:     receipts,
	}, nil
}

// publish checks continuity, hands the block to the sink and checkpoints it.
func (c *Coordinator) publish(ctx context.Context, block *pkgsink.BlockMessage) error {
	if c.lastHash != nil && block.Header.ParentHash != *c.lastHash {
		return NewReorgError(block.Height, *c.lastHash, block.Header.ParentHash)
	}

	start := time.Now()

	if err := c.sink.Publish(ctx, block); err != nil {
		return fmt.Errorf("failed to publish block %d: %w", block.Height, err)
	}

	if err := c.store.SaveCheckpoint(block.Height, block.Hash); err != nil {
		return fmt.Errorf("failed to checkpoint block %d: %w", block.Height, err)
	}

	metrics.PublishTimeLog(time.Since(start))
	metrics.BlockStreamed(block.Height, len(block.Transactions))

	hash := block.Hash
	c.lastHash = &hash
	c.setLast(block.Height, &hash)
	c.updateStatus(func(s *Status) { s.Streamed++ })

	c.log.Debugw("block published", "height", block.Height, "hash", hash.Hex(), "txs", len(block.Transactions))
	return nil
}

func (c *Coordinator) setLast(height uint64, hash *common.Hash) {
	c.updateStatus(func(s *Status) {
		last := height
		s.LastHeight = &last
		s.NextHeight = height + 1
		if hash != nil {
			s.LastHash = hash.Hex()
		}
	})
}

func (c *Coordinator) updateStatus(update func(s *Status)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	update(&c.status)
	c.status.UpdatedAt = time.Now().UTC()
}

func (c *Coordinator) sleep(ctx context.Context) error {
	timer := time.NewTimer(c.opts.PollInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func errorType(err error) string {
	var reorgErr *ReorgDetectedError
	switch {
	case errors.As(err, &reorgErr):
		return "reorg"
	case errors.Is(err, ErrGenesisMismatch), errors.Is(err, ErrChainIDMismatch):
		return "genesis_mismatch"
	case errors.Is(err, syncpoint.ErrProbeFailed):
		return "probe"
	default:
		return "stream"
	}
}
