package progress

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/BlockLake/internal/db"
	"github.com/goran-ethernal/BlockLake/internal/logger"
	"github.com/goran-ethernal/BlockLake/internal/migrations"
	"github.com/goran-ethernal/BlockLake/pkg/config"
	"github.com/russross/meddler"
)

const (
	progressTable = "progress"
	progressRowID = 1

	// HashRetention is how many recent block hashes are kept for reorg recovery.
	HashRetention = 1024
)

// State is the persisted progress marker of the coordinator.
type State struct {
	ID          int64        `meddler:"id,pk"`
	LastHeight  uint64       `meddler:"last_height"`
	LastHash    *common.Hash `meddler:"last_hash,hash"`
	GenesisHash *common.Hash `meddler:"genesis_hash,hash"`
	Initialized bool         `meddler:"initialized"`
	UpdatedAt   int64        `meddler:"updated_at"`
}

// StoredBlock is the recorded hash of a checkpointed block.
type StoredBlock struct {
	Height uint64      `meddler:"height"`
	Hash   common.Hash `meddler:"hash,hash"`
}

// Store persists streaming progress in SQLite.
// A fresh store has no processed height until the first checkpoint.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	dbPath string
	log    *logger.Logger
}

// NewStore opens the progress database described by cfg and applies pending migrations.
func NewStore(cfg config.DatabaseConfig, log *logger.Logger) (*Store, error) {
	sqlDB, err := db.NewSQLiteDBFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	if err := migrations.RunMigrations(log, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate progress database: %w", err)
	}

	s := &Store{
		db:     sqlDB,
		dbPath: cfg.Path,
		log:    log,
	}

	s.log.Infow("progress store initialized", "path", cfg.Path)

	return s, nil
}

// DB returns the underlying database handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// GetState returns the current progress state.
func (s *Store) GetState() (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.getState()
}

func (s *Store) getState() (*State, error) {
	return getStateTx(s.db)
}

func getStateTx(q meddler.DB) (*State, error) {
	var state State
	if err := meddler.QueryRow(q, &state, `SELECT * FROM progress WHERE id = ?`, progressRowID); err != nil {
		return nil, fmt.Errorf("failed to get progress state: %w", err)
	}

	return &state, nil
}

// LastProcessedHeight returns the height of the last checkpointed block.
// found is false when nothing has been checkpointed yet.
func (s *Store) LastProcessedHeight() (height uint64, found bool, err error) {
	state, err := s.GetState()
	if err != nil {
		return 0, false, err
	}

	if !state.Initialized {
		return 0, false, nil
	}

	return state.LastHeight, true, nil
}

// SaveCheckpoint records height and hash as the last processed block and
// remembers the hash for later ancestor lookups.
func (s *Store) SaveCheckpoint(height uint64, hash common.Hash) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			s.log.Errorw("failed to rollback transaction", "error", err)
		}
	}()

	state, err := getStateTx(tx)
	if err != nil {
		return err
	}

	state.LastHeight = height
	state.LastHash = &hash
	state.Initialized = true
	state.UpdatedAt = time.Now().Unix()

	if err := meddler.Update(tx, progressTable, state); err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}

	if _, err := tx.Exec(`INSERT OR REPLACE INTO block_hashes (height, hash) VALUES (?, ?)`,
		height, hash.Hex()); err != nil {
		return fmt.Errorf("failed to record block hash %d: %w", height, err)
	}

	if height >= HashRetention {
		if _, err := tx.Exec(`DELETE FROM block_hashes WHERE height <= ?`, height-HashRetention); err != nil {
			return fmt.Errorf("failed to prune block hashes: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit checkpoint: %w", err)
	}

	s.log.Debugw("saved checkpoint", "height", height, "hash", hash.Hex())

	return nil
}

// BlockHash returns the recorded hash of the checkpointed block at height.
// found is false when the height was never checkpointed or has been pruned.
func (s *Store) BlockHash(height uint64) (hash common.Hash, found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var block StoredBlock
	err = meddler.QueryRow(s.db, &block, `SELECT * FROM block_hashes WHERE height = ?`, height)
	if errors.Is(err, sql.ErrNoRows) {
		return common.Hash{}, false, nil
	}
	if err != nil {
		return common.Hash{}, false, fmt.Errorf("failed to get block hash %d: %w", height, err)
	}

	return block.Hash, true, nil
}

// SetGenesisHash records the genesis hash of the chain the store belongs to.
func (s *Store) SetGenesisHash(hash common.Hash) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.getState()
	if err != nil {
		return err
	}

	state.GenesisHash = &hash
	state.UpdatedAt = time.Now().Unix()

	if err := meddler.Update(s.db, progressTable, state); err != nil {
		return fmt.Errorf("failed to set genesis hash: %w", err)
	}

	s.log.Infow("genesis hash recorded", "hash", hash.Hex())

	return nil
}

// Rollback rewinds progress to the block at height with the given hash and
// forgets every recorded hash above it.
func (s *Store) Rollback(height uint64, hash common.Hash) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			s.log.Errorw("failed to rollback transaction", "error", err)
		}
	}()

	result, err := tx.Exec(`DELETE FROM block_hashes WHERE height > ?`, height)
	if err != nil {
		return fmt.Errorf("failed to delete orphaned block hashes: %w", err)
	}
	removed, _ := result.RowsAffected()

	state, err := getStateTx(tx)
	if err != nil {
		return err
	}

	state.LastHeight = height
	state.LastHash = &hash
	state.Initialized = true
	state.UpdatedAt = time.Now().Unix()

	if err := meddler.Update(tx, progressTable, state); err != nil {
		return fmt.Errorf("failed to rewind checkpoint: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rollback: %w", err)
	}

	s.log.Infow("progress rolled back", "height", height, "hash", hash.Hex(), "orphaned", removed)

	return nil
}

// Size returns the size of the progress database on disk.
func (s *Store) Size() (int64, error) {
	return db.DBTotalSize(s.dbPath)
}

// Close checkpoints the WAL and closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := db.WALCheckpoint(s.db); err != nil {
		s.log.Warnw("failed to checkpoint progress database", "error", err)
	}

	return s.db.Close()
}
