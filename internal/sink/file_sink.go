package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goran-ethernal/BlockLake/internal/logger"
	pkgsink "github.com/goran-ethernal/BlockLake/pkg/sink"
)

// Compile-time check to ensure FileSink implements pkgsink.Sink interface.
var _ pkgsink.Sink = (*FileSink)(nil)

const blockFileName = "block.json"

// FileSink writes each block to <root>/<height padded to 12 digits>/block.json.
// Files are written to a temporary name and renamed, so a reader never sees a partial block.
type FileSink struct {
	root string
	log  *logger.Logger
}

// NewFileSink creates a FileSink rooted at root, creating the directory if needed.
func NewFileSink(root string, log *logger.Logger) (*FileSink, error) {
	if err := os.MkdirAll(root, 0o755); err != nil { //nolint:mnd
		return nil, fmt.Errorf("failed to create sink directory: %w", err)
	}

	log.Infow("file sink initialized", "root", root)

	return &FileSink{
		root: root,
		log:  log,
	}, nil
}

// BlockPath returns the file a block at height is written to.
func (s *FileSink) BlockPath(height uint64) string {
	return filepath.Join(s.root, fmt.Sprintf("%012d", height), blockFileName)
}

// Publish writes msg, replacing any block previously written at the same height.
func (s *FileSink) Publish(ctx context.Context, msg *pkgsink.BlockMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode block %d: %w", msg.Height, err)
	}

	path := s.BlockPath(msg.Height)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create block directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, blockFileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for block %d: %w", msg.Height, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write block %d: %w", msg.Height, err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync block %d: %w", msg.Height, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close block %d: %w", msg.Height, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move block %d into place: %w", msg.Height, err)
	}

	s.log.Debugw("block written", "height", msg.Height, "hash", msg.Hash.Hex(), "bytes", len(data))

	return nil
}

// ReadBlock loads the block written at height.
func (s *FileSink) ReadBlock(height uint64) (*pkgsink.BlockMessage, error) {
	data, err := os.ReadFile(s.BlockPath(height))
	if err != nil {
		return nil, fmt.Errorf("failed to read block %d: %w", height, err)
	}

	var msg pkgsink.BlockMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to decode block %d: %w", height, err)
	}

	return &msg, nil
}

// Close is a no-op; every block is flushed when published.
func (s *FileSink) Close() error {
	return nil
}
