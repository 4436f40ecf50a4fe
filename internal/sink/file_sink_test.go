package sink

import (
	"context"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/BlockLake/internal/logger"
	pkgsink "github.com/goran-ethernal/BlockLake/pkg/sink"
	"github.com/stretchr/testify/require"
)

func testMessage(height uint64) *pkgsink.BlockMessage {
	header := &ethtypes.Header{
		Number:     new(big.Int).SetUint64(height),
		Difficulty: big.NewInt(0),
		GasLimit:   30_000_000,
		Time:       1_700_000_000,
	}

	return &pkgsink.BlockMessage{
		Height:   height,
		Hash:     header.Hash(),
		Finality: "final",
		Header:   header,
		Receipts: ethtypes.Receipts{},
	}
}

func TestFileSink_PublishLayout(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "blocks")
	sink, err := NewFileSink(root, logger.NewNopLogger())
	require.NoError(t, err)
	defer sink.Close()

	require.NoError(t, sink.Publish(context.Background(), testMessage(1000)))

	path := filepath.Join(root, "000000001000", "block.json")
	require.Equal(t, path, sink.BlockPath(1000))
	_, err = os.Stat(path)
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files are left behind")
}

func TestFileSink_ReadBack(t *testing.T) {
	t.Parallel()

	sink, err := NewFileSink(t.TempDir(), logger.NewNopLogger())
	require.NoError(t, err)

	msg := testMessage(7)
	require.NoError(t, sink.Publish(context.Background(), msg))

	loaded, err := sink.ReadBlock(7)
	require.NoError(t, err)
	require.Equal(t, msg.Height, loaded.Height)
	require.Equal(t, msg.Hash, loaded.Hash)
	require.Equal(t, msg.Header.Hash(), loaded.Header.Hash())
	require.Equal(t, "final", loaded.Finality)
}

func TestFileSink_Overwrite(t *testing.T) {
	t.Parallel()

	sink, err := NewFileSink(t.TempDir(), logger.NewNopLogger())
	require.NoError(t, err)
	ctx := context.Background()

	first := testMessage(3)
	require.NoError(t, sink.Publish(ctx, first))

	second := testMessage(3)
	second.Header.Time++
	second.Hash = second.Header.Hash()
	require.NoError(t, sink.Publish(ctx, second))

	loaded, err := sink.ReadBlock(3)
	require.NoError(t, err)
	require.Equal(t, second.Hash, loaded.Hash)
	require.NotEqual(t, first.Hash, loaded.Hash)
}

func TestFileSink_CancelledContext(t *testing.T) {
	t.Parallel()

	sink, err := NewFileSink(t.TempDir(), logger.NewNopLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, sink.Publish(ctx, testMessage(1)), context.Canceled)

	_, err = sink.ReadBlock(1)
	require.Error(t, err)
}
