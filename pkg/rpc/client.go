package rpc

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/BlockLake/internal/types"
)

// ChainClient defines the chain operations used by BlockLake.
// This abstraction allows for easier testing and alternative implementations.
type ChainClient interface {
	// Close closes the RPC client connection.
	Close()

	// ChainID retrieves the chain ID reported by the node.
	ChainID(ctx context.Context) (*big.Int, error)

	// HeaderByFinality retrieves the chain head at the given finality with a single request.
	HeaderByFinality(ctx context.Context, finality types.BlockFinality) (*ethtypes.Header, error)

	// HeaderByNumber retrieves the header for a specific block number.
	HeaderByNumber(ctx context.Context, number uint64) (*ethtypes.Header, error)

	// BlockByNumber retrieves a full block, including transactions.
	BlockByNumber(ctx context.Context, number uint64) (*ethtypes.Block, error)

	// BlockReceipts retrieves all receipts of a block.
	BlockReceipts(ctx context.Context, number uint64) (ethtypes.Receipts, error)

	// SyncProgress retrieves the node's sync status. A nil result means the node is synced.
	SyncProgress(ctx context.Context) (*ethereum.SyncProgress, error)
}
