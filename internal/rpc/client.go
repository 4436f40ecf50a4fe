package rpc

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goran-ethernal/BlockLake/internal/types"
	"github.com/goran-ethernal/BlockLake/pkg/config"
	pkgrpc "github.com/goran-ethernal/BlockLake/pkg/rpc"
)

// Compile-time check to ensure Client implements pkgrpc.ChainClient interface.
var _ pkgrpc.ChainClient = (*Client)(nil)

// Client wraps the Ethereum RPC client with the calls needed to stream blocks.
// Block and receipt fetches are retried with exponential backoff; head queries are not.
type Client struct {
	eth   *ethclient.Client
	rpc   *rpc.Client
	retry *config.RetryConfig
}

// NewClient creates a new RPC client connected to the given endpoint.
// A nil retry config executes every call once.
func NewClient(ctx context.Context, endpoint string, retry *config.RetryConfig) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", endpoint, err)
	}

	return NewClientWithRPC(rpcClient, retry), nil
}

// NewClientWithRPC creates a Client on top of an existing go-ethereum RPC client.
func NewClientWithRPC(rpcClient *rpc.Client, retry *config.RetryConfig) *Client {
	return &Client{
		eth:   ethclient.NewClient(rpcClient),
		rpc:   rpcClient,
		retry: retry,
	}
}

// Close closes the RPC client connection.
func (c *Client) Close() {
	c.eth.Close()
}

// ChainID retrieves the chain ID reported by the node.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	var id *big.Int
	err := c.call(ctx, "eth_chainId", true, func() error {
		var err error
		id, err = c.eth.ChainID(ctx)
		return err
	})
	return id, err
}

// HeaderByFinality retrieves the chain head at the given finality.
// It issues exactly one request so callers see every failure as it happened.
func (c *Client) HeaderByFinality(ctx context.Context, finality types.BlockFinality) (*ethtypes.Header, error) {
	tag, err := finalityBlockNumber(finality)
	if err != nil {
		return nil, err
	}

	var header *ethtypes.Header
	err = c.call(ctx, "eth_getBlockByNumber_"+finality.String(), false, func() error {
		var err error
		header, err = c.eth.HeaderByNumber(ctx, big.NewInt(tag.Int64()))
		return err
	})
	return header, err
}

// HeaderByNumber retrieves the header for a specific block number.
func (c *Client) HeaderByNumber(ctx context.Context, number uint64) (*ethtypes.Header, error) {
	var header *ethtypes.Header
	err := c.call(ctx, "eth_getBlockByNumber", true, func() error {
		var err error
		header, err = c.eth.HeaderByNumber(ctx, new(big.Int).SetUint64(number))
		return err
	})
	return header, err
}

// BlockByNumber retrieves a full block, including transactions.
func (c *Client) BlockByNumber(ctx context.Context, number uint64) (*ethtypes.Block, error) {
	var block *ethtypes.Block
	err := c.call(ctx, "eth_getBlockByNumber_full", true, func() error {
		var err error
		block, err = c.eth.BlockByNumber(ctx, new(big.Int).SetUint64(number))
		return err
	})
	return block, err
}

// BlockReceipts retrieves all receipts of a block.
func (c *Client) BlockReceipts(ctx context.Context, number uint64) (ethtypes.Receipts, error) {
	var receipts []*ethtypes.Receipt
	err := c.call(ctx, "eth_getBlockReceipts", true, func() error {
		var err error
		receipts, err = c.eth.BlockReceipts(ctx,
			rpc.BlockNumberOrHashWithNumber(rpc.BlockNumber(int64(number)))) //nolint:gosec
		return err
	})
	return receipts, err
}

// SyncProgress retrieves the node's sync status. A nil result means the node is synced.
func (c *Client) SyncProgress(ctx context.Context) (*ethereum.SyncProgress, error) {
	var progress *ethereum.SyncProgress
	err := c.call(ctx, "eth_syncing", true, func() error {
		var err error
		progress, err = c.eth.SyncProgress(ctx)
		return err
	})
	return progress, err
}

// call executes fn with request metrics, retrying when retry is set.
func (c *Client) call(ctx context.Context, method string, retry bool, fn func() error) error {
	RPCMethodInc(method)
	start := time.Now()

	var err error
	if retry {
		err = retryWithBackoff(ctx, c.retry, method, fn)
	} else {
		err = fn()
	}

	RPCMethodDuration(method, time.Since(start))
	if err != nil {
		RPCMethodError(method, errorType(err))
	}

	return err
}

// finalityBlockNumber maps a chain finality to its block tag.
func finalityBlockNumber(finality types.BlockFinality) (rpc.BlockNumber, error) {
	switch finality {
	case types.FinalityLatest:
		return rpc.LatestBlockNumber, nil
	case types.FinalitySafe:
		return rpc.SafeBlockNumber, nil
	case types.FinalityFinalized:
		return rpc.FinalizedBlockNumber, nil
	default:
		return 0, fmt.Errorf("unsupported block finality: %q", finality)
	}
}

// errorType returns a low-cardinality label for RPC error metrics.
func errorType(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, ethereum.NotFound):
		return "not_found"
	case classifyProbeError(err) == ClientRejected:
		return "rejected"
	default:
		return "transport"
	}
}
