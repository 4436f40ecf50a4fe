package rpc

import (
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"
)

// testEthService serves the eth namespace from an in-memory chain.
type testEthService struct {
	mu       sync.Mutex
	headers  map[int64]*ethtypes.Header
	tags     map[gethrpc.BlockNumber]int64
	failures map[string]int
	calls    map[string]int
}

func newTestEthService(head uint64) *testEthService {
	s := &testEthService{
		headers:  make(map[int64]*ethtypes.Header),
		tags:     make(map[gethrpc.BlockNumber]int64),
		failures: make(map[string]int),
		calls:    make(map[string]int),
	}

	var parent *ethtypes.Header
	for n := uint64(0); n <= head; n++ {
		header := &ethtypes.Header{
			Number:      new(big.Int).SetUint64(n),
			Difficulty:  big.NewInt(0),
			GasLimit:    30_000_000,
			Time:        1_700_000_000 + n*12,
			UncleHash:   ethtypes.EmptyUncleHash,
			TxHash:      ethtypes.EmptyTxsHash,
			ReceiptHash: ethtypes.EmptyReceiptsHash,
		}
		if parent != nil {
			header.ParentHash = parent.Hash()
		}
		s.headers[int64(n)] = header //nolint:gosec
		parent = header
	}

	s.tags[gethrpc.LatestBlockNumber] = int64(head) //nolint:gosec
	return s
}

func (s *testEthService) failNext(method string, times int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = times
}

func (s *testEthService) callCount(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

func (s *testEthService) track(method string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls[method]++
	if s.failures[method] > 0 {
		s.failures[method]--
		return errors.New("503 service unavailable")
	}
	return nil
}

func (s *testEthService) GetBlockByNumber(number gethrpc.BlockNumber, _ bool) (*ethtypes.Header, error) {
	if err := s.track("eth_getBlockByNumber"); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := number.Int64()
	if number < 0 {
		height, ok := s.tags[number]
		if !ok {
			return nil, nil
		}
		n = height
	}
	return s.headers[n], nil
}

func (s *testEthService) GetBlockReceipts(_ gethrpc.BlockNumberOrHash) ([]*ethtypes.Receipt, error) {
	if err := s.track("eth_getBlockReceipts"); err != nil {
		return nil, err
	}
	return []*ethtypes.Receipt{}, nil
}

func (s *testEthService) ChainId() *hexutil.Big { //nolint:revive,stylecheck
	return (*hexutil.Big)(big.NewInt(1337))
}

func (s *testEthService) Syncing() (any, error) {
	if err := s.track("eth_syncing"); err != nil {
		return nil, err
	}
	return false, nil
}

// newTestClient returns a Client talking to service over an in-process RPC server.
func newTestClient(t *testing.T, service *testEthService) *Client {
	t.Helper()

	server := gethrpc.NewServer()
	require.NoError(t, server.RegisterName("eth", service))
	t.Cleanup(server.Stop)

	client := NewClientWithRPC(gethrpc.DialInProc(server), testRetryConfig())
	t.Cleanup(client.Close)

	return client
}
