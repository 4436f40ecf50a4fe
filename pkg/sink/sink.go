package sink

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// BlockMessage is one block as handed to a sink, with everything fetched for it.
type BlockMessage struct {
	Height       uint64                `json:"height"`
	Hash         common.Hash           `json:"hash"`
	Finality     string                `json:"finality"`
	Header       *ethtypes.Header      `json:"header"`
	Transactions ethtypes.Transactions `json:"transactions"`
	Receipts     ethtypes.Receipts     `json:"receipts"`
}

// Sink receives blocks in height order.
type Sink interface {
	// Publish stores msg. It is called once per height, in increasing order.
	Publish(ctx context.Context, msg *BlockMessage) error

	// Close releases resources held by the sink.
	Close() error
}
