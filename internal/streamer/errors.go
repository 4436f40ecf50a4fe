package streamer

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ErrGenesisMismatch is returned when the node's genesis block differs from the expected one.
var ErrGenesisMismatch = errors.New("genesis block mismatch")

// ErrChainIDMismatch is returned when the node serves a different chain than configured.
var ErrChainIDMismatch = errors.New("chain ID mismatch")

// ReorgDetectedError is returned when a fetched block does not extend the last published block.
type ReorgDetectedError struct {
	Height         uint64
	ExpectedParent common.Hash
	ActualParent   common.Hash
}

func (e *ReorgDetectedError) Error() string {
	return fmt.Sprintf("reorg detected at block %d: parent hash %s does not match last published block %s",
		e.Height, e.ActualParent.Hex(), e.ExpectedParent.Hex())
}

// NewReorgError creates a new ReorgDetectedError.
func NewReorgError(height uint64, expectedParent, actualParent common.Hash) error {
	return &ReorgDetectedError{
		Height:         height,
		ExpectedParent: expectedParent,
		ActualParent:   actualParent,
	}
}

func genesisMismatch(source string, expected, actual common.Hash) error {
	return fmt.Errorf("%w: node reports %s, %s has %s", ErrGenesisMismatch, actual.Hex(), source, expected.Hex())
}
