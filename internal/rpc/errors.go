package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goran-ethernal/BlockLake/internal/types"
)

var (
	// ErrTransportFailure is matched by probe errors caused by the connection to the node.
	ErrTransportFailure = errors.New("transport failure")

	// ErrClientRejected is matched by probe errors where the node answered but refused the query.
	ErrClientRejected = errors.New("client rejected request")

	// errNoHeader is returned when the node answers a head query without a header.
	errNoHeader = errors.New("node returned no header")
)

// ProbeErrorKind classifies why a chain head probe failed.
type ProbeErrorKind uint8

const (
	// TransportFailure covers network errors, closed clients, HTTP errors, cancellation and timeouts.
	TransportFailure ProbeErrorKind = iota + 1

	// ClientRejected covers JSON-RPC error responses and missing headers.
	ClientRejected
)

func (k ProbeErrorKind) String() string {
	switch k {
	case TransportFailure:
		return "transport_failure"
	case ClientRejected:
		return "client_rejected"
	default:
		return "unknown"
	}
}

func (k ProbeErrorKind) sentinel() error {
	if k == ClientRejected {
		return ErrClientRejected
	}
	return ErrTransportFailure
}

// ProbeError is returned by HeadProbe.Probe.
// It matches ErrTransportFailure or ErrClientRejected and unwraps to the client error.
type ProbeError struct {
	Kind     ProbeErrorKind
	Finality types.BlockFinality
	Err      error
}

// newProbeError classifies err and wraps it into a ProbeError.
func newProbeError(finality types.BlockFinality, err error) *ProbeError {
	return &ProbeError{
		Kind:     classifyProbeError(err),
		Finality: finality,
		Err:      err,
	}
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("probe %s head: %v: %v", e.Finality, e.Kind.sentinel(), e.Err)
}

func (e *ProbeError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// classifyProbeError decides whether err came from the transport or from the node refusing
// the request. Errors that cannot be attributed to the node are transport failures.
func classifyProbeError(err error) ProbeErrorKind {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return TransportFailure
	}

	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) {
		return TransportFailure
	}

	var (
		netErr *net.OpError
		urlErr *url.Error
	)
	if errors.As(err, &netErr) || errors.As(err, &urlErr) ||
		errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, rpc.ErrClientQuit) {
		return TransportFailure
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return ClientRejected
	}

	if errors.Is(err, ethereum.NotFound) || errors.Is(err, errNoHeader) {
		return ClientRejected
	}

	return TransportFailure
}
