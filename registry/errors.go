package registry

import "github.com/pkg/errors"

var (
	// ErrInvalidAddress is returned when the backend rejects the address of the registry
	ErrInvalidAddress = errors.New("invalid contract address")

	// ErrUnsupportedAuthorizationContext is returned when the backend can not bind with the given authorization context
	ErrUnsupportedAuthorizationContext = errors.New("unsupported authorization context")

	// ErrUnknownOperation is returned for operation names that are not part of the descriptor
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrUnknownSelector is returned when calldata does not start with the method id of a known operation
	ErrUnknownSelector = errors.New("unknown method selector")

	// ErrNotStateChanging is returned when a read-only operation is submitted as a transaction
	ErrNotStateChanging = errors.New("operation does not change state")

	// ErrReadOnlyContext is returned when a transaction is requested through a handle without a signer
	ErrReadOnlyContext = errors.New("authorization context can not sign transactions")
)
