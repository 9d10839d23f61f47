package registry

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// RemoteHandle is a contract instance bound to an address and an authorization context.
// Operations of the descriptor are invoked by name.
type RemoteHandle struct {
	address    common.Address
	auth       AuthContext
	descriptor *Descriptor
	contract   BoundContract
}

// Address of the bound contract
func (h *RemoteHandle) Address() common.Address {
	return h.address
}

// Auth returns the authorization context the handle was created with
func (h *RemoteHandle) Auth() AuthContext {
	return h.auth
}

// Descriptor returns the operation table of the handle
func (h *RemoteHandle) Descriptor() *Descriptor {
	return h.descriptor
}

// Operations returns the operations which can be invoked through the handle
func (h *RemoteHandle) Operations() []Operation {
	return h.descriptor.Operations()
}

// CanTransact tells if the handle was created with a signing agent
func (h *RemoteHandle) CanTransact() bool {
	s, ok := h.auth.(*Signer)
	return ok && s != nil && s.Opts != nil
}

// CallOpts returns the default call options, calls are made from the signer's account if there is one.
func (h *RemoteHandle) CallOpts(ctx context.Context) *bind.CallOpts {
	opts := &bind.CallOpts{Context: ctx}
	if h.CanTransact() {
		opts.From = h.auth.(*Signer).Opts.From
	}
	return opts
}

// TransactOpts returns a copy of the signer's transaction options using ctx
func (h *RemoteHandle) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if !h.CanTransact() {
		return nil, ErrReadOnlyContext
	}
	opts := *h.auth.(*Signer).Opts
	opts.Context = ctx
	return &opts, nil
}

// Call executes the named operation with eth_call and returns its unpacked outputs
func (h *RemoteHandle) Call(ctx context.Context, name string, args ...interface{}) ([]interface{}, error) {
	return h.CallAt(h.CallOpts(ctx), name, args...)
}

// CallAt is Call with explicit call options
func (h *RemoteHandle) CallAt(opts *bind.CallOpts, name string, args ...interface{}) ([]interface{}, error) {
	if _, ok := h.descriptor.Operation(name); !ok {
		return nil, errors.Wrap(ErrUnknownOperation, name)
	}
	var out []interface{}
	if err := h.contract.Call(opts, &out, name, args...); err != nil {
		return nil, errors.Wrapf(err, "call %s", name)
	}
	return out, nil
}

// Transact signs and submits the named state changing operation
func (h *RemoteHandle) Transact(ctx context.Context, name string, args ...interface{}) (*types.Transaction, error) {
	opts, err := h.TransactOpts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return h.TransactAt(opts, name, args...)
}

// TransactAt is Transact with explicit transaction options, e.g. a fixed gas limit
func (h *RemoteHandle) TransactAt(opts *bind.TransactOpts, name string, args ...interface{}) (*types.Transaction, error) {
	op, ok := h.descriptor.Operation(name)
	if !ok {
		return nil, errors.Wrap(ErrUnknownOperation, name)
	}
	if op.Mutability != StateChanging {
		return nil, errors.Wrap(ErrNotStateChanging, name)
	}
	if !h.CanTransact() {
		return nil, errors.Wrap(ErrReadOnlyContext, name)
	}
	tx, err := h.contract.Transact(opts, name, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "transact %s", name)
	}
	return tx, nil
}
