package registry

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// GethBackend binds operation tables with go-ethereum's bind package
type GethBackend struct{}

// NewDecoder creates an abi backed decoder
func (GethBackend) NewDecoder(d *Descriptor) (*Decoder, error) {
	return NewDecoder(d)
}

// Bind creates a bind.BoundContract for the hex address.
// Both a Provider and a Signer bind the contract on all three roles (caller, transactor and filterer),
// the RemoteHandle refuses transactions without a Signer.
func (GethBackend) Bind(address string, d *Descriptor, auth AuthContext) (BoundContract, error) {
	if !common.IsHexAddress(address) {
		return nil, errors.Wrap(ErrInvalidAddress, address)
	}

	var backend bind.ContractBackend
	switch a := auth.(type) {
	case *Provider:
		backend = a.ContractBackend()
	case *Signer:
		if a != nil && a.Opts != nil {
			backend = a.ContractBackend()
		}
	}
	if backend == nil {
		return nil, errors.Wrapf(ErrUnsupportedAuthorizationContext, "%T", auth)
	}

	parsed, err := d.ABI()
	if err != nil {
		return nil, err
	}
	return bind.NewBoundContract(common.HexToAddress(address), parsed, backend, backend, backend), nil
}
