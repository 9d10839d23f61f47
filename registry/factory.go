package registry

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// BoundContract is the low level contract wrapper a RemoteHandle invokes operations on.
// *bind.BoundContract implements it.
type BoundContract interface {
	Call(opts *bind.CallOpts, results *[]interface{}, method string, params ...interface{}) error
	Transact(opts *bind.TransactOpts, method string, params ...interface{}) (*types.Transaction, error)
}

// Backend is the contract runtime a Factory delegates to.
// Input validation (address format, supported authorization contexts) belongs to the Backend.
type Backend interface {
	NewDecoder(d *Descriptor) (*Decoder, error)
	Bind(address string, d *Descriptor, auth AuthContext) (BoundContract, error)
}

// Factory creates decoders and remote handles for a fixed operation table.
// It holds no state besides its inputs, every call returns a new independent object.
type Factory struct {
	descriptor *Descriptor
	backend    Backend
}

// NewFactory creates a Factory for descriptor on top of backend
func NewFactory(descriptor *Descriptor, backend Backend) *Factory {
	return &Factory{
		descriptor: descriptor,
		backend:    backend,
	}
}

// NewKeeperRegistryFactory creates a Factory for the KeeperRegistryInterface
// backed by go-ethereum.
func NewKeeperRegistryFactory() *Factory {
	return NewFactory(KeeperRegistryInterface, GethBackend{})
}

// Descriptor returns the operation table of the factory
func (f *Factory) Descriptor() *Descriptor {
	return f.descriptor
}

// CreateDecoder creates a decoder for the operation table
func (f *Factory) CreateDecoder() (*Decoder, error) {
	return f.backend.NewDecoder(f.descriptor)
}

// Connect binds the operation table to the contract at address.
// No network call is made, errors of the backend are returned as is.
func (f *Factory) Connect(address string, auth AuthContext) (*RemoteHandle, error) {
	contract, err := f.backend.Bind(address, f.descriptor, auth)
	if err != nil {
		return nil, err
	}
	return &RemoteHandle{
		address:    common.HexToAddress(address),
		auth:       auth,
		descriptor: f.descriptor,
		contract:   contract,
	}, nil
}
