package registry

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// AuthContext is what a RemoteHandle uses to reach the contract:
// a read-only Provider or a Signer which can also submit transactions.
type AuthContext interface {
	ContractBackend() bind.ContractBackend
}

// Provider is a read-only data source
type Provider struct {
	Backend bind.ContractBackend
}

// NewProvider creates a read-only authorization context
func NewProvider(backend bind.ContractBackend) *Provider {
	return &Provider{Backend: backend}
}

// ContractBackend returns the backend calls are executed on
func (p *Provider) ContractBackend() bind.ContractBackend {
	if p == nil {
		return nil
	}
	return p.Backend
}

// Signer is a signing agent, able to submit state changing calls
type Signer struct {
	Backend bind.ContractBackend
	Opts    *bind.TransactOpts
}

// NewSigner creates an authorization context which signs transactions with opts
func NewSigner(backend bind.ContractBackend, opts *bind.TransactOpts) *Signer {
	return &Signer{Backend: backend, Opts: opts}
}

// ContractBackend returns the backend calls and transactions are executed on
func (s *Signer) ContractBackend() bind.ContractBackend {
	if s == nil {
		return nil
	}
	return s.Backend
}
