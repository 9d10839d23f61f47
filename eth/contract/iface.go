package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// KeeperRegistryCallerIface is the read-only part of the KeeperRegistryInterface binding
type KeeperRegistryCallerIface interface {
	GetCanceledUpkeepList(opts *bind.CallOpts) ([]*big.Int, error)
	GetKeeperList(opts *bind.CallOpts) ([]common.Address, error)
	GetUpkeepCount(opts *bind.CallOpts) (*big.Int, error)
}

// Verify that the generated caller implements KeeperRegistryCallerIface. If the contract changes, this will fail to compile, update the interface to match.
var _ KeeperRegistryCallerIface = (*KeeperRegistryInterfaceCaller)(nil)
var _ KeeperRegistryCallerIface = (*KeeperRegistryInterface)(nil)
