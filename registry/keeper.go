package registry

import (
	"context"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// CheckResult is the outcome of a successful checkUpkeep call
type CheckResult struct {
	PerformData    []byte
	MaxLinkPayment *big.Int
	GasLimit       *big.Int
	GasWei         *big.Int
	LinkEth        *big.Int
}

// Upkeep is a registered upkeep as returned by getUpkeep
type Upkeep struct {
	ID                  *big.Int
	Target              common.Address
	ExecuteGas          uint32
	CheckData           []byte
	Balance             *big.Int
	LastKeeper          common.Address
	Admin               common.Address
	MaxValidBlocknumber uint64
}

// Canceled returns true if the upkeep has been cancelled, the registry uses max uint64 for active upkeeps.
func (u Upkeep) Canceled() bool {
	return u.MaxValidBlocknumber != math.MaxUint64
}

// RegistryConfig is the configuration of the registry as returned by getConfig
type RegistryConfig struct {
	PaymentPremiumPPB    uint32
	CheckFrequencyBlocks *big.Int
	CheckGasLimit        uint32
	StalenessSeconds     *big.Int
	GasCeilingMultiplier uint16
	FallbackGasPrice     *big.Int
	FallbackLinkPrice    *big.Int
}

// KeeperInfo is the registration of a keeper as returned by getKeeperInfo
type KeeperInfo struct {
	Address common.Address
	Payee   common.Address
	Active  bool
	Balance *big.Int
}

// KeeperRegistry exposes the KeeperRegistryInterface operations of a RemoteHandle with go types
type KeeperRegistry struct {
	handle *RemoteHandle
}

// NewKeeperRegistry wraps a handle created from the KeeperRegistryInterface descriptor
func NewKeeperRegistry(handle *RemoteHandle) *KeeperRegistry {
	return &KeeperRegistry{handle: handle}
}

// Handle returns the underlying remote handle
func (r *KeeperRegistry) Handle() *RemoteHandle {
	return r.handle
}

// Address of the registry contract
func (r *KeeperRegistry) Address() common.Address {
	return r.handle.Address()
}

func expectOutputs(name string, out []interface{}, n int) error {
	if len(out) < n {
		return errors.Errorf("%s returned %d values, expected %d", name, len(out), n)
	}
	return nil
}

func (r *KeeperRegistry) call(opts *bind.CallOpts, name string, outputs int, args ...interface{}) ([]interface{}, error) {
	out, err := r.handle.CallAt(opts, name, args...)
	if err != nil {
		return nil, err
	}
	if err = expectOutputs(name, out, outputs); err != nil {
		return nil, err
	}
	return out, nil
}

// UpkeepCount returns the number of upkeeps ever registered
func (r *KeeperRegistry) UpkeepCount(ctx context.Context) (*big.Int, error) {
	out, err := r.call(r.handle.CallOpts(ctx), "getUpkeepCount", 1)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// CanceledUpkeeps returns the ids of all cancelled upkeeps
func (r *KeeperRegistry) CanceledUpkeeps(ctx context.Context) ([]*big.Int, error) {
	out, err := r.call(r.handle.CallOpts(ctx), "getCanceledUpkeepList", 1)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int), nil
}

// CheckUpkeep simulates the check of upkeep id on behalf of keeper from.
// The registry only allows this call without a transaction origin, so no From is set.
// A revert means the upkeep does not need to be performed.
func (r *KeeperRegistry) CheckUpkeep(ctx context.Context, id *big.Int, from common.Address) (*CheckResult, error) {
	out, err := r.call(&bind.CallOpts{Context: ctx}, "checkUpkeep", 5, id, from)
	if err != nil {
		return nil, err
	}
	return &CheckResult{
		PerformData:    *abi.ConvertType(out[0], new([]byte)).(*[]byte),
		MaxLinkPayment: *abi.ConvertType(out[1], new(*big.Int)).(**big.Int),
		GasLimit:       *abi.ConvertType(out[2], new(*big.Int)).(**big.Int),
		GasWei:         *abi.ConvertType(out[3], new(*big.Int)).(**big.Int),
		LinkEth:        *abi.ConvertType(out[4], new(*big.Int)).(**big.Int),
	}, nil
}

// Upkeep returns the registration of upkeep id
func (r *KeeperRegistry) Upkeep(ctx context.Context, id *big.Int) (*Upkeep, error) {
	out, err := r.call(r.handle.CallOpts(ctx), "getUpkeep", 7, id)
	if err != nil {
		return nil, err
	}
	return &Upkeep{
		ID:                  new(big.Int).Set(id),
		Target:              *abi.ConvertType(out[0], new(common.Address)).(*common.Address),
		ExecuteGas:          *abi.ConvertType(out[1], new(uint32)).(*uint32),
		CheckData:           *abi.ConvertType(out[2], new([]byte)).(*[]byte),
		Balance:             *abi.ConvertType(out[3], new(*big.Int)).(**big.Int),
		LastKeeper:          *abi.ConvertType(out[4], new(common.Address)).(*common.Address),
		Admin:               *abi.ConvertType(out[5], new(common.Address)).(*common.Address),
		MaxValidBlocknumber: *abi.ConvertType(out[6], new(uint64)).(*uint64),
	}, nil
}

// Config returns the registry configuration
func (r *KeeperRegistry) Config(ctx context.Context) (*RegistryConfig, error) {
	out, err := r.call(r.handle.CallOpts(ctx), "getConfig", 7)
	if err != nil {
		return nil, err
	}
	return &RegistryConfig{
		PaymentPremiumPPB:    *abi.ConvertType(out[0], new(uint32)).(*uint32),
		CheckFrequencyBlocks: *abi.ConvertType(out[1], new(*big.Int)).(**big.Int),
		CheckGasLimit:        *abi.ConvertType(out[2], new(uint32)).(*uint32),
		StalenessSeconds:     *abi.ConvertType(out[3], new(*big.Int)).(**big.Int),
		GasCeilingMultiplier: *abi.ConvertType(out[4], new(uint16)).(*uint16),
		FallbackGasPrice:     *abi.ConvertType(out[5], new(*big.Int)).(**big.Int),
		FallbackLinkPrice:    *abi.ConvertType(out[6], new(*big.Int)).(**big.Int),
	}, nil
}

// KeeperInfo returns the registration of keeper
func (r *KeeperRegistry) KeeperInfo(ctx context.Context, keeper common.Address) (*KeeperInfo, error) {
	out, err := r.call(r.handle.CallOpts(ctx), "getKeeperInfo", 3, keeper)
	if err != nil {
		return nil, err
	}
	return &KeeperInfo{
		Address: keeper,
		Payee:   *abi.ConvertType(out[0], new(common.Address)).(*common.Address),
		Active:  *abi.ConvertType(out[1], new(bool)).(*bool),
		Balance: *abi.ConvertType(out[2], new(*big.Int)).(**big.Int),
	}, nil
}

// Keepers returns the addresses of all registered keepers
func (r *KeeperRegistry) Keepers(ctx context.Context) ([]common.Address, error) {
	out, err := r.call(r.handle.CallOpts(ctx), "getKeeperList", 1)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]common.Address)).(*[]common.Address), nil
}

// PerformUpkeep submits performUpkeep for id. A gasLimit of 0 lets the backend estimate the gas.
func (r *KeeperRegistry) PerformUpkeep(ctx context.Context, id *big.Int, performData []byte, gasLimit uint64) (*types.Transaction, error) {
	opts, err := r.handle.TransactOpts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "performUpkeep")
	}
	opts.GasLimit = gasLimit
	return r.handle.TransactAt(opts, "performUpkeep", id, performData)
}

// AddFunds adds amount juels to the balance of upkeep id
func (r *KeeperRegistry) AddFunds(ctx context.Context, id *big.Int, amount *big.Int) (*types.Transaction, error) {
	return r.handle.Transact(ctx, "addFunds", id, amount)
}

// CancelUpkeep cancels upkeep id
func (r *KeeperRegistry) CancelUpkeep(ctx context.Context, id *big.Int) (*types.Transaction, error) {
	return r.handle.Transact(ctx, "cancelUpkeep", id)
}

// RegisterUpkeep registers a new upkeep for target
func (r *KeeperRegistry) RegisterUpkeep(ctx context.Context, target common.Address, gasLimit uint32, admin common.Address, checkData []byte) (*types.Transaction, error) {
	return r.handle.Transact(ctx, "registerUpkeep", target, gasLimit, admin, checkData)
}
