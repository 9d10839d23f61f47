package keeper

import (
	"context"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/threefoldfoundation/tft/keeper/registry"
	"github.com/threefoldfoundation/tft/keeper/state"
)

const (
	// PerformGasOverhead is added to the gas limit reported by checkUpkeep,
	// the registry needs it on top of the upkeep's execute gas.
	PerformGasOverhead = 80000
	// DefaultBlockCooldown is the number of blocks to wait before performing the same upkeep again
	DefaultBlockCooldown = 3
)

// Registry is the part of the keeper registry the executor needs
type Registry interface {
	UpkeepCount(ctx context.Context) (*big.Int, error)
	CanceledUpkeeps(ctx context.Context) ([]*big.Int, error)
	CheckUpkeep(ctx context.Context, id *big.Int, from common.Address) (*registry.CheckResult, error)
	PerformUpkeep(ctx context.Context, id *big.Int, performData []byte, gasLimit uint64) (*types.Transaction, error)
}

var _ Registry = (*registry.KeeperRegistry)(nil)

// Config holds the executor settings
type Config struct {
	// KeeperAddress is the registered keeper account checks are made for
	KeeperAddress common.Address
	// DryRun only logs eligible upkeeps
	DryRun bool
	// BlockCooldown is the number of blocks an upkeep is left alone after being performed,
	// 0 means DefaultBlockCooldown
	BlockCooldown uint64
}

// Executor checks all active upkeeps on every new head and performs the eligible ones
type Executor struct {
	registry    Registry
	persistency *state.ChainPersistency
	config      Config

	mut   sync.Mutex
	state *state.KeeperState
}

// NewExecutor creates an Executor, resuming from the persisted state
func NewExecutor(reg Registry, persistency *state.ChainPersistency, config Config) (*Executor, error) {
	keeperState, err := persistency.GetState()
	if err != nil {
		return nil, errors.Wrap(err, "could not load keeper state")
	}
	if config.BlockCooldown == 0 {
		config.BlockCooldown = DefaultBlockCooldown
	}
	return &Executor{
		registry:    reg,
		persistency: persistency,
		config:      config,
		state:       keeperState,
	}, nil
}

// LastHeight returns the height of the last processed head
func (e *Executor) LastHeight() uint64 {
	e.mut.Lock()
	defer e.mut.Unlock()
	return e.state.LastHeight
}

// HandleHead processes a new head. Heads at or below the last processed height are ignored.
func (e *Executor) HandleHead(ctx context.Context, head *types.Header) error {
	height := head.Number.Uint64()

	e.mut.Lock()
	defer e.mut.Unlock()

	if height <= e.state.LastHeight {
		log.Debug().Uint64("height", height).Uint64("last", e.state.LastHeight).Msg("Skipping already processed head")
		return nil
	}

	ids, err := e.activeUpkeeps(ctx)
	if err != nil {
		return err
	}
	log.Debug().Uint64("height", height).Int("upkeeps", len(ids)).Msg("Checking upkeeps")

	for _, id := range ids {
		if err := e.processUpkeep(ctx, id, height); err != nil {
			log.Warn().Err(err).Str("upkeep", id.String()).Msg("Upkeep failed")
		}
	}

	e.state.LastHeight = height
	return e.persistency.Save(e.state)
}

func (e *Executor) activeUpkeeps(ctx context.Context) ([]*big.Int, error) {
	count, err := e.registry.UpkeepCount(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not get upkeep count")
	}
	canceledIDs, err := e.registry.CanceledUpkeeps(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not get cancelled upkeeps")
	}
	canceled := make(map[string]struct{}, len(canceledIDs))
	for _, id := range canceledIDs {
		canceled[id.String()] = struct{}{}
	}

	var ids []*big.Int
	for i := big.NewInt(0); i.Cmp(count) < 0; i = new(big.Int).Add(i, big.NewInt(1)) {
		if _, isCanceled := canceled[i.String()]; isCanceled {
			continue
		}
		ids = append(ids, i)
	}
	return ids, nil
}

// isRevert tells if a call failed because the contract reverted,
// checkUpkeep reverts for upkeeps which do not need to be performed.
func isRevert(err error) bool {
	return strings.Contains(err.Error(), "execution reverted")
}

func (e *Executor) processUpkeep(ctx context.Context, id *big.Int, height uint64) error {
	key := id.String()
	if last, performed := e.state.Performed[key]; performed && height < last+e.config.BlockCooldown {
		log.Debug().Str("upkeep", key).Uint64("performedAt", last).Msg("Upkeep performed recently")
		return nil
	}

	result, err := e.registry.CheckUpkeep(ctx, id, e.config.KeeperAddress)
	if err != nil {
		if isRevert(err) {
			log.Debug().Str("upkeep", key).Msg("Upkeep not needed")
			return nil
		}
		return errors.Wrap(err, "checkUpkeep failed")
	}
	log.Info().Str("upkeep", key).Uint64("height", height).Str("maxLinkPayment", registry.JuelsToLink(result.MaxLinkPayment).String()).Msg("Upkeep eligible")

	if e.config.DryRun {
		return nil
	}

	var gasLimit uint64
	if result.GasLimit != nil && result.GasLimit.IsUint64() {
		gasLimit = result.GasLimit.Uint64() + PerformGasOverhead
	}
	tx, err := e.registry.PerformUpkeep(ctx, id, result.PerformData, gasLimit)
	if err != nil {
		return err
	}
	e.state.Performed[key] = height
	log.Info().Str("upkeep", key).Str("tx", tx.Hash().Hex()).Uint64("gasLimit", gasLimit).Msg("Upkeep performed")
	return nil
}
