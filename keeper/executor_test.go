package keeper

import (
	"context"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threefoldfoundation/tft/keeper/registry"
	"github.com/threefoldfoundation/tft/keeper/state"
)

var testKeeper = common.HexToAddress("0x00000000000000000000000000000000000000aa")

type performed struct {
	id       int64
	data     []byte
	gasLimit uint64
}

// fakeRegistry has count upkeeps, the ones in eligible need to be performed
type fakeRegistry struct {
	count    int64
	canceled []int64
	eligible map[int64][]byte
	checkErr error

	checked   []int64
	performed []performed
}

func (r *fakeRegistry) UpkeepCount(ctx context.Context) (*big.Int, error) {
	return big.NewInt(r.count), nil
}

func (r *fakeRegistry) CanceledUpkeeps(ctx context.Context) ([]*big.Int, error) {
	ids := make([]*big.Int, len(r.canceled))
	for i, id := range r.canceled {
		ids[i] = big.NewInt(id)
	}
	return ids, nil
}

func (r *fakeRegistry) CheckUpkeep(ctx context.Context, id *big.Int, from common.Address) (*registry.CheckResult, error) {
	if from != testKeeper {
		return nil, errors.New("unexpected keeper")
	}
	r.checked = append(r.checked, id.Int64())
	if r.checkErr != nil {
		return nil, r.checkErr
	}
	data, eligible := r.eligible[id.Int64()]
	if !eligible {
		return nil, errors.New("execution reverted: upkeep not needed")
	}
	return &registry.CheckResult{
		PerformData:    data,
		MaxLinkPayment: big.NewInt(1e17),
		GasLimit:       big.NewInt(250000),
	}, nil
}

func (r *fakeRegistry) PerformUpkeep(ctx context.Context, id *big.Int, performData []byte, gasLimit uint64) (*types.Transaction, error) {
	r.performed = append(r.performed, performed{id: id.Int64(), data: performData, gasLimit: gasLimit})
	return types.NewTx(&types.LegacyTx{Nonce: uint64(len(r.performed)), Gas: gasLimit}), nil
}

func head(height int64) *types.Header {
	return &types.Header{Number: big.NewInt(height)}
}

func newTestExecutor(t *testing.T, reg Registry, config Config) (*Executor, *state.ChainPersistency) {
	t.Helper()
	persistency := state.NewChainPersistency(filepath.Join(t.TempDir(), "keeper.json"))
	config.KeeperAddress = testKeeper
	e, err := NewExecutor(reg, persistency, config)
	require.NoError(t, err)
	return e, persistency
}

func TestExecutorPerformsEligibleUpkeeps(t *testing.T) {
	reg := &fakeRegistry{
		count:    4,
		canceled: []int64{2},
		eligible: map[int64][]byte{1: {0xab}, 2: {0xcd}},
	}
	e, persistency := newTestExecutor(t, reg, Config{})

	require.NoError(t, e.HandleHead(context.Background(), head(100)))

	assert.Equal(t, []int64{0, 1, 3}, reg.checked, "cancelled upkeeps are not checked")
	require.Len(t, reg.performed, 1)
	assert.Equal(t, performed{id: 1, data: []byte{0xab}, gasLimit: 250000 + PerformGasOverhead}, reg.performed[0])

	keeperState, err := persistency.GetState()
	require.NoError(t, err)
	assert.Equal(t, uint64(100), keeperState.LastHeight)
	assert.Equal(t, uint64(100), keeperState.Performed["1"])
	assert.Equal(t, uint64(100), e.LastHeight())
}

func TestExecutorDryRun(t *testing.T) {
	reg := &fakeRegistry{count: 2, eligible: map[int64][]byte{0: nil, 1: nil}}
	e, _ := newTestExecutor(t, reg, Config{DryRun: true})

	require.NoError(t, e.HandleHead(context.Background(), head(10)))
	assert.Equal(t, []int64{0, 1}, reg.checked)
	assert.Empty(t, reg.performed)
}

func TestExecutorSkipsProcessedHeads(t *testing.T) {
	reg := &fakeRegistry{count: 1}
	e, _ := newTestExecutor(t, reg, Config{})

	require.NoError(t, e.HandleHead(context.Background(), head(10)))
	require.NoError(t, e.HandleHead(context.Background(), head(10)))
	require.NoError(t, e.HandleHead(context.Background(), head(9)))
	assert.Len(t, reg.checked, 1)
}

func TestExecutorCooldown(t *testing.T) {
	reg := &fakeRegistry{count: 1, eligible: map[int64][]byte{0: nil}}
	e, _ := newTestExecutor(t, reg, Config{BlockCooldown: 3})
	ctx := context.Background()

	for height := int64(10); height <= 14; height++ {
		require.NoError(t, e.HandleHead(ctx, head(height)))
	}
	// performed at 10 and again at 13, not even checked in between
	require.Len(t, reg.performed, 2)
	assert.Equal(t, []int64{0, 0}, reg.checked)
}

func TestExecutorDefaultCooldown(t *testing.T) {
	reg := &fakeRegistry{count: 1, eligible: map[int64][]byte{0: nil}}
	e, _ := newTestExecutor(t, reg, Config{})
	ctx := context.Background()

	for height := int64(20); height <= 23; height++ {
		require.NoError(t, e.HandleHead(ctx, head(height)))
	}
	// performed at 20, left alone until 20+DefaultBlockCooldown
	require.Len(t, reg.performed, 2)
	assert.Equal(t, []int64{0, 0}, reg.checked)
}

func TestExecutorResumesFromState(t *testing.T) {
	reg := &fakeRegistry{count: 1, eligible: map[int64][]byte{0: nil}}
	e, persistency := newTestExecutor(t, reg, Config{})
	require.NoError(t, e.HandleHead(context.Background(), head(50)))

	resumed, err := NewExecutor(reg, persistency, Config{KeeperAddress: testKeeper})
	require.NoError(t, err)
	assert.Equal(t, uint64(50), resumed.LastHeight())

	require.NoError(t, resumed.HandleHead(context.Background(), head(51)))
	assert.Len(t, reg.performed, 1, "the cooldown survives a restart")
}

func TestExecutorCheckErrors(t *testing.T) {
	reg := &fakeRegistry{count: 2, checkErr: errors.New("connection refused")}
	e, _ := newTestExecutor(t, reg, Config{})

	// failing upkeeps do not stop the head from being processed
	require.NoError(t, e.HandleHead(context.Background(), head(7)))
	assert.Equal(t, []int64{0, 1}, reg.checked)
	assert.Equal(t, uint64(7), e.LastHeight())
}
