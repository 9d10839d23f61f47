package registry

import (
	"context"
	"math"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testTarget = common.HexToAddress("0x1000000000000000000000000000000000000001")
	testAdmin  = common.HexToAddress("0x2000000000000000000000000000000000000002")
)

func TestKeeperRegistryReads(t *testing.T) {
	contract := &fakeContract{outputs: map[string][]interface{}{
		"getUpkeepCount":        {big.NewInt(5)},
		"getCanceledUpkeepList": {[]*big.Int{big.NewInt(1), big.NewInt(3)}},
		"getKeeperList":         {[]common.Address{testSignerAddress}},
		"getKeeperInfo":         {testAdmin, true, big.NewInt(7)},
		"getUpkeep": {
			testTarget, uint32(200000), []byte{0x01}, big.NewInt(1e18), testSignerAddress, testAdmin, uint64(math.MaxUint64),
		},
		"getConfig": {
			uint32(250000000), big.NewInt(3), uint32(6500000), big.NewInt(90000), uint16(1), big.NewInt(2e11), big.NewInt(2e16),
		},
	}}
	r := NewKeeperRegistry(newTestHandle(t, contract, testSigner()))
	ctx := context.Background()

	count, err := r.UpkeepCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count.Int64())

	canceled, err := r.CanceledUpkeeps(ctx)
	require.NoError(t, err)
	assert.Len(t, canceled, 2)

	keepers, err := r.Keepers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []common.Address{testSignerAddress}, keepers)

	info, err := r.KeeperInfo(ctx, testSignerAddress)
	require.NoError(t, err)
	assert.Equal(t, testSignerAddress, info.Address)
	assert.Equal(t, testAdmin, info.Payee)
	assert.True(t, info.Active)
	assert.Equal(t, int64(7), info.Balance.Int64())

	upkeep, err := r.Upkeep(ctx, big.NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), upkeep.ID.Int64())
	assert.Equal(t, testTarget, upkeep.Target)
	assert.Equal(t, uint32(200000), upkeep.ExecuteGas)
	assert.Equal(t, []byte{0x01}, upkeep.CheckData)
	assert.Equal(t, testAdmin, upkeep.Admin)
	assert.False(t, upkeep.Canceled())

	config, err := r.Config(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(250000000), config.PaymentPremiumPPB)
	assert.Equal(t, int64(3), config.CheckFrequencyBlocks.Int64())
	assert.Equal(t, uint16(1), config.GasCeilingMultiplier)
	assert.Equal(t, int64(2e16), config.FallbackLinkPrice.Int64())
}

func TestKeeperRegistryCheckUpkeep(t *testing.T) {
	contract := &fakeContract{outputs: map[string][]interface{}{
		"checkUpkeep": {[]byte{0xab}, big.NewInt(100), big.NewInt(250000), big.NewInt(30e9), big.NewInt(5e15)},
	}}
	r := NewKeeperRegistry(newTestHandle(t, contract, testSigner()))

	result, err := r.CheckUpkeep(context.Background(), big.NewInt(0), testSignerAddress)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xab}, result.PerformData)
	assert.Equal(t, int64(250000), result.GasLimit.Int64())

	require.Len(t, contract.calls, 1)
	call := contract.calls[0]
	assert.Equal(t, common.Address{}, call.callOpts.From, "checkUpkeep is executed without an origin")
	assert.Equal(t, testSignerAddress, call.params[1])
}

func TestKeeperRegistryShortOutputs(t *testing.T) {
	contract := &fakeContract{outputs: map[string][]interface{}{
		"getKeeperInfo": {testAdmin},
	}}
	r := NewKeeperRegistry(newTestHandle(t, contract, NewProvider(nopBackend{})))

	_, err := r.KeeperInfo(context.Background(), testSignerAddress)
	assert.Error(t, err)
}

func TestKeeperRegistryPerformUpkeep(t *testing.T) {
	contract := &fakeContract{}
	r := NewKeeperRegistry(newTestHandle(t, contract, testSigner()))

	tx, err := r.PerformUpkeep(context.Background(), big.NewInt(1), []byte{0xab}, 330000)
	require.NoError(t, err)
	assert.Equal(t, uint64(330000), tx.Gas())

	require.Len(t, contract.calls, 1)
	assert.Equal(t, "performUpkeep", contract.calls[0].method)
	assert.Equal(t, uint64(330000), contract.calls[0].txOpts.GasLimit)

	readOnly := NewKeeperRegistry(newTestHandle(t, &fakeContract{}, NewProvider(nopBackend{})))
	_, err = readOnly.PerformUpkeep(context.Background(), big.NewInt(1), nil, 0)
	assert.True(t, errors.Is(err, ErrReadOnlyContext))
}

func TestKeeperRegistryWrites(t *testing.T) {
	contract := &fakeContract{}
	r := NewKeeperRegistry(newTestHandle(t, contract, testSigner()))
	ctx := context.Background()

	_, err := r.AddFunds(ctx, big.NewInt(1), big.NewInt(100))
	require.NoError(t, err)
	_, err = r.CancelUpkeep(ctx, big.NewInt(1))
	require.NoError(t, err)
	_, err = r.RegisterUpkeep(ctx, testTarget, 500000, testAdmin, nil)
	require.NoError(t, err)

	require.Len(t, contract.calls, 3)
	assert.Equal(t, "addFunds", contract.calls[0].method)
	assert.Equal(t, "cancelUpkeep", contract.calls[1].method)
	assert.Equal(t, "registerUpkeep", contract.calls[2].method)
	assert.Equal(t, uint32(500000), contract.calls[2].params[1])
}

func TestUpkeepCanceled(t *testing.T) {
	assert.False(t, Upkeep{MaxValidBlocknumber: math.MaxUint64}.Canceled())
	assert.True(t, Upkeep{MaxValidBlocknumber: 1234}.Canceled())
}

func TestJuelsToLink(t *testing.T) {
	assert.True(t, JuelsToLink(nil).IsZero())
	assert.True(t, decimal.NewFromFloat(1.5).Equal(JuelsToLink(big.NewInt(15e17))))
}
