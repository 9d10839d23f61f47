package registry

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDecoder(t *testing.T) *Decoder {
	t.Helper()
	dec, err := NewKeeperRegistryFactory().CreateDecoder()
	require.NoError(t, err)
	return dec
}

func TestDecoderSelectors(t *testing.T) {
	dec := newTestDecoder(t)

	selectors := map[string]string{
		"addFunds":              "948108f7",
		"cancelUpkeep":          "c8048022",
		"checkUpkeep":           "c41b813a",
		"getCanceledUpkeepList": "2cb6864d",
		"getConfig":             "c3f909d4",
		"getKeeperInfo":         "1e12b8a5",
		"getKeeperList":         "15a126ea",
		"getUpkeep":             "c7c3a19a",
		"getUpkeepCount":        "fecf27c9",
		"performUpkeep":         "7bbaf1ea",
		"registerUpkeep":        "da5c6741",
	}
	for name, expected := range selectors {
		selector, err := dec.Selector(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, hex.EncodeToString(selector), name)
	}
}

func TestDecoderRecognisesAllOperations(t *testing.T) {
	dec := newTestDecoder(t)

	for _, expected := range KeeperRegistryInterface.Operations() {
		op, found := dec.Operation(expected.Name)
		require.True(t, found, expected.Name)
		assert.Equal(t, expected, op)
	}
	_, found := dec.Operation("transfer")
	assert.False(t, found)
}

func TestDecoderAddFundsRoundTrip(t *testing.T) {
	dec := newTestDecoder(t)

	data, err := dec.EncodeCall("addFunds", big.NewInt(1), big.NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, "948108f7", hex.EncodeToString(data[:4]))
	assert.Len(t, data, 4+2*32)

	name, args, err := dec.DecodeCall(data)
	require.NoError(t, err)
	assert.Equal(t, "addFunds", name)
	require.Len(t, args, 2)
	assert.Equal(t, 0, big.NewInt(1).Cmp(args[0].(*big.Int)))
	assert.Equal(t, 0, big.NewInt(100).Cmp(args[1].(*big.Int)))
}

func TestDecoderRegisterUpkeepRoundTrip(t *testing.T) {
	dec := newTestDecoder(t)
	target := common.HexToAddress("0x1000000000000000000000000000000000000001")
	admin := common.HexToAddress("0x2000000000000000000000000000000000000002")

	data, err := dec.EncodeCall("registerUpkeep", target, uint32(500000), admin, []byte{0xca, 0xfe})
	require.NoError(t, err)

	name, args, err := dec.DecodeCall(data)
	require.NoError(t, err)
	assert.Equal(t, "registerUpkeep", name)
	require.Len(t, args, 4)
	assert.Equal(t, target, args[0])
	assert.Equal(t, uint32(500000), args[1])
	assert.Equal(t, admin, args[2])
	assert.Equal(t, []byte{0xca, 0xfe}, args[3])
}

func TestDecoderErrors(t *testing.T) {
	dec := newTestDecoder(t)

	_, err := dec.EncodeCall("withdrawFunds", big.NewInt(1))
	assert.True(t, errors.Is(err, ErrUnknownOperation))

	_, err = dec.Selector("withdrawFunds")
	assert.True(t, errors.Is(err, ErrUnknownOperation))

	_, _, err = dec.DecodeCall([]byte{0x94, 0x81})
	assert.True(t, errors.Is(err, ErrUnknownSelector))

	_, _, err = dec.DecodeCall([]byte{0xa9, 0x05, 0x9c, 0xbb})
	assert.True(t, errors.Is(err, ErrUnknownSelector))

	// wrong argument type
	_, err = dec.EncodeCall("cancelUpkeep", "one")
	assert.Error(t, err)
}

func TestDecoderDecodeOutputs(t *testing.T) {
	dec := newTestDecoder(t)

	packed, err := dec.ABI().Methods["getKeeperInfo"].Outputs.Pack(
		common.HexToAddress("0x3000000000000000000000000000000000000003"),
		true,
		big.NewInt(42),
	)
	require.NoError(t, err)

	out, err := dec.DecodeOutputs("getKeeperInfo", packed)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, common.HexToAddress("0x3000000000000000000000000000000000000003"), out[0])
	assert.Equal(t, true, out[1])
	assert.Equal(t, 0, big.NewInt(42).Cmp(out[2].(*big.Int)))

	_, err = dec.DecodeOutputs("nope", packed)
	assert.True(t, errors.Is(err, ErrUnknownOperation))
}

func TestDecodersAreIndependent(t *testing.T) {
	f := NewKeeperRegistryFactory()
	a, err := f.CreateDecoder()
	require.NoError(t, err)
	b, err := f.CreateDecoder()
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, a.Descriptor().Names(), b.Descriptor().Names())
}
