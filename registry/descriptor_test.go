package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threefoldfoundation/tft/keeper/eth/contract"
)

var keeperRegistryOperations = []string{
	"addFunds",
	"cancelUpkeep",
	"checkUpkeep",
	"getCanceledUpkeepList",
	"getConfig",
	"getKeeperInfo",
	"getKeeperList",
	"getUpkeep",
	"getUpkeepCount",
	"performUpkeep",
	"registerUpkeep",
}

func TestKeeperRegistryInterfaceOperations(t *testing.T) {
	assert.Equal(t, len(keeperRegistryOperations), KeeperRegistryInterface.Len())
	assert.Equal(t, keeperRegistryOperations, KeeperRegistryInterface.Names())

	for _, name := range keeperRegistryOperations {
		_, found := KeeperRegistryInterface.Operation(name)
		assert.True(t, found, name)
	}
	_, found := KeeperRegistryInterface.Operation("withdrawFunds")
	assert.False(t, found)
}

func TestKeeperRegistryInterfaceMutability(t *testing.T) {
	stateChanging := map[string]bool{
		"addFunds":       true,
		"cancelUpkeep":   true,
		"performUpkeep":  true,
		"registerUpkeep": true,
	}
	for _, op := range KeeperRegistryInterface.Operations() {
		if stateChanging[op.Name] {
			assert.Equal(t, StateChanging, op.Mutability, op.Name)
		} else {
			assert.Equal(t, ReadOnly, op.Mutability, op.Name)
		}
	}
}

// The hand written table and the generated binding come from the same ABI
func TestKeeperRegistryInterfaceMatchesBinding(t *testing.T) {
	parsed, err := contract.KeeperRegistryInterfaceMetaData.GetAbi()
	require.NoError(t, err)
	require.Len(t, parsed.Methods, KeeperRegistryInterface.Len())

	for _, op := range KeeperRegistryInterface.Operations() {
		method, found := parsed.Methods[op.Name]
		require.True(t, found, op.Name)

		require.Len(t, method.Inputs, len(op.Inputs), op.Name)
		for i, in := range op.Inputs {
			assert.Equal(t, in.Type, method.Inputs[i].Type.String(), "%s input %d", op.Name, i)
			assert.Equal(t, in.Name, method.Inputs[i].Name, "%s input %d", op.Name, i)
		}
		require.Len(t, method.Outputs, len(op.Outputs), op.Name)
		for i, out := range op.Outputs {
			assert.Equal(t, out.Type, method.Outputs[i].Type.String(), "%s output %d", op.Name, i)
		}
		assert.Equal(t, op.Mutability.String(), method.StateMutability, op.Name)
		assert.Equal(t, method.Sig, op.Signature())
	}
}

func TestNewDescriptor(t *testing.T) {
	op := Operation{Name: "ping", Mutability: ReadOnly}

	_, err := NewDescriptor(op, op)
	assert.Error(t, err)

	_, err = NewDescriptor(Operation{})
	assert.Error(t, err)

	d, err := NewDescriptor()
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())

	assert.Panics(t, func() { MustDescriptor(op, op) })
}

func TestDescriptorIsImmutable(t *testing.T) {
	inputs := []Argument{{Name: "id", Type: "uint256"}}
	d, err := NewDescriptor(Operation{Name: "cancelUpkeep", Inputs: inputs, Mutability: StateChanging})
	require.NoError(t, err)

	inputs[0].Type = "bool"
	ops := d.Operations()
	ops[0].Inputs[0].Name = "changed"
	ops[0].Name = "changed"

	op, found := d.Operation("cancelUpkeep")
	require.True(t, found)
	assert.Equal(t, []Argument{{Name: "id", Type: "uint256"}}, op.Inputs)
	assert.Equal(t, "cancelUpkeep(uint256)", op.Signature())
}

func TestDescriptorABI(t *testing.T) {
	parsed, err := KeeperRegistryInterface.ABI()
	require.NoError(t, err)
	assert.Len(t, parsed.Methods, KeeperRegistryInterface.Len())
	assert.Equal(t, "registerUpkeep(address,uint32,address,bytes)", parsed.Methods["registerUpkeep"].Sig)
}

func TestDescriptorJSON(t *testing.T) {
	d, err := NewDescriptor(Operation{
		Name:       "cancelUpkeep",
		Inputs:     []Argument{{Name: "id", Type: "uint256"}},
		Mutability: StateChanging,
	})
	require.NoError(t, err)

	j, err := d.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"inputs":[{"internalType":"uint256","name":"id","type":"uint256"}],"name":"cancelUpkeep","outputs":[],"stateMutability":"nonpayable","type":"function"}]`, string(j))

	f := NewFactory(d, GethBackend{})
	assert.Same(t, d, f.Descriptor())
	assert.Same(t, KeeperRegistryInterface, NewKeeperRegistryFactory().Descriptor())
}
