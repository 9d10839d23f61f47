package eth

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEthNetworkConfiguration(t *testing.T) {
	cfg, err := GetEthNetworkConfiguration("eth-mainnet")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), cfg.NetworkID)
	assert.NotEqual(t, common.Address{}, cfg.RegistryAddress)

	cfg, err = GetEthNetworkConfiguration("hardhat")
	require.NoError(t, err)
	assert.Equal(t, uint64(31337), cfg.NetworkID)
	assert.Equal(t, common.Address{}, cfg.RegistryAddress)

	_, err = GetEthNetworkConfiguration("ropsten")
	assert.Error(t, err)
}

func TestNetworkNames(t *testing.T) {
	names := NetworkNames()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "goerli-testnet")
	assert.Len(t, names, len(ethNetworkConfigurations))
}
