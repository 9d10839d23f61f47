package eth

import (
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// NetworkConfiguration defines the network specific configuration needed by the keeper
type NetworkConfiguration struct {
	NetworkID        uint64
	NetworkName      string
	RegistryAddress  common.Address
	LinkTokenAddress common.Address
}

var ethNetworkConfigurations = map[string]NetworkConfiguration{
	"eth-mainnet": {
		NetworkID:        1,
		NetworkName:      "eth-mainnet",
		RegistryAddress:  common.HexToAddress("0x7b3EC232b08BD7b4b3305BE0C044D907B2DF960B"),
		LinkTokenAddress: common.HexToAddress("0x514910771AF9Ca656af840dff83E8264EcF986CA"),
	},
	"goerli-testnet": {
		NetworkID:        5,
		NetworkName:      "goerli-testnet",
		RegistryAddress:  common.HexToAddress("0x02777053d6764996e594c3E88AF1D58D5363a2e6"),
		LinkTokenAddress: common.HexToAddress("0x326C977E6efc84E512bB9C30f76E30c160eD06FB"),
	},
	"smart-chain-mainnet": {
		NetworkID:        56,
		NetworkName:      "bsc-mainnet",
		RegistryAddress:  common.HexToAddress("0x7b3EC232b08BD7b4b3305BE0C044D907B2DF960B"),
		LinkTokenAddress: common.HexToAddress("0x404460C6A5EdE2D891e8297795264fDe62ADBB75"),
	},
	"polygon-mainnet": {
		NetworkID:        137,
		NetworkName:      "polygon-mainnet",
		RegistryAddress:  common.HexToAddress("0x7b3EC232b08BD7b4b3305BE0C044D907B2DF960B"),
		LinkTokenAddress: common.HexToAddress("0xb0897686c545045aFc77CF20eC7A532E3120E0F1"),
	},
	"mumbai-testnet": {
		NetworkID:        80001,
		NetworkName:      "mumbai-testnet",
		RegistryAddress:  common.HexToAddress("0x02777053d6764996e594c3E88AF1D58D5363a2e6"),
		LinkTokenAddress: common.HexToAddress("0x326C977E6efc84E512bB9C30f76E30c160eD06FB"),
	},
	// local development chain, the registry address has to be provided
	"hardhat": {
		NetworkID:   31337,
		NetworkName: "hardhat",
	},
}

// GetEthNetworkConfiguration returns the NetworkConfiguration for a specific network
func GetEthNetworkConfiguration(networkname string) (networkconfig NetworkConfiguration, err error) {
	networkconfig, found := ethNetworkConfigurations[networkname]
	if !found {
		err = fmt.Errorf("network %s not supported", networkname)
	}
	return
}

// NetworkNames returns the names of all supported networks, sorted
func NetworkNames() []string {
	names := make([]string, 0, len(ethNetworkConfigurations))
	for name := range ethNetworkConfigurations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
