package main

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/threefoldfoundation/tft/keeper/eth"
)

type Config struct {
	EthNetworkName  string
	EthUrl          string
	RegistryAddress string // overrides the registry of the network
	PersistencyFile string
	// the keeper account, either a hex encoded private key or an encrypted keystore file
	EthPrivateKey    string
	KeystoreFile     string
	KeystorePassword string
	DryRun           bool
	BlockCooldown    uint64
}

func (c *Config) Validate() (err error) {
	if _, err = eth.GetEthNetworkConfiguration(c.EthNetworkName); err != nil {
		return
	}
	if c.EthUrl == "" {
		return errors.New("An ethereum node url is required")
	}
	if c.EthPrivateKey != "" && c.KeystoreFile != "" {
		return errors.New("Provide either a private key or a keystore file, not both")
	}
	if c.PersistencyFile == "" {
		return errors.New("A persistency file is required")
	}
	_, err = c.Registry()
	return
}

// HasAccount tells if a keeper account is configured
func (c *Config) HasAccount() bool {
	return c.EthPrivateKey != "" || c.KeystoreFile != ""
}

// DryRunMode tells if upkeeps are only checked, which is always the case without an account
func (c *Config) DryRunMode() bool {
	return c.DryRun || !c.HasAccount()
}

// Registry returns the registry address to bind to. The address itself is checked when binding.
func (c *Config) Registry() (string, error) {
	if c.RegistryAddress != "" {
		return c.RegistryAddress, nil
	}
	networkConfig, err := eth.GetEthNetworkConfiguration(c.EthNetworkName)
	if err != nil {
		return "", err
	}
	if networkConfig.RegistryAddress == (common.Address{}) {
		return "", fmt.Errorf("no registry known for network %s, provide one", c.EthNetworkName)
	}
	return networkConfig.RegistryAddress.Hex(), nil
}
