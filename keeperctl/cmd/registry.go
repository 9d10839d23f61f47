package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/threefoldfoundation/tft/keeper/eth/contract"
	"github.com/threefoldfoundation/tft/keeper/registry"
)

var registryConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "show the registry configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		address, err := registryAddress()
		if err != nil {
			return err
		}
		client, err := dial(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()

		// the generated binding, the registry package is used everywhere else
		caller, err := contract.NewKeeperRegistryInterface(common.HexToAddress(address), client)
		if err != nil {
			return err
		}
		opts := &bind.CallOpts{Context: cmd.Context()}
		config, err := caller.GetConfig(opts)
		if err != nil {
			return err
		}
		count, err := caller.GetUpkeepCount(opts)
		if err != nil {
			return err
		}
		keepers, err := caller.GetKeeperList(opts)
		if err != nil {
			return err
		}

		fmt.Printf("Registry:               %s\n", common.HexToAddress(address).Hex())
		fmt.Printf("Payment premium (ppb):  %d\n", config.PaymentPremiumPPB)
		fmt.Printf("Check frequency blocks: %s\n", config.CheckFrequencyBlocks)
		fmt.Printf("Check gas limit:        %d\n", config.CheckGasLimit)
		fmt.Printf("Staleness seconds:      %s\n", config.StalenessSeconds)
		fmt.Printf("Gas ceiling multiplier: %d\n", config.GasCeilingMultiplier)
		fmt.Printf("Fallback gas price:     %s wei\n", config.FallbackGasPrice)
		fmt.Printf("Fallback link price:    %s LINK/ETH\n", registry.JuelsToLink(config.FallbackLinkPrice))
		fmt.Printf("Upkeeps:                %s\n", count)
		fmt.Printf("Keepers:                %d\n", len(keepers))
		return nil
	},
}
