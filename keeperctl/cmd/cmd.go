package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/threefoldfoundation/tft/keeper/eth"
	"github.com/threefoldfoundation/tft/keeper/registry"
)

var (
	rootCmd = &cobra.Command{
		Use:   "keeperctl",
		Short: "Inspect and manage a chainlink keeper registry",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
			if viper.GetBool("debug") {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
		SilenceUsage: true,
	}

	registryCmd = &cobra.Command{Use: "registry", Short: "registry wide information"}
	upkeepCmd   = &cobra.Command{Use: "upkeep", Short: "inspect and manage upkeeps"}
	keeperCmd   = &cobra.Command{Use: "keeper", Short: "inspect registered keepers"}
	calldataCmd = &cobra.Command{Use: "calldata", Short: "encode and decode registry calldata offline"}
	accountCmd  = &cobra.Command{Use: "account", Short: "manage ethereum accounts"}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("ethnetwork", "eth-mainnet", "eth network name, one of "+strings.Join(eth.NetworkNames(), ", "))
	flags.String("ethurl", "ws://localhost:8546", "ethereum rpc url")
	flags.String("registry", "", "keeper registry contract address, overrides the one of the network")
	flags.String("ethkey", "", "hex encoded private key, required for state changing commands")
	flags.String("keystore", "", "encrypted keystore file, alternative to --ethkey")
	flags.String("password", "", "password of the keystore file")
	flags.Bool("debug", false, "sets debug level log output")

	for _, name := range []string{"ethnetwork", "ethurl", "registry", "ethkey", "keystore", "password", "debug"} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
	// KEEPER_ETHURL, KEEPER_ETHKEY, ...
	viper.SetEnvPrefix("keeper")
	viper.AutomaticEnv()
}

func Execute() {
	registryCmd.AddCommand(registryConfigCmd)
	upkeepCmd.AddCommand(upkeepCountCmd, upkeepShowCmd, upkeepCheckCmd, upkeepCanceledCmd, upkeepAddFundsCmd, upkeepCancelCmd)
	keeperCmd.AddCommand(keeperListCmd, keeperInfoCmd)
	calldataCmd.AddCommand(calldataEncodeCmd, calldataDecodeCmd)
	accountCmd.AddCommand(accountNewCmd, accountExposeCmd)

	rootCmd.AddCommand(registryCmd, upkeepCmd, keeperCmd, calldataCmd, accountCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// registryAddress resolves and checks the --registry flag, falling back to the network default
func registryAddress() (string, error) {
	if address := viper.GetString("registry"); address != "" {
		if !common.IsHexAddress(address) {
			return "", errors.Wrap(registry.ErrInvalidAddress, address)
		}
		return address, nil
	}
	network, err := eth.GetEthNetworkConfiguration(viper.GetString("ethnetwork"))
	if err != nil {
		return "", err
	}
	if network.RegistryAddress == (common.Address{}) {
		return "", errors.Errorf("network %s has no default registry, use --registry", network.NetworkName)
	}
	return network.RegistryAddress.Hex(), nil
}

func dial(ctx context.Context) (*eth.EthClient, error) {
	network, err := eth.GetEthNetworkConfiguration(viper.GetString("ethnetwork"))
	if err != nil {
		return nil, err
	}
	privateKey, err := eth.LoadPrivateKey(viper.GetString("ethkey"), viper.GetString("keystore"), viper.GetString("password"))
	if err != nil {
		return nil, err
	}
	return eth.NewEthClient(ctx, eth.ClientConfig{
		NetworkName: network.NetworkName,
		EthUrl:      viper.GetString("ethurl"),
		NetworkID:   network.NetworkID,
		PrivateKey:  privateKey,
	})
}

// connect dials the node and binds the registry with the loaded account, if any.
// The returned client has to be closed by the caller.
func connect(ctx context.Context) (*registry.KeeperRegistry, *eth.EthClient, error) {
	address, err := registryAddress()
	if err != nil {
		return nil, nil, err
	}
	client, err := dial(ctx)
	if err != nil {
		return nil, nil, err
	}
	auth, err := client.Auth()
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	handle, err := registry.NewKeeperRegistryFactory().Connect(address, auth)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return registry.NewKeeperRegistry(handle), client, nil
}
