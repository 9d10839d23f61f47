package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/threefoldfoundation/tft/keeper/registry"
)

func parseAddress(arg string) (common.Address, error) {
	if !common.IsHexAddress(arg) {
		return common.Address{}, errors.Wrap(registry.ErrInvalidAddress, arg)
	}
	return common.HexToAddress(arg), nil
}

var (
	keeperListCmd = &cobra.Command{
		Use:   "list",
		Short: "list the registered keepers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, client, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			keepers, err := r.Keepers(cmd.Context())
			if err != nil {
				return err
			}
			for _, keeper := range keepers {
				fmt.Println(keeper.Hex())
			}
			return nil
		},
	}

	keeperInfoCmd = &cobra.Command{
		Use:   "info [address]",
		Short: "show the registration of a keeper, the loaded account by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, client, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			keeper, hasAccount := client.AccountAddress()
			if len(args) == 1 {
				if keeper, err = parseAddress(args[0]); err != nil {
					return err
				}
			} else if !hasAccount {
				return errors.New("provide a keeper address or load an account")
			}

			info, err := r.KeeperInfo(cmd.Context(), keeper)
			if err != nil {
				return err
			}
			fmt.Printf("Keeper:  %s\n", info.Address.Hex())
			fmt.Printf("Payee:   %s\n", info.Payee.Hex())
			fmt.Printf("Active:  %t\n", info.Active)
			fmt.Printf("Balance: %s LINK\n", registry.JuelsToLink(info.Balance))
			return nil
		},
	}
)
