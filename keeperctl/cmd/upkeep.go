package cmd

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/threefoldfoundation/tft/keeper/registry"
)

func parseUpkeepID(arg string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(arg, 10)
	if !ok || id.Sign() < 0 {
		return nil, errors.Errorf("invalid upkeep id %q", arg)
	}
	return id, nil
}

// parseLink parses an amount of LINK into juels
func parseLink(arg string) (*big.Int, error) {
	amount, err := decimal.NewFromString(arg)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid amount %q", arg)
	}
	juels := amount.Shift(registry.LinkDecimals).BigInt()
	if juels.Sign() <= 0 {
		return nil, errors.Errorf("amount has to be at least 1 juel")
	}
	return juels, nil
}

var (
	upkeepCountCmd = &cobra.Command{
		Use:   "count",
		Short: "number of upkeeps ever registered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, client, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			count, err := r.UpkeepCount(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(count)
			return nil
		},
	}

	upkeepShowCmd = &cobra.Command{
		Use:     "show [id]",
		Short:   "show the registration of an upkeep",
		Example: "show 12",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUpkeepID(args[0])
			if err != nil {
				return err
			}
			r, client, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			upkeep, err := r.Upkeep(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Upkeep:      %s\n", upkeep.ID)
			fmt.Printf("Target:      %s\n", upkeep.Target.Hex())
			fmt.Printf("Admin:       %s\n", upkeep.Admin.Hex())
			fmt.Printf("Execute gas: %d\n", upkeep.ExecuteGas)
			fmt.Printf("Check data:  %s\n", hexutil.Encode(upkeep.CheckData))
			fmt.Printf("Balance:     %s LINK\n", registry.JuelsToLink(upkeep.Balance))
			fmt.Printf("Last keeper: %s\n", upkeep.LastKeeper.Hex())
			if upkeep.Canceled() {
				fmt.Printf("Canceled:    valid until block %d\n", upkeep.MaxValidBlocknumber)
			}
			return nil
		},
	}

	upkeepCheckCmd = &cobra.Command{
		Use:   "check [id] [keeper]",
		Short: "simulate checkUpkeep on behalf of a keeper",
		Long:  "simulate checkUpkeep on behalf of a keeper, the loaded account is used if no keeper address is given",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUpkeepID(args[0])
			if err != nil {
				return err
			}
			r, client, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			from, hasAccount := client.AccountAddress()
			if len(args) == 2 {
				if from, err = parseAddress(args[1]); err != nil {
					return err
				}
			} else if !hasAccount {
				return errors.New("provide a keeper address or load an account")
			}

			result, err := r.CheckUpkeep(cmd.Context(), id, from)
			if err != nil {
				if strings.Contains(err.Error(), "execution reverted") {
					fmt.Printf("upkeep %s does not need to be performed: %s\n", id, err)
					return nil
				}
				return err
			}
			fmt.Printf("Perform data:     %s\n", hexutil.Encode(result.PerformData))
			fmt.Printf("Max link payment: %s LINK\n", registry.JuelsToLink(result.MaxLinkPayment))
			fmt.Printf("Gas limit:        %s\n", result.GasLimit)
			fmt.Printf("Gas price:        %s wei\n", result.GasWei)
			fmt.Printf("Link/ETH:         %s\n", registry.JuelsToLink(result.LinkEth))
			return nil
		},
	}

	upkeepCanceledCmd = &cobra.Command{
		Use:   "canceled",
		Short: "list cancelled upkeeps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, client, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			ids, err := r.CanceledUpkeeps(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}

	upkeepAddFundsCmd = &cobra.Command{
		Use:     "addfunds [id] [amount]",
		Short:   "add LINK to the balance of an upkeep",
		Example: "addfunds 12 2.5",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUpkeepID(args[0])
			if err != nil {
				return err
			}
			amount, err := parseLink(args[1])
			if err != nil {
				return err
			}
			r, client, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			tx, err := r.AddFunds(cmd.Context(), id, amount)
			if err != nil {
				return err
			}
			fmt.Printf("addFunds submitted in %s\n", tx.Hash().Hex())
			return nil
		},
	}

	upkeepCancelCmd = &cobra.Command{
		Use:   "cancel [id]",
		Short: "cancel an upkeep, only its admin can do this",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUpkeepID(args[0])
			if err != nil {
				return err
			}
			r, client, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			tx, err := r.CancelUpkeep(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("cancelUpkeep submitted in %s\n", tx.Hash().Hex())
			return nil
		},
	}
)
