package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/threefoldfoundation/tft/keeper/eth"
)

var (
	accountNewCmd = &cobra.Command{
		Use:   "new",
		Short: "generate a new ethereum account",
		Long:  "generate a new ethereum account, with --keystore and --password it is stored encrypted instead of printed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			privateKey, err := crypto.GenerateKey()
			if err != nil {
				return err
			}
			address := crypto.PubkeyToAddress(privateKey.PublicKey)

			keystoreFile := viper.GetString("keystore")
			if keystoreFile == "" {
				fmt.Println("Address:", address.Hex())
				fmt.Println("Private key:", hex.EncodeToString(crypto.FromECDSA(privateKey)))
				return nil
			}
			password := viper.GetString("password")
			if password == "" {
				return errors.New("a password is required to encrypt the keystore")
			}
			if _, err := os.Stat(keystoreFile); err == nil {
				return errors.Errorf("%s already exists", keystoreFile)
			}
			key := &keystore.Key{
				Id:         uuid.New(),
				Address:    address,
				PrivateKey: privateKey,
			}
			keyjson, err := keystore.EncryptKey(key, password, keystore.StandardScryptN, keystore.StandardScryptP)
			if err != nil {
				return err
			}
			if err := os.WriteFile(keystoreFile, keyjson, 0o600); err != nil {
				return err
			}
			fmt.Println("Address:", address.Hex())
			fmt.Println("Keystore:", keystoreFile)
			return nil
		},
	}

	accountExposeCmd = &cobra.Command{
		Use:   "expose",
		Short: "print the hex encoded private key of a keystore file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keystoreFile := viper.GetString("keystore")
			if keystoreFile == "" {
				return errors.New("--keystore is required")
			}
			privateKey, err := eth.LoadPrivateKey("", keystoreFile, viper.GetString("password"))
			if err != nil {
				return err
			}
			fmt.Println("Address:", crypto.PubkeyToAddress(privateKey.PublicKey).Hex())
			fmt.Println("Private key:", hex.EncodeToString(crypto.FromECDSA(privateKey)))
			return nil
		},
	}
)
