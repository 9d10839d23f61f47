package eth

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/threefoldfoundation/tft/keeper/registry"
)

// EthDecimals is the number of decimals of ether
const EthDecimals = 18

// ErrChainIDMismatch is returned when the node serves another chain than the configured network
var ErrChainIDMismatch = errors.New("chain id of the node does not match the network")

// EthClient is a connection to an ethereum node with an optional account to sign transactions with
type EthClient struct {
	*ethclient.Client // Client connection to the Ethereum chain
	privateKey        *ecdsa.PrivateKey
	address           common.Address
	chainID           *big.Int
}

// ClientConfig combines all configuration required for
// creating and configuring an EthClient.
type ClientConfig struct {
	NetworkName string
	EthUrl      string
	NetworkID   uint64
	// PrivateKey is optional, without it the client is read-only
	PrivateKey *ecdsa.PrivateKey
}

func (cfg *ClientConfig) validate() error {
	if cfg.NetworkName == "" {
		return errors.New("invalid ClientConfig: no network name defined")
	}
	if cfg.EthUrl == "" {
		return errors.New("invalid ClientConfig: no network url defined")
	}
	if cfg.NetworkID == 0 {
		return errors.New("invalid ClientConfig: no network ID defined")
	}
	return nil
}

// NewEthClient dials the node and verifies it serves the configured network.
func NewEthClient(ctx context.Context, cfg ClientConfig) (*EthClient, error) {
	// validate the cfg, as to provide better error reporting for obvious errors
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cl, err := ethclient.DialContext(ctx, cfg.EthUrl)
	if err != nil {
		return nil, errors.Wrap(err, "could not connect to the ethereum node")
	}

	chainID, err := cl.ChainID(ctx)
	if err != nil {
		cl.Close()
		return nil, errors.Wrap(err, "could not get the chain id")
	}
	if chainID.Uint64() != cfg.NetworkID {
		cl.Close()
		return nil, errors.Wrapf(ErrChainIDMismatch, "network %s expects %d, node has %s", cfg.NetworkName, cfg.NetworkID, chainID)
	}

	c := &EthClient{
		Client:     cl,
		privateKey: cfg.PrivateKey,
		chainID:    chainID,
	}
	if cfg.PrivateKey != nil {
		c.address = crypto.PubkeyToAddress(cfg.PrivateKey.PublicKey)
		log.Info().Str("address", c.address.Hex()).Msg("ethereum account loaded")
	}
	return c, nil
}

// ChainID of the connected network
func (c *EthClient) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// AccountAddress returns the address of the loaded account,
// false if no account was loaded.
func (c *EthClient) AccountAddress() (common.Address, bool) {
	return c.address, c.privateKey != nil
}

// Auth returns a signing authorization context if an account is loaded, a read-only one otherwise.
func (c *EthClient) Auth() (registry.AuthContext, error) {
	if c.privateKey == nil {
		return registry.NewProvider(c.Client), nil
	}
	opts, err := bind.NewKeyedTransactorWithChainID(c.privateKey, c.chainID)
	if err != nil {
		return nil, err
	}
	return registry.NewSigner(c.Client, opts), nil
}

// AccountBalance returns the ether balance of the loaded account at the latest block
func (c *EthClient) AccountBalance(ctx context.Context) (decimal.Decimal, error) {
	if c.privateKey == nil {
		return decimal.Zero, errors.New("no account was loaded into the client")
	}
	balance, err := c.BalanceAt(ctx, c.address, nil)
	if err != nil {
		return decimal.Zero, err
	}
	return WeiToEth(balance), nil
}

// WeiToEth converts an amount of wei to ether
func WeiToEth(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -EthDecimals)
}

// LoadPrivateKey loads the private key from a keystore file if one is given,
// otherwise from the hex encoded key. It returns nil if neither is set.
func LoadPrivateKey(hexKey, keystoreFile, password string) (*ecdsa.PrivateKey, error) {
	if keystoreFile != "" {
		keyjson, err := os.ReadFile(keystoreFile)
		if err != nil {
			return nil, errors.Wrap(err, "could not read keystore file")
		}
		key, err := keystore.DecryptKey(keyjson, password)
		if err != nil {
			return nil, errors.Wrap(err, "could not decrypt keystore file")
		}
		return key.PrivateKey, nil
	}
	if hexKey == "" {
		return nil, nil
	}
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}
	return privateKey, nil
}
