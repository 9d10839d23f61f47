package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"github.com/threefoldfoundation/tft/keeper/eth"
	"github.com/threefoldfoundation/tft/keeper/keeper"
	"github.com/threefoldfoundation/tft/keeper/registry"
	"github.com/threefoldfoundation/tft/keeper/state"
)

var Version = "development"

func main() {
	var cfg Config

	flag.StringVar(&cfg.EthNetworkName, "ethnetwork", "eth-mainnet", "eth network name")
	flag.StringVar(&cfg.EthUrl, "ethurl", "ws://localhost:8546", "ethereum rpc url, has to support subscriptions")
	flag.StringVar(&cfg.RegistryAddress, "registry", "", "keeper registry contract address, overrides the one of the network")

	flag.StringVar(&cfg.PersistencyFile, "persistency", "./keeper.json", "file where the last processed blockheight and performed upkeeps are stored")

	flag.StringVar(&cfg.EthPrivateKey, "ethkey", "", "hex encoded private key of the keeper account")
	flag.StringVar(&cfg.KeystoreFile, "keystore", "", "encrypted keystore file of the keeper account")
	flag.StringVar(&cfg.KeystorePassword, "password", "", "password of the keystore file")

	flag.BoolVar(&cfg.DryRun, "dryrun", false, "only log eligible upkeeps, do not submit performUpkeep transactions")
	flag.Uint64Var(&cfg.BlockCooldown, "cooldown", keeper.DefaultBlockCooldown, "number of blocks to wait before performing the same upkeep again")

	version := flag.Bool("version", false, "Print the version and exit")
	var debug bool
	flag.BoolVar(&debug, "debug", false, "sets debug level log output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s (version %s):\n", os.Args[0], Version)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *version {
		fmt.Println(Version)
		os.Exit(0)
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if !cfg.HasAccount() && !cfg.DryRun {
		log.Warn().Msg("no keeper account provided, running in dry run mode")
	}

	log.Info().Str("version", Version).Msg("starting keeper")
	log.Info().Str("network", cfg.EthNetworkName).Str("url", cfg.EthUrl).Msg("Ethereum node")

	networkConfig, err := eth.GetEthNetworkConfiguration(cfg.EthNetworkName)
	if err != nil {
		panic(err)
	}
	registryAddress, err := cfg.Registry()
	if err != nil {
		panic(err)
	}
	privateKey, err := eth.LoadPrivateKey(cfg.EthPrivateKey, cfg.KeystoreFile, cfg.KeystorePassword)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := eth.NewEthClient(ctx, eth.ClientConfig{
		NetworkName: networkConfig.NetworkName,
		EthUrl:      cfg.EthUrl,
		NetworkID:   networkConfig.NetworkID,
		PrivateKey:  privateKey,
	})
	if err != nil {
		panic(err)
	}

	auth, err := client.Auth()
	if err != nil {
		panic(err)
	}
	handle, err := registry.NewKeeperRegistryFactory().Connect(registryAddress, auth)
	if err != nil {
		panic(err)
	}
	keeperRegistry := registry.NewKeeperRegistry(handle)
	log.Info().Str("address", keeperRegistry.Address().Hex()).Msg("Keeper registry bound")

	keeperAddress, hasAccount := client.AccountAddress()
	if hasAccount {
		info, err := keeperRegistry.KeeperInfo(ctx, keeperAddress)
		if err != nil {
			panic(err)
		}
		if !info.Active {
			log.Warn().Str("keeper", keeperAddress.Hex()).Msg("account is not an active keeper of the registry, performs will revert")
		}
		balance, err := client.AccountBalance(ctx)
		if err != nil {
			panic(err)
		}
		log.Info().Str("keeper", keeperAddress.Hex()).Str("balance", balance.String()).Str("earned", registry.JuelsToLink(info.Balance).String()).Msg("keeper account")
	}

	executor, err := keeper.NewExecutor(keeperRegistry, state.NewChainPersistency(cfg.PersistencyFile), keeper.Config{
		KeeperAddress: keeperAddress,
		DryRun:        cfg.DryRunMode(),
		BlockCooldown: cfg.BlockCooldown,
	})
	if err != nil {
		panic(err)
	}
	log.Info().Uint64("height", executor.LastHeight()).Msg("resuming after last processed head")

	watcher := eth.NewHeadWatcher(client, executor)
	go func() {
		if err := watcher.Start(ctx); err != nil {
			log.Error().Err(err).Msg("head watcher stopped")
			cancel()
		}
	}()

	sigs := make(chan os.Signal, 1)

	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	log.Info().Msg("awaiting signal")
	select {
	case sig := <-sigs:
		log.Info().Str("signal", sig.String()).Msg("signal")
	case <-ctx.Done():
	}
	cancel()
	client.Close()
	log.Info().Msg("exiting")
}
