package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/funds-tools/client/wallet"
	"github.com/iotaledger/funds-tools/client/wallet/packages/keys"
	"github.com/iotaledger/funds-tools/prices"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	balanceWallet := wallet.New(wallet.WithConnector(wallet.NewWebConnector(config.NodeURL)))
	if err = balanceWallet.Refresh(); err != nil {
		return errors.Errorf("failed to connect to node %s: %w", config.NodeURL, err)
	}

	// collect the balances of all keys into shared buckets keyed by unlock time
	balances := wallet.NewTimedBalanceMap()
	for i, base58EncodedKey := range config.Keys {
		key, kErr := keys.KeyFromBase58EncodedString(base58EncodedKey)
		if kErr != nil {
			return errors.Errorf("failed to decode private key %d: %w", i, kErr)
		}

		outputs, oErr := balanceWallet.TimedBalanceOutputs(key.Address())
		if oErr != nil {
			return errors.Errorf("failed to fetch outputs of key %d: %w", i, oErr)
		}

		for _, output := range outputs {
			balances.AddOutput(output)
		}
	}

	// a table without a conversion rate is not meaningful, so a missing rate fails the whole run
	price, err := prices.NewClient().Price(config.Currency)
	if err != nil {
		return err
	}

	balances.WithCumulative().Render(os.Stdout, price, config.Currency)

	return nil
}
