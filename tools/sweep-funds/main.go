package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/funds-tools/client/wallet"
	"github.com/iotaledger/funds-tools/client/wallet/packages/keys"
	"github.com/iotaledger/funds-tools/packages/ledgerstate"
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

	sweepWallet := wallet.New(wallet.WithConnector(wallet.NewWebConnector(config.NodeURL)))
	if err = sweepWallet.Refresh(); err != nil {
		return errors.Errorf("failed to connect to node %s: %w", config.NodeURL, err)
	}

	hrp, err := sweepWallet.Bech32HRP()
	if err != nil {
		return err
	}

	recipientHRP, recipient, err := ledgerstate.AddressFromBech32EncodedString(config.RecipientAddress)
	if err != nil {
		return errors.Errorf("failed to parse recipient address: %w", err)
	}
	if recipientHRP != hrp {
		return errors.Errorf("recipient address prefix '%s' does not match the network prefix '%s'", recipientHRP, hrp)
	}

	failedKeys := 0
	for i, base58EncodedKey := range config.Keys {
		key, kErr := keys.KeyFromBase58EncodedString(base58EncodedKey)
		if kErr != nil {
			// a malformed key aborts the whole run since the remaining arguments can not be trusted
			return errors.Errorf("failed to decode private key %d: %w", i, kErr)
		}

		if sErr := sweepKey(sweepWallet, key, recipient, hrp); sErr != nil {
			fmt.Fprintf(os.Stderr, "error: failed to sweep funds of key %d: %s\n", i, sErr)
			failedKeys++
		}
	}

	if failedKeys > 0 {
		return errors.Errorf("failed to sweep the funds of %d of %d keys", failedKeys, len(config.Keys))
	}

	return nil
}

// sweepKey consolidates all currently spendable funds of a single key into one output on the recipient address and
// waits until the network confirms the transaction.
func sweepKey(sweepWallet *wallet.Wallet, key *keys.Key, recipient ledgerstate.Address, hrp string) (err error) {
	addr := key.Address()

	outputs, err := sweepWallet.SpendableOutputs(addr)
	if err != nil {
		return err
	}

	totalAmount := outputs.TotalAmount()
	if totalAmount == 0 {
		fmt.Printf("No funds to send from %s\n", addr.Bech32(hrp))
		return nil
	}

	fmt.Printf("Sending %.6f IOTA from %s to %s\n", float64(totalAmount)/1_000_000., addr.Bech32(hrp), recipient.Bech32(hrp))

	tx, err := sweepWallet.NewConsolidation(outputs, recipient, key)
	if err != nil {
		return err
	}

	if err = sweepWallet.SendTransaction(tx); err != nil {
		return err
	}
	fmt.Printf("Transaction with all outputs sent: %s\n", tx.ID().Base58())

	if err = sweepWallet.AwaitConfirmation(tx.ID()); err != nil {
		return err
	}
	fmt.Printf("Transaction with all outputs confirmed: %s\n", tx.ID().Base58())

	return nil
}
