package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/cobra"

	"github.com/cgrie0321-cell/hbc-trading/config"
	"github.com/cgrie0321-cell/hbc-trading/pkg/wallet"
)

var rootCmd = &cobra.Command{
	Use:   "hbc-trading",
	Short: "A CLI for trading HBC on the X1 blockchain via the xdex aggregator",
	Long: `hbc-trading swaps tokens on the X1 blockchain through the xdex
aggregator. It fetches a quote, has your wallet sign the prepared
transaction, submits it, and waits for confirmed execution.

Examples:
  hbc-trading swap 10 XNT to HBC
  hbc-trading quote 10 XNT to HBC
  hbc-trading balance
  hbc-trading tokens
  hbc-trading status <signature>
  hbc-trading theme toggle`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
}

func printError(err error) {
	fmt.Printf("\nError: %v\n\n", err)
}

func printSuccess(message string) {
	fmt.Printf("\n%s\n\n", message)
}

func newSpinner(suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + suffix
	return s
}

// commitmentFromConfig maps the configured commitment string to the RPC type.
func commitmentFromConfig(cfg *config.Config) rpc.CommitmentType {
	switch cfg.Commitment {
	case "finalized":
		return rpc.CommitmentFinalized
	case "processed":
		return rpc.CommitmentProcessed
	default:
		return rpc.CommitmentConfirmed
	}
}

// loadSigner builds the keypair signer from the configured key material.
func loadSigner(cfg *config.Config) (wallet.Signer, error) {
	if err := cfg.RequireSigningKey(); err != nil {
		return nil, err
	}
	if cfg.PrivateKey != "" {
		return wallet.NewKeypairFromBase58(cfg.PrivateKey)
	}
	return wallet.NewKeypairFromFile(cfg.KeypairPath)
}
