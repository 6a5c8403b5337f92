package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/cobra"

	"github.com/cgrie0321-cell/hbc-trading/config"
	"github.com/cgrie0321-cell/hbc-trading/pkg/token"
	"github.com/cgrie0321-cell/hbc-trading/pkg/wallet"
)

var balanceWallet string

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show wallet balances for the supported tokens",
	Long: `Show the wallet's balance for every supported token. Missing token
accounts read as zero.

Examples:
  hbc-trading balance
  hbc-trading balance --wallet <address>`,
	Run: runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)

	balanceCmd.Flags().StringVar(&balanceWallet, "wallet", "", "Wallet address to inspect (defaults to the configured signing key)")
}

func runBalance(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := config.Load()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	var owner solana.PublicKey
	if balanceWallet != "" {
		owner, err = solana.PublicKeyFromBase58(balanceWallet)
		if err != nil {
			printError(fmt.Errorf("invalid wallet address: %w", err))
			os.Exit(1)
		}
	} else {
		signer, err := loadSigner(cfg)
		if err != nil {
			printError(fmt.Errorf("no wallet to inspect: %w (or pass --wallet)", err))
			os.Exit(1)
		}
		owner = signer.PublicKey()
	}

	service := wallet.NewBalanceService(rpc.New(cfg.RPCEndpoint), commitmentFromConfig(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s := newSpinner("Fetching balances...")
	if !jsonOutput {
		s.Start()
	}

	type row struct {
		Token   string `json:"token"`
		Mint    string `json:"mint"`
		Balance string `json:"balance"`
	}
	var rows []row
	var fetchErr error
	for _, t := range token.All() {
		balance, err := service.Balance(ctx, owner, t)
		if err != nil {
			fetchErr = fmt.Errorf("fetch %s balance: %w", t.Symbol, err)
			break
		}
		rows = append(rows, row{
			Token:   t.Symbol,
			Mint:    t.Mint.String(),
			Balance: token.FormatAmount(balance, t.Decimals),
		})
	}

	if !jsonOutput {
		s.Stop()
	}
	if fetchErr != nil {
		printError(fetchErr)
		os.Exit(1)
	}

	if jsonOutput {
		printJSON(map[string]interface{}{
			"wallet":   owner.String(),
			"balances": rows,
		})
		return
	}

	fmt.Printf("\nWallet: %s\n\n", owner.String())
	for i, t := range token.All() {
		fmt.Printf("  %s %-7s %s\n", t.Logo, t.Symbol, rows[i].Balance)
	}
	fmt.Println()
}
