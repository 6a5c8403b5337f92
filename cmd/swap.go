package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cgrie0321-cell/hbc-trading/config"
	"github.com/cgrie0321-cell/hbc-trading/pkg/executor"
	"github.com/cgrie0321-cell/hbc-trading/pkg/parser"
	"github.com/cgrie0321-cell/hbc-trading/pkg/swap"
	"github.com/cgrie0321-cell/hbc-trading/pkg/token"
	"github.com/cgrie0321-cell/hbc-trading/pkg/wallet"
	"github.com/cgrie0321-cell/hbc-trading/pkg/xdex"
)

var (
	noConfirm   bool
	slippageBps uint16
)

var swapCmd = &cobra.Command{
	Use:   "swap <amount> <token-in> to <token-out>",
	Short: "Swap tokens through the xdex aggregator",
	Long: `Swap tokens on the X1 blockchain. The aggregator prepares the
transaction, your configured wallet signs it, and the command waits for
confirmed on-chain execution.

Examples:
  hbc-trading swap 10 XNT to HBC
  hbc-trading swap 1.5 HBC to USDC.x --slippage 100
  hbc-trading swap 10 XNT to HBC --yes`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSwap,
}

func init() {
	rootCmd.AddCommand(swapCmd)

	swapCmd.Flags().BoolVarP(&noConfirm, "yes", "y", false, "Skip the signing confirmation prompt")
	swapCmd.Flags().Uint16Var(&slippageBps, "slippage", swap.DefaultSlippageBps, "Slippage tolerance in basis points")
}

func runSwap(cmd *cobra.Command, args []string) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	swapReq, err := parser.ParseSwapCommand(strings.Join(args, " "))
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	tokenIn, err := token.BySymbol(swapReq.TokenIn)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	tokenOut, err := token.BySymbol(swapReq.TokenOut)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	keypair, err := loadSigner(cfg)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	signer := keypair
	if !noConfirm && !jsonOutput {
		signer = wallet.NewConfirmingSigner(keypair, os.Stdin, os.Stdout)
	}

	ctrl, err := buildController(cfg, tokenIn, tokenOut)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	defer ctrl.Close()

	ctrl.SetSlippageBps(slippageBps)
	ctrl.Connect(signer)

	ctx := context.Background()
	ctrl.RefreshBalances(ctx)
	ctrl.SetAmountIn(swapReq.Amount)

	s := newSpinner("Fetching quote...")
	if !jsonOutput {
		s.Start()
	}
	quoteErr := ctrl.RefreshQuote(ctx)
	if !jsonOutput {
		s.Stop()
	}
	if quoteErr != nil {
		printError(quoteErr)
		os.Exit(1)
	}

	snap := ctrl.Snapshot()
	if !jsonOutput {
		displayQuote(&snap, cfg)
	}

	if !snap.CanSubmit {
		if jsonOutput {
			printJSON(map[string]interface{}{"error": snap.SubmitLabel})
		} else {
			printError(fmt.Errorf("cannot swap: %s", strings.TrimSuffix(snap.SubmitLabel, "...")))
		}
		os.Exit(1)
	}

	sig, err := ctrl.Submit(ctx)
	if err != nil {
		if errors.Is(err, executor.ErrUserRejected) {
			fmt.Println("\nSwap cancelled.")
			os.Exit(0)
		}
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		printJSON(map[string]interface{}{
			"signature":   sig,
			"explorer":    fmt.Sprintf("%s/tx/%s", cfg.ExplorerURL, sig),
			"token_in":    tokenIn.Symbol,
			"token_out":   tokenOut.Symbol,
			"amount_in":   swapReq.Amount,
			"slippage_bp": slippageBps,
		})
		return
	}

	color.Green("\n✓ Swap successful!")
	fmt.Printf("  Signature:  %s\n", color.CyanString(sig))
	fmt.Printf("  Explorer:   %s\n", color.CyanString("%s/tx/%s", cfg.ExplorerURL, sig))

	// Give the RPC node a moment to catch up before re-reading balances.
	time.Sleep(cfg.BalanceSettleDelay)
	ctrl.RefreshBalances(ctx)
	displayBalances(ctrl.Snapshot())
}

// buildController wires the quote client, executor, and balance service into
// a workflow controller using the configured endpoints and timers.
func buildController(cfg *config.Config, tokenIn, tokenOut token.Token) (*swap.Controller, error) {
	rpcClient := rpc.New(cfg.RPCEndpoint)

	quotes := xdex.NewClient(cfg.APIBase, cfg.Network)
	balances := wallet.NewBalanceService(rpcClient, commitmentFromConfig(cfg))
	exec := executor.New(rpcClient, executor.WithSkipPreflight(cfg.SkipPreflight))

	return swap.New(quotes, exec, balances, tokenIn, tokenOut, swap.Options{
		Debounce:     cfg.QuoteDebounce,
		PollInterval: cfg.BalancePollEvery,
		SettleDelay:  cfg.BalanceSettleDelay,
	})
}

func displayQuote(snap *swap.Snapshot, cfg *config.Config) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	color.Green("                     SWAP QUOTE")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\n  You pay:       %s %s\n", snap.AmountIn, color.YellowString(snap.TokenIn.Symbol))
	fmt.Printf("  You receive:   ~%s %s\n", snap.AmountOut, color.YellowString(snap.TokenOut.Symbol))

	if rate := snap.Rate(); rate != nil {
		fmt.Printf("  Rate:          1 %s = %s %s\n", snap.TokenIn.Symbol, rate.StringFixed(6), snap.TokenOut.Symbol)
	}
	if q := snap.Quote; q != nil {
		if q.PriceImpact != nil {
			impact := swap.FormatPercent(*q.PriceImpact)
			if q.PriceImpact.GreaterThan(decimal.NewFromInt(5)) {
				impact = color.RedString(impact)
			}
			fmt.Printf("  Price Impact:  %s\n", impact)
		}
		if q.MinimumReceived != nil {
			fmt.Printf("  Min. Received: %s %s\n", q.MinimumReceived.StringFixed(6), snap.TokenOut.Symbol)
		}
		if q.Fee != nil {
			fmt.Printf("  Fee:           %s %s\n", q.Fee.StringFixed(6), snap.TokenIn.Symbol)
		}
	}
	fmt.Printf("  Slippage:      %s\n", swap.FormatPercent(decimal.New(int64(snap.SlippageBps), -2)))
	fmt.Printf("  Network:       %s\n", cfg.Network)

	fmt.Println("\n" + strings.Repeat("=", 60))
}

func displayBalances(snap swap.Snapshot) {
	fmt.Println()
	printBalanceLine(snap.TokenIn, snap.BalanceIn)
	printBalanceLine(snap.TokenOut, snap.BalanceOut)
	fmt.Println()
}

func printBalanceLine(tok token.Token, balance *decimal.Decimal) {
	display := "--"
	if balance != nil {
		display = token.FormatAmount(*balance, tok.Decimals)
	}
	fmt.Printf("  %s %-7s %s\n", tok.Logo, tok.Symbol, display)
}

func printJSON(v interface{}) {
	data, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(data))
}
