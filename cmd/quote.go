package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cgrie0321-cell/hbc-trading/config"
	"github.com/cgrie0321-cell/hbc-trading/pkg/parser"
	"github.com/cgrie0321-cell/hbc-trading/pkg/swap"
	"github.com/cgrie0321-cell/hbc-trading/pkg/token"
	"github.com/cgrie0321-cell/hbc-trading/pkg/xdex"
)

var quoteWallet string

var quoteCmd = &cobra.Command{
	Use:   "quote <amount> <token-in> to <token-out>",
	Short: "Fetch a swap quote without executing",
	Long: `Fetch a quote from the xdex aggregator for a prospective swap. No
transaction is signed or submitted.

Examples:
  hbc-trading quote 10 XNT to HBC
  hbc-trading quote 1.5 HBC to USDC.x --wallet <address>`,
	Args: cobra.MinimumNArgs(1),
	Run:  runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().StringVar(&quoteWallet, "wallet", "", "Wallet address to quote for (defaults to the configured signing key)")
}

func runQuote(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

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

	wallet := quoteWallet
	if wallet == "" {
		signer, err := loadSigner(cfg)
		if err != nil {
			printError(fmt.Errorf("no wallet to quote for: %w (or pass --wallet)", err))
			os.Exit(1)
		}
		wallet = signer.PublicKey().String()
	}

	amount, err := token.ParseAmount(swapReq.Amount)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	client := xdex.NewClient(cfg.APIBase, cfg.Network)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	s := newSpinner("Fetching quote...")
	if !jsonOutput {
		s.Start()
	}
	resp, err := client.GetQuote(ctx, tokenIn.Mint.String(), tokenOut.Mint.String(), amount, wallet)
	if !jsonOutput {
		s.Stop()
	}
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	if msg := resp.ErrorMessage(); msg != "" {
		printError(fmt.Errorf("quote failed: %s", msg))
		os.Exit(1)
	}

	if jsonOutput {
		printJSON(resp)
		return
	}

	amountOut := ""
	if resp.EstimatedOutput != nil {
		amountOut = token.FormatAmount(*resp.EstimatedOutput, tokenOut.Decimals)
	}
	snap := swap.Snapshot{
		TokenIn:     tokenIn,
		TokenOut:    tokenOut,
		AmountIn:    swapReq.Amount,
		AmountOut:   amountOut,
		SlippageBps: swap.DefaultSlippageBps,
		Quote:       resp,
	}
	displayQuote(&snap, cfg)
}
