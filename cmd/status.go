package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/cobra"

	"github.com/cgrie0321-cell/hbc-trading/config"
	"github.com/cgrie0321-cell/hbc-trading/pkg/executor"
)

var (
	watchStatus   bool
	watchInterval time.Duration
)

var statusCmd = &cobra.Command{
	Use:   "status <signature>",
	Short: "Check the confirmation status of a transaction",
	Long: `Check how far a submitted transaction has progressed on chain.

Examples:
  hbc-trading status 5UfDu...
  hbc-trading status 5UfDu... --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVarP(&watchStatus, "watch", "w", false, "Poll until the transaction is finalized")
	statusCmd.Flags().DurationVar(&watchInterval, "interval", 2*time.Second, "Poll interval for --watch")
}

func runStatus(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	signature := args[0]

	cfg, err := config.Load()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	exec := executor.New(rpc.New(cfg.RPCEndpoint))
	ctx := context.Background()

	if watchStatus && !jsonOutput {
		watchConfirmation(ctx, exec, cfg, signature)
		return
	}

	status, err := exec.ConfirmationStatus(ctx, signature)
	if err != nil {
		reportStatusError(err, signature, string(status), jsonOutput)
		os.Exit(1)
	}

	if jsonOutput {
		printJSON(map[string]interface{}{
			"signature": signature,
			"status":    displayableStatus(status),
			"explorer":  fmt.Sprintf("%s/tx/%s", cfg.ExplorerURL, signature),
		})
		return
	}
	displayStatus(signature, status, cfg)
}

// watchConfirmation polls the status until the transaction finalizes or
// fails on chain.
func watchConfirmation(ctx context.Context, exec *executor.Executor, cfg *config.Config, signature string) {
	fmt.Printf("\nWatching %s (Ctrl+C to stop)\n", color.CyanString(signature))

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		status, err := exec.ConfirmationStatus(ctx, signature)
		if err != nil {
			reportStatusError(err, signature, string(status), false)
			os.Exit(1)
		}

		fmt.Printf("  [%s] %s\n", time.Now().Format("15:04:05"), coloredStatus(status))
		if status == rpc.ConfirmationStatusFinalized {
			printSuccess(color.GreenString("✓ Transaction finalized."))
			fmt.Printf("  Explorer: %s\n\n", color.CyanString("%s/tx/%s", cfg.ExplorerURL, signature))
			return
		}

		<-ticker.C
	}
}

func reportStatusError(err error, signature, status string, jsonOutput bool) {
	var execErr *executor.ExecutionError
	if errors.As(err, &execErr) {
		if jsonOutput {
			printJSON(map[string]interface{}{
				"signature": signature,
				"status":    "failed",
				"error":     execErr.Detail,
			})
			return
		}
		fmt.Printf("\n%s %s\n", color.RedString("✗ Transaction failed on chain:"), execErr.Detail)
		return
	}
	if jsonOutput {
		printJSON(map[string]interface{}{"signature": signature, "error": err.Error()})
		return
	}
	printError(err)
}

func displayStatus(signature string, status rpc.ConfirmationStatusType, cfg *config.Config) {
	fmt.Printf("\n  Signature: %s\n", color.CyanString(signature))
	fmt.Printf("  Status:    %s\n", coloredStatus(status))
	fmt.Printf("  Explorer:  %s\n\n", color.CyanString("%s/tx/%s", cfg.ExplorerURL, signature))
}

func displayableStatus(status rpc.ConfirmationStatusType) string {
	if status == "" {
		return "unknown"
	}
	return string(status)
}

func coloredStatus(status rpc.ConfirmationStatusType) string {
	switch status {
	case rpc.ConfirmationStatusFinalized:
		return color.GreenString(string(status))
	case rpc.ConfirmationStatusConfirmed:
		return color.CyanString(string(status))
	case rpc.ConfirmationStatusProcessed:
		return color.YellowString(string(status))
	default:
		return color.YellowString("not found")
	}
}
