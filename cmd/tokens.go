package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cgrie0321-cell/hbc-trading/pkg/token"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "List the supported tokens",
	Long: `List the tokens available for swapping, with their mint addresses
and decimals.

Examples:
  hbc-trading tokens
  hbc-trading tokens --json`,
	Run: runListTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runListTokens(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if jsonOutput {
		type row struct {
			Symbol   string `json:"symbol"`
			Mint     string `json:"mint"`
			Decimals uint8  `json:"decimals"`
			Native   bool   `json:"native"`
		}
		var rows []row
		for _, t := range token.All() {
			rows = append(rows, row{
				Symbol:   t.Symbol,
				Mint:     t.Mint.String(),
				Decimals: t.Decimals,
				Native:   t.IsNative(),
			})
		}
		printJSON(rows)
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 72))
	color.Green("                        SUPPORTED TOKENS")
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println()

	for _, t := range token.All() {
		symbol := t.Symbol
		if t.IsNative() {
			symbol += " (native)"
		}
		fmt.Printf("  %s %-16s %s  dec %d\n", t.Logo, color.YellowString(symbol), t.Mint.String(), t.Decimals)
	}

	fmt.Println("\n" + strings.Repeat("=", 72))
}
