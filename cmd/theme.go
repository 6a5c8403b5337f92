package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cgrie0321-cell/hbc-trading/config"
	"github.com/cgrie0321-cell/hbc-trading/pkg/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the display theme",
	Long: `Show or change the persisted display theme. The preference survives
restarts and is applied on load.

Examples:
  hbc-trading theme
  hbc-trading theme mode light
  hbc-trading theme brightness dim
  hbc-trading theme toggle`,
	Run: runThemeShow,
}

var themeModeCmd = &cobra.Command{
	Use:   "mode <light|dark>",
	Short: "Set the theme mode",
	Args:  cobra.ExactArgs(1),
	Run:   runThemeMode,
}

var themeBrightnessCmd = &cobra.Command{
	Use:   "brightness <dim|normal|bright>",
	Short: "Set the theme brightness",
	Args:  cobra.ExactArgs(1),
	Run:   runThemeBrightness,
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle between light and dark mode",
	Run:   runThemeToggle,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeModeCmd)
	themeCmd.AddCommand(themeBrightnessCmd)
	themeCmd.AddCommand(themeToggleCmd)
}

func openThemeStore() (*theme.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return theme.NewStore(cfg.ThemePath, nil)
}

func runThemeShow(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := openThemeStore()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	displayTheme(store.Preference(), jsonOutput)
}

func runThemeMode(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	mode, err := theme.ParseMode(args[0])
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	store, err := openThemeStore()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	if err := store.SetMode(mode); err != nil {
		printError(err)
		os.Exit(1)
	}
	displayTheme(store.Preference(), jsonOutput)
}

func runThemeBrightness(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	brightness, err := theme.ParseBrightness(args[0])
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	store, err := openThemeStore()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	if err := store.SetBrightness(brightness); err != nil {
		printError(err)
		os.Exit(1)
	}
	displayTheme(store.Preference(), jsonOutput)
}

func runThemeToggle(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := openThemeStore()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	if _, err := store.Toggle(); err != nil {
		printError(err)
		os.Exit(1)
	}
	displayTheme(store.Preference(), jsonOutput)
}

func displayTheme(p theme.Preference, jsonOutput bool) {
	if jsonOutput {
		printJSON(p)
		return
	}
	fmt.Printf("\n  Mode:       %s\n", p.Mode)
	fmt.Printf("  Brightness: %s (factor %.2f)\n\n", p.Brightness, p.Brightness.Factor())
}
