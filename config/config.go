package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Defaults for the X1 network and the xdex aggregator.
const (
	DefaultRPCEndpoint = "https://rpc.mainnet.x1.xyz"
	DefaultAPIBase     = "https://api.xdex.xyz/api/xendex"
	DefaultNetwork     = "X1 Mainnet"
	DefaultExplorerURL = "https://explorer.fortiblox.com"

	DefaultThemeFileName = ".hbc-trading-theme.json"
)

// Config holds the application configuration
type Config struct {
	RPCEndpoint string
	APIBase     string
	Network     string
	ExplorerURL string

	// PrivateKey is a base58-encoded key; KeypairPath points to a Solana
	// keygen JSON file. PrivateKey wins when both are set.
	PrivateKey  string
	KeypairPath string

	Commitment    string
	SkipPreflight bool

	ThemePath string

	QuoteDebounce      time.Duration
	BalancePollEvery   time.Duration
	BalanceSettleDelay time.Duration
}

var globalConfig *Config

// Load reads configuration from environment variables and config file
func Load() (*Config, error) {
	viper.SetConfigName(".hbc-trading")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath(".")

	viper.SetDefault("rpc_endpoint", DefaultRPCEndpoint)
	viper.SetDefault("api_base", DefaultAPIBase)
	viper.SetDefault("network", DefaultNetwork)
	viper.SetDefault("explorer_url", DefaultExplorerURL)
	viper.SetDefault("commitment", "confirmed")
	viper.SetDefault("skip_preflight", false)
	viper.SetDefault("quote_debounce_ms", 500)
	viper.SetDefault("balance_poll_seconds", 10)
	viper.SetDefault("balance_settle_ms", 2000)

	viper.SetEnvPrefix("HBC_TRADING")
	viper.AutomaticEnv()

	// Read config file (optional)
	_ = viper.ReadInConfig()

	cfg := &Config{
		RPCEndpoint:        viper.GetString("rpc_endpoint"),
		APIBase:            viper.GetString("api_base"),
		Network:            viper.GetString("network"),
		ExplorerURL:        viper.GetString("explorer_url"),
		PrivateKey:         viper.GetString("private_key"),
		KeypairPath:        viper.GetString("keypair_path"),
		Commitment:         viper.GetString("commitment"),
		SkipPreflight:      viper.GetBool("skip_preflight"),
		ThemePath:          viper.GetString("theme_path"),
		QuoteDebounce:      time.Duration(viper.GetInt("quote_debounce_ms")) * time.Millisecond,
		BalancePollEvery:   time.Duration(viper.GetInt("balance_poll_seconds")) * time.Second,
		BalanceSettleDelay: time.Duration(viper.GetInt("balance_settle_ms")) * time.Millisecond,
	}

	if cfg.ThemePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.ThemePath = filepath.Join(home, DefaultThemeFileName)
	}

	globalConfig = cfg
	return cfg, nil
}

// RequireSigningKey validates that a signing key is configured. Commands that
// only read chain state (quote, balance, status) do not call this.
func (c *Config) RequireSigningKey() error {
	if c.PrivateKey == "" && c.KeypairPath == "" {
		return fmt.Errorf("no signing key configured. Set HBC_TRADING_PRIVATE_KEY or HBC_TRADING_KEYPAIR_PATH, or add private_key/keypair_path to ~/.hbc-trading.yaml")
	}
	return nil
}

// Get returns the global configuration
func Get() *Config {
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(1)
		}
		return cfg
	}
	return globalConfig
}

// Set updates the global configuration
func Set(cfg *Config) {
	globalConfig = cfg
}
