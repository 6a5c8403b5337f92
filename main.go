package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/cgrie0321-cell/hbc-trading/cmd"
)

func main() {
	// .env is optional; plain environment variables and ~/.hbc-trading.yaml work too.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
