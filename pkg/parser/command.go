package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// SwapCommand is a parsed swap request: amount plus the two registry symbols.
type SwapCommand struct {
	Amount   string
	TokenIn  string
	TokenOut string
}

// Pattern: <amount> <token_in> TO <token_out>
// Matches: "10 XNT TO HBC", "1.5 HBC TO USDC.X", "0.25 USDC.X TO XNT"
var commandRe = regexp.MustCompile(`^(\d+\.?\d*)\s+([A-Z0-9.]+)\s+TO\s+([A-Z0-9.]+)$`)

// ParseSwapCommand parses a natural language swap command
// Examples:
//   - "swap 10 XNT to HBC"
//   - "1.5 HBC to USDC.x"
func ParseSwapCommand(command string) (*SwapCommand, error) {
	// Normalize the command
	command = strings.TrimSpace(strings.ToUpper(command))
	command = strings.TrimPrefix(command, "SWAP ")

	matches := commandRe.FindStringSubmatch(command)
	if matches == nil {
		return nil, fmt.Errorf("invalid swap command format. Expected: '<amount> <token> to <token>' (e.g., '10 XNT to HBC')")
	}

	cmd := &SwapCommand{
		Amount:   matches[1],
		TokenIn:  matches[2],
		TokenOut: matches[3],
	}

	if strings.EqualFold(cmd.TokenIn, cmd.TokenOut) {
		return nil, fmt.Errorf("input and output tokens must differ")
	}
	return cmd, nil
}
