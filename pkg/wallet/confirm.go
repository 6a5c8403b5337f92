package wallet

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// ConfirmingSigner wraps a Signer with a terminal y/N prompt, so signing can
// be declined the way a browser wallet pop-up can. Declining returns
// ErrRejected and the inner signer is never invoked.
type ConfirmingSigner struct {
	Inner  Signer
	In     io.Reader
	Out    io.Writer
	Prompt string
}

// NewConfirmingSigner wraps inner with a prompt on the given streams.
func NewConfirmingSigner(inner Signer, in io.Reader, out io.Writer) *ConfirmingSigner {
	return &ConfirmingSigner{
		Inner:  inner,
		In:     in,
		Out:    out,
		Prompt: "Sign and submit this transaction? (y/N): ",
	}
}

func (c *ConfirmingSigner) PublicKey() solana.PublicKey {
	return c.Inner.PublicKey()
}

func (c *ConfirmingSigner) SignTransaction(tx *solana.Transaction) error {
	fmt.Fprint(c.Out, "\n"+c.Prompt)

	reader := bufio.NewReader(c.In)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return fmt.Errorf("failed to read confirmation: %w", ErrRejected)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		return ErrRejected
	}

	return c.Inner.SignTransaction(tx)
}
