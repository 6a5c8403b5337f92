package wallet

import (
	"errors"

	"github.com/gagliardetto/solana-go"
)

// ErrRejected means the wallet's owner declined to sign. Signers that cannot
// ask (plain keypairs) never return it; interactive signers wrap it so
// callers can tell a refusal apart from a signing failure.
var ErrRejected = errors.New("signing rejected by user")

// Signer is the wallet capability the workflow depends on. The workflow never
// touches private keys directly.
type Signer interface {
	PublicKey() solana.PublicKey
	SignTransaction(tx *solana.Transaction) error
}
