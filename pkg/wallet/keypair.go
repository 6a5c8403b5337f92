package wallet

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Keypair is a Signer backed by a local private key.
type Keypair struct {
	priv solana.PrivateKey
	pub  solana.PublicKey
}

// NewKeypairFromBase58 parses a base58-encoded private key.
func NewKeypairFromBase58(key string) (*Keypair, error) {
	priv, err := solana.PrivateKeyFromBase58(key)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return &Keypair{priv: priv, pub: priv.PublicKey()}, nil
}

// NewKeypairFromFile loads a Solana keygen JSON file.
func NewKeypairFromFile(path string) (*Keypair, error) {
	priv, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load keypair file: %w", err)
	}
	return &Keypair{priv: priv, pub: priv.PublicKey()}, nil
}

// NewRandomKeypair generates a throwaway keypair. Used in tests.
func NewRandomKeypair() (*Keypair, error) {
	priv, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, err
	}
	return &Keypair{priv: priv, pub: priv.PublicKey()}, nil
}

func (k *Keypair) PublicKey() solana.PublicKey {
	return k.pub
}

// SignTransaction signs every signer slot that matches the keypair's public
// key and leaves the rest untouched.
func (k *Keypair) SignTransaction(tx *solana.Transaction) error {
	_, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(k.pub) {
			return &k.priv
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}
	return nil
}
