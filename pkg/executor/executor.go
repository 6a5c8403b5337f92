package executor

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/sirupsen/logrus"

	"github.com/cgrie0321-cell/hbc-trading/pkg/wallet"
)

const (
	defaultPollInterval   = time.Second
	defaultConfirmTimeout = 90 * time.Second
)

// ChainClient is the slice of the RPC surface the executor needs.
// *rpc.Client satisfies it.
type ChainClient interface {
	SendTransactionWithOpts(ctx context.Context, tx *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, signatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
}

// Executor turns a prepared transaction blob into a confirmed on-chain swap:
// decode, sign via the wallet capability, submit with preflight, poll at
// confirmed commitment.
type Executor struct {
	chain          ChainClient
	skipPreflight  bool
	pollInterval   time.Duration
	confirmTimeout time.Duration
	log            *logrus.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithSkipPreflight disables the node's preflight simulation.
func WithSkipPreflight(skip bool) Option {
	return func(e *Executor) { e.skipPreflight = skip }
}

// WithPollInterval sets the confirmation polling cadence.
func WithPollInterval(d time.Duration) Option {
	return func(e *Executor) { e.pollInterval = d }
}

// WithConfirmTimeout bounds how long ExecuteSwap waits for confirmation.
func WithConfirmTimeout(d time.Duration) Option {
	return func(e *Executor) { e.confirmTimeout = d }
}

// WithLogger sets the diagnostic logger.
func WithLogger(log *logrus.Logger) Option {
	return func(e *Executor) { e.log = log }
}

// New creates an Executor on top of a chain client.
func New(chain ChainClient, opts ...Option) *Executor {
	e := &Executor{
		chain:          chain,
		pollInterval:   defaultPollInterval,
		confirmTimeout: defaultConfirmTimeout,
		log:            logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DecodeTransaction decodes a base64 transaction blob from the aggregator.
// The decoder tells the versioned and legacy message encodings apart by the
// version prefix bit, so both wire formats decode here without a format hint.
func DecodeTransaction(blob string) (*solana.Transaction, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction encoding: %w", err)
	}

	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode transaction: %w", err)
	}
	return tx, nil
}

// ExecuteSwap decodes the blob, has the signer sign it, submits it, and waits
// for error-free confirmed execution. It returns the transaction signature
// only when the transaction landed and ran without an on-chain error.
//
// The call can take multiple seconds. Cancelling ctx abandons the wait; the
// transaction itself cannot be recalled once submitted.
func (e *Executor) ExecuteSwap(ctx context.Context, blob string, signer wallet.Signer) (string, error) {
	tx, err := DecodeTransaction(blob)
	if err != nil {
		return "", err
	}

	if err := signer.SignTransaction(tx); err != nil {
		if errors.Is(err, wallet.ErrRejected) {
			return "", ErrUserRejected
		}
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	sig, err := e.chain.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       e.skipPreflight,
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return "", &SubmissionError{Err: err}
	}

	e.log.WithField("signature", sig.String()).Debug("transaction submitted, awaiting confirmation")

	if err := e.awaitConfirmation(ctx, sig); err != nil {
		return "", err
	}
	return sig.String(), nil
}

// awaitConfirmation polls signature statuses until the transaction reaches
// confirmed (or finalized) commitment, or reports an on-chain error.
func (e *Executor) awaitConfirmation(ctx context.Context, sig solana.Signature) error {
	ctx, cancel := context.WithTimeout(ctx, e.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(e.pollInterval)
	defer ticker.Stop()

	for {
		out, err := e.chain.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			// Transient poll failures are retried until the deadline.
			e.log.WithError(err).Debug("signature status poll failed")
		} else if len(out.Value) > 0 && out.Value[0] != nil {
			status := out.Value[0]
			if status.Err != nil {
				detail, _ := json.Marshal(status.Err)
				return &ExecutionError{Signature: sig.String(), Detail: string(detail)}
			}
			switch status.ConfirmationStatus {
			case rpc.ConfirmationStatusConfirmed, rpc.ConfirmationStatusFinalized:
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("confirmation timed out for %s: %w", sig, ctx.Err())
		case <-ticker.C:
		}
	}
}

// ConfirmationStatus reports how far a submitted transaction has progressed.
// A transaction the node has no record of reports an empty status.
func (e *Executor) ConfirmationStatus(ctx context.Context, signature string) (rpc.ConfirmationStatusType, error) {
	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return "", fmt.Errorf("invalid transaction signature: %w", err)
	}

	out, err := e.chain.GetSignatureStatuses(ctx, true, sig)
	if err != nil {
		return "", fmt.Errorf("failed to get signature status: %w", err)
	}
	if len(out.Value) == 0 || out.Value[0] == nil {
		return "", nil
	}

	status := out.Value[0]
	if status.Err != nil {
		detail, _ := json.Marshal(status.Err)
		return status.ConfirmationStatus, &ExecutionError{Signature: signature, Detail: string(detail)}
	}
	return status.ConfirmationStatus, nil
}
