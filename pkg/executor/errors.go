package executor

import (
	"errors"
	"fmt"
)

// ErrUserRejected means the signer declined the transaction before anything
// reached the chain.
var ErrUserRejected = errors.New("swap cancelled: signing rejected")

// SubmissionError means the RPC node refused the transaction. Nothing landed
// on-chain.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("failed to submit transaction: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// ExecutionError means the transaction was submitted and confirmed but its
// on-chain execution failed. Submission success and execution success are
// distinct outcomes; this error carries the signature of the landed
// transaction alongside the runtime failure detail.
type ExecutionError struct {
	Signature string
	Detail    string
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("transaction failed: %s", e.Detail)
}
