package swap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/cgrie0321-cell/hbc-trading/pkg/token"
	"github.com/cgrie0321-cell/hbc-trading/pkg/wallet"
	"github.com/cgrie0321-cell/hbc-trading/pkg/xdex"
)

const (
	quoteTimeout   = 15 * time.Second
	balanceTimeout = 10 * time.Second
)

// QuoteService fetches exact-in quotes. *xdex.Client satisfies it.
type QuoteService interface {
	GetQuote(ctx context.Context, tokenIn, tokenOut string, amountIn decimal.Decimal, wallet string) (*xdex.PrepareResponse, error)
}

// Executor executes a prepared swap transaction. *executor.Executor
// satisfies it.
type Executor interface {
	ExecuteSwap(ctx context.Context, blob string, signer wallet.Signer) (string, error)
}

// BalanceFetcher reads wallet balances. *wallet.BalanceService satisfies it.
type BalanceFetcher interface {
	Balance(ctx context.Context, owner solana.PublicKey, t token.Token) (decimal.Decimal, error)
}

// Options tunes the controller's timers and shortcuts. Zero values take the
// defaults below.
type Options struct {
	// Debounce is the quiescence window between an input change and the
	// quote request it triggers.
	Debounce time.Duration
	// PollInterval is the balance refresh cadence while a wallet is
	// connected.
	PollInterval time.Duration
	// SettleDelay is how long after a confirmed swap to wait before
	// refetching balances, since the RPC node's balance view can lag its
	// own confirmation.
	SettleDelay time.Duration
	// FeeReserve is withheld from max-amount shortcuts on the native
	// asset so the wallet can still pay fees.
	FeeReserve decimal.Decimal
	// SlippageBps is the initial slippage tolerance.
	SlippageBps uint16

	Logger *logrus.Logger

	// OnChange, when set, receives a snapshot after every state change.
	// It runs on controller goroutines with internal state locked and
	// must not call back into the controller.
	OnChange func(Snapshot)
}

const (
	DefaultDebounce     = 500 * time.Millisecond
	DefaultPollInterval = 10 * time.Second
	DefaultSettleDelay  = 2 * time.Second
	DefaultSlippageBps  = 50
)

// DefaultFeeReserve is the native-asset amount held back from max-amount
// shortcuts, enough to cover a transaction fee.
var DefaultFeeReserve = decimal.RequireFromString("0.01")

// Controller orchestrates the swap workflow: token selection, debounced
// quoting, balance polling, and submission. All mutation goes through its
// methods; the view reads snapshots.
type Controller struct {
	quotes   QuoteService
	exec     Executor
	balances BalanceFetcher

	debounceDelay time.Duration
	pollInterval  time.Duration
	settleDelay   time.Duration
	feeReserve    decimal.Decimal
	log           *logrus.Logger
	onChange      func(Snapshot)

	mu     sync.Mutex
	closed bool

	signer wallet.Signer

	tokenIn    token.Token
	tokenOut   token.Token
	amountIn   string
	amountOut  string
	slippageBp uint16
	balanceIn  *decimal.Decimal
	balanceOut *decimal.Decimal
	quote      *xdex.PrepareResponse
	status     Status
	signature  string
	errMsg     string

	// submitting is true from the moment Submit passes its preconditions
	// until the executor returns. It gates further submissions on its own
	// rather than through status, which quote activity also writes to.
	submitting bool

	// quoteSeq orders quote requests; a resolution only applies when its
	// sequence number still matches (last-request-wins).
	quoteSeq uint64

	debounce *time.Timer
	settle   *time.Timer
	pollStop chan struct{}
}

// New creates a controller over the given services with an initial token
// pair. The pair must be two distinct tokens.
func New(quotes QuoteService, exec Executor, balances BalanceFetcher, tokenIn, tokenOut token.Token, opts Options) (*Controller, error) {
	if tokenIn.Equals(tokenOut) {
		return nil, fmt.Errorf("input and output tokens must differ")
	}

	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = DefaultSettleDelay
	}
	if opts.FeeReserve.IsZero() {
		opts.FeeReserve = DefaultFeeReserve
	}
	if opts.SlippageBps == 0 {
		opts.SlippageBps = DefaultSlippageBps
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	return &Controller{
		quotes:        quotes,
		exec:          exec,
		balances:      balances,
		debounceDelay: opts.Debounce,
		pollInterval:  opts.PollInterval,
		settleDelay:   opts.SettleDelay,
		feeReserve:    opts.FeeReserve,
		log:           opts.Logger,
		onChange:      opts.OnChange,
		tokenIn:       tokenIn,
		tokenOut:      tokenOut,
		slippageBp:    opts.SlippageBps,
		status:        StatusIdle,
	}, nil
}

// Connect attaches a wallet signer, starts balance polling, and schedules a
// requote for the new wallet.
func (c *Controller) Connect(signer wallet.Signer) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.signer = signer
	c.startPollingLocked()
	c.markEditedLocked()
	c.invalidateQuoteLocked()
	c.scheduleQuoteLocked()
	c.notifyLocked()
	c.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), balanceTimeout)
		defer cancel()
		c.refreshBalances(ctx)
	}()
}

// Disconnect detaches the wallet, stops polling, and drops balances to
// unknown.
func (c *Controller) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.signer = nil
	c.stopPollingLocked()
	c.balanceIn = nil
	c.balanceOut = nil
	c.invalidateQuoteLocked()
	c.scheduleQuoteLocked()
	c.notifyLocked()
}

// Close tears the workflow down. Timers and the polling goroutine stop;
// in-flight network calls finish on their own and their results are
// discarded.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.debounce != nil {
		c.debounce.Stop()
		c.debounce = nil
	}
	if c.settle != nil {
		c.settle.Stop()
		c.settle = nil
	}
	c.stopPollingLocked()
}

// SetAmountIn records raw user input and schedules a debounced requote.
func (c *Controller) SetAmountIn(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.amountIn = s
	c.markEditedLocked()
	c.invalidateQuoteLocked()
	c.scheduleQuoteLocked()
	c.notifyLocked()
}

// SetSlippageBps sets the slippage tolerance in basis points.
func (c *Controller) SetSlippageBps(bps uint16) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slippageBp = bps
	c.notifyLocked()
}

// SelectTokenIn changes the input token. Selecting the token already on the
// input leg is a no-op; selecting the current output token flips the legs.
func (c *Controller) SelectTokenIn(t token.Token) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || t.Equals(c.tokenIn) {
		return
	}
	if t.Equals(c.tokenOut) {
		c.flipLocked()
		return
	}
	c.tokenIn = t
	c.balanceIn = nil
	c.markEditedLocked()
	c.invalidateQuoteLocked()
	c.scheduleQuoteLocked()
	c.refreshBalancesAsyncLocked()
	c.notifyLocked()
}

// SelectTokenOut changes the output token, with the same no-op and flip
// semantics as SelectTokenIn.
func (c *Controller) SelectTokenOut(t token.Token) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || t.Equals(c.tokenOut) {
		return
	}
	if t.Equals(c.tokenIn) {
		c.flipLocked()
		return
	}
	c.tokenOut = t
	c.balanceOut = nil
	c.markEditedLocked()
	c.invalidateQuoteLocked()
	c.scheduleQuoteLocked()
	c.refreshBalancesAsyncLocked()
	c.notifyLocked()
}

// FlipTokens swaps the two legs: a position flip, not a rejection.
func (c *Controller) FlipTokens() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.flipLocked()
}

// flipLocked crosses tokens, amounts, and balances atomically, drops the
// quote (it priced the old direction), and schedules a requote.
func (c *Controller) flipLocked() {
	c.tokenIn, c.tokenOut = c.tokenOut, c.tokenIn
	c.amountIn, c.amountOut = c.amountOut, c.amountIn
	c.balanceIn, c.balanceOut = c.balanceOut, c.balanceIn
	c.quote = nil
	c.quoteSeq++
	c.markEditedLocked()
	c.scheduleQuoteLocked()
	c.notifyLocked()
}

// UseMax sets amountIn to the full usable input balance.
func (c *Controller) UseMax() {
	c.UsePercent(100)
}

// UsePercent sets amountIn to a percentage of the usable input balance,
// clamped to [0, 100]. For the native asset the fee reserve is subtracted
// first, floored at zero. A no-op while the balance is unknown.
func (c *Controller) UsePercent(percent int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.balanceIn == nil {
		return
	}
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}

	usable := *c.balanceIn
	if c.tokenIn.IsNative() {
		usable = usable.Sub(c.feeReserve)
		if usable.IsNegative() {
			usable = decimal.Zero
		}
	}
	amount := usable.Mul(decimal.NewFromInt(percent)).Div(decimal.NewFromInt(100))

	c.amountIn = token.FormatAmount(amount, c.tokenIn.Decimals)
	c.markEditedLocked()
	c.invalidateQuoteLocked()
	c.scheduleQuoteLocked()
	c.notifyLocked()
}

// Snapshot returns a copy of the current workflow state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// RefreshQuote fetches a quote immediately, bypassing the debounce window.
// Any pending debounced request is cancelled. Used by one-shot callers like
// the CLI; the error mirrors what the workflow records in its state.
func (c *Controller) RefreshQuote(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	if c.debounce != nil {
		c.debounce.Stop()
		c.debounce = nil
	}
	amount, ok := c.canQuoteLocked()
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("a positive amount and a connected wallet are required to quote")
	}
	c.quoteSeq++
	seq := c.quoteSeq
	tokenIn, tokenOut := c.tokenIn, c.tokenOut
	owner := c.signer.PublicKey().String()
	c.status = StatusQuoting
	c.amountOut = ""
	c.notifyLocked()
	c.mu.Unlock()

	resp, err := c.quotes.GetQuote(ctx, tokenIn.Mint.String(), tokenOut.Mint.String(), amount, owner)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyQuoteLocked(seq, resp, err)
	if err != nil {
		return err
	}
	if msg := resp.ErrorMessage(); msg != "" {
		return errors.New(msg)
	}
	return nil
}

// Submit executes the current quote. Preconditions are checked in order and
// the first failure is returned as a typed error before any network call.
// On success the entered amounts and quote are cleared and a balance refresh
// is scheduled after the settle delay; on failure the entered amount is kept
// so the user can retry without re-typing it.
func (c *Controller) Submit(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return "", ErrClosed
	}
	if err := c.submitBlockerLocked(); err != nil {
		c.mu.Unlock()
		return "", err
	}
	blob := c.quote.Transaction
	signer := c.signer
	c.submitting = true
	c.status = StatusSubmitting
	c.signature = ""
	c.errMsg = ""
	c.notifyLocked()
	c.mu.Unlock()

	sig, err := c.exec.ExecuteSwap(ctx, blob, signer)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	if c.closed {
		return sig, err
	}
	if err != nil {
		c.status = StatusFailed
		c.errMsg = err.Error()
		// A requote dropped while the submission was in flight runs now.
		c.scheduleQuoteLocked()
		c.notifyLocked()
		return "", err
	}

	c.status = StatusSucceeded
	c.signature = sig
	c.amountIn = ""
	c.amountOut = ""
	c.quote = nil
	c.quoteSeq++
	c.scheduleSettleLocked()
	c.notifyLocked()
	return sig, nil
}

// RefreshBalances refetches both balances synchronously. The polling timer
// does this on its own; this is for callers that need fresh values now.
func (c *Controller) RefreshBalances(ctx context.Context) {
	c.refreshBalances(ctx)
}

// markEditedLocked returns a terminal status to idle on the next user edit.
func (c *Controller) markEditedLocked() {
	if c.status == StatusSucceeded || c.status == StatusFailed {
		c.status = StatusIdle
		c.signature = ""
		c.errMsg = ""
	}
}

// invalidateQuoteLocked discards the current quote and orphans any in-flight
// request: whatever that request resolves to, its sequence number no longer
// matches.
func (c *Controller) invalidateQuoteLocked() {
	c.quoteSeq++
	c.quote = nil
	c.amountOut = ""
	if c.status != StatusSubmitting {
		c.status = StatusIdle
	}
}

// scheduleQuoteLocked restarts the debounce window. Only the trailing edge
// fires.
func (c *Controller) scheduleQuoteLocked() {
	if c.debounce != nil {
		c.debounce.Stop()
		c.debounce = nil
	}
	if _, ok := c.canQuoteLocked(); !ok {
		return
	}
	c.debounce = time.AfterFunc(c.debounceDelay, c.fireQuote)
}

// canQuoteLocked reports whether the current input warrants a quote request.
func (c *Controller) canQuoteLocked() (decimal.Decimal, bool) {
	if c.signer == nil {
		return decimal.Zero, false
	}
	amount, err := token.ParseAmount(strings.TrimSpace(c.amountIn))
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// fireQuote runs on the debounce timer: issue the request for whatever the
// input settled on.
func (c *Controller) fireQuote() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	// While a submission is in flight the status stays submitting; the
	// requote runs once Submit settles.
	if c.submitting {
		c.mu.Unlock()
		return
	}
	amount, ok := c.canQuoteLocked()
	if !ok {
		if c.status == StatusQuoting {
			c.status = StatusIdle
		}
		c.notifyLocked()
		c.mu.Unlock()
		return
	}
	c.quoteSeq++
	seq := c.quoteSeq
	tokenIn, tokenOut := c.tokenIn, c.tokenOut
	owner := c.signer.PublicKey().String()
	c.status = StatusQuoting
	c.amountOut = ""
	c.notifyLocked()
	c.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), quoteTimeout)
		defer cancel()
		resp, err := c.quotes.GetQuote(ctx, tokenIn.Mint.String(), tokenOut.Mint.String(), amount, owner)

		c.mu.Lock()
		defer c.mu.Unlock()
		c.applyQuoteLocked(seq, resp, err)
	}()
}

// applyQuoteLocked applies a quote resolution, unless it is stale.
func (c *Controller) applyQuoteLocked(seq uint64, resp *xdex.PrepareResponse, err error) {
	if c.closed || c.submitting || seq != c.quoteSeq {
		c.log.WithField("seq", seq).Debug("discarding stale quote result")
		return
	}

	if err != nil {
		c.quote = nil
		c.amountOut = ""
		c.errMsg = err.Error()
		c.status = StatusFailed
		c.notifyLocked()
		return
	}
	if msg := resp.ErrorMessage(); msg != "" {
		c.quote = nil
		c.amountOut = ""
		c.errMsg = msg
		c.status = StatusFailed
		c.notifyLocked()
		return
	}

	c.quote = resp
	c.errMsg = ""
	if resp.EstimatedOutput != nil {
		c.amountOut = token.FormatAmount(*resp.EstimatedOutput, c.tokenOut.Decimals)
	} else {
		c.amountOut = ""
	}
	if resp.Transaction != "" {
		c.status = StatusReady
	} else {
		c.status = StatusIdle
	}
	c.notifyLocked()
}

// submitBlockerLocked evaluates the submit preconditions in order and
// returns the first one that blocks, or nil when the swap is ready.
func (c *Controller) submitBlockerLocked() error {
	if c.signer == nil {
		return ErrNotConnected
	}
	if c.submitting {
		return ErrSubmitInFlight
	}
	if c.status == StatusQuoting {
		return ErrQuoteInFlight
	}
	if err := c.insufficientLocked(); err != nil {
		return err
	}
	if strings.TrimSpace(c.amountIn) == "" {
		return ErrNoAmount
	}
	if c.quote == nil || c.quote.Transaction == "" {
		return ErrNoQuote
	}
	return nil
}

// insufficientLocked compares the entered amount against the known input
// balance at the token's own precision. The balance is truncated, never
// rounded up, so display rounding cannot authorize a swap the wallet cannot
// cover.
func (c *Controller) insufficientLocked() error {
	if c.balanceIn == nil {
		return nil
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(c.amountIn))
	if err != nil {
		return nil
	}
	limit := c.balanceIn.Truncate(int32(c.tokenIn.Decimals))
	if amount.GreaterThan(limit) {
		return &InsufficientBalanceError{
			Symbol:  c.tokenIn.Symbol,
			Amount:  amount,
			Balance: limit,
		}
	}
	return nil
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		TokenIn:     c.tokenIn,
		TokenOut:    c.tokenOut,
		AmountIn:    c.amountIn,
		AmountOut:   c.amountOut,
		SlippageBps: c.slippageBp,
		Status:      c.status,
		Signature:   c.signature,
		Err:         c.errMsg,
		Connected:   c.signer != nil,
	}
	if c.balanceIn != nil {
		b := *c.balanceIn
		snap.BalanceIn = &b
	}
	if c.balanceOut != nil {
		b := *c.balanceOut
		snap.BalanceOut = &b
	}
	if c.quote != nil {
		q := *c.quote
		snap.Quote = &q
	}
	err := c.submitBlockerLocked()
	snap.SubmitLabel = SubmitLabel(err)
	snap.CanSubmit = err == nil
	return snap
}

func (c *Controller) notifyLocked() {
	if c.onChange != nil {
		c.onChange(c.snapshotLocked())
	}
}

// scheduleSettleLocked queues the post-swap balance refresh.
func (c *Controller) scheduleSettleLocked() {
	if c.settle != nil {
		c.settle.Stop()
	}
	c.settle = time.AfterFunc(c.settleDelay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), balanceTimeout)
		defer cancel()
		c.refreshBalances(ctx)
	})
}

func (c *Controller) startPollingLocked() {
	if c.pollStop != nil {
		return
	}
	stop := make(chan struct{})
	c.pollStop = stop

	go func() {
		ticker := time.NewTicker(c.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), balanceTimeout)
				c.refreshBalances(ctx)
				cancel()
			}
		}
	}()
}

func (c *Controller) stopPollingLocked() {
	if c.pollStop != nil {
		close(c.pollStop)
		c.pollStop = nil
	}
}

func (c *Controller) refreshBalancesAsyncLocked() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), balanceTimeout)
		defer cancel()
		c.refreshBalances(ctx)
	}()
}

// refreshBalances fetches both legs' balances. Fetch errors are non-critical
// and swallowed: the last known values stand until a fetch succeeds.
func (c *Controller) refreshBalances(ctx context.Context) {
	c.mu.Lock()
	signer := c.signer
	tokenIn, tokenOut := c.tokenIn, c.tokenOut
	c.mu.Unlock()

	if signer == nil {
		return
	}
	owner := signer.PublicKey()

	var in, out *decimal.Decimal
	if v, err := c.balances.Balance(ctx, owner, tokenIn); err != nil {
		c.log.WithError(err).WithField("token", tokenIn.Symbol).Debug("balance fetch failed")
	} else {
		in = &v
	}
	if v, err := c.balances.Balance(ctx, owner, tokenOut); err != nil {
		c.log.WithError(err).WithField("token", tokenOut.Symbol).Debug("balance fetch failed")
	} else {
		out = &v
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.signer != signer {
		return
	}
	changed := false
	if in != nil && c.tokenIn.Equals(tokenIn) {
		c.balanceIn = in
		changed = true
	}
	if out != nil && c.tokenOut.Equals(tokenOut) {
		c.balanceOut = out
		changed = true
	}
	if changed {
		c.notifyLocked()
	}
}
