package swap

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgrie0321-cell/hbc-trading/pkg/token"
	"github.com/cgrie0321-cell/hbc-trading/pkg/wallet"
	"github.com/cgrie0321-cell/hbc-trading/pkg/xdex"
)

type quoteCall struct {
	tokenIn  string
	tokenOut string
	amount   decimal.Decimal
	wallet   string
}

type fakeQuotes struct {
	mu    sync.Mutex
	calls []quoteCall
	fn    func(call quoteCall) (*xdex.PrepareResponse, error)
}

func (f *fakeQuotes) GetQuote(ctx context.Context, tokenIn, tokenOut string, amountIn decimal.Decimal, wallet string) (*xdex.PrepareResponse, error) {
	call := quoteCall{tokenIn: tokenIn, tokenOut: tokenOut, amount: amountIn, wallet: wallet}
	f.mu.Lock()
	f.calls = append(f.calls, call)
	fn := f.fn
	f.mu.Unlock()
	if fn != nil {
		return fn(call)
	}
	return readyQuote("1"), nil
}

func (f *fakeQuotes) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeQuotes) lastCall() quoteCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

type fakeExec struct {
	mu    sync.Mutex
	calls int
	fn    func(blob string) (string, error)
}

func (f *fakeExec) ExecuteSwap(ctx context.Context, blob string, signer wallet.Signer) (string, error) {
	f.mu.Lock()
	f.calls++
	fn := f.fn
	f.mu.Unlock()
	if fn != nil {
		return fn(blob)
	}
	return "sig111", nil
}

func (f *fakeExec) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeBalances struct {
	mu      sync.Mutex
	amounts map[string]decimal.Decimal
	calls   int
}

func (f *fakeBalances) Balance(ctx context.Context, owner solana.PublicKey, t token.Token) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.amounts == nil {
		return decimal.Zero, nil
	}
	return f.amounts[t.Symbol], nil
}

func (f *fakeBalances) set(symbol string, amount string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.amounts == nil {
		f.amounts = map[string]decimal.Decimal{}
	}
	f.amounts[symbol] = decimal.RequireFromString(amount)
}

func (f *fakeBalances) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func readyQuote(estimated string) *xdex.PrepareResponse {
	out := decimal.RequireFromString(estimated)
	return &xdex.PrepareResponse{
		Success:         true,
		Transaction:     "dHJhbnNhY3Rpb24=",
		EstimatedOutput: &out,
	}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestController(t *testing.T, quotes *fakeQuotes, exec *fakeExec, balances *fakeBalances, tokenIn, tokenOut token.Token) *Controller {
	t.Helper()
	c, err := New(quotes, exec, balances, tokenIn, tokenOut, Options{
		Debounce:     15 * time.Millisecond,
		PollInterval: time.Hour,
		SettleDelay:  20 * time.Millisecond,
		Logger:       quietLogger(),
	})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func connect(t *testing.T, c *Controller) *wallet.Keypair {
	t.Helper()
	kp, err := wallet.NewRandomKeypair()
	require.NoError(t, err)
	c.Connect(kp)
	return kp
}

func TestNewRejectsSamePair(t *testing.T) {
	_, err := New(&fakeQuotes{}, &fakeExec{}, &fakeBalances{}, token.HBC, token.HBC, Options{})
	require.Error(t, err)
}

func TestDebounceCollapsesRapidEdits(t *testing.T) {
	quotes := &fakeQuotes{}
	c := newTestController(t, quotes, &fakeExec{}, &fakeBalances{}, token.XNT, token.HBC)
	connect(t, c)

	c.SetAmountIn("1")
	c.SetAmountIn("12")
	c.SetAmountIn("123")

	require.Eventually(t, func() bool {
		return c.Snapshot().Status == StatusReady
	}, time.Second, 2*time.Millisecond)

	assert.Equal(t, 1, quotes.callCount())
	assert.True(t, quotes.lastCall().amount.Equal(decimal.RequireFromString("123")))
	assert.Equal(t, token.XNT.Mint.String(), quotes.lastCall().tokenIn)
	assert.Equal(t, token.HBC.Mint.String(), quotes.lastCall().tokenOut)
}

func TestStaleQuoteResultDiscarded(t *testing.T) {
	release := make(chan struct{})
	quotes := &fakeQuotes{}
	quotes.fn = func(call quoteCall) (*xdex.PrepareResponse, error) {
		if call.amount.Equal(decimal.NewFromInt(1)) {
			<-release
			return readyQuote("100"), nil
		}
		return readyQuote("200"), nil
	}
	c := newTestController(t, quotes, &fakeExec{}, &fakeBalances{}, token.XNT, token.HBC)
	connect(t, c)

	c.SetAmountIn("1")
	require.Eventually(t, func() bool { return quotes.callCount() == 1 }, time.Second, 2*time.Millisecond)

	c.SetAmountIn("2")
	require.Eventually(t, func() bool {
		snap := c.Snapshot()
		return snap.Status == StatusReady && snap.AmountOut == "200"
	}, time.Second, 2*time.Millisecond)

	// The first request resolves late; its result must not clobber the
	// newer one.
	close(release)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "200", c.Snapshot().AmountOut)
	assert.Equal(t, StatusReady, c.Snapshot().Status)
}

func TestSelectSameTokenIsNoop(t *testing.T) {
	quotes := &fakeQuotes{}
	c := newTestController(t, quotes, &fakeExec{}, &fakeBalances{}, token.XNT, token.HBC)
	connect(t, c)

	c.SetAmountIn("1")
	require.NoError(t, c.RefreshQuote(context.Background()))
	before := c.Snapshot()

	c.SelectTokenIn(token.XNT)
	c.SelectTokenOut(token.HBC)

	after := c.Snapshot()
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, before.AmountOut, after.AmountOut)
	assert.Equal(t, 1, quotes.callCount())
}

func TestSelectOppositeLegFlips(t *testing.T) {
	c := newTestController(t, &fakeQuotes{}, &fakeExec{}, &fakeBalances{}, token.XNT, token.HBC)

	c.SelectTokenIn(token.HBC)

	snap := c.Snapshot()
	assert.True(t, snap.TokenIn.Equals(token.HBC))
	assert.True(t, snap.TokenOut.Equals(token.XNT))
}

func TestFlipCrossesAmountsAndBalances(t *testing.T) {
	quotes := &fakeQuotes{fn: func(quoteCall) (*xdex.PrepareResponse, error) {
		return readyQuote("42.5"), nil
	}}
	balances := &fakeBalances{}
	balances.set("XNT", "10")
	balances.set("HBC", "3")

	// A debounce long enough to never fire keeps the post-flip state
	// observable.
	c, err := New(quotes, &fakeExec{}, balances, token.XNT, token.HBC, Options{
		Debounce:     time.Hour,
		PollInterval: time.Hour,
		Logger:       quietLogger(),
	})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	connect(t, c)
	c.RefreshBalances(context.Background())

	c.SetAmountIn("5")
	require.NoError(t, c.RefreshQuote(context.Background()))
	require.Equal(t, "42.5", c.Snapshot().AmountOut)

	c.FlipTokens()

	snap := c.Snapshot()
	assert.True(t, snap.TokenIn.Equals(token.HBC))
	assert.True(t, snap.TokenOut.Equals(token.XNT))
	assert.Equal(t, "42.5", snap.AmountIn)
	assert.Equal(t, "5", snap.AmountOut)
	require.NotNil(t, snap.BalanceIn)
	assert.True(t, snap.BalanceIn.Equal(decimal.RequireFromString("3")))
	require.NotNil(t, snap.BalanceOut)
	assert.True(t, snap.BalanceOut.Equal(decimal.RequireFromString("10")))
	assert.Nil(t, snap.Quote)
}

func TestQuoteWithoutEstimateLeavesOutputBlank(t *testing.T) {
	quotes := &fakeQuotes{fn: func(quoteCall) (*xdex.PrepareResponse, error) {
		return &xdex.PrepareResponse{Success: true, Transaction: "dHg="}, nil
	}}
	balances := &fakeBalances{}
	balances.set("XNT", "10")
	balances.set("HBC", "0")

	c := newTestController(t, quotes, &fakeExec{}, balances, token.XNT, token.HBC)
	connect(t, c)

	c.SetAmountIn("1")
	require.NoError(t, c.RefreshQuote(context.Background()))

	snap := c.Snapshot()
	assert.Equal(t, StatusReady, snap.Status)
	assert.Empty(t, snap.AmountOut)
	assert.True(t, snap.CanSubmit)
}

func TestQuoteErrorFailsState(t *testing.T) {
	quotes := &fakeQuotes{fn: func(quoteCall) (*xdex.PrepareResponse, error) {
		return nil, errors.New("aggregator unreachable")
	}}
	c := newTestController(t, quotes, &fakeExec{}, &fakeBalances{}, token.XNT, token.HBC)
	connect(t, c)

	c.SetAmountIn("1")
	err := c.RefreshQuote(context.Background())
	require.Error(t, err)

	snap := c.Snapshot()
	assert.Equal(t, StatusFailed, snap.Status)
	assert.Equal(t, "aggregator unreachable", snap.Err)
	assert.Empty(t, snap.AmountOut)
	assert.False(t, snap.CanSubmit)
}

func TestQuoteServerErrorPayloadFailsState(t *testing.T) {
	quotes := &fakeQuotes{fn: func(quoteCall) (*xdex.PrepareResponse, error) {
		return &xdex.PrepareResponse{Success: false, Message: "pool has no liquidity"}, nil
	}}
	c := newTestController(t, quotes, &fakeExec{}, &fakeBalances{}, token.XNT, token.HBC)
	connect(t, c)

	c.SetAmountIn("1")
	err := c.RefreshQuote(context.Background())
	require.Error(t, err)

	snap := c.Snapshot()
	assert.Equal(t, StatusFailed, snap.Status)
	assert.Equal(t, "pool has no liquidity", snap.Err)
	assert.Equal(t, "Unable to Swap", snap.SubmitLabel)
}

func TestSubmitRequiresConnectedWallet(t *testing.T) {
	exec := &fakeExec{}
	c := newTestController(t, &fakeQuotes{}, exec, &fakeBalances{}, token.XNT, token.HBC)

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, ErrNotConnected)
	assert.Zero(t, exec.callCount())
	assert.Equal(t, "Connect Wallet", c.Snapshot().SubmitLabel)
}

func TestSubmitRequiresAmountAndQuote(t *testing.T) {
	exec := &fakeExec{}
	c := newTestController(t, &fakeQuotes{}, exec, &fakeBalances{}, token.XNT, token.HBC)
	connect(t, c)

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, ErrNoAmount)
	assert.Equal(t, "Enter Amount", c.Snapshot().SubmitLabel)
	assert.Zero(t, exec.callCount())
}

func TestInsufficientBalanceBlocksSubmit(t *testing.T) {
	exec := &fakeExec{}
	balances := &fakeBalances{}
	balances.set("XNT", "1.5")
	balances.set("HBC", "0")

	c := newTestController(t, &fakeQuotes{}, exec, balances, token.XNT, token.HBC)
	connect(t, c)
	c.RefreshBalances(context.Background())

	c.SetAmountIn("2")
	require.NoError(t, c.RefreshQuote(context.Background()))

	_, err := c.Submit(context.Background())
	var insufficient *InsufficientBalanceError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "XNT", insufficient.Symbol)
	assert.Zero(t, exec.callCount())

	snap := c.Snapshot()
	assert.Equal(t, "Insufficient Balance", snap.SubmitLabel)
	assert.False(t, snap.CanSubmit)
}

func TestBalanceComparisonUsesTokenPrecision(t *testing.T) {
	balances := &fakeBalances{}
	// More precision than USDC.x carries; the comparison truncates it.
	balances.set("USDC.x", "2.0000009")
	balances.set("HBC", "0")

	c := newTestController(t, &fakeQuotes{}, &fakeExec{}, balances, token.USDC, token.HBC)
	connect(t, c)
	c.RefreshBalances(context.Background())

	c.SetAmountIn("2.000001")
	require.NoError(t, c.RefreshQuote(context.Background()))

	snap := c.Snapshot()
	assert.Equal(t, "Insufficient Balance", snap.SubmitLabel)
}

func TestSubmitSuccessResetsInput(t *testing.T) {
	exec := &fakeExec{fn: func(blob string) (string, error) {
		return "abc123", nil
	}}
	balances := &fakeBalances{}
	balances.set("XNT", "10")
	balances.set("HBC", "0")

	c := newTestController(t, &fakeQuotes{}, exec, balances, token.XNT, token.HBC)
	connect(t, c)
	c.RefreshBalances(context.Background())

	// Both the connect-time refresh and the explicit one have landed.
	require.Eventually(t, func() bool {
		return balances.callCount() >= 4
	}, time.Second, 2*time.Millisecond)
	callsBefore := balances.callCount()

	c.SetAmountIn("5")
	require.NoError(t, c.RefreshQuote(context.Background()))

	sig, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", sig)

	snap := c.Snapshot()
	assert.Equal(t, StatusSucceeded, snap.Status)
	assert.Equal(t, "abc123", snap.Signature)
	assert.Empty(t, snap.AmountIn)
	assert.Empty(t, snap.AmountOut)
	assert.Nil(t, snap.Quote)

	// Balances refetch after the settle delay.
	require.Eventually(t, func() bool {
		return balances.callCount() > callsBefore
	}, time.Second, 5*time.Millisecond)
}

func TestSubmitFailureKeepsInput(t *testing.T) {
	exec := &fakeExec{fn: func(blob string) (string, error) {
		return "", errors.New("transaction failed: slippage exceeded")
	}}
	balances := &fakeBalances{}
	balances.set("XNT", "10")
	balances.set("HBC", "0")

	c := newTestController(t, &fakeQuotes{}, exec, balances, token.XNT, token.HBC)
	connect(t, c)
	c.RefreshBalances(context.Background())

	c.SetAmountIn("5")
	require.NoError(t, c.RefreshQuote(context.Background()))

	_, err := c.Submit(context.Background())
	require.Error(t, err)

	snap := c.Snapshot()
	assert.Equal(t, StatusFailed, snap.Status)
	assert.Equal(t, "transaction failed: slippage exceeded", snap.Err)
	assert.Equal(t, "5", snap.AmountIn)

	// The next edit clears the failure.
	c.SetAmountIn("6")
	snap = c.Snapshot()
	assert.Equal(t, StatusIdle, snap.Status)
	assert.Empty(t, snap.Err)
}

func TestSubmitWhileQuoting(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	quotes := &fakeQuotes{fn: func(quoteCall) (*xdex.PrepareResponse, error) {
		close(started)
		<-release
		return readyQuote("1"), nil
	}}
	defer close(release)

	c := newTestController(t, quotes, &fakeExec{}, &fakeBalances{}, token.XNT, token.HBC)
	connect(t, c)

	c.SetAmountIn("1")
	<-started

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, ErrQuoteInFlight)
	assert.Equal(t, "Getting Quote...", c.Snapshot().SubmitLabel)
}

func TestSubmitWhileSubmitting(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	exec := &fakeExec{fn: func(blob string) (string, error) {
		close(started)
		<-release
		return "sig1", nil
	}}
	quotes := &fakeQuotes{}
	balances := &fakeBalances{}
	balances.set("XNT", "10")
	balances.set("HBC", "0")

	c := newTestController(t, quotes, exec, balances, token.XNT, token.HBC)
	connect(t, c)
	c.RefreshBalances(context.Background())

	c.SetAmountIn("1")
	require.NoError(t, c.RefreshQuote(context.Background()))

	type submitResult struct {
		sig string
		err error
	}
	done := make(chan submitResult, 1)
	go func() {
		sig, err := c.Submit(context.Background())
		done <- submitResult{sig: sig, err: err}
	}()
	<-started

	// An edit while the executor is running must not requote the state
	// past the submit gate.
	c.SetAmountIn("2")
	time.Sleep(50 * time.Millisecond)
	snap := c.Snapshot()
	assert.Equal(t, StatusSubmitting, snap.Status)
	assert.Equal(t, "Swapping...", snap.SubmitLabel)
	assert.Equal(t, 1, quotes.callCount())

	require.ErrorIs(t, c.RefreshQuote(context.Background()), ErrSubmitInFlight)

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, ErrSubmitInFlight)
	assert.Equal(t, 1, exec.callCount())

	close(release)
	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, "sig1", res.sig)
}

func TestFailedSubmitRunsDeferredRequote(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	exec := &fakeExec{fn: func(blob string) (string, error) {
		close(started)
		<-release
		return "", errors.New("node rejected")
	}}
	quotes := &fakeQuotes{}
	balances := &fakeBalances{}
	balances.set("XNT", "10")
	balances.set("HBC", "0")

	c := newTestController(t, quotes, exec, balances, token.XNT, token.HBC)
	connect(t, c)
	c.RefreshBalances(context.Background())

	c.SetAmountIn("1")
	require.NoError(t, c.RefreshQuote(context.Background()))

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()
	<-started

	c.SetAmountIn("2")
	close(release)
	require.Error(t, <-done)

	// The requote dropped during the submission runs once it settles.
	require.Eventually(t, func() bool {
		return quotes.callCount() >= 2 && c.Snapshot().Status == StatusReady
	}, time.Second, 2*time.Millisecond)
	assert.True(t, quotes.lastCall().amount.Equal(decimal.NewFromInt(2)))
}

func TestUseMaxHoldsBackNativeFeeReserve(t *testing.T) {
	balances := &fakeBalances{}
	balances.set("XNT", "5")
	balances.set("HBC", "0")

	c := newTestController(t, &fakeQuotes{}, &fakeExec{}, balances, token.XNT, token.HBC)
	connect(t, c)
	c.RefreshBalances(context.Background())

	c.UseMax()
	assert.Equal(t, "4.99", c.Snapshot().AmountIn)
}

func TestUseMaxFloorsAtZero(t *testing.T) {
	balances := &fakeBalances{}
	balances.set("XNT", "0.005")
	balances.set("HBC", "0")

	c := newTestController(t, &fakeQuotes{}, &fakeExec{}, balances, token.XNT, token.HBC)
	connect(t, c)
	c.RefreshBalances(context.Background())

	c.UseMax()
	assert.Equal(t, "0", c.Snapshot().AmountIn)
}

func TestUsePercentNonNativeUsesFullBalance(t *testing.T) {
	balances := &fakeBalances{}
	balances.set("HBC", "8")
	balances.set("XNT", "0")

	c := newTestController(t, &fakeQuotes{}, &fakeExec{}, balances, token.HBC, token.XNT)
	connect(t, c)
	c.RefreshBalances(context.Background())

	c.UsePercent(50)
	assert.Equal(t, "4", c.Snapshot().AmountIn)

	c.UseMax()
	assert.Equal(t, "8", c.Snapshot().AmountIn)
}

func TestUsePercentClampsRange(t *testing.T) {
	balances := &fakeBalances{}
	balances.set("HBC", "8")
	balances.set("XNT", "0")

	c := newTestController(t, &fakeQuotes{}, &fakeExec{}, balances, token.HBC, token.XNT)
	connect(t, c)
	c.RefreshBalances(context.Background())

	c.UsePercent(150)
	assert.Equal(t, "8", c.Snapshot().AmountIn)

	c.UsePercent(-20)
	assert.Equal(t, "0", c.Snapshot().AmountIn)
}

func TestDisconnectDropsBalances(t *testing.T) {
	balances := &fakeBalances{}
	balances.set("XNT", "5")
	balances.set("HBC", "2")

	c := newTestController(t, &fakeQuotes{}, &fakeExec{}, balances, token.XNT, token.HBC)
	connect(t, c)
	c.RefreshBalances(context.Background())
	require.NotNil(t, c.Snapshot().BalanceIn)

	c.Disconnect()

	snap := c.Snapshot()
	assert.False(t, snap.Connected)
	assert.Nil(t, snap.BalanceIn)
	assert.Nil(t, snap.BalanceOut)
	assert.Equal(t, "Connect Wallet", snap.SubmitLabel)
}

func TestDecimalsCrossPair(t *testing.T) {
	quotes := &fakeQuotes{fn: func(quoteCall) (*xdex.PrepareResponse, error) {
		out := decimal.RequireFromString("123.456789012345")
		impact := decimal.RequireFromString("1.2")
		return &xdex.PrepareResponse{
			Success:         true,
			Transaction:     "dHg=",
			EstimatedOutput: &out,
			PriceImpact:     &impact,
		}, nil
	}}
	balances := &fakeBalances{}
	balances.set("USDC.x", "500")
	balances.set("HBC", "0")

	c := newTestController(t, quotes, &fakeExec{}, balances, token.USDC, token.HBC)
	connect(t, c)
	c.RefreshBalances(context.Background())

	c.SetAmountIn("10")
	require.NoError(t, c.RefreshQuote(context.Background()))

	snap := c.Snapshot()
	// Output renders at HBC's nine decimals, truncated.
	assert.Equal(t, "123.456789012", snap.AmountOut)
	assert.Equal(t, "1.20%", FormatPercent(*snap.Quote.PriceImpact))
	assert.True(t, snap.CanSubmit)
	assert.Equal(t, "Swap", snap.SubmitLabel)
}

func TestOnChangeObservesTransitions(t *testing.T) {
	var mu sync.Mutex
	var seen []Status
	quotes := &fakeQuotes{}
	c, err := New(quotes, &fakeExec{}, &fakeBalances{}, token.XNT, token.HBC, Options{
		Debounce:     15 * time.Millisecond,
		PollInterval: time.Hour,
		Logger:       quietLogger(),
		OnChange: func(snap Snapshot) {
			mu.Lock()
			seen = append(seen, snap.Status)
			mu.Unlock()
		},
	})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	connect(t, c)

	c.SetAmountIn("1")
	require.Eventually(t, func() bool {
		return c.Snapshot().Status == StatusReady
	}, time.Second, 2*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, seen, StatusQuoting)
	assert.Contains(t, seen, StatusReady)
}

func TestClosedControllerRefusesWork(t *testing.T) {
	c := newTestController(t, &fakeQuotes{}, &fakeExec{}, &fakeBalances{}, token.XNT, token.HBC)
	connect(t, c)
	c.Close()

	require.ErrorIs(t, c.RefreshQuote(context.Background()), ErrClosed)
	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, ErrClosed)
}

func TestSubmitLabelOrdering(t *testing.T) {
	assert.Equal(t, "Swap", SubmitLabel(nil))
	assert.Equal(t, "Connect Wallet", SubmitLabel(ErrNotConnected))
	assert.Equal(t, "Swapping...", SubmitLabel(ErrSubmitInFlight))
	assert.Equal(t, "Getting Quote...", SubmitLabel(ErrQuoteInFlight))
	assert.Equal(t, "Insufficient Balance", SubmitLabel(&InsufficientBalanceError{Symbol: "XNT"}))
	assert.Equal(t, "Enter Amount", SubmitLabel(ErrNoAmount))
	assert.Equal(t, "Unable to Swap", SubmitLabel(ErrNoQuote))
	assert.Equal(t, "Unable to Swap", SubmitLabel(errors.New("anything else")))
}
