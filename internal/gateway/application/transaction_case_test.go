package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rutuauti/banking-transaction-manager-project/internal/gateway/domain"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/pkg/logging"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/ratelimit"
)

type invocation struct {
	op   string
	args []string
}

type fakeEngine struct {
	invocations []invocation

	output string
	err    error
}

func (e *fakeEngine) Invoke(_ context.Context, op string, args ...string) (string, error) {
	e.invocations = append(e.invocations, invocation{op: op, args: args})
	if e.err != nil {
		return "", e.err
	}

	return e.output, nil
}

type fakeLimiter struct {
	admitted map[string]int
	reject   bool
}

func newFakeLimiter() *fakeLimiter {
	return &fakeLimiter{admitted: make(map[string]int)}
}

func (l *fakeLimiter) Admit(username string, _ time.Time, _ int, _ bool) bool {
	if l.reject {
		return false
	}

	l.admitted[username]++
	return true
}

type fakeAges struct {
	ages map[string]int
}

func (a *fakeAges) ResolveAge(_ context.Context, username string) (int, bool) {
	age, ok := a.ages[username]
	return age, ok
}

func newTestCase(engine *fakeEngine, limiter *fakeLimiter, stats ratelimit.StatsStore) *TransactionCase {
	return NewTransactionCase(engine, limiter, &fakeAges{ages: map[string]int{"alice": 30}}, stats, logging.StdoutLogger)
}

func TestTransactionCase_DepositDispatchesArgv(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{output: "Deposited 50"}
	limiter := newFakeLimiter()
	txCase := newTestCase(engine, limiter, nil)

	output, err := txCase.Deposit(t.Context(), "alice", "50")
	require.NoError(t, err)
	assert.Equal(t, "Deposited 50", output)

	require.Len(t, engine.invocations, 1)
	assert.Equal(t, "deposit", engine.invocations[0].op)
	assert.Equal(t, []string{"alice", "50"}, engine.invocations[0].args)
}

func TestTransactionCase_TransferChargesInitiatorOnly(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{output: "ok"}
	limiter := newFakeLimiter()
	txCase := newTestCase(engine, limiter, nil)

	_, err := txCase.Transfer(t.Context(), "alice", "bob", "25")
	require.NoError(t, err)

	assert.Equal(t, 1, limiter.admitted["alice"])
	assert.Zero(t, limiter.admitted["bob"])

	require.Len(t, engine.invocations, 1)
	assert.Equal(t, "transfer", engine.invocations[0].op)
	assert.Equal(t, []string{"alice", "bob", "25"}, engine.invocations[0].args)
}

func TestTransactionCase_RejectionSkipsDispatch(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{output: "ok"}
	limiter := newFakeLimiter()
	limiter.reject = true
	txCase := newTestCase(engine, limiter, nil)

	_, err := txCase.Withdraw(t.Context(), "alice", "10")
	assert.True(t, errors.Is(err, &domain.QuotaExceededError{}))
	assert.Empty(t, engine.invocations, "no process may be spawned for a rejected attempt")
}

func TestTransactionCase_UndoRedoMiniStatementBypassLimiter(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{output: "ok"}
	limiter := newFakeLimiter()
	limiter.reject = true
	txCase := newTestCase(engine, limiter, nil)

	_, err := txCase.Undo(t.Context())
	require.NoError(t, err)
	_, err = txCase.Redo(t.Context())
	require.NoError(t, err)
	_, err = txCase.MiniStatement(t.Context())
	require.NoError(t, err)

	require.Len(t, engine.invocations, 3)
	assert.Equal(t, "undo", engine.invocations[0].op)
	assert.Empty(t, engine.invocations[0].args)
	assert.Equal(t, "redo", engine.invocations[1].op)
	assert.Equal(t, "mini-statement", engine.invocations[2].op)
}

func TestTransactionCase_EngineErrorsPassThrough(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{err: &domain.EngineUnavailableError{Msg: "missing"}}
	limiter := newFakeLimiter()
	txCase := newTestCase(engine, limiter, nil)

	_, err := txCase.Deposit(t.Context(), "alice", "50")
	assert.True(t, errors.Is(err, &domain.EngineUnavailableError{}))
}

func TestTransactionCase_RecordsStats(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{output: "ok"}
	limiter := newFakeLimiter()
	stats := ratelimit.NewMemoryStatsStore()
	txCase := newTestCase(engine, limiter, stats)

	_, err := txCase.Deposit(t.Context(), "alice", "50")
	require.NoError(t, err)

	limiter.reject = true
	_, err = txCase.Deposit(t.Context(), "alice", "50")
	require.Error(t, err)

	assert.Equal(t, ratelimit.Counters{Admitted: 1, Rejected: 1}, stats.Total())
	assert.Equal(t, ratelimit.Counters{Admitted: 1, Rejected: 1}, stats.ByUser()["alice"])
}

func TestTransactionCase_UnknownUserStillAdmitted(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{output: "ok"}
	limiter := newFakeLimiter()
	txCase := newTestCase(engine, limiter, nil)

	// "ghost" is absent from the directory; admission applies the default
	// tier instead of failing.
	_, err := txCase.Deposit(t.Context(), "ghost", "50")
	require.NoError(t, err)
	assert.Equal(t, 1, limiter.admitted["ghost"])
}
