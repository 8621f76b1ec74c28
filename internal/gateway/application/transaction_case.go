package application

import (
	"context"
	"time"

	"github.com/Rutuauti/banking-transaction-manager-project/internal/gateway/domain"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/pkg/logging"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/ratelimit"
)

const quotaExceededMessage = "Daily transaction limit reached. Try again tomorrow."

// TransactionCase sequences every transaction request: admission check for
// the mutating operations, then a single engine dispatch. There are no
// retries; every failure short-circuits to the caller with its
// classification.
type TransactionCase struct {
	engine  domain.Engine
	limiter domain.AdmissionLimiter
	ages    domain.AgeResolver
	stats   ratelimit.StatsStore
	logger  logging.Logger

	now func() time.Time
}

// NewTransactionCase wires the facade. stats may be nil; recording is
// best-effort either way.
func NewTransactionCase(
	engine domain.Engine,
	limiter domain.AdmissionLimiter,
	ages domain.AgeResolver,
	stats ratelimit.StatsStore,
	logger logging.Logger,
) *TransactionCase {
	return &TransactionCase{
		engine:  engine,
		limiter: limiter,
		ages:    ages,
		stats:   stats,
		logger:  logger,
		now:     time.Now,
	}
}

func (c *TransactionCase) Deposit(ctx context.Context, username, amount string) (string, error) {
	if err := c.admit(ctx, domain.OpDeposit, username); err != nil {
		return "", err
	}

	return c.engine.Invoke(ctx, domain.OpDeposit, username, amount)
}

func (c *TransactionCase) Withdraw(ctx context.Context, username, amount string) (string, error) {
	if err := c.admit(ctx, domain.OpWithdraw, username); err != nil {
		return "", err
	}

	return c.engine.Invoke(ctx, domain.OpWithdraw, username, amount)
}

// Transfer charges the quota of the initiating user only; the recipient's
// quota is untouched.
func (c *TransactionCase) Transfer(ctx context.Context, fromUser, toUser, amount string) (string, error) {
	if err := c.admit(ctx, domain.OpTransfer, fromUser); err != nil {
		return "", err
	}

	return c.engine.Invoke(ctx, domain.OpTransfer, fromUser, toUser, amount)
}

// Undo, Redo and MiniStatement are not user transactions and bypass the
// rate limiter.

func (c *TransactionCase) Undo(ctx context.Context) (string, error) {
	return c.engine.Invoke(ctx, domain.OpUndo)
}

func (c *TransactionCase) Redo(ctx context.Context) (string, error) {
	return c.engine.Invoke(ctx, domain.OpRedo)
}

func (c *TransactionCase) MiniStatement(ctx context.Context) (string, error) {
	return c.engine.Invoke(ctx, domain.OpMiniStatement)
}

func (c *TransactionCase) admit(ctx context.Context, op, username string) error {
	now := c.now()
	age, ageKnown := c.ages.ResolveAge(ctx, username)

	allowed := c.limiter.Admit(username, now, age, ageKnown)

	if c.stats != nil {
		if err := c.stats.Record(ctx, ratelimit.StatsEvent{
			Username:  username,
			Allowed:   allowed,
			Operation: op,
			At:        now,
		}); err != nil {
			c.logger.Warn("failed to record quota stats", "error", err.Error())
		}
	}

	if !allowed {
		c.logger.Warn("daily transaction limit reached", "username", username, "op", op)
		return &domain.QuotaExceededError{Msg: quotaExceededMessage}
	}

	return nil
}
