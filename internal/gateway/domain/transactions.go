package domain

import (
	"context"
	"time"
)

// Engine operation names; these are passed verbatim as the first argv entry
// of the external transaction engine.
const (
	OpDeposit       = "deposit"
	OpWithdraw      = "withdraw"
	OpTransfer      = "transfer"
	OpUndo          = "undo"
	OpRedo          = "redo"
	OpMiniStatement = "mini-statement"
)

// Engine invokes the external transaction engine for one logical operation
// and returns its normalized output. Failures are reported as the typed
// errors of this package; the gateway never inspects engine internals beyond
// exit status and captured output.
type Engine interface {
	Invoke(ctx context.Context, op string, args ...string) (string, error)
}

// AdmissionLimiter decides whether one more transaction attempt by username
// fits into the rolling daily quota. The decision and its recording are
// atomic per username.
type AdmissionLimiter interface {
	Admit(username string, now time.Time, age int, ageKnown bool) bool
}

// AgeResolver looks up the quota-relevant age of a user. ageKnown=false means
// the caller applies the default tier; directory problems never fail the
// admission check.
type AgeResolver interface {
	ResolveAge(ctx context.Context, username string) (age int, ageKnown bool)
}

// TransactionService is the admission-and-dispatch facade consumed by the
// HTTP layer. Amounts arrive pre-validated and stringified.
type TransactionService interface {
	Deposit(ctx context.Context, username, amount string) (string, error)
	Withdraw(ctx context.Context, username, amount string) (string, error)
	Transfer(ctx context.Context, fromUser, toUser, amount string) (string, error)
	Undo(ctx context.Context) (string, error)
	Redo(ctx context.Context) (string, error)
	MiniStatement(ctx context.Context) (string, error)
}
