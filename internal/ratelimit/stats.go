package ratelimit

import (
	"context"
	"time"
)

// StatsEvent records one admission decision. Recording is best-effort: a
// failing stats backend must never block or fail the request that produced
// the event.
type StatsEvent struct {
	Username string
	Allowed  bool

	Operation string

	At time.Time
}

type StatsStore interface {
	Record(ctx context.Context, ev StatsEvent) error
}
