package ratelimit

import (
	"context"
	"sync"
	"time"
)

const (
	// UnderageQuota caps users younger than 18; everyone else (including
	// usernames the directory does not know) gets DefaultQuota.
	UnderageQuota = 20
	DefaultQuota  = 100

	DefaultWindow = 24 * time.Hour

	defaultCleanupEvery = 10 * time.Minute
)

func QuotaFor(age int, ageKnown bool) int {
	if ageKnown && age < 18 {
		return UnderageQuota
	}

	return DefaultQuota
}

// SlidingWindow admits transaction attempts against a rolling time window of
// per-username attempt timestamps. The window boundary moves continuously
// with the supplied clock; there is no calendar-day reset.
//
// State is process-local and lost on restart.
type SlidingWindow struct {
	mu       sync.Mutex
	attempts map[string][]time.Time

	window       time.Duration
	cleanupEvery time.Duration
}

type Option func(*SlidingWindow)

func WithWindow(d time.Duration) Option {
	return func(l *SlidingWindow) { l.window = d }
}

func WithCleanupEvery(d time.Duration) Option {
	return func(l *SlidingWindow) { l.cleanupEvery = d }
}

func NewSlidingWindow(opts ...Option) *SlidingWindow {
	l := &SlidingWindow{
		attempts:     make(map[string][]time.Time),
		window:       DefaultWindow,
		cleanupEvery: defaultCleanupEvery,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Admit decides whether one more attempt fits into the user's window, and
// records it only when it does. Rejected attempts never count toward the
// quota, so probes cannot starve a legitimate user and a retry after the
// window slides is re-evaluated fairly.
//
// The check-then-record sequence holds the table lock for its whole duration;
// two concurrent calls for the same username cannot both observe the last
// free slot.
func (l *SlidingWindow) Admit(username string, now time.Time, age int, ageKnown bool) bool {
	quota := QuotaFor(age, ageKnown)
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := pruneBefore(l.attempts[username], cutoff)

	if len(kept) >= quota {
		l.attempts[username] = kept
		return false
	}

	l.attempts[username] = append(kept, now)
	return true
}

// Count reports how many attempts remain inside the window for a username.
func (l *SlidingWindow) Count(username string, now time.Time) int {
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	return len(pruneBefore(l.attempts[username], cutoff))
}

// Cleanup drops usernames whose every recorded attempt has left the window.
func (l *SlidingWindow) Cleanup(now time.Time) {
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	for username, stamps := range l.attempts {
		if kept := pruneBefore(stamps, cutoff); len(kept) == 0 {
			delete(l.attempts, username)
		}
	}
}

// StartJanitor runs Cleanup periodically until the context is done.
func (l *SlidingWindow) StartJanitor(ctx context.Context) {
	if l.cleanupEvery <= 0 {
		return
	}

	t := time.NewTicker(l.cleanupEvery)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				l.Cleanup(now)
			}
		}
	}()
}

func pruneBefore(stamps []time.Time, cutoff time.Time) []time.Time {
	kept := stamps[:0]
	for _, ts := range stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	return kept
}
