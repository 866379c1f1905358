package lifecycle

import (
	"fmt"
	"time"

	"auction-market/internal/auctionerrors"
	"auction-market/internal/timeparse"
)

// State is the time-derived state of an auction. It is recomputed from the
// stored bounds on every query and never persisted, so it cannot drift
// from the clock.
type State string

const (
	StatePending State = "pending"
	StateActive  State = "active"
	StateClosed  State = "closed"
)

// Resolve classifies an auction given its stored start/end values and the
// current instant: pending while now < start, active while start <= now <
// end, closed once now >= end. An empty started value means the auction
// started at creation. An unparsable stored bound is a data-integrity
// failure, never silently mapped to a state.
func Resolve(started, ends string, now time.Time) (State, error) {
	end, err := timeparse.ParseInstant(ends)
	if err != nil {
		return "", fmt.Errorf("lifecycle: end bound: %w", err)
	}
	if !now.Before(end) {
		return StateClosed, nil
	}
	if started != "" {
		start, err := timeparse.ParseInstant(started)
		if err != nil {
			return "", fmt.Errorf("lifecycle: start bound: %w", err)
		}
		if now.Before(start) {
			return StatePending, nil
		}
	}
	return StateActive, nil
}

// CanDelete reports whether an auction may still be withdrawn: only while
// pending. An empty started value permits deletion (nothing has started);
// an unparsable one is a data-integrity failure, not a deletable auction.
func CanDelete(started string, now time.Time) error {
	if started == "" {
		return nil
	}
	start, err := timeparse.ParseInstant(started)
	if err != nil {
		return fmt.Errorf("lifecycle: start bound: %w", err)
	}
	if !now.Before(start) {
		return fmt.Errorf("lifecycle: delete after start: %w", auctionerrors.ErrAuctionStarted)
	}
	return nil
}
