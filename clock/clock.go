// Package clock is the per-match countdown state machine. A match is
// running when StartedAt is set; RemainingMs is authoritative as of the
// last pause or tick.
package clock

import (
	"time"

	"github.com/luismarketmedia/dash-fut/models"
)

// Toggle starts a stopped clock or pauses a running one, folding the
// elapsed time into RemainingMs.
func Toggle(m models.Match, now time.Time) models.Match {
	out := m.Clone()
	if out.StartedAt == nil {
		out.StartedAt = &now
		return out
	}
	out.RemainingMs = remainingAt(out, now)
	out.StartedAt = nil
	return out
}

// Tick recomputes the countdown of a running match and moves the
// reference point to now, so drift never accumulates across ticks.
// Reaching zero stops the clock. Stopped matches pass through.
func Tick(m models.Match, now time.Time) models.Match {
	if m.StartedAt == nil {
		return m
	}
	out := m.Clone()
	out.RemainingMs = remainingAt(out, now)
	out.StartedAt = &now
	if out.RemainingMs == 0 {
		out.StartedAt = nil
	}
	return out
}

// Reset stops the clock and restores the full period.
func Reset(m models.Match, periodMs int64) models.Match {
	out := m.Clone()
	out.StartedAt = nil
	out.RemainingMs = periodMs
	return out
}

// NextHalf toggles between halves and resets the clock, stopped.
func NextHalf(m models.Match, periodMs int64) models.Match {
	out := m.Clone()
	if out.Half == 1 {
		out.Half = 2
	} else {
		out.Half = 1
	}
	out.StartedAt = nil
	out.RemainingMs = periodMs
	return out
}

func remainingAt(m models.Match, now time.Time) int64 {
	elapsed := now.Sub(*m.StartedAt).Milliseconds()
	if elapsed >= m.RemainingMs {
		return 0
	}
	return m.RemainingMs - elapsed
}
