// Package scheduler computes compliant upgrade dates from voting periods.
//
// All calendar arithmetic happens in UTC. Callers pass the current time
// explicitly, so the same inputs always produce the same plan.
package scheduler

import "time"

const (
	// anchorHour is the fixed hour (UTC) upgrades are planned for.
	anchorHour = 16
	// submissionCutoffHour is the last hour (UTC) at which a proposal
	// submitted today still counts for today's voting window.
	submissionCutoffHour = 14
)

// PlanDate returns the compliant upgrade date for a proposal submitted at now
// with the given voting period.
//
// The candidate day is now plus the voting period. It moves out by one day
// when submission happens after the cutoff hour or when voting would end at
// or after the anchor hour. Weekend candidates then shift to the following
// Monday. The result is pinned to the anchor hour; the weekend shift is
// applied exactly once and never re-triggers the cutoff rule.
func PlanDate(votingPeriod time.Duration, now time.Time) time.Time {
	now = now.UTC()
	candidate := now.Add(votingPeriod)

	if now.Hour() > submissionCutoffHour || candidate.Hour() >= anchorHour {
		candidate = candidate.Add(24 * time.Hour)
	}

	switch candidate.Weekday() {
	case time.Saturday:
		candidate = candidate.Add(48 * time.Hour)
	case time.Sunday:
		candidate = candidate.Add(24 * time.Hour)
	}

	year, month, day := candidate.Date()
	return time.Date(year, month, day, anchorHour, 0, 0, 0, time.UTC)
}

// AnchorTime pins a calendar day to the fixed upgrade hour.
func AnchorTime(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, anchorHour, 0, 0, 0, time.UTC)
}

// IsValidUpgradeTime reports whether the time falls on a weekday.
func IsValidUpgradeTime(t time.Time) bool {
	switch t.UTC().Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}
