package domain

import "github.com/jonboulle/clockwork"

// clock is a package-level time source so tests can freeze time via SetClock.
// Production code uses the real clock; tests inject a fake for deterministic
// date_checked / date_analyzed fields.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source for evaluations. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// today formats the current calendar date as YYYY-MM-DD.
func today() string {
	return clock.Now().UTC().Format("2006-01-02")
}
