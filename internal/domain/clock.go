package domain

import "github.com/jonboulle/clockwork"

// clock stamps ProcessedAt on assessment envelopes. The calculation itself
// never reads it. Tests and fixture tools freeze it via SetClock.
var clock = clockwork.NewRealClock()

// SetClock swaps the envelope time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
