package orderbook

import (
	"time"
)

// Clock abstracts "current local wall-clock time" so the day-order pruner
// (pruner.go) can be driven deterministically in tests instead of against
// the real clock.
type Clock interface {
	Now() time.Time
}

// realClock is the production Clock, backed by the standard library.
type realClock struct{}

// Now returns the current local wall-clock time.
func (realClock) Now() time.Time { return time.Now().Local() }

// Config carries the small set of options the book needs beyond its order
// stream, following the reference implementation's preference for typed
// option structs constructed at NewOrderBook time over environment
// variables or a config-file library.
type Config struct {
	// MarketCloseHour and MarketCloseMinute name the local wall-clock time
	// at which GoodForDay orders are pruned (§4.5). Defaults to 16:00.
	MarketCloseHour   int
	MarketCloseMinute int

	// PruneSlack is added to the pruner's wait so it does not tightly
	// re-wake around the close boundary. Defaults to 100ms.
	PruneSlack time.Duration

	// Clock supplies the current local time; defaults to the real clock.
	Clock Clock
}

// DefaultConfig returns the specification's defaults: market close at
// 16:00 local time, 100ms of prune slack, and the real clock.
func DefaultConfig() Config {
	return Config{
		MarketCloseHour:   16,
		MarketCloseMinute: 0,
		PruneSlack:        100 * time.Millisecond,
		Clock:             realClock{},
	}
}

// nextClose computes the next scheduled market-close instant strictly
// after now: today's close if it has not yet passed, otherwise tomorrow's.
func (c Config) nextClose(now time.Time) time.Time {
	close := time.Date(now.Year(), now.Month(), now.Day(), c.MarketCloseHour, c.MarketCloseMinute, 0, 0, now.Location())
	if !close.After(now) {
		close = close.AddDate(0, 0, 1)
	}
	return close
}
