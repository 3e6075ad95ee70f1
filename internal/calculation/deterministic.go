package calculation

import "time"

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// CurrentYear is the calendar year a plan starts in when it does not name one.
func CurrentYear() int { return nowFunc().Year() }
