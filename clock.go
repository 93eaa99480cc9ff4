package fourth

import "time"

// NowFunc is a function that generates the current time. Intentionally
// exported so that it can be overridden, for example by tests that need a
// frozen clock.
var NowFunc = time.Now
