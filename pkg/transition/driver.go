package transition

import (
	"slices"
	"sync"
	"time"
)

// Ticker is anything the frame driver can advance once per frame.
// *Transition satisfies it for every animated type.
type Ticker interface {
	Tick(now time.Time)
	IsAnimating() bool
}

var (
	driverMu      sync.Mutex
	activeTickers []Ticker
)

// Register adds a ticker to the frame driver. Tickers are stepped in
// registration order, so a frame is reproducible for a fixed set of
// registrations. The caller keeps ownership and must Unregister when
// the animated state is dropped. Registering a ticker twice is a no-op.
func Register(t Ticker) {
	driverMu.Lock()
	if !slices.Contains(activeTickers, t) {
		activeTickers = append(activeTickers, t)
	}
	driverMu.Unlock()
}

// Unregister removes a ticker from the frame driver.
func Unregister(t Ticker) {
	driverMu.Lock()
	activeTickers = slices.DeleteFunc(activeTickers, func(r Ticker) bool {
		return r == t
	})
	driverMu.Unlock()
}

// Step advances every registered ticker to the given frame timestamp,
// in registration order. The host calls this once per redraw frame.
func Step(now time.Time) {
	driverMu.Lock()
	if len(activeTickers) == 0 {
		driverMu.Unlock()
		return
	}
	// Copy so callbacks never run under the lock.
	tickers := slices.Clone(activeTickers)
	driverMu.Unlock()

	for _, t := range tickers {
		t.Tick(now)
	}
}

// HasActive reports whether any registered ticker still needs frames.
// Hosts use this to stop scheduling redraws once everything is at rest.
func HasActive() bool {
	driverMu.Lock()
	defer driverMu.Unlock()
	for _, t := range activeTickers {
		if t.IsAnimating() {
			return true
		}
	}
	return false
}
