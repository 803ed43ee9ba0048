package search

import "time"

// DefaultDebounce is the keystroke coalescing window used by the dashboard.
const DefaultDebounce = 250 * time.Millisecond

// Debouncer rate limits keystroke driven searches. The first submission of
// a burst fires immediately; later submissions inside the window are
// coalesced into a single trailing fire once the window elapses.
//
// Debouncer holds no timers. Callers schedule a wake up for the returned
// token and hand it back to Expire.
type Debouncer struct {
	window  time.Duration
	last    time.Time
	pending bool
	token   int
}

func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultDebounce
	}
	return &Debouncer{window: window}
}

// Window returns the coalescing window.
func (d *Debouncer) Window() time.Duration { return d.window }

// Submit registers a keystroke at now. When fire is true the caller runs the
// search immediately. Otherwise it waits Window and calls Expire with token.
func (d *Debouncer) Submit(now time.Time) (fire bool, token int) {
	d.token++
	if d.last.IsZero() || now.Sub(d.last) >= d.window {
		d.last = now
		d.pending = false
		return true, d.token
	}
	d.pending = true
	return false, d.token
}

// Expire reports whether the wake up scheduled for token should run the
// coalesced search. Stale tokens are ignored so only the newest keystroke
// of a burst triggers the trailing search.
func (d *Debouncer) Expire(token int, now time.Time) bool {
	if token != d.token || !d.pending {
		return false
	}
	d.pending = false
	d.last = now
	return true
}

// Reset drops any pending search, used when the input is cleared or the
// dashboard closes.
func (d *Debouncer) Reset() {
	d.pending = false
	d.last = time.Time{}
	d.token++
}
