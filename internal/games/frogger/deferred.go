package frogger

import "time"

// Deferred is a one-shot callback measured in engine time. At most one call
// is pending; scheduling again replaces it.
type Deferred struct {
	remaining time.Duration
	fn        func()
	pending   bool
}

// Schedule arms fn to run once delay has elapsed. It reports whether a
// pending call was superseded.
func (d *Deferred) Schedule(delay time.Duration, fn func()) bool {
	superseded := d.pending
	d.remaining = delay
	d.fn = fn
	d.pending = true
	return superseded
}

// Cancel drops the pending call, reporting whether there was one.
func (d *Deferred) Cancel() bool {
	was := d.pending
	d.pending = false
	d.fn = nil
	d.remaining = 0
	return was
}

// Pending reports whether a call is armed.
func (d *Deferred) Pending() bool { return d.pending }

// Remaining returns the time left before the pending call fires.
func (d *Deferred) Remaining() time.Duration {
	if !d.pending {
		return 0
	}
	return d.remaining
}

// Advance counts dt down and fires the call when due. The callback may
// schedule a new one.
func (d *Deferred) Advance(dt time.Duration) bool {
	if !d.pending {
		return false
	}
	d.remaining -= dt
	if d.remaining > 0 {
		return false
	}
	fn := d.fn
	d.pending = false
	d.fn = nil
	d.remaining = 0
	if fn != nil {
		fn()
	}
	return true
}
