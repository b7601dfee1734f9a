package hunt

import "time"

// deferred is a one-shot callback bound to a round. It fires from Tick and
// only if the round that armed it is still current.
type deferred struct {
	at    time.Time
	round uint64
	fn    func()
	armed bool
}

func (d *deferred) schedule(now time.Time, delay time.Duration, round uint64, fn func()) {
	d.at = now.Add(delay)
	d.round = round
	d.fn = fn
	d.armed = true
}

func (d *deferred) cancel() {
	d.armed = false
	d.fn = nil
}

// fire runs the callback when due. A task armed for an older round is
// dropped without running.
func (d *deferred) fire(now time.Time, round uint64) bool {
	if !d.armed || now.Before(d.at) {
		return false
	}
	fn := d.fn
	stale := d.round != round
	d.cancel()
	if stale || fn == nil {
		return false
	}
	fn()
	return true
}

func (d *deferred) pending() bool {
	return d.armed
}
