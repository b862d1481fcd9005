package roomsearch

import (
	"sync"
	"time"
)

// Debouncer delays propagation of a rapidly changing string value until it
// has been stable for a fixed interval. At most one timer is pending at a
// time; a new value supersedes (stops) the previous timer, so intermediate
// values are dropped rather than queued. The settled value is therefore
// never ahead of the raw value.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	raw     string
	settled string
	notify  func(settled string)
}

// NewDebouncer creates a debouncer with the given delay. notify (optional)
// is called each time a value settles. A delay of zero propagates values
// synchronously.
func NewDebouncer(delay time.Duration, notify func(settled string)) *Debouncer {
	return &Debouncer{delay: delay, notify: notify}
}

// Set records a new raw value and restarts the delay.
func (d *Debouncer) Set(value string) {
	d.mu.Lock()
	d.raw = value
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.delay <= 0 {
		d.settled = value
		notify := d.notify
		d.mu.Unlock()
		if notify != nil {
			notify(value)
		}
		return
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.settle(value)
	})
	d.mu.Unlock()
}

func (d *Debouncer) settle(value string) {
	d.mu.Lock()
	if d.raw != value {
		// superseded between firing and acquiring the lock
		d.mu.Unlock()
		return
	}
	d.settled = value
	d.timer = nil
	notify := d.notify
	d.mu.Unlock()
	if notify != nil {
		notify(value)
	}
}

// Reset cancels any pending timer and sets both the raw and settled value
// immediately, bypassing the delay.
func (d *Debouncer) Reset(value string) {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.raw = value
	d.settled = value
	notify := d.notify
	d.mu.Unlock()
	if notify != nil {
		notify(value)
	}
}

func (d *Debouncer) Raw() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.raw
}

func (d *Debouncer) Settled() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settled
}

// Pending reports whether the settled value is still catching up to the
// raw value.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.raw != d.settled
}

// Stop cancels any pending propagation without changing either value.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
