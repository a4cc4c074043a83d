package core

import "time"

// Pacer decides when the next generation is due. Frames arrive at the frame
// rate; Due fires at most once per period no matter how many frames were
// polled in between. A late frame restarts the period from that frame rather
// than catching up.
type Pacer struct {
	period time.Duration
	next   time.Time
}

// NewPacer creates a pacer firing once per period.
func NewPacer(period time.Duration) *Pacer {
	if period <= 0 {
		period = 200 * time.Millisecond
	}
	return &Pacer{period: period}
}

// Period returns the generation period.
func (p *Pacer) Period() time.Duration {
	return p.period
}

// Due reports whether a generation should run at now.
// The first call only arms the pacer.
func (p *Pacer) Due(now time.Time) bool {
	if p.next.IsZero() {
		p.next = now.Add(p.period)
		return false
	}
	if now.Before(p.next) {
		return false
	}
	p.next = now.Add(p.period)
	return true
}

// Restart disarms the pacer so the next period starts at the next call to Due.
func (p *Pacer) Restart() {
	p.next = time.Time{}
}
