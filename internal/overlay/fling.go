package overlay

import (
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultFlingRate is the sustained wheel rate, in events per second,
	// that still counts as ordinary scrolling.
	DefaultFlingRate = 12.0
	// DefaultFlingBurst is how many wheel events may arrive back to back
	// before the excess counts as a fling.
	DefaultFlingBurst = 6
)

// FlingDetector recognises fast wheel bursts. Events that outrun the
// sustained rate drain the bucket; once it is empty every further event is a
// fling until the bucket refills.
type FlingDetector struct {
	limiter *rate.Limiter
	now     func() time.Time
}

// NewFlingDetector builds a detector. Non-positive values select defaults.
func NewFlingDetector(perSecond float64, burst int, now func() time.Time) *FlingDetector {
	if perSecond <= 0 {
		perSecond = DefaultFlingRate
	}
	if burst <= 0 {
		burst = DefaultFlingBurst
	}
	if now == nil {
		now = time.Now
	}
	return &FlingDetector{limiter: rate.NewLimiter(rate.Limit(perSecond), burst), now: now}
}

// Observe records one wheel event and reports whether it completes a fling.
func (f *FlingDetector) Observe() bool {
	return !f.limiter.AllowN(f.now(), 1)
}
