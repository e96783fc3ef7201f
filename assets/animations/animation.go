package animations

import "time"

// Animation cycles through Count frames, advancing at most once per Interval of
// wall-clock time.
type Animation struct {
	Count    int
	Interval time.Duration
	frame    int
	last     time.Time
}

// Update advances to the next frame when strictly more than Interval has
// passed since the last advance. It reports whether the frame changed.
func (a *Animation) Update(now time.Time) bool {
	if a.Count <= 0 || now.Sub(a.last) <= a.Interval {
		return false
	}
	a.frame = (a.frame + 1) % a.Count
	a.last = now
	return true
}

func (a *Animation) Frame() int {
	return a.frame
}

// Restart rewinds to the first frame and starts timing from now.
func (a *Animation) Restart(now time.Time) {
	a.frame = 0
	a.last = now
}

func NewAnimation(count int, interval time.Duration, now time.Time) *Animation {
	return &Animation{
		Count:    count,
		Interval: interval,
		last:     now,
	}
}
