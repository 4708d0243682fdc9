package countdown

import "time"

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Delta is the signed breakdown of the time left until a target instant.
//
// Total is negative when the target is in the past. The components are the
// truncated decomposition of |Total| and carry the sign of Total, so every
// component of a past delta is <= 0. Sub-second remainders are dropped.
type Delta struct {
	Total   time.Duration
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Compute returns the delta between target and now. Both instants are
// compared as given; no timezone conversion happens here.
func Compute(target, now time.Time) Delta {
	total := target.Sub(now).Milliseconds()

	abs := total
	sign := int64(1)
	if total < 0 {
		abs = -total
		sign = -1
	}

	return Delta{
		Total:   time.Duration(total) * time.Millisecond,
		Days:    sign * (abs / msPerDay),
		Hours:   sign * (abs / msPerHour % 24),
		Minutes: sign * (abs / msPerMinute % 60),
		Seconds: sign * (abs / msPerSecond % 60),
	}
}

// IsPast reports whether the target has been reached.
func (d Delta) IsPast() bool {
	return d.Total <= 0
}

// Abs returns the magnitude of every component, for "ago" displays.
func (d Delta) Abs() Delta {
	return Delta{
		Total:   absDuration(d.Total),
		Days:    absInt(d.Days),
		Hours:   absInt(d.Hours),
		Minutes: absInt(d.Minutes),
		Seconds: absInt(d.Seconds),
	}
}

// Milliseconds reassembles the components. It equals Total truncated toward
// zero to whole seconds.
func (d Delta) Milliseconds() int64 {
	return d.Days*msPerDay + d.Hours*msPerHour + d.Minutes*msPerMinute + d.Seconds*msPerSecond
}

func absInt(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func absDuration(v time.Duration) time.Duration {
	if v < 0 {
		return -v
	}
	return v
}
