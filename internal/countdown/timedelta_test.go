package countdown

import (
	"testing"
	"time"
)

func TestCompute(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		target  time.Time
		days    int64
		hours   int64
		minutes int64
		seconds int64
	}{
		{
			name:   "same instant",
			target: now,
		},
		{
			name:    "one day two hours three minutes four seconds ahead",
			target:  now.Add(26*time.Hour + 3*time.Minute + 4*time.Second),
			days:    1,
			hours:   2,
			minutes: 3,
			seconds: 4,
		},
		{
			name:    "sub-second remainder is truncated",
			target:  now.Add(59*time.Second + 999*time.Millisecond),
			seconds: 59,
		},
		{
			name:    "past target carries negative components",
			target:  now.Add(-(3*24*time.Hour + 5*time.Hour + 30*time.Second)),
			days:    -3,
			hours:   -5,
			seconds: -30,
		},
		{
			name:    "one and a half seconds ago",
			target:  now.Add(-1500 * time.Millisecond),
			seconds: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Compute(tt.target, now)
			if d.Days != tt.days || d.Hours != tt.hours || d.Minutes != tt.minutes || d.Seconds != tt.seconds {
				t.Errorf("Expected %dd %dh %dm %ds, got %dd %dh %dm %ds",
					tt.days, tt.hours, tt.minutes, tt.seconds,
					d.Days, d.Hours, d.Minutes, d.Seconds)
			}
		})
	}
}

func TestComputeTotalIsExact(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	offsets := []time.Duration{
		0,
		time.Millisecond,
		-time.Millisecond,
		1234567 * time.Millisecond,
		-98765432 * time.Millisecond,
		400 * 24 * time.Hour,
		-400 * 24 * time.Hour,
	}

	for _, off := range offsets {
		d := Compute(now.Add(off), now)
		if d.Total != off {
			t.Errorf("offset %v: expected total %v, got %v", off, off, d.Total)
		}
	}
}

func TestComputeRoundTrip(t *testing.T) {
	now := time.Date(2026, 6, 15, 8, 30, 0, 0, time.UTC)
	offsets := []int64{0, 999, 1000, 61001, 3599999, 86400000, 90061001, -999, -1000, -61001, -90061001, -86400001}

	for _, ms := range offsets {
		d := Compute(now.Add(time.Duration(ms)*time.Millisecond), now)
		want := ms / 1000 * 1000 // truncation toward zero
		if got := d.Milliseconds(); got != want {
			t.Errorf("offset %dms: expected reconstruction %d, got %d", ms, want, got)
		}
	}
}

func TestDeltaAbsAndIsPast(t *testing.T) {
	now := time.Date(2026, 6, 15, 8, 30, 0, 0, time.UTC)

	past := Compute(now.Add(-(10*24*time.Hour + 4*time.Hour)), now)
	if !past.IsPast() {
		t.Error("Expected delta to be past")
	}
	abs := past.Abs()
	if abs.Days != 10 || abs.Hours != 4 {
		t.Errorf("Expected 10d 4h magnitude, got %dd %dh", abs.Days, abs.Hours)
	}
	if abs.Total != 10*24*time.Hour+4*time.Hour {
		t.Errorf("Expected positive total, got %v", abs.Total)
	}

	if !Compute(now, now).IsPast() {
		t.Error("A target equal to now counts as past")
	}
	if Compute(now.Add(time.Second), now).IsPast() {
		t.Error("A future target must not be past")
	}
}
