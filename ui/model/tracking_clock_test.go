package model

import (
	"testing"
	"time"
)

func TestTrackingClock_BasicLifecycle(t *testing.T) {
	m := NewTrackingClock()
	base := time.Unix(0, 0)

	// Lock on at t0 and hold for 5s.
	m.OnTick(true, base)
	m.OnTick(true, base.Add(5*time.Second))
	streak, total := m.Values()
	if streak != 5*time.Second || total != 5*time.Second {
		t.Fatalf("expected 5s streak & total; got streak=%v total=%v", streak, total)
	}

	// Lose the target at 5s.
	m.OnTick(false, base.Add(5*time.Second))
	streak, total = m.Values()
	if streak != 5*time.Second || total != 5*time.Second {
		t.Fatalf("after loss expected persisted 5s; got streak=%v total=%v", streak, total)
	}

	// Idle ticks change nothing.
	m.OnTick(false, base.Add(7*time.Second))
	s2, t2 := m.Values()
	if s2 != streak || t2 != total {
		t.Fatalf("idle tick should not change durations: got streak=%v total=%v", s2, t2)
	}

	// Second streak from 10s to 13s.
	m.OnTick(true, base.Add(10*time.Second))
	m.OnTick(true, base.Add(13*time.Second))
	s3, t3 := m.Values()
	if s3 != 3*time.Second || t3 != 8*time.Second {
		t.Fatalf("expected streak 3s total 8s, got streak=%v total=%v", s3, t3)
	}
	if m.Streaks() != 2 {
		t.Fatalf("expected 2 streaks, got %d", m.Streaks())
	}

	m.Reset()
	if s, tot := m.Values(); s != 0 || tot != 0 || m.Streaks() != 0 {
		t.Fatalf("reset should clear the clock")
	}
}

func TestTrackingClock_NilSafe(t *testing.T) {
	var m *TrackingClock
	m.OnTick(true, time.Now())
	m.Reset()
	if s, tot := m.Values(); s != 0 || tot != 0 {
		t.Fatalf("nil clock reports zero")
	}
}
