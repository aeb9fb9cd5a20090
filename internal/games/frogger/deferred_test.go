package frogger

import (
	"testing"
	"time"
)

func TestDeferredFiresOnce(t *testing.T) {
	var d Deferred
	calls := 0
	d.Schedule(100*time.Millisecond, func() { calls++ })

	if d.Advance(60 * time.Millisecond) {
		t.Fatal("fired early")
	}
	if d.Remaining() != 40*time.Millisecond {
		t.Errorf("remaining = %v", d.Remaining())
	}
	if !d.Advance(40 * time.Millisecond) {
		t.Fatal("did not fire when due")
	}
	d.Advance(time.Second)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if d.Pending() {
		t.Error("still pending after firing")
	}
}

func TestDeferredSupersede(t *testing.T) {
	var d Deferred
	var fired []string
	if d.Schedule(50*time.Millisecond, func() { fired = append(fired, "first") }) {
		t.Error("first schedule reported a superseded call")
	}
	d.Advance(30 * time.Millisecond)
	if !d.Schedule(50*time.Millisecond, func() { fired = append(fired, "second") }) {
		t.Error("second schedule did not report superseding")
	}
	d.Advance(30 * time.Millisecond)
	if len(fired) != 0 {
		t.Fatalf("fired %v before the new delay elapsed", fired)
	}
	d.Advance(20 * time.Millisecond)
	if len(fired) != 1 || fired[0] != "second" {
		t.Errorf("fired = %v, want [second]", fired)
	}
}

func TestDeferredCancel(t *testing.T) {
	var d Deferred
	d.Schedule(time.Millisecond, func() { t.Error("cancelled call fired") })
	if !d.Cancel() {
		t.Error("Cancel reported nothing pending")
	}
	if d.Cancel() {
		t.Error("second Cancel reported a pending call")
	}
	d.Advance(time.Second)
}

func TestDeferredRescheduleFromCallback(t *testing.T) {
	var d Deferred
	calls := 0
	var again func()
	again = func() {
		calls++
		if calls < 3 {
			d.Schedule(10*time.Millisecond, again)
		}
	}
	d.Schedule(10*time.Millisecond, again)
	for i := 0; i < 10; i++ {
		d.Advance(10 * time.Millisecond)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}
