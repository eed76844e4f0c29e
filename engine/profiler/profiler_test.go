package profiler

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestTickRespectsInterval(t *testing.T) {
	p := NewProfiler(zap.NewNop())

	// Default interval is one second; rapid ticks must not emit.
	for range 10 {
		if p.Tick() {
			t.Fatal("tick emitted stats before the interval elapsed")
		}
	}
}

func TestTickEmitsAfterInterval(t *testing.T) {
	p := NewProfiler(zap.NewNop())
	p.SetInterval(time.Millisecond)

	time.Sleep(5 * time.Millisecond)
	if !p.Tick() {
		t.Error("tick did not emit stats after the interval elapsed")
	}

	// The interval restarts after emitting.
	if p.Tick() {
		t.Error("tick emitted again immediately after reporting")
	}
}

func TestSetIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler(nil)
	p.SetInterval(0)
	p.SetInterval(-time.Second)

	if p.updateInterval != time.Second {
		t.Errorf("interval: got %v, want the 1s default", p.updateInterval)
	}
}
