// ABOUTME: Tests for operation instrumentation.
package telemetry

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestZapInstrumenterReturnsOperationError(t *testing.T) {
	inst := NewZapInstrumenter(zap.NewNop())
	want := errors.New("boom")

	got := inst.MeasureOperation("upsert_reading", map[string]string{"user_id": "alice"}, func() error {
		return want
	})

	if !errors.Is(got, want) {
		t.Errorf("got %v, want the operation's error", got)
	}
}

func TestZapInstrumenterRunsOperation(t *testing.T) {
	inst := NewZapInstrumenter(zap.NewNop())
	ran := false

	err := inst.MeasureOperation("refetch_readings", nil, func() error {
		ran = true
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Error("operation did not run")
	}
}

func TestNopRunsOperation(t *testing.T) {
	ran := false
	err := Nop{}.MeasureOperation("anything", nil, func() error {
		ran = true
		return nil
	})

	if err != nil || !ran {
		t.Errorf("Nop must run the operation transparently (ran=%v, err=%v)", ran, err)
	}
}
