package humidity

import (
	"context"
	"testing"
	"time"
)

// mockSensor models a driver whose wait blocks on an alert line; tests
// raise the line by closing the channel.
type mockSensor struct {
	value      Percentage
	low, high  Percentage
	hysteresis Percentage
	alert      chan struct{}
}

func newMockSensor(value Percentage) *mockSensor {
	return &mockSensor{value: value, alert: make(chan struct{})}
}

func (m *mockSensor) RelativeHumidity(ctx context.Context) (Percentage, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return m.value, nil
}

func (m *mockSensor) SetRelativeHumidityThresholdLow(ctx context.Context, threshold Percentage) error {
	m.low = threshold
	return nil
}

func (m *mockSensor) SetRelativeHumidityThresholdHigh(ctx context.Context, threshold Percentage) error {
	m.high = threshold
	return nil
}

func (m *mockSensor) SetRelativeHumidityThresholdHysteresis(ctx context.Context, hysteresis Percentage) error {
	m.hysteresis = hysteresis
	return nil
}

func (m *mockSensor) WaitForRelativeHumidityThreshold(ctx context.Context) (Percentage, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-m.alert:
		return m.RelativeHumidity(ctx)
	}
}

func TestWaitDeliversSampleOnAlert(t *testing.T) {
	ctx := context.Background()
	m := newMockSensor(65.0)
	if err := m.SetRelativeHumidityThresholdLow(ctx, 30.0); err != nil {
		t.Fatal(err)
	}
	if err := m.SetRelativeHumidityThresholdHigh(ctx, 60.0); err != nil {
		t.Fatal(err)
	}

	got := make(chan Percentage, 1)
	errs := make(chan error, 1)
	go func() {
		v, err := m.WaitForRelativeHumidityThreshold(ctx)
		got <- v
		errs <- err
	}()
	close(m.alert) // simulated crossing

	select {
	case v := <-got:
		if err := <-errs; err != nil {
			t.Fatal(err)
		}
		if v != 65.0 {
			t.Fatalf("wait returned %v, want 65", v)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("wait never resumed")
	}
}

func TestWaitResumesExactlyOnceOnCancel(t *testing.T) {
	m := newMockSensor(42.0)
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	v, err := m.WaitForRelativeHumidityThreshold(ctx)
	if err != context.DeadlineExceeded {
		t.Fatalf("err = %v, want context.DeadlineExceeded", err)
	}
	if v != 0 {
		t.Fatalf("cancelled wait still produced sample %v", v)
	}
}

func TestRefsForwardUnchanged(t *testing.T) {
	ctx := context.Background()
	m := newMockSensor(55.5)

	w := ThresholdWaitRef{S: m}
	if err := w.SetRelativeHumidityThresholdHigh(ctx, 50.0); err != nil {
		t.Fatal(err)
	}
	if m.high != 50.0 {
		t.Fatalf("high = %v", m.high)
	}
	close(m.alert)
	got, err := w.WaitForRelativeHumidityThreshold(ctx)
	if err != nil || got != 55.5 {
		t.Fatalf("forwarded wait: %v, %v", got, err)
	}

	direct, _ := m.RelativeHumidity(ctx)
	viaRef, _ := HysteresisRef{S: m}.RelativeHumidity(ctx)
	if direct != viaRef {
		t.Fatalf("forwarded read %v differs from direct %v", viaRef, direct)
	}
}
