package humidity

import (
	"testing"

	"github.com/OpenDevicePartnership/embedded-sensors/sensor"
)

type mockSensor struct {
	value      Percentage
	low, high  Percentage
	hysteresis Percentage
	err        error
}

func (m *mockSensor) RelativeHumidity() (Percentage, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.value, nil
}

func (m *mockSensor) SetRelativeHumidityThresholdLow(threshold Percentage) error {
	m.low = threshold
	return nil
}

func (m *mockSensor) SetRelativeHumidityThresholdHigh(threshold Percentage) error {
	m.high = threshold
	return nil
}

func (m *mockSensor) SetRelativeHumidityThresholdHysteresis(hysteresis Percentage) error {
	m.hysteresis = hysteresis
	return nil
}

func TestSensorRead(t *testing.T) {
	m := &mockSensor{value: 65.0}
	if got, err := m.RelativeHumidity(); err != nil || got != 65.0 {
		t.Fatalf("got %v, %v", got, err)
	}
	m.value = 50.5
	ref := SensorRef{S: m}
	if got, _ := ref.RelativeHumidity(); got != 50.5 {
		t.Fatalf("forwarded read: got %v", got)
	}
}

func TestThresholdsAndHysteresisIndependent(t *testing.T) {
	m := &mockSensor{}
	h := HysteresisRef{S: m}
	if err := h.SetRelativeHumidityThresholdHigh(80.0); err != nil {
		t.Fatal(err)
	}
	if err := h.SetRelativeHumidityThresholdHysteresis(5.0); err != nil {
		t.Fatal(err)
	}
	if err := h.SetRelativeHumidityThresholdLow(30.0); err != nil {
		t.Fatal(err)
	}
	if m.low != 30.0 || m.high != 80.0 || m.hysteresis != 5.0 {
		t.Fatalf("cross-interference: %+v", m)
	}
}

type saturatedError struct{}

func (saturatedError) Error() string     { return "condensation on element" }
func (saturatedError) Kind() sensor.Kind { return sensor.KindSaturated }

func TestErrorClassification(t *testing.T) {
	m := &mockSensor{err: saturatedError{}}
	_, err := ThresholdSetRef{S: m}.RelativeHumidity()
	if sensor.KindOf(err) != sensor.KindSaturated {
		t.Fatalf("KindOf = %v", sensor.KindOf(err))
	}
}
