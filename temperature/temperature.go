// Package temperature defines the blocking temperature sensor
// capabilities.
//
// A concrete driver implements Sensor and, if the hardware supports
// alert thresholds, the generated ThresholdSet and Hysteresis
// capabilities layered on top of it. Application code is written
// against the interfaces and never against a concrete driver type;
// errors surfaced by any operation classify via sensor.KindOf.
package temperature

//go:generate go run github.com/OpenDevicePartnership/embedded-sensors/cmd/sensorgen -quantity Temperature -sample Celsius -unit "degrees Celsius"

// Celsius associates the unit temperature samples are measured in with
// the underlying data type. The unit is a documentation contract, not
// enforced by the type system.
type Celsius = float32

// Sensor reads temperature samples.
//
// A read returns the most recent observation available to the driver at
// call time. Two consecutive reads may legitimately differ; no
// idempotence is mandated. Side effects such as bus transactions or
// caching are the driver's business and invisible here.
type Sensor interface {
	// Temperature returns a temperature sample in degrees Celsius.
	Temperature() (Celsius, error)
}

// SensorRef forwards every call to a borrowed Sensor, so generic code
// can accept an owned driver or a lent handle to one interchangeably.
type SensorRef struct {
	S Sensor
}

func (r SensorRef) Temperature() (Celsius, error) { return r.S.Temperature() }
