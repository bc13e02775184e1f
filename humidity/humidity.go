// Package humidity defines the blocking relative humidity sensor
// capabilities. See package temperature for the shape all quantity
// packages share.
package humidity

//go:generate go run github.com/OpenDevicePartnership/embedded-sensors/cmd/sensorgen -quantity RelativeHumidity -sample Percentage -unit "percentage"

// Percentage associates the unit relative humidity (RH) samples are
// measured in with the underlying data type. Nominally 0-100; the range
// is a documentation contract, not enforced.
type Percentage = float32

// Sensor reads relative humidity samples.
type Sensor interface {
	// RelativeHumidity returns a relative humidity (RH) sample as a
	// percentage.
	RelativeHumidity() (Percentage, error)
}

// SensorRef forwards every call to a borrowed Sensor.
type SensorRef struct {
	S Sensor
}

func (r SensorRef) RelativeHumidity() (Percentage, error) { return r.S.RelativeHumidity() }
