// Package humidity defines the asynchronous relative humidity sensor
// capabilities. See the async temperature package for the conventions
// all async quantity packages share.
package humidity

import (
	"context"

	"github.com/OpenDevicePartnership/embedded-sensors/humidity"
)

//go:generate go run github.com/OpenDevicePartnership/embedded-sensors/cmd/sensorgen -quantity RelativeHumidity -sample Percentage -unit "percentage" -profile async

// Percentage is the blocking humidity package's sample type, shared so
// one set of values serves both profiles.
type Percentage = humidity.Percentage

// Sensor reads relative humidity samples.
type Sensor interface {
	// RelativeHumidity returns a relative humidity (RH) sample as a
	// percentage.
	RelativeHumidity(ctx context.Context) (Percentage, error)
}

// SensorRef forwards every call to a borrowed Sensor.
type SensorRef struct {
	S Sensor
}

func (r SensorRef) RelativeHumidity(ctx context.Context) (Percentage, error) {
	return r.S.RelativeHumidity(ctx)
}
