// Package temperature defines the asynchronous temperature sensor
// capabilities. It mirrors the blocking package of the same name: the
// hierarchy and identifier shapes are identical, every operation takes
// a context.Context for its suspension point, and ThresholdWait is
// additionally available because only this profile can express "wait
// for an event". Blocking callers needing equivalent behaviour poll the
// base Sensor themselves.
package temperature

import (
	"context"

	"github.com/OpenDevicePartnership/embedded-sensors/temperature"
)

//go:generate go run github.com/OpenDevicePartnership/embedded-sensors/cmd/sensorgen -quantity Temperature -sample Celsius -unit "degrees Celsius" -profile async

// Celsius is the blocking temperature package's sample type, shared so
// one set of values serves both profiles.
type Celsius = temperature.Celsius

// Sensor reads temperature samples.
//
// A call may park the goroutine while the driver waits on the
// peripheral and returns exactly once with a definite result; ctx
// bounds the wait. On cancellation the driver returns promptly with
// ctx's error and no rollback of partially applied state is mandated.
type Sensor interface {
	// Temperature returns a temperature sample in degrees Celsius.
	Temperature(ctx context.Context) (Celsius, error)
}

// SensorRef forwards every call to a borrowed Sensor.
type SensorRef struct {
	S Sensor
}

func (r SensorRef) Temperature(ctx context.Context) (Celsius, error) {
	return r.S.Temperature(ctx)
}
