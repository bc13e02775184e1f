// Package sensor contains error handling shared by every sensor
// capability, blocking and asynchronous alike.
//
// Driver packages define their own error types and classify them into a
// generic Kind, so application code written against the capability
// interfaces can react to categories without knowing concrete driver
// types. See the temperature and humidity packages for the capability
// interfaces themselves.
package sensor

import "errors"

// Kind classifies a driver error into a generic sensor error category.
// It is a string newtype, comparable, allocation-free, and implements
// error, so a bare Kind is itself usable as a classified driver error.
//
// The set below is not closed: future categories may be added, and
// drivers are free to define more specific error types as long as each
// value classifies into exactly one Kind. Generic code should treat a
// Kind it does not recognise the way it treats KindOther.
type Kind string

const (
	// KindPeripheral reports a failure on the peripheral supporting the
	// sensor, e.g. an I2C error for a digital sensor or an ADC error for
	// an analog one. The original error may carry more information.
	KindPeripheral Kind = "peripheral"
	// KindNotReady reports that the sensor is not yet ready to be sampled.
	KindNotReady Kind = "not_ready"
	// KindSaturated reports that the sensor is saturated and the sample
	// may be invalid.
	KindSaturated Kind = "saturated"
	// KindInvalidInput reports that the sensor was configured with
	// invalid input.
	KindInvalidInput Kind = "invalid_input"
	// KindOther reports an unclassified error. The original error may
	// carry more information.
	KindOther Kind = "other"
)

func (k Kind) Error() string { return string(k) }

// Kind returns k itself. The self-mapping is the identity, which makes
// every Kind satisfy Error directly.
func (k Kind) Kind() Kind { return k }

// Error is a classified sensor error. Concrete driver error types
// implement it to expose their generic category. The classification must
// be pure and total: exactly one Kind per error value, with no failure
// mode of its own.
//
// A driver that cannot fail simply returns nil errors; Go has no
// uninhabited error type to declare that statically.
type Error interface {
	error
	Kind() Kind
}

// KindOf extracts the Kind of err, unwrapping wrapped errors as needed.
// A non-nil error carrying no classification reports KindOther. A nil
// err reports the zero Kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var se Error
	if errors.As(err, &se) {
		return se.Kind()
	}
	return KindOther
}
