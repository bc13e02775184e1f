package sensor

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindsAreStableStrings(t *testing.T) {
	cases := map[string]Kind{
		"peripheral":    KindPeripheral,
		"not_ready":     KindNotReady,
		"saturated":     KindSaturated,
		"invalid_input": KindInvalidInput,
		"other":         KindOther,
	}
	for want, k := range cases {
		if k.Error() != want {
			t.Errorf("Kind %q: Error() = %q", want, k.Error())
		}
	}
}

func TestKindSelfMappingIsIdentity(t *testing.T) {
	for _, k := range []Kind{KindPeripheral, KindNotReady, KindSaturated, KindInvalidInput, KindOther} {
		if k.Kind() != k {
			t.Errorf("%v.Kind() = %v", k, k.Kind())
		}
		if KindOf(k) != k {
			t.Errorf("KindOf(%v) = %v", k, KindOf(k))
		}
	}
}

// alertLineError stands in for a driver-specific error type.
type alertLineError struct{ pin int }

func (e *alertLineError) Error() string { return fmt.Sprintf("alert line on pin %d lost", e.pin) }
func (e *alertLineError) Kind() Kind    { return KindPeripheral }

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"classified", &alertLineError{pin: 7}, KindPeripheral},
		{"wrapped", fmt.Errorf("configure: %w", &alertLineError{pin: 7}), KindPeripheral},
		{"bare kind wrapped", fmt.Errorf("read: %w", KindNotReady), KindNotReady},
		{"unclassified", errors.New("boom"), KindOther},
	}
	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.want {
			t.Errorf("%s: KindOf = %q, want %q", tc.name, got, tc.want)
		}
	}
}
