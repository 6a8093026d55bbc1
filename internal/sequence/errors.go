package sequence

import "fmt"

// ConfigurationError reports an unknown settings key (scale, style, extent,
// direction, repeat mode). Unknown keys always fail; they never degrade to a
// default.
type ConfigurationError struct {
	Field string
	Value string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Field, e.Value)
}

// InvalidPitchError reports a root that does not resolve to a concrete pitch.
type InvalidPitchError struct {
	Input string
	Err   error
}

func (e *InvalidPitchError) Error() string {
	return fmt.Sprintf("invalid root pitch %q: %v", e.Input, e.Err)
}

func (e *InvalidPitchError) Unwrap() error { return e.Err }

// EmptyRangeError reports a span that contains no scale degrees after
// widening.
type EmptyRangeError struct {
	Scale  string
	Lo, Hi int
}

func (e *EmptyRangeError) Error() string {
	return fmt.Sprintf("no %s scale degrees in semitone span [%d,%d]", e.Scale, e.Lo, e.Hi)
}
