package pathfinding

import "fmt"

// ConfigurationError reports a grid whose dimensions do not match the
// finder's construction parameters.
type ConfigurationError struct {
	Want, Got string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("pathfinding: grid configuration mismatch: want %s, got %s", e.Want, e.Got)
}

// InvalidCoordinateError reports a start or destination on an out-of-bounds
// or blocked cell. Setters fail with it immediately instead of letting the
// search misbehave later.
type InvalidCoordinateError struct {
	X, Y   int
	Reason string
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("pathfinding: invalid coordinate (%d,%d): %s", e.X, e.Y, e.Reason)
}
