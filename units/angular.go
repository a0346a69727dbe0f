package units

import (
	"fmt"
	"math"
)

// Radians is a plane angle.
type Radians float64

func (r Radians) String() string { return fmt.Sprintf("%g rad", float64(r)) }

// Degrees returns the angle in degrees.
func (r Radians) Degrees() float64 { return float64(r) * 180.0 / math.Pi }

// FromDegrees converts degrees to Radians.
func FromDegrees(deg float64) Radians { return Radians(deg * math.Pi / 180.0) }

// Sin returns the sine of the angle.
func (r Radians) Sin() float64 { return math.Sin(float64(r)) }

// Cos returns the cosine of the angle.
func (r Radians) Cos() float64 { return math.Cos(float64(r)) }

// Tan returns the tangent of the angle.
func (r Radians) Tan() float64 { return math.Tan(float64(r)) }

// Normalize wraps the angle into [0, 2*pi).
func (r Radians) Normalize() Radians {
	wrapped := math.Mod(float64(r), 2*math.Pi)
	if wrapped < 0 {
		wrapped += 2 * math.Pi
	}

	return Radians(wrapped)
}

// RadiansPerSecond is an angular velocity.
type RadiansPerSecond float64

func (w RadiansPerSecond) String() string { return fmt.Sprintf("%g rad/s", float64(w)) }

// RPM returns the angular velocity in revolutions per minute.
func (w RadiansPerSecond) RPM() RPM { return RPM(float64(w) * 30.0 / math.Pi) }

// Power returns the mechanical power transmitted at torque t.
func (w RadiansPerSecond) Power(t NewtonMeters) Watts {
	return Watts(float64(w) * float64(t))
}

// RPM is an engine or wheel speed in revolutions per minute.
type RPM float64

func (r RPM) String() string { return fmt.Sprintf("%g rpm", float64(r)) }

// RadiansPerSecond returns the speed as an angular velocity.
func (r RPM) RadiansPerSecond() RadiansPerSecond {
	return RadiansPerSecond(float64(r) * math.Pi / 30.0)
}

// RadiansPerSecondSquared is an angular acceleration.
type RadiansPerSecondSquared float64

func (a RadiansPerSecondSquared) String() string {
	return fmt.Sprintf("%g rad/s^2", float64(a))
}
