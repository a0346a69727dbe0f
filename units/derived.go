package units

import "fmt"

// Newtons is a force.
type Newtons float64

func (n Newtons) String() string { return fmt.Sprintf("%g N", float64(n)) }

// Accelerate returns the acceleration this force gives a mass m.
func (n Newtons) Accelerate(m Kilograms) MetersPerSecondSquared {
	return MetersPerSecondSquared(float64(n) / float64(m))
}

// AtArm returns the torque of this force applied at lever arm r.
func (n Newtons) AtArm(r Meters) NewtonMeters {
	return NewtonMeters(float64(n) * float64(r))
}

// NewtonMeters is a torque.
type NewtonMeters float64

func (t NewtonMeters) String() string { return fmt.Sprintf("%g N*m", float64(t)) }

// AtSpeed returns the mechanical power delivered at angular velocity w.
func (t NewtonMeters) AtSpeed(w RadiansPerSecond) Watts {
	return Watts(float64(t) * float64(w))
}

// Force returns the force this torque exerts at lever arm r.
func (t NewtonMeters) Force(r Meters) Newtons {
	return Newtons(float64(t) / float64(r))
}

// Watts is a power.
type Watts float64

func (w Watts) String() string { return fmt.Sprintf("%g W", float64(w)) }

// Kilowatts returns the power in kilowatts.
func (w Watts) Kilowatts() float64 { return float64(w) / 1000.0 }

// Horsepower returns the power in mechanical horsepower.
func (w Watts) Horsepower() float64 { return float64(w) / 745.7 }

// Pascals is a pressure.
type Pascals float64

func (p Pascals) String() string { return fmt.Sprintf("%g Pa", float64(p)) }

// Bar returns the pressure in bar.
func (p Pascals) Bar() float64 { return float64(p) / 100_000.0 }

// KPa returns the pressure in kilopascals.
func (p Pascals) KPa() float64 { return float64(p) / 1000.0 }

// PSI returns the pressure in pounds per square inch.
func (p Pascals) PSI() float64 { return float64(p) / 6894.757 }

// FromBar converts bar to Pascals.
func FromBar(bar float64) Pascals { return Pascals(bar * 100_000.0) }

// FromPSI converts pounds per square inch to Pascals.
func FromPSI(psi float64) Pascals { return Pascals(psi * 6894.757) }
