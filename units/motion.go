package units

import "fmt"

const mphToMS = 0.44704

// MetersPerSecond is a linear velocity.
type MetersPerSecond float64

func (v MetersPerSecond) String() string { return fmt.Sprintf("%g m/s", float64(v)) }

// KMH returns the velocity in kilometers per hour.
func (v MetersPerSecond) KMH() float64 { return float64(v) * 3.6 }

// MPH returns the velocity in miles per hour.
func (v MetersPerSecond) MPH() float64 { return float64(v) / mphToMS }

// FromKMH converts kilometers per hour to MetersPerSecond.
func FromKMH(kmh float64) MetersPerSecond { return MetersPerSecond(kmh / 3.6) }

// FromMPH converts miles per hour to MetersPerSecond.
func FromMPH(mph float64) MetersPerSecond { return MetersPerSecond(mph * mphToMS) }

// Distance returns the distance covered at this velocity over duration d.
func (v MetersPerSecond) Distance(d Seconds) Meters {
	return Meters(float64(v) * float64(d))
}

// Over returns the constant acceleration reaching this velocity change in d.
func (v MetersPerSecond) Over(d Seconds) MetersPerSecondSquared {
	return MetersPerSecondSquared(float64(v) / float64(d))
}

// MetersPerSecondSquared is a linear acceleration.
type MetersPerSecondSquared float64

func (a MetersPerSecondSquared) String() string { return fmt.Sprintf("%g m/s^2", float64(a)) }

// G returns the acceleration in multiples of standard gravity.
func (a MetersPerSecondSquared) G() float64 { return float64(a) / float64(Gravity) }

// FromG converts multiples of standard gravity to MetersPerSecondSquared.
func FromG(g float64) MetersPerSecondSquared {
	return MetersPerSecondSquared(g * float64(Gravity))
}

// Delta returns the velocity change this acceleration produces over d.
func (a MetersPerSecondSquared) Delta(d Seconds) MetersPerSecond {
	return MetersPerSecond(float64(a) * float64(d))
}
