package units

import "fmt"

// Seconds is a time duration, SI base unit.
type Seconds float64

func (s Seconds) String() string { return fmt.Sprintf("%g s", float64(s)) }

// Meters is a length or distance, SI base unit.
type Meters float64

func (m Meters) String() string { return fmt.Sprintf("%g m", float64(m)) }

// Kilometers returns the length in kilometers.
func (m Meters) Kilometers() float64 { return float64(m) / 1000.0 }

// Millimeters returns the length in millimeters.
func (m Meters) Millimeters() float64 { return float64(m) * 1000.0 }

// FromMillimeters converts millimeters to Meters.
func FromMillimeters(mm float64) Meters { return Meters(mm / 1000.0) }

// Kilograms is a mass, SI base unit.
type Kilograms float64

func (k Kilograms) String() string { return fmt.Sprintf("%g kg", float64(k)) }

// Weight returns the force exerted by the mass under acceleration a.
func (k Kilograms) Weight(a MetersPerSecondSquared) Newtons {
	return Newtons(float64(k) * float64(a))
}

// Kelvin is an absolute temperature, SI base unit.
type Kelvin float64

func (k Kelvin) String() string { return fmt.Sprintf("%g K", float64(k)) }

// Celsius returns the temperature in degrees Celsius.
func (k Kelvin) Celsius() float64 { return float64(k) - 273.15 }

// Fahrenheit returns the temperature in degrees Fahrenheit.
func (k Kelvin) Fahrenheit() float64 { return (float64(k)-273.15)*9.0/5.0 + 32.0 }

// FromCelsius converts degrees Celsius to Kelvin.
func FromCelsius(c float64) Kelvin { return Kelvin(c + 273.15) }

// FromFahrenheit converts degrees Fahrenheit to Kelvin.
func FromFahrenheit(f float64) Kelvin { return Kelvin((f-32.0)*5.0/9.0 + 273.15) }
