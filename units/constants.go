package units

// Physical constants for vehicle dynamics calculations, SI units throughout.
// Values follow ISO 80000-3 (gravity) and ISO 2533 ISA sea-level conditions.
const (
	// Gravity is the standard acceleration due to gravity.
	Gravity MetersPerSecondSquared = 9.80665

	// AtmosphericPressure is standard sea-level pressure.
	AtmosphericPressure Pascals = 101_325.0

	// StandardTemperature is the ISA sea-level temperature (15 C).
	StandardTemperature Kelvin = 288.15

	// AirDensity is the ISA sea-level air density, kg/m^3.
	AirDensity = 1.225

	// AirGasConstant is the specific gas constant of dry air, J/(kg*K).
	AirGasConstant = 287.058

	// AirGamma is the ratio of specific heats for air.
	AirGamma = 1.4

	// AirViscosity is the dynamic viscosity of air at 15 C, Pa*s.
	AirViscosity = 1.81e-5

	// SpeedOfSound is the speed of sound in air at 15 C.
	SpeedOfSound MetersPerSecond = 340.3

	// WaterDensity is the density of water at 4 C, kg/m^3.
	WaterDensity = 1000.0
)
