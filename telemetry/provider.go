package telemetry

import (
	"math"

	"github.com/openvd/vdkit/linear"
)

// ChannelID is a lightweight handle for a registered channel. It is a plain
// index into the provider's storage so hot-path logging is an array write.
type ChannelID uint32

// invalidChannel is returned when registration fails (provider full).
// Logging to it is a no-op.
const invalidChannel = ChannelID(math.MaxUint32)

// ChannelMetadata describes a registered channel.
type ChannelMetadata struct {
	// Name is the dotted channel path, e.g. "vehicle.speed" or
	// "tire.fl.slip_ratio".
	Name string
	// Unit is the physical unit of the logged values, e.g. "m/s".
	Unit string
}

// Provider is the recording interface handed to simulation code.
//
// RegisterChannel is for setup only; store the returned ID and reuse it.
// Log is called thousands of times per second and implementations must not
// allocate there.
type Provider interface {
	// RegisterChannel registers a named channel and returns its handle.
	RegisterChannel(name, unit string) ChannelID

	// Log records one scalar sample on a channel.
	Log(id ChannelID, value float64)

	// LogBool records a flag as 0.0 or 1.0.
	LogBool(id ChannelID, value bool)

	// LogVector records a 3D vector as one sample on each of three
	// component channels.
	LogVector(idX, idY, idZ ChannelID, v linear.Vec)
}

// Nop is a Provider that discards everything. Use it where telemetry is
// compiled in but not wanted at runtime.
type Nop struct{}

var _ Provider = Nop{}

func (Nop) RegisterChannel(_, _ string) ChannelID     { return 0 }
func (Nop) Log(_ ChannelID, _ float64)                {}
func (Nop) LogBool(_ ChannelID, _ bool)               {}
func (Nop) LogVector(_, _, _ ChannelID, _ linear.Vec) {}

// VectorChannelIDs bundles the three component channels of a logged vector.
type VectorChannelIDs struct {
	X, Y, Z ChannelID
}

// RegisterVectorChannels registers "<base>.x", ".y", ".z" channels sharing
// one unit, for logging a vector quantity such as a position or force.
func RegisterVectorChannels(p Provider, base, unit string) VectorChannelIDs {
	return VectorChannelIDs{
		X: p.RegisterChannel(base+".x", unit),
		Y: p.RegisterChannel(base+".y", unit),
		Z: p.RegisterChannel(base+".z", unit),
	}
}

// Log records a vector on the bundled channels.
func (ids VectorChannelIDs) Log(p Provider, v linear.Vec) {
	p.LogVector(ids.X, ids.Y, ids.Z, v)
}

// logBoolValue is the 0.0/1.0 encoding shared by LogBool implementations.
func logBoolValue(value bool) float64 {
	if value {
		return 1.0
	}

	return 0.0
}
