package telemetry

import "github.com/openvd/vdkit/lut"

// LookupObserver bridges table lookups into a telemetry Provider: every
// lookup is logged as one sample per coordinate plus one for the result.
// Attach it with lut.WithObserver at table construction.
//
// Channels are registered once up front, so the observer itself adds no
// allocation to the lookup path.
type LookupObserver struct {
	provider Provider

	in  [3]ChannelID
	out ChannelID
	dim int
}

var _ lut.Observer = (*LookupObserver)(nil)

// NewLookupObserver registers input and output channels for a table named
// base with dim input axes (1 to 3). Input channels are named
// "<base>.in.x", ".y", ".z" as applicable, the result "<base>.out".
func NewLookupObserver(provider Provider, base string, dim int, unit string) *LookupObserver {
	obs := &LookupObserver{provider: provider, dim: dim}

	axes := [3]string{".in.x", ".in.y", ".in.z"}
	for i := 0; i < dim && i < len(obs.in); i++ {
		obs.in[i] = provider.RegisterChannel(base+axes[i], "")
	}
	obs.out = provider.RegisterChannel(base+".out", unit)

	return obs
}

func (o *LookupObserver) Observe1D(x, result float64) {
	o.provider.Log(o.in[0], x)
	o.provider.Log(o.out, result)
}

func (o *LookupObserver) Observe2D(x, y, result float64) {
	o.provider.Log(o.in[0], x)
	o.provider.Log(o.in[1], y)
	o.provider.Log(o.out, result)
}

func (o *LookupObserver) Observe3D(x, y, z, result float64) {
	o.provider.Log(o.in[0], x)
	o.provider.Log(o.in[1], y)
	o.provider.Log(o.in[2], z)
	o.provider.Log(o.out, result)
}
