package telemetry

import (
	"math"

	"github.com/google/uuid"

	"github.com/openvd/vdkit/linear"
)

// RingBufferConfig sizes a MemoryRecorder.
type RingBufferConfig struct {
	// SamplesPerChannel is the ring capacity of each channel.
	SamplesPerChannel int
	// MaxChannels caps the number of channels the recorder accepts.
	MaxChannels int
}

// DefaultRingBufferConfig returns the default recorder sizing: 10k samples
// per channel across up to 256 channels.
func DefaultRingBufferConfig() RingBufferConfig {
	return RingBufferConfig{
		SamplesPerChannel: 10_000,
		MaxChannels:       256,
	}
}

// ForDuration sizes a config to hold duration seconds of data at the given
// sample rate.
func ForDuration(durationSecs, sampleRateHz float64, maxChannels int) RingBufferConfig {
	return RingBufferConfig{
		SamplesPerChannel: int(math.Ceil(durationSecs * sampleRateHz)),
		MaxChannels:       maxChannels,
	}
}

// MemoryRecorder is a Provider that keeps the most recent samples of every
// channel in pre-allocated ring buffers. When a channel's ring fills, the
// oldest samples are overwritten.
//
// All storage is sized at registration time; Log never allocates. The
// recorder is not safe for concurrent use, matching the single-threaded
// simulation loop it instruments.
type MemoryRecorder struct {
	session  uuid.UUID
	config   RingBufferConfig
	metadata []ChannelMetadata

	// data is a flat buffer laid out channel-major:
	// [ch0 ring | ch1 ring | ...], each ring SamplesPerChannel long.
	data []float64
	// writePos is the next write index within each channel's ring.
	writePos []int
	// counts is the number of samples written per channel, saturating at
	// SamplesPerChannel.
	counts []int
}

var _ Provider = (*MemoryRecorder)(nil)

// NewMemoryRecorder creates a recorder with the given sizing. Each recorder
// carries a fresh session ID for correlating exported data.
//
// Degenerate sizing is clamped rather than rejected: a ring of at least one
// sample per channel and a non-negative channel cap, so Log stays total.
func NewMemoryRecorder(config RingBufferConfig) *MemoryRecorder {
	if config.SamplesPerChannel < 1 {
		config.SamplesPerChannel = 1
	}
	if config.MaxChannels < 0 {
		config.MaxChannels = 0
	}

	return &MemoryRecorder{
		session:  uuid.New(),
		config:   config,
		metadata: make([]ChannelMetadata, 0, config.MaxChannels),
		data:     make([]float64, 0, config.MaxChannels*config.SamplesPerChannel),
		writePos: make([]int, 0, config.MaxChannels),
		counts:   make([]int, 0, config.MaxChannels),
	}
}

// Session returns the recorder's session ID.
func (r *MemoryRecorder) Session() uuid.UUID {
	return r.session
}

// Config returns the recorder sizing.
func (r *MemoryRecorder) Config() RingBufferConfig {
	return r.config
}

// ChannelCount returns the number of registered channels.
func (r *MemoryRecorder) ChannelCount() int {
	return len(r.metadata)
}

// Metadata returns the metadata for a channel, or false for an unknown ID.
func (r *MemoryRecorder) Metadata(id ChannelID) (ChannelMetadata, bool) {
	if int(id) >= len(r.metadata) {
		return ChannelMetadata{}, false
	}

	return r.metadata[id], true
}

// AllMetadata returns the metadata of every registered channel, in
// registration order. The returned slice is the recorder's own; callers
// must not modify it.
func (r *MemoryRecorder) AllMetadata() []ChannelMetadata {
	return r.metadata
}

// SampleCount returns the number of samples currently held for a channel.
func (r *MemoryRecorder) SampleCount(id ChannelID) int {
	if int(id) >= len(r.counts) {
		return 0
	}

	return r.counts[id]
}

// ChannelData returns the stored samples of a channel in chronological
// order, oldest first. Returns nil for an unknown ID.
func (r *MemoryRecorder) ChannelData(id ChannelID) []float64 {
	idx := int(id)
	if idx >= len(r.metadata) {
		return nil
	}

	samples := r.config.SamplesPerChannel
	base := idx * samples
	count := r.counts[idx]

	if count < samples {
		out := make([]float64, count)
		copy(out, r.data[base:base+count])

		return out
	}

	// The ring wrapped: oldest sample sits at the write position.
	pos := r.writePos[idx]
	out := make([]float64, 0, samples)
	out = append(out, r.data[base+pos:base+samples]...)
	out = append(out, r.data[base:base+pos]...)

	return out
}

// Clear drops all recorded samples but keeps channel registrations.
func (r *MemoryRecorder) Clear() {
	for i := range r.writePos {
		r.writePos[i] = 0
		r.counts[i] = 0
	}
	for i := range r.data {
		r.data[i] = 0
	}
}

// RegisterChannel registers a channel and grows the sample storage for it.
// Once MaxChannels is reached, further registrations return a handle whose
// logs are silently dropped.
func (r *MemoryRecorder) RegisterChannel(name, unit string) ChannelID {
	if len(r.metadata) >= r.config.MaxChannels {
		return invalidChannel
	}

	id := ChannelID(len(r.metadata))
	r.metadata = append(r.metadata, ChannelMetadata{Name: name, Unit: unit})
	r.writePos = append(r.writePos, 0)
	r.counts = append(r.counts, 0)
	r.data = append(r.data, make([]float64, r.config.SamplesPerChannel)...)

	return id
}

// Log records one sample, overwriting the oldest when the ring is full.
func (r *MemoryRecorder) Log(id ChannelID, value float64) {
	idx := int(id)
	if idx >= len(r.metadata) {
		return
	}

	samples := r.config.SamplesPerChannel
	pos := r.writePos[idx]
	r.data[idx*samples+pos] = value
	r.writePos[idx] = (pos + 1) % samples

	if r.counts[idx] < samples {
		r.counts[idx]++
	}
}

// LogBool records a flag as 0.0 or 1.0.
func (r *MemoryRecorder) LogBool(id ChannelID, value bool) {
	r.Log(id, logBoolValue(value))
}

// LogVector records a vector as one sample per component channel.
func (r *MemoryRecorder) LogVector(idX, idY, idZ ChannelID, v linear.Vec) {
	r.Log(idX, v.X)
	r.Log(idY, v.Y)
	r.Log(idZ, v.Z)
}
