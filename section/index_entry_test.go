package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openvd/vdkit/endian"
	"github.com/openvd/vdkit/errs"
	"github.com/openvd/vdkit/format"
)

func TestIndexEntryRoundTrip(t *testing.T) {
	engines := map[string]endian.EndianEngine{
		"little": endian.GetLittleEndianEngine(),
		"big":    endian.GetBigEndianEngine(),
	}

	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			original := IndexEntry{
				TableID: 0x1122334455667788,
				Kind:    format.Kind3D,
				NX:      12,
				NY:      8,
				NZ:      5,
				Offset:  4096,
			}

			data := original.Bytes(engine)
			require.Len(t, data, IndexEntrySize)

			var parsed IndexEntry
			require.NoError(t, parsed.Parse(data, engine))
			require.Equal(t, original, parsed)
		})
	}
}

func TestIndexEntryParseErrors(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	var e IndexEntry

	t.Run("short input", func(t *testing.T) {
		require.ErrorIs(t, e.Parse(make([]byte, IndexEntrySize-1), engine), errs.ErrInvalidIndexSize)
	})

	t.Run("unknown kind", func(t *testing.T) {
		entry := IndexEntry{TableID: 1, Kind: format.Kind1D, NX: 4}
		data := entry.Bytes(engine)
		data[8] = 0x7F
		require.ErrorIs(t, e.Parse(data, engine), errs.ErrInvalidTableKind)
	})
}

func TestIndexEntryPayloadSize(t *testing.T) {
	tests := []struct {
		name  string
		entry IndexEntry
		want  int
	}{
		{
			name:  "1d axis plus values",
			entry: IndexEntry{Kind: format.Kind1D, NX: 4},
			want:  8 * 8,
		},
		{
			name:  "2d axes plus grid",
			entry: IndexEntry{Kind: format.Kind2D, NX: 3, NY: 4},
			want:  8 * (3 + 4 + 12),
		},
		{
			name:  "3d axes plus grid",
			entry: IndexEntry{Kind: format.Kind3D, NX: 2, NY: 3, NZ: 4},
			want:  8 * (2 + 3 + 4 + 24),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.entry.PayloadSize())
		})
	}
}
