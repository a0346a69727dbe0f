package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	le := GetLittleEndianEngine()
	be := GetBigEndianEngine()

	require.Equal(t, []byte{0x34, 0x12}, le.AppendUint16(nil, 0x1234))
	require.Equal(t, []byte{0x12, 0x34}, be.AppendUint16(nil, 0x1234))

	buf := le.AppendUint64(nil, 0x0102030405060708)
	require.Equal(t, uint64(0x0102030405060708), le.Uint64(buf))
	require.NotEqual(t, uint64(0x0102030405060708), be.Uint64(buf))
}

func TestCheckEndianness(t *testing.T) {
	order := CheckEndianness()
	require.Contains(t, []binary.ByteOrder{binary.LittleEndian, binary.BigEndian}, order)
	require.Equal(t, order == binary.LittleEndian, IsNativeLittleEndian())
}
