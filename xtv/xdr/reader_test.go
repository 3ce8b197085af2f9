package xdr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadScalars(t *testing.T) {
	reader := NewReader(bytes.NewReader([]byte{
		0x00, 0x00, 0x00, 0x2A, // 42
		0xFF, 0xFF, 0xFF, 0xFE, // -2
		0x3F, 0x80, 0x00, 0x00, // 1.0f
		0x40, 0x09, 0x21, 0xFB, 0x54, 0x44, 0x2D, 0x18, // pi
	}))

	u, err := reader.ReadUint()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), u)

	i, err := reader.ReadInt()
	require.NoError(t, err)
	assert.Equal(t, int32(-2), i)

	f, err := reader.ReadFloat()
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), f)

	d, err := reader.ReadDouble()
	require.NoError(t, err)
	assert.InDelta(t, 3.141592653589793, d, 1e-15)
}

func TestReadStringPadsToFourBytes(t *testing.T) {
	reader := NewReader(bytes.NewReader([]byte{
		0x00, 0x00, 0x00, 0x03, 'M', 'U', 'X', 0x00,
		0x00, 0x00, 0x00, 0x04, 'G', 'C', 'H', 'd',
		0x00, 0x00, 0x00, 0x00,
	}))

	s, err := reader.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "MUX", s)

	s, err = reader.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "GCHd", s)

	s, err = reader.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "", s)

	position, err := reader.Tell()
	require.NoError(t, err)
	assert.Equal(t, int64(20), position)
}

func TestReadDoubleArray(t *testing.T) {
	reader := NewReader(bytes.NewReader([]byte{
		0x00, 0x00, 0x00, 0x02,
		0x3F, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 1.0
		0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 2.0
	}))

	values, err := reader.ReadDoubleArray()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, values)
}

func TestReadFloats(t *testing.T) {
	reader := NewReader(bytes.NewReader([]byte{
		0x3F, 0x80, 0x00, 0x00,
		0xBF, 0x80, 0x00, 0x00,
	}))

	values, err := reader.ReadFloats(2)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, -1}, values)
}

func TestShortReadIsAnError(t *testing.T) {
	reader := NewReader(bytes.NewReader([]byte{0x00, 0x00}))
	_, err := reader.ReadInt()
	require.Error(t, err)

	reader = NewReader(bytes.NewReader([]byte{
		0x00, 0x00, 0x00, 0x08, 'a', 'b',
	}))
	_, err = reader.ReadString()
	require.Error(t, err)
}

func TestSeekAndTell(t *testing.T) {
	reader := NewReader(bytes.NewReader([]byte{
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x02,
	}))

	require.NoError(t, reader.Seek(4))
	value, err := reader.ReadInt()
	require.NoError(t, err)
	assert.Equal(t, int32(2), value)

	position, err := reader.Tell()
	require.NoError(t, err)
	assert.Equal(t, int64(8), position)
}
