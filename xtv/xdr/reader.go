package xdr

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

type (
	// Reader decodes the big-endian XDR-style scalars and arrays an XTV file
	// is built from, on top of a seekable byte stream. It keeps no buffer of
	// its own: the stream position is the single cursor the whole decoder
	// shares.
	Reader struct {
		r io.ReadSeeker
	}
)

func NewReader(r io.ReadSeeker) *Reader {
	return &Reader{r: r}
}

// Tell returns the current stream position.
func (r *Reader) Tell() (int64, error) {
	position, err := r.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, errors.Wrap(err, "Tell error")
	}
	return position, nil
}

// Seek moves the cursor to an absolute stream position.
func (r *Reader) Seek(position int64) error {
	if _, err := r.r.Seek(position, io.SeekStart); err != nil {
		return errors.Wrapf(err, `Seek error moving to position "%d"`, position)
	}
	return nil
}

func (r *Reader) readN(n int) ([]byte, error) {
	bs := make([]byte, n)
	if n == 0 {
		return bs, nil
	}
	// io.ReadFull turns a short read into an explicit error instead of
	// silently truncating
	if _, err := io.ReadFull(r.r, bs); err != nil {
		return nil, err
	}
	return bs, nil
}

func (r *Reader) ReadUint() (uint32, error) {
	bs, err := r.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(bs), nil
}

func (r *Reader) ReadInt() (int32, error) {
	result, err := r.ReadUint()
	return int32(result), err
}

func (r *Reader) ReadFloat() (float32, error) {
	bits, err := r.ReadUint()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

func (r *Reader) ReadDouble() (float64, error) {
	bs, err := r.readN(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(bs)), nil
}

// ReadString reads a length-prefixed string whose payload is padded to a
// four byte boundary.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadUint()
	if err != nil {
		return "", err
	}
	padded := (int(n) + 3) / 4 * 4
	bs, err := r.readN(padded)
	if err != nil {
		return "", errors.Wrapf(err, `ReadString error reading "%d" padded bytes`, padded)
	}
	return string(bs[:n]), nil
}

// ReadDoubleArray reads a length-prefixed array of eight byte floats.
func (r *Reader) ReadDoubleArray() ([]float64, error) {
	n, err := r.ReadUint()
	if err != nil {
		return nil, err
	}
	result := make([]float64, 0, n)
	for i := uint32(0); i < n; i++ {
		value, err := r.ReadDouble()
		if err != nil {
			return nil, errors.Wrapf(err, `ReadDoubleArray error reading element "%d" of "%d"`, i, n)
		}
		result = append(result, value)
	}
	return result, nil
}

// ReadFloats reads a fixed count of four byte floats with no length prefix.
func (r *Reader) ReadFloats(n int) ([]float32, error) {
	result := make([]float32, 0, n)
	for i := 0; i < n; i++ {
		value, err := r.ReadFloat()
		if err != nil {
			return nil, errors.Wrapf(err, `ReadFloats error reading element "%d" of "%d"`, i, n)
		}
		result = append(result, value)
	}
	return result, nil
}
