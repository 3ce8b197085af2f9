package xtv

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"xtvkit/ds"
	"xtvkit/xtv/xcomp"
	"xtvkit/xtv/xdr"
	"xtvkit/xtv/xheader"
)

// Block type tags of the self-sized header blocks.
const (
	blockComponent   = "GCHd"
	blockGeom3D      = "GD3D"
	blockGeom3DArray = "GD3A"
	blockGeom2D      = "GD2D"
	blockGeom2DArray = "GD2A"
	blockGeom1D      = "GD1D"
	blockGeom1DArray = "GD1A"
	blockSideLeg     = "GDLg"
	blockDynAxis     = "DsAx"
	blockVariable    = "VARD"
	blockData        = "DATA"
)

// Every time-record starts with a fixed prologue before the first channel's
// data; the record's own time value sits at timeOffset inside it.
const (
	recordPrologue = 24
	timeOffset     = 20
)

type (
	// File is one opened XTV file: the decoded header catalog plus the byte
	// stream the data region is read from on demand. A File holds a single
	// read cursor, so concurrent queries need external serialization (one
	// File per goroutine, or a mutex around it).
	File struct {
		reader     *xdr.Reader
		underlying io.Closer

		Header     *xheader.StartingBlock
		Components *ds.LinkedHashMap[xcomp.Key, *xcomp.Component]
		Times      []float64
	}
)

// Open opens path read-only and decodes the header catalog. The returned
// File keeps the handle; Close releases it.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, `Open error opening "%s"`, path)
	}
	file, err := New(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	file.underlying = f
	return file, nil
}

// New decodes the header catalog from an already open stream positioned at
// offset zero. Any failure while walking the header blocks is reported here
// rather than surfacing during later queries: a File is only usable when the
// returned error is nil.
func New(r io.ReadSeeker) (*File, error) {
	file := File{
		reader:     xdr.NewReader(r),
		Components: ds.NewLinkedHashMap[xcomp.Key, *xcomp.Component](),
	}

	header, err := xheader.Decode(file.reader)
	if err != nil {
		return nil, errors.Wrap(err, "xtv.New error: decode starting block")
	}
	file.Header = header
	if format := strings.TrimSpace(header.Format); format != xheader.FormatTag {
		return nil, ErrUnsupportedFormat{Format: format}
	}

	if err := file.parseBlocks(); err != nil {
		return nil, errors.Wrap(err, "xtv.New error: parse header blocks")
	}
	if err := file.readTimes(); err != nil {
		return nil, errors.Wrap(err, "xtv.New error: read time index")
	}
	return &file, nil
}

func (f *File) Close() error {
	if f.underlying == nil {
		return nil
	}
	return f.underlying.Close()
}

// parseBlocks walks the self-sized header blocks until the terminal DATA
// block. Each block opens with a type tag, a revision (ignored) and a byte
// size; the loop always seeks to block start + size afterwards, so block
// types it does not recognize never desynchronize the stream.
func (f *File) parseBlocks() error {
	var (
		current   *xcomp.Component
		pending3D *xcomp.Template3D
		pending2D *xcomp.Template2D
		pending1D *xcomp.Template1D
	)
	recordLength := int32(recordPrologue)

	for {
		start, err := f.reader.Tell()
		if err != nil {
			return err
		}
		blockType, err := f.reader.ReadString()
		if err != nil {
			return errors.Wrap(err, "read block type")
		}
		if _, err := f.reader.ReadInt(); err != nil { // block revision, unused
			return errors.Wrap(err, "read block revision")
		}
		jump, err := f.reader.ReadInt()
		if err != nil {
			return errors.Wrap(err, "read block size")
		}
		logrus.Debugf("block %q at offset %d, size %d", blockType, start, jump)

		switch strings.TrimSpace(blockType) {
		case blockData:
			return nil

		case blockComponent:
			current, err = xcomp.DecodeComponent(f.reader)
			if err == nil {
				f.Components.Put(current.Key(), current)
				logrus.Debugf("component %d of type %q", current.ID, current.Type)
			}

		case blockGeom3D:
			pending3D, err = xcomp.DecodeTemplate3D(f.reader)

		case blockGeom3DArray:
			// geometry array blocks always directly follow their declaration
			if current == nil || pending3D == nil {
				err = errors.New("geometry arrays block without a preceding 3D declaration")
				break
			}
			if err = xcomp.DecodeTemplate3DArrays(f.reader, pending3D); err == nil {
				current.Templates = append(current.Templates, pending3D)
				pending3D = nil
			}

		case blockGeom2D:
			pending2D, err = xcomp.DecodeTemplate2D(f.reader)

		case blockGeom2DArray:
			if current == nil || pending2D == nil {
				err = errors.New("geometry arrays block without a preceding 2D declaration")
				break
			}
			if err = xcomp.DecodeTemplate2DArrays(f.reader, pending2D); err == nil {
				current.Templates = append(current.Templates, pending2D)
				pending2D = nil
			}

		case blockGeom1D:
			pending1D, err = xcomp.DecodeTemplate1D(f.reader)

		case blockGeom1DArray:
			if current == nil || pending1D == nil {
				err = errors.New("geometry arrays block without a preceding 1D declaration")
				break
			}
			if err = xcomp.DecodeTemplate1DArrays(f.reader, pending1D); err == nil {
				current.Templates = append(current.Templates, pending1D)
				pending1D = nil
			}

		case blockSideLeg:
			if current == nil {
				err = errors.New("side-leg block before any component block")
				break
			}
			var leg *xcomp.SideLeg
			if leg, err = xcomp.DecodeSideLeg(f.reader); err == nil {
				current.SideLegs = append(current.SideLegs, *leg)
			}

		case blockDynAxis:
			if current == nil {
				err = errors.New("dynamic-axis block before any component block")
				break
			}
			var axis *xcomp.DynamicAxis
			if axis, err = xcomp.DecodeDynamicAxis(f.reader); err == nil {
				current.DynAxes = append(current.DynAxes, *axis)
			}

		case blockVariable:
			if current == nil {
				err = errors.New("variable block before any component block")
				break
			}
			var channel *xcomp.Channel
			if channel, err = xcomp.DecodeChannel(f.reader, current.Key(), recordLength); err == nil {
				current.Channels.Put(channel.Name, channel)
				if channel.TimeDependent() {
					recordLength += channel.VectorLength * 4
				}
				logrus.Debugf("channel %q (%s) at record offset %d", channel.Name, channel.DimPosAt, channel.StartIncrement)
			}
		}

		if err != nil {
			return errors.Wrapf(err, `block "%s" at offset "%d"`, blockType, start)
		}
		if err := f.reader.Seek(start + int64(jump)); err != nil {
			return err
		}
	}
}

// readTimes builds the time index by decoding one float out of each
// time-record at its fixed prologue offset.
func (f *File) readTimes() error {
	times := make([]float64, 0, f.Header.NumPoints)
	for i := int32(0); i < f.Header.NumPoints; i++ {
		offset := int64(f.Header.DataStart) + int64(i)*int64(f.Header.DataLen) + timeOffset
		if err := f.reader.Seek(offset); err != nil {
			return err
		}
		value, err := f.reader.ReadFloat()
		if err != nil {
			return errors.Wrapf(err, `time value of record "%d"`, i)
		}
		times = append(times, float64(value))
	}
	f.Times = times
	return nil
}

// Component returns the component registered under (id, type).
func (f *File) Component(id int32, compType string) (*xcomp.Component, bool) {
	return f.Components.Get(xcomp.Key{ID: id, Type: compType})
}

// channel resolves (id, type, varName) to its channel descriptor.
func (f *File) channel(id int32, compType, varName string) (*xcomp.Channel, error) {
	invalid := ErrInvalidChannel{VarName: varName, CompType: compType, CompID: id}
	comp, ok := f.Component(id, compType)
	if !ok {
		return nil, invalid
	}
	channel, ok := comp.Channels.Get(strings.TrimSpace(varName))
	if !ok {
		return nil, invalid
	}
	return channel, nil
}

// componentType scans for the component type tag that owns varName under the
// given id. The same id may pair with two types (htstr and htstrc share an id
// space), so the owner is whichever component actually declares the variable.
func (f *File) componentType(id int32, varName string) (string, bool) {
	for _, key := range f.Components.Keys() {
		if key.ID != id {
			continue
		}
		comp, _ := f.Components.Get(key)
		if _, ok := comp.Channels.Get(varName); ok {
			return key.Type, true
		}
	}
	return "", false
}
