package xtv

import (
	"strings"

	"github.com/pkg/errors"

	"xtvkit/ds"
	"xtvkit/xtv/xcomp"
)

// transformIndices converts the (radial, theta, axial) indices of a channel
// identifier into mesh (i, j, k) indices according to the channel's declared
// dimensionality. A variable never accepts more positional specificity than
// its mesh supports.
func (f *File) transformIndices(id int32, compType, varName string, xr, yt, z int32) (int32, int32, int32, error) {
	channel, err := f.channel(id, compType, varName)
	if err != nil {
		return 0, 0, 0, err
	}
	switch {
	case strings.HasPrefix(channel.DimPosAt, "3"):
		return xr, yt, z, nil
	case strings.HasPrefix(channel.DimPosAt, "2"):
		if yt > 0 {
			return 0, 0, 0, ErrUnusedIndex{Indices: UnusedTheta}
		}
		return xr, z, 0, nil
	case strings.HasPrefix(channel.DimPosAt, "1"):
		if xr > 0 || yt > 0 {
			return 0, 0, 0, ErrUnusedIndex{Indices: UnusedRadialTheta}
		}
		return z, 0, 0, nil
	case strings.HasPrefix(channel.DimPosAt, "0"):
		if xr > 0 || yt > 0 || z > 0 {
			return 0, 0, 0, ErrUnusedIndex{Indices: UnusedAxialRadialTheta}
		}
		return 0, 0, 0, nil
	}
	return 0, 0, 0, errors.Errorf(`variable "%s" has unhandled dimension "%s"`, varName, channel.DimPosAt)
}

// cellIndex converts the (i, j, k) mesh indices of a channel to its 1-based
// linear cell number, mirroring the on-file ordering: the radial index varies
// fastest within a level, which differs from the usual theta-first counting
// and must be reproduced exactly.
func cellIndex(channel *xcomp.Channel, template xcomp.Template, i, j, k int32) (int32, error) {
	dimPosAt := channel.DimPosAt
	vLength := channel.VectorLength
	invalid := ErrInvalidChannel{
		VarName:  channel.Name,
		CompType: channel.Component.Type,
		CompID:   channel.Component.ID,
	}
	var dimi, dimj, dimk int32
	if template != nil {
		dimi, dimj, dimk = template.Dims()
	}

	switch {
	case strings.HasPrefix(dimPosAt, "3"):
		if i <= 0 {
			return 0, ErrIndexTooSmall{Axis: "i"}
		}
		if j <= 0 {
			return 0, ErrIndexTooSmall{Axis: "j"}
		}
		if k <= 0 {
			return 0, ErrIndexTooSmall{Axis: "k"}
		}
		if dimi == 0 || dimj == 0 || dimk == 0 {
			return 0, invalid
		}

		var meshI, meshJ, meshK, levelDim, cell int32
		switch {
		case strings.HasSuffix(dimPosAt, "I"): // radial/x face vector
			meshI = vLength / (dimj * dimk)
			meshJ = vLength / ((dimi + 1) * dimk)
			meshK = vLength / ((dimi + 1) * dimj)
			levelDim = (dimi + 1) * dimj
			cell = (k-1)*levelDim + (j-1)*(dimi+1) + i
		case strings.HasSuffix(dimPosAt, "J"): // theta/y face vector
			var coord xcomp.Coord3D
			if t3, ok := template.(*xcomp.Template3D); ok {
				coord = t3.Coord
			}
			// the cylindrical system carries its own extent formulas here
			if coord == xcomp.Cyl3D {
				meshI = vLength / (dimj * dimk)
				meshJ = vLength / (dimi * dimk)
				meshK = vLength / (dimi * dimj)
				levelDim = dimi * dimj
			} else {
				meshI = vLength / ((dimj + 1) * dimk)
				meshJ = vLength / (dimi * dimk)
				meshK = vLength / (dimi * (dimj + 1))
				levelDim = dimi * (dimj + 1)
			}
			cell = (k-1)*levelDim + (j-1)*dimi + i
		case strings.HasSuffix(dimPosAt, "K"): // axial/z face vector
			meshI = vLength / (dimj * (dimk + 1))
			meshJ = vLength / (dimi * (dimk + 1))
			meshK = vLength / (dimi * dimj)
			levelDim = dimi * dimj
			cell = (k-1)*levelDim + (j-1)*dimi + i
		case strings.HasSuffix(dimPosAt, "c"): // cell center
			meshI = vLength / (dimj * dimk)
			meshJ = vLength / (dimi * dimk)
			meshK = vLength / (dimi * dimj)
			levelDim = dimi * dimj
			cell = (k-1)*levelDim + (j-1)*dimi + i
		default:
			return 0, errors.Errorf(`variable "%s" has unexpected position tag "%s"`, channel.Name, dimPosAt)
		}

		if i > meshI {
			return 0, ErrIndexTooLarge{Axis: "i", Max: meshI}
		}
		if j > meshJ {
			return 0, ErrIndexTooLarge{Axis: "j", Max: meshJ}
		}
		if k > meshK {
			return 0, ErrIndexTooLarge{Axis: "k", Max: meshK}
		}
		return cell, nil

	case strings.HasPrefix(dimPosAt, "2"):
		if i <= 0 {
			return 0, ErrIndexTooSmall{Axis: "i"}
		}
		meshI := vLength / (dimj + 1)
		if i > meshI {
			return 0, ErrIndexTooLarge{Axis: "i", Max: meshI}
		}
		if j <= 0 {
			return 0, ErrIndexTooSmall{Axis: "j"}
		}
		if dimi == 0 {
			return 0, invalid
		}
		meshJ := vLength / dimi
		if j > meshJ {
			return 0, ErrIndexTooLarge{Axis: "j", Max: meshJ}
		}
		return (j-1)*dimi + i, nil

	case strings.HasPrefix(dimPosAt, "1"):
		if i <= 0 {
			return 0, ErrIndexTooSmall{Axis: "i"}
		}
		if i > vLength {
			return 0, ErrIndexTooLarge{Axis: "i", Max: vLength}
		}
		return i, nil

	case strings.HasPrefix(dimPosAt, "0"):
		return 1, nil
	}
	return 0, errors.Errorf(`variable "%s" has unhandled dimension "%s"`, channel.Name, dimPosAt)
}

// Data decodes the value of one (time, component, variable, i, j, k) tuple,
// interpolating linearly in time when the requested time falls between two
// edits. A negative time latches to the last recorded edit; a time outside
// the recorded span fails rather than extrapolating.
func (f *File) Data(time float64, id int32, compType, varName string, i, j, k int32) (float64, error) {
	channel, err := f.channel(id, compType, varName)
	if err != nil {
		return 0, err
	}
	comp, _ := f.Component(id, compType)
	cell, err := cellIndex(channel, comp.Template(channel.TemplateIndex), i, j, k)
	if err != nil {
		return 0, err
	}
	startingPoint := channel.StartIncrement + (cell-1)*4

	time, err = f.clampTime(time)
	if err != nil {
		return 0, err
	}
	edit := ds.BisectRight(f.Times, time)
	lower, err := f.readValue(edit-1, startingPoint)
	if err != nil {
		return 0, err
	}
	if time == f.Times[edit-1] {
		return lower, nil
	}
	upper, err := f.readValue(edit, startingPoint)
	if err != nil {
		return 0, err
	}
	return interpolate(f.Times[edit-1], lower, f.Times[edit], upper, time), nil
}

// clampTime applies the time conventions shared by every query: a negative
// time latches to the last edit, anything outside the recorded span fails.
func (f *File) clampTime(time float64) (float64, error) {
	if len(f.Times) == 0 {
		return 0, ErrTimeAfterLast{Time: time}
	}
	last := f.Times[len(f.Times)-1]
	switch {
	case time < 0:
		return last, nil
	case time > last:
		return 0, ErrTimeAfterLast{Time: time, Last: last}
	case time < f.Times[0]:
		return 0, ErrTimeBeforeFirst{Time: time, First: f.Times[0]}
	}
	return time, nil
}

// readValue decodes the four byte float of one channel cell within one
// time-record; record counts from 0.
func (f *File) readValue(record int, startingPoint int32) (float64, error) {
	offset := int64(f.Header.DataStart) + int64(record)*int64(f.Header.DataLen) + int64(startingPoint)
	if err := f.reader.Seek(offset); err != nil {
		return 0, err
	}
	value, err := f.reader.ReadFloat()
	if err != nil {
		return 0, errors.Wrapf(err, `error decoding value at offset "%d"`, offset)
	}
	return float64(value), nil
}

func interpolate(x1, y1, x2, y2, x float64) float64 {
	return (y2-y1)*(x-x1)/(x2-x1) + y1
}
