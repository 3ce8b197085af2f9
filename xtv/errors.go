package xtv

import (
	"fmt"

	"xtvkit/xtv/xheader"
)

// Index groups an unused-index error can name.
const (
	UnusedTheta            = "theta"
	UnusedRadialTheta      = "radial/theta"
	UnusedAxialRadialTheta = "axial/radial/theta"
)

type (
	// ErrUnsupportedFormat reports a starting block whose format tag is not
	// the expected magic. The file is unusable.
	ErrUnsupportedFormat struct {
		Format string
	}

	// ErrInvalidChannel reports a variable name, component type and
	// component id combination unknown to the file's catalog.
	ErrInvalidChannel struct {
		VarName  string
		CompType string
		CompID   int32
	}

	// ErrUnusedIndex reports mesh indices supplied for axes the channel's
	// declared dimensionality does not use.
	ErrUnusedIndex struct {
		Indices string
	}

	// ErrIndexTooSmall reports a required mesh index that was zero or
	// absent; axes count from 1.
	ErrIndexTooSmall struct {
		Axis string
	}

	// ErrIndexTooLarge reports a mesh index beyond the extent computed for
	// its axis.
	ErrIndexTooLarge struct {
		Axis string
		Max  int32
	}

	ErrTimeBeforeFirst struct {
		Time  float64
		First float64
	}

	ErrTimeAfterLast struct {
		Time float64
		Last float64
	}

	ErrAxialBeforeFirst struct {
		Z     float64
		First float64
	}

	ErrAxialAfterLast struct {
		Z    float64
		Last float64
	}

	// ErrScalarNoAxialExtent reports an axial query against a variable whose
	// axial-location list is empty.
	ErrScalarNoAxialExtent struct {
		VarName string
	}
)

func (e ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf(`unsupported file format "%s": expected "%s"`, e.Format, xheader.FormatTag)
}

func (e ErrInvalidChannel) Error() string {
	return fmt.Sprintf(
		`unknown channel: variable "%s" on component "%d" of type "%s"`,
		e.VarName, e.CompID, e.CompType,
	)
}

func (e ErrUnusedIndex) Error() string {
	return fmt.Sprintf("%s index set for a variable that does not use it", e.Indices)
}

func (e ErrIndexTooSmall) Error() string {
	return fmt.Sprintf("invalid mesh index: %s must be > 0", e.Axis)
}

func (e ErrIndexTooLarge) Error() string {
	return fmt.Sprintf("invalid mesh index: %s is too large (at most %d)", e.Axis, e.Max)
}

func (e ErrTimeBeforeFirst) Error() string {
	return fmt.Sprintf("requested time %g is before the first time edit %g", e.Time, e.First)
}

func (e ErrTimeAfterLast) Error() string {
	return fmt.Sprintf("requested time %g is beyond the last time edit %g", e.Time, e.Last)
}

func (e ErrAxialBeforeFirst) Error() string {
	return fmt.Sprintf("axial height %g comes before the first mesh point %g", e.Z, e.First)
}

func (e ErrAxialAfterLast) Error() string {
	return fmt.Sprintf("axial height %g extends beyond the last mesh point %g", e.Z, e.Last)
}

func (e ErrScalarNoAxialExtent) Error() string {
	return fmt.Sprintf(`axial distance requested for scalar data channel "%s"`, e.VarName)
}
