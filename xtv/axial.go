package xtv

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"xtvkit/ds"
	"xtvkit/xtv/xcomp"
)

// fineMeshVars are the heat-structure variables whose axial extent can change
// between edits; their current mesh is read live from the zht channel instead
// of a fixed template.
var fineMeshVars = []string{
	"depthZrRxIn", "depthZrRxOn", "eCR50_46", "hgap", "hrfgi", "hrfgo",
	"hrfli", "hrflo", "hrfvi", "hrfvo", "ihtfi", "ihtfo", "qchfi", "qchfo",
	"rftn", "tchfi", "tchfo", "tmini", "tmino", "zht",
}

const fineMeshChannel = "zht"

// fineMeshSentinel marks unused trailing slots of a fine-mesh axial array.
const fineMeshSentinel = -1.0

// Component type tags with their own axial-location rules.
const (
	compHeatStructure     = "htstr"
	compHeatStructureCore = "htstrc"
	compVessel            = "vessel"
)

// AxialLocations returns the axial coordinates a channel's axial index ranges
// over: face locations for face-valued variables, cell centers otherwise. The
// list is empty for scalar variables, for which the axial concept is
// meaningless. Only fine-mesh heat-structure variables depend on time; for
// everything else the coordinates come from the fixed template.
func (f *File) AxialLocations(time float64, id int32, compType, varName string) ([]float64, error) {
	channel, err := f.channel(id, compType, varName)
	if err != nil {
		return nil, err
	}
	if channel.DimPosAt == "0D" {
		return []float64{}, nil
	}
	comp, _ := f.Component(id, compType)
	template := comp.Template(channel.TemplateIndex)

	var zLocs []float64
	switch compType {
	case compHeatStructureCore:
		zLocs, err = f.heatStructureCoreLocations(time, comp, channel, template)
		if err != nil {
			return nil, err
		}
	case compHeatStructure:
		// the leading face is a boundary value, not a cell reference
		zLocs = faceI(template)
		if len(zLocs) > 0 {
			zLocs = zLocs[1:]
		}
	case compVessel:
		zLocs = faceK(template)
		if channel.DimPosAt != "3dFaK" {
			zLocs = ds.Midpoints(zLocs)
		}
	default:
		if !strings.HasPrefix(channel.DimPosAt, "1") {
			return nil, errors.Errorf(
				`no axial locations for variable "%s" with dimension "%s"`,
				varName, channel.DimPosAt,
			)
		}
		zLocs = faceI(template)
		if channel.DimPosAt == "1dCc" {
			zLocs = ds.Midpoints(zLocs)
		}
	}

	return lo.Map(zLocs, func(z float64, _ int) float64 {
		return ds.RoundPlaces(z, 13)
	}), nil
}

// heatStructureCoreLocations resolves the axial mesh of an htstrc variable.
// Fine-mesh variables read their current heights out of the zht channel at
// the edit at-or-before the requested time, trimmed at the unused-slot
// sentinel; everything else uses the fixed template's secondary axis.
func (f *File) heatStructureCoreLocations(
	time float64,
	comp *xcomp.Component,
	channel *xcomp.Channel,
	template xcomp.Template,
) ([]float64, error) {
	var vLength int32
	switch channel.DimPosAt {
	case "1dFa":
		vLength = channel.VectorLength
	case "2dFaJ":
		if template == nil {
			return nil, ErrInvalidChannel{VarName: channel.Name, CompType: comp.Type, CompID: comp.ID}
		}
		_, dimj, _ := template.Dims()
		vLength = dimj + 1
	default:
		return nil, errors.Errorf(
			`unknown dimension "%s" for heat-structure variable "%s"`,
			channel.DimPosAt, channel.Name,
		)
	}

	if !lo.Contains(fineMeshVars, channel.Name) {
		return faceJ(template), nil
	}

	zht, ok := comp.Channels.Get(fineMeshChannel)
	if !ok {
		return nil, ErrInvalidChannel{VarName: fineMeshChannel, CompType: comp.Type, CompID: comp.ID}
	}
	time, err := f.clampTime(time)
	if err != nil {
		return nil, err
	}
	edit := ds.BisectRight(f.Times, time)
	offset := int64(f.Header.DataStart) + int64(edit-1)*int64(f.Header.DataLen) + int64(zht.StartIncrement)
	if err := f.reader.Seek(offset); err != nil {
		return nil, err
	}
	raw, err := f.reader.ReadFloats(int(vLength))
	if err != nil {
		return nil, errors.Wrap(err, "error reading fine-mesh axial locations")
	}
	zLocs := make([]float64, 0, len(raw))
	for _, z := range raw {
		if float64(z) == fineMeshSentinel {
			break
		}
		zLocs = append(zLocs, float64(z))
	}
	return zLocs, nil
}

// AxialData retrieves a channel value at an exact axial coordinate: the
// spatial lookup (bisect the axial-location array, interpolate between the
// bracketing mesh points) runs independently inside each bracketing time
// edit, then the two results interpolate across time.
func (f *File) AxialData(time float64, id int32, compType, varName string, zLoc float64, xr, yt int32) (float64, error) {
	time, err := f.clampTime(time)
	if err != nil {
		return 0, err
	}
	edit := ds.BisectRight(f.Times, time)
	if time == f.Times[edit-1] {
		return f.axialValueAt(time, id, compType, varName, zLoc, xr, yt)
	}
	timeLower, timeUpper := f.Times[edit-1], f.Times[edit]
	lower, err := f.axialValueAt(timeLower, id, compType, varName, zLoc, xr, yt)
	if err != nil {
		return 0, err
	}
	upper, err := f.axialValueAt(timeUpper, id, compType, varName, zLoc, xr, yt)
	if err != nil {
		return 0, err
	}
	return interpolate(timeLower, lower, timeUpper, upper, time), nil
}

// axialValueAt performs the spatial half of an axial query at one exact time
// edit.
func (f *File) axialValueAt(time float64, id int32, compType, varName string, zLoc float64, xr, yt int32) (float64, error) {
	zht, err := f.AxialLocations(time, id, compType, varName)
	if err != nil {
		return 0, err
	}
	if len(zht) == 0 {
		return 0, ErrScalarNoAxialExtent{VarName: varName}
	}
	if zLoc > zht[len(zht)-1] {
		return 0, ErrAxialAfterLast{Z: zLoc, Last: zht[len(zht)-1]}
	}
	if zLoc < zht[0] {
		return 0, ErrAxialBeforeFirst{Z: zLoc, First: zht[0]}
	}

	z := int32(ds.BisectRight(zht, zLoc))
	i, j, k, err := f.transformIndices(id, compType, varName, xr, yt, z)
	if err != nil {
		return 0, err
	}
	lower, err := f.Data(time, id, compType, varName, i, j, k)
	if err != nil {
		return 0, err
	}
	if zLoc == zht[z-1] {
		return lower, nil
	}
	i, j, k, err = f.transformIndices(id, compType, varName, xr, yt, z+1)
	if err != nil {
		return 0, err
	}
	upper, err := f.Data(time, id, compType, varName, i, j, k)
	if err != nil {
		return 0, err
	}
	return interpolate(zht[z-1], lower, zht[z], upper, zLoc), nil
}

func faceI(template xcomp.Template) []float64 {
	switch t := template.(type) {
	case *xcomp.Template1D:
		return t.FaceI
	case *xcomp.Template2D:
		return t.FaceI
	case *xcomp.Template3D:
		return t.FaceI
	}
	return nil
}

func faceJ(template xcomp.Template) []float64 {
	switch t := template.(type) {
	case *xcomp.Template2D:
		return t.FaceJ
	case *xcomp.Template3D:
		return t.FaceJ
	}
	return nil
}

func faceK(template xcomp.Template) []float64 {
	if t, ok := template.(*xcomp.Template3D); ok {
		return t.FaceK
	}
	return nil
}
