package xcomp

import (
	"strings"

	"github.com/pkg/errors"

	"xtvkit/xtv/xdr"
)

// decodeState keeps the first error and turns every later read into a no-op,
// which keeps the per-block decoders close to the shape of the format tables
// they mirror.
type decodeState struct {
	reader *xdr.Reader
	err    error
}

func (s *decodeState) int32Field(name string) int32 {
	if s.err != nil {
		return 0
	}
	value, err := s.reader.ReadInt()
	if err != nil {
		s.err = errors.Wrapf(err, `error reading integer field "%s"`, name)
	}
	return value
}

func (s *decodeState) stringField(name string) string {
	if s.err != nil {
		return ""
	}
	value, err := s.reader.ReadString()
	if err != nil {
		s.err = errors.Wrapf(err, `error reading string field "%s"`, name)
	}
	return value
}

func (s *decodeState) doubleArrayField(name string) []float64 {
	if s.err != nil {
		return nil
	}
	value, err := s.reader.ReadDoubleArray()
	if err != nil {
		s.err = errors.Wrapf(err, `error reading array field "%s"`, name)
	}
	return value
}

// DecodeComponent reads a component header block payload. The declared
// per-kind variable counts are skipped: the variable blocks that follow carry
// everything the catalog needs.
func DecodeComponent(reader *xdr.Reader) (*Component, error) {
	s := decodeState{reader: reader}
	id := s.int32Field("id")
	s.int32Field("reserved")
	compType := s.stringField("type")
	comp := NewComponent(id, strings.TrimSpace(compType))
	comp.Title = s.stringField("title")
	comp.Dim = s.int32Field("dim")
	comp.NumTemplates = s.int32Field("nTempl")
	comp.NumJunctions = s.int32Field("nJuns")
	comp.NumLegs = s.int32Field("nLegs")
	s.int32Field("nSVar")
	s.int32Field("nDVar")
	s.int32Field("nVect")
	s.int32Field("nChild")
	comp.NumDynAxes = s.int32Field("nDynAx")
	if s.err != nil {
		return nil, errors.Wrap(s.err, "DecodeComponent error")
	}
	return comp, nil
}

func DecodeTemplate3D(reader *xdr.Reader) (*Template3D, error) {
	s := decodeState{reader: reader}
	template := Template3D{}
	template.NumCells = s.int32Field("nCells")
	template.NumCellsI = s.int32Field("nCellsI")
	template.NumCellsJ = s.int32Field("nCellsJ")
	template.NumCellsK = s.int32Field("nCellsK")
	template.DynAxisI = s.int32Field("dynAxI")
	template.DynAxisJ = s.int32Field("dynAxJ")
	template.DynAxisK = s.int32Field("dynAxK")
	template.Coord = Coord3D(strings.TrimSpace(s.stringField("coordSys")))
	if s.err != nil {
		return nil, errors.Wrap(s.err, "DecodeTemplate3D error")
	}
	return &template, nil
}

// DecodeTemplate3DArrays reads the face-location arrays block that always
// follows a 3D geometry declaration.
func DecodeTemplate3DArrays(reader *xdr.Reader, template *Template3D) error {
	s := decodeState{reader: reader}
	template.FaceI = s.doubleArrayField("fI")
	template.FaceJ = s.doubleArrayField("fJ")
	template.FaceK = s.doubleArrayField("fK")
	template.Gravity = s.doubleArrayField("grav")
	if s.err != nil {
		return errors.Wrap(s.err, "DecodeTemplate3DArrays error")
	}
	return nil
}

func DecodeTemplate2D(reader *xdr.Reader) (*Template2D, error) {
	s := decodeState{reader: reader}
	template := Template2D{}
	template.NumCells = s.int32Field("nCells")
	template.NumCellsI = s.int32Field("nCellsI")
	template.NumCellsJ = s.int32Field("nCellsJ")
	template.DynAxisI = s.int32Field("dynAxI")
	template.DynAxisJ = s.int32Field("dynAxJ")
	template.Coord = Coord2D(strings.TrimSpace(s.stringField("coordSys")))
	if s.err != nil {
		return nil, errors.Wrap(s.err, "DecodeTemplate2D error")
	}
	return &template, nil
}

func DecodeTemplate2DArrays(reader *xdr.Reader, template *Template2D) error {
	s := decodeState{reader: reader}
	template.FaceI = s.doubleArrayField("fI")
	template.FaceJ = s.doubleArrayField("fJ")
	template.Gravity = s.doubleArrayField("grav")
	if s.err != nil {
		return errors.Wrap(s.err, "DecodeTemplate2DArrays error")
	}
	return nil
}

func DecodeTemplate1D(reader *xdr.Reader) (*Template1D, error) {
	s := decodeState{reader: reader}
	template := Template1D{}
	template.NumCells = s.int32Field("nCells")
	template.DynAxisI = s.int32Field("dynAxI")
	if s.err != nil {
		return nil, errors.Wrap(s.err, "DecodeTemplate1D error")
	}
	return &template, nil
}

// DecodeTemplate1DArrays reads face locations, gravity and the per-cell flow
// area array that only 1D geometry carries.
func DecodeTemplate1DArrays(reader *xdr.Reader, template *Template1D) error {
	s := decodeState{reader: reader}
	template.FaceI = s.doubleArrayField("fI")
	template.Gravity = s.doubleArrayField("grav")
	template.FlowArea = s.doubleArrayField("fa")
	if s.err != nil {
		return errors.Wrap(s.err, "DecodeTemplate1DArrays error")
	}
	return nil
}

func DecodeSideLeg(reader *xdr.Reader) (*SideLeg, error) {
	s := decodeState{reader: reader}
	leg := SideLeg{}
	leg.StartCell = s.int32Field("sCell")
	leg.EndCell = s.int32Field("eCell")
	leg.JunctionCell = s.int32Field("jCell")
	if s.err != nil {
		return nil, errors.Wrap(s.err, "DecodeSideLeg error")
	}
	return &leg, nil
}

func DecodeDynamicAxis(reader *xdr.Reader) (*DynamicAxis, error) {
	s := decodeState{reader: reader}
	axis := DynamicAxis{}
	axis.Axis = s.stringField("dsAx")
	axis.VarType = s.stringField("varType")
	axis.ShortName = s.stringField("sVarName")
	axis.LongName = s.stringField("lVarName")
	axis.Max = s.int32Field("vMax")
	if s.err != nil {
		return nil, errors.Wrap(s.err, "DecodeDynamicAxis error")
	}
	return &axis, nil
}

// DecodeChannel reads a variable-declaration block payload. startIncrement is
// the running byte offset within a time-record at which this channel's data
// begins; the caller advances it for time-dependent channels.
func DecodeChannel(reader *xdr.Reader, owner Key, startIncrement int32) (*Channel, error) {
	s := decodeState{reader: reader}
	channel := Channel{Component: owner, StartIncrement: startIncrement}
	channel.Name = strings.TrimSpace(s.stringField("name"))
	channel.VarLabel = s.stringField("varLabel")
	channel.UnitType = s.stringField("uType")
	channel.UnitLabel = s.stringField("uLabel")
	channel.DimPosAt = strings.TrimSpace(s.stringField("dimPosAt"))
	channel.FreqAt = strings.TrimSpace(s.stringField("freqAt"))
	channel.CMapAt = s.stringField("cMapAt")
	channel.VectAt = s.stringField("vectAt")
	channel.SpOptAt = s.stringField("spOptAt")
	channel.VectName = s.stringField("vectName")
	channel.TemplateIndex = s.int32Field("vTmpl")
	channel.VectorLength = s.int32Field("vLength")
	if s.err != nil {
		return nil, errors.Wrap(s.err, "DecodeChannel error")
	}
	return &channel, nil
}
