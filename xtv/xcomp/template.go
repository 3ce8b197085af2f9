package xcomp

type (
	// Template describes one geometric mesh attached to a component. The
	// concrete variants carry exactly the fields their dimensionality uses,
	// so nothing is optional inside a variant.
	Template interface {
		// Dims returns the declared cell counts per axis; unused axes are 0.
		Dims() (i, j, k int32)
		// AxisLabels returns the semantic axis labels the coordinate system
		// fixes; unused axes are empty.
		AxisLabels() (i, j, k string)
	}

	Template1D struct {
		NumCells int32     `json:"num_cells"`
		DynAxisI int32     `json:"dyn_axis_i"`
		FaceI    []float64 `json:"face_i"`
		Gravity  []float64 `json:"gravity"`
		FlowArea []float64 `json:"flow_area"`
	}

	Template2D struct {
		NumCells  int32     `json:"num_cells"`
		NumCellsI int32     `json:"num_cells_i"`
		NumCellsJ int32     `json:"num_cells_j"`
		DynAxisI  int32     `json:"dyn_axis_i"`
		DynAxisJ  int32     `json:"dyn_axis_j"`
		Coord     Coord2D   `json:"coord"`
		FaceI     []float64 `json:"face_i"`
		FaceJ     []float64 `json:"face_j"`
		Gravity   []float64 `json:"gravity"`
	}

	Template3D struct {
		NumCells  int32     `json:"num_cells"`
		NumCellsI int32     `json:"num_cells_i"`
		NumCellsJ int32     `json:"num_cells_j"`
		NumCellsK int32     `json:"num_cells_k"`
		DynAxisI  int32     `json:"dyn_axis_i"`
		DynAxisJ  int32     `json:"dyn_axis_j"`
		DynAxisK  int32     `json:"dyn_axis_k"`
		Coord     Coord3D   `json:"coord"`
		FaceI     []float64 `json:"face_i"`
		FaceJ     []float64 `json:"face_j"`
		FaceK     []float64 `json:"face_k"`
		Gravity   []float64 `json:"gravity"`
	}

	// Coord2D and Coord3D tag the coordinate system a template is declared
	// in; the tag fixes the semantic axis labels.
	Coord2D string
	Coord3D string
)

const (
	Cart2D = Coord2D("CART2D")
	CylRZ  = Coord2D("CYLRZ")
	CylRT  = Coord2D("CYLRT")
	CylTZ  = Coord2D("CYLTZ")

	Cart3D = Coord3D("CART3D")
	Cyl3D  = Coord3D("CYL3D")
)

func (c Coord2D) AxisLabels() (string, string) {
	switch c {
	case Cart2D:
		return "x", "y"
	case CylRZ:
		return "r", "z"
	case CylRT:
		return "r", "t"
	case CylTZ:
		return "t", "z"
	}
	return "", ""
}

func (c Coord3D) AxisLabels() (string, string, string) {
	switch c {
	case Cart3D:
		return "x", "y", "z"
	case Cyl3D:
		return "r", "t", "z"
	}
	return "", "", ""
}

func (t *Template1D) Dims() (int32, int32, int32) { return t.NumCells, 0, 0 }

func (t *Template1D) AxisLabels() (string, string, string) { return "x", "", "" }

func (t *Template2D) Dims() (int32, int32, int32) { return t.NumCellsI, t.NumCellsJ, 0 }

func (t *Template2D) AxisLabels() (string, string, string) {
	i, j := t.Coord.AxisLabels()
	return i, j, ""
}

func (t *Template3D) Dims() (int32, int32, int32) {
	return t.NumCellsI, t.NumCellsJ, t.NumCellsK
}

func (t *Template3D) AxisLabels() (string, string, string) {
	return t.Coord.AxisLabels()
}
