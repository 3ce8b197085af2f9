package xheader

type (
	// StartingBlock is the fixed-format block at offset zero of every XTV
	// file. Counts and offsets in it drive the rest of the decoding: the
	// data region begins at DataStart and holds NumPoints records of DataLen
	// bytes each.
	StartingBlock struct {
		HdrString          string `json:"hdr_string"`
		MajorVersion       int32  `json:"major_version"`
		MinorVersion       int32  `json:"minor_version"`
		Revision           int32  `json:"revision"`
		Resolution         int32  `json:"resolution"`
		NumUnits           int32  `json:"num_units"`
		NumComponents      int32  `json:"num_components"`
		NumStaticVars      int32  `json:"num_static_vars"`
		NumDynamicVars     int32  `json:"num_dynamic_vars"`
		NumStaticChannels  int32  `json:"num_static_channels"`
		NumDynamicChannels int32  `json:"num_dynamic_channels"`
		DataStart          int32  `json:"data_start"`
		DataLen            int32  `json:"data_len"`
		NumPoints          int32  `json:"num_points"`
		Status             int32  `json:"status"`
		Spare1             int32  `json:"spare_1"`
		Spare2             int32  `json:"spare_2"`
		Spare3             int32  `json:"spare_3"`
		Format             string `json:"format"`
		UnitsSystem        string `json:"units_system"`
		SystemName         string `json:"system_name"`
		OS                 string `json:"os"`
		Date               string `json:"date"`
		Time               string `json:"time"`
		Title              string `json:"title"`
	}
)

// FormatTag is the magic string every parseable file carries in Format.
const FormatTag = "MUX"

// Status values of a file: the producer updates the field as the simulation
// that writes the file progresses.
const (
	StatusStarted    = 0
	StatusInProgress = 1
	StatusComplete   = 2
)
