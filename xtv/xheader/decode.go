package xheader

import (
	"github.com/pkg/errors"

	"xtvkit/xtv/xdr"
)

// Decode reads the starting block from the current position. The block has a
// fixed shape: one string, seventeen integers, seven strings.
func Decode(reader *xdr.Reader) (*StartingBlock, error) {
	block := StartingBlock{}
	err := error(nil)

	block.HdrString, err = reader.ReadString()
	if err != nil {
		return nil, errors.Wrap(err, "xheader.Decode error: read HdrString")
	}

	intFields := []struct {
		name   string
		target *int32
	}{
		{"major_version", &block.MajorVersion},
		{"minor_version", &block.MinorVersion},
		{"revision", &block.Revision},
		{"resolution", &block.Resolution},
		{"num_units", &block.NumUnits},
		{"num_components", &block.NumComponents},
		{"num_static_vars", &block.NumStaticVars},
		{"num_dynamic_vars", &block.NumDynamicVars},
		{"num_static_channels", &block.NumStaticChannels},
		{"num_dynamic_channels", &block.NumDynamicChannels},
		{"data_start", &block.DataStart},
		{"data_len", &block.DataLen},
		{"num_points", &block.NumPoints},
		{"status", &block.Status},
		{"spare_1", &block.Spare1},
		{"spare_2", &block.Spare2},
		{"spare_3", &block.Spare3},
	}
	for _, field := range intFields {
		*field.target, err = reader.ReadInt()
		if err != nil {
			return nil, errors.Wrapf(err, `xheader.Decode error: read "%s"`, field.name)
		}
	}

	stringFields := []struct {
		name   string
		target *string
	}{
		{"format", &block.Format},
		{"units_system", &block.UnitsSystem},
		{"system_name", &block.SystemName},
		{"os", &block.OS},
		{"date", &block.Date},
		{"time", &block.Time},
		{"title", &block.Title},
	}
	for _, field := range stringFields {
		*field.target, err = reader.ReadString()
		if err != nil {
			return nil, errors.Wrapf(err, `xheader.Decode error: read "%s"`, field.name)
		}
	}

	return &block, nil
}
