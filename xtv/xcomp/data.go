package xcomp

import (
	"fmt"

	"xtvkit/ds"
)

type (
	// Key identifies a component within a file. The same numeric id may
	// legitimately appear under two different type tags (heat structures use
	// both "htstr" and "htstrc" over one id space), so the pair is the real
	// identity.
	Key struct {
		ID   int32  `json:"id"`
		Type string `json:"type"`
	}

	// Component is one physical object of the simulated system: a pipe, a
	// vessel, a heat structure. It owns its geometric templates and the
	// channels declared on it.
	Component struct {
		ID    int32  `json:"id"`
		Type  string `json:"type"`
		Title string `json:"title"`
		Dim   int32  `json:"dim"`

		NumTemplates int32 `json:"num_templates"`
		NumJunctions int32 `json:"num_junctions"`
		NumLegs      int32 `json:"num_legs"`
		NumDynAxes   int32 `json:"num_dyn_axes"`

		// Templates is addressed 1-based: channels refer to their template
		// through a 1-based index, so element 0 stays nil as a sentinel.
		Templates []Template    `json:"templates"`
		SideLegs  []SideLeg     `json:"side_legs"`
		DynAxes   []DynamicAxis `json:"dyn_axes"`

		Channels *ds.LinkedHashMap[string, *Channel] `json:"channels"`
	}

	// SideLeg is a branch-leg geometric link for T-junction style components.
	SideLeg struct {
		StartCell    int32 `json:"start_cell"`
		EndCell      int32 `json:"end_cell"`
		JunctionCell int32 `json:"junction_cell"`
	}

	// DynamicAxis is a mesh axis whose extent follows a simulation variable
	// instead of being fixed at declaration time.
	DynamicAxis struct {
		Axis      string `json:"axis"`
		VarType   string `json:"var_type"`
		ShortName string `json:"short_name"`
		LongName  string `json:"long_name"`
		Max       int32  `json:"max"`
	}

	// Channel is one named, retrievable variable scoped to a component.
	// StartIncrement is its byte offset within every time-record.
	Channel struct {
		Name      string `json:"name"`
		Component Key    `json:"component"`

		VarLabel  string `json:"var_label"`
		UnitType  string `json:"unit_type"`
		UnitLabel string `json:"unit_label"`

		// DimPosAt encodes dimensionality and face/cell position, e.g.
		// "3dFaK", "2dFaJ", "1dCc", "0D". It is fixed at parse time and
		// drives every later index transform and cell-linearization rule.
		DimPosAt string `json:"dim_pos_at"`
		FreqAt   string `json:"freq_at"`
		CMapAt   string `json:"c_map_at"`
		VectAt   string `json:"vect_at"`
		SpOptAt  string `json:"sp_opt_at"`
		VectName string `json:"vect_name"`

		TemplateIndex  int32 `json:"template_index"`
		VectorLength   int32 `json:"vector_length"`
		StartIncrement int32 `json:"start_increment"`
	}
)

func (c Key) String() string {
	return fmt.Sprintf("%d/%s", c.ID, c.Type)
}

// MarshalText renders the key as "id/type" so it can serve as a JSON object
// key when the component table is serialized.
func (c Key) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func NewComponent(id int32, compType string) *Component {
	return &Component{
		ID:        id,
		Type:      compType,
		Templates: []Template{nil},
		Channels:  ds.NewLinkedHashMap[string, *Channel](),
	}
}

func (c *Component) Key() Key {
	return Key{ID: c.ID, Type: c.Type}
}

// Template returns the 1-based template at index, or nil when the index does
// not resolve; scalar channels point at the sentinel slot.
func (c *Component) Template(index int32) Template {
	if index < 0 || int(index) >= len(c.Templates) {
		return nil
	}
	return c.Templates[index]
}

// TimeDependent reports whether the channel occupies space in every
// time-record of the data region.
func (c *Channel) TimeDependent() bool {
	return c.FreqAt == "TD"
}
