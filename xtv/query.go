package xtv

import (
	"xtvkit/xtv/xchan"
)

type (
	// TimePoint pairs a simulation time with a channel value.
	TimePoint struct {
		Time  float64 `json:"time"`
		Value float64 `json:"value"`
	}

	// AxialPoint pairs an axial coordinate with a channel value.
	AxialPoint struct {
		Z     float64 `json:"z"`
		Value float64 `json:"value"`
	}

	// Resolved is a channel identifier bound to the file's catalog. CompType
	// is empty when no component owns the variable; queries on such a
	// resolution fail with ErrInvalidChannel.
	Resolved struct {
		VarName  string
		CompType string
		CompID   int32
		Axial    int32
		Radial   int32
		Theta    int32
	}
)

// Resolve parses a channel identifier and binds it to the owning component,
// scanning the types sharing the parsed id for the one that declares the
// variable. An identifier that matches no known channel degrades to the
// permissive fallback: the whole string as variable name with component id
// zero. Resolution never fails; unresolvable identifiers surface as
// ErrInvalidChannel from the query that uses them.
func (f *File) Resolve(channel string) Resolved {
	id := xchan.Parse(channel)
	compType, ok := f.componentType(id.ComponentID, id.VarName)
	if !ok {
		id = xchan.Fallback(channel)
		compType, _ = f.componentType(id.ComponentID, id.VarName)
	}
	return Resolved{
		VarName:  id.VarName,
		CompType: compType,
		CompID:   id.ComponentID,
		Axial:    id.Axial,
		Radial:   id.Radial,
		Theta:    id.Theta,
	}
}

// Value retrieves a single value for a channel identifier at a time.
func (f *File) Value(time float64, channel string) (float64, error) {
	r := f.Resolve(channel)
	i, j, k, err := f.transformIndices(r.CompID, r.CompType, r.VarName, r.Radial, r.Theta, r.Axial)
	if err != nil {
		return 0, err
	}
	return f.Data(time, r.CompID, r.CompType, r.VarName, i, j, k)
}

// AxialValue retrieves a single value for a channel identifier at a time and
// an exact axial coordinate. The identifier's axial field is irrelevant here;
// radial and theta still select the column the profile is read from.
func (f *File) AxialValue(time float64, channel string, zLoc float64) (float64, error) {
	r := f.Resolve(channel)
	return f.AxialData(time, r.CompID, r.CompType, r.VarName, zLoc, r.Radial, r.Theta)
}

// TimeSeries returns the full (time, value) history of a channel identifier,
// one point per recorded edit. The first error aborts the whole series.
func (f *File) TimeSeries(channel string) ([]TimePoint, error) {
	r := f.Resolve(channel)
	i, j, k, err := f.transformIndices(r.CompID, r.CompType, r.VarName, r.Radial, r.Theta, r.Axial)
	if err != nil {
		return nil, err
	}
	series := make([]TimePoint, 0, len(f.Times))
	for _, time := range f.Times {
		value, err := f.Data(time, r.CompID, r.CompType, r.VarName, i, j, k)
		if err != nil {
			return nil, err
		}
		series = append(series, TimePoint{Time: time, Value: value})
	}
	return series, nil
}

// TimeSeriesAt returns the (time, value) history of a channel identifier at a
// fixed axial location, interpolating in space at every edit.
func (f *File) TimeSeriesAt(channel string, zLoc float64) ([]TimePoint, error) {
	r := f.Resolve(channel)
	series := make([]TimePoint, 0, len(f.Times))
	for _, time := range f.Times {
		value, err := f.axialValueAt(time, r.CompID, r.CompType, r.VarName, zLoc, r.Radial, r.Theta)
		if err != nil {
			return nil, err
		}
		series = append(series, TimePoint{Time: time, Value: value})
	}
	return series, nil
}

// AxialProfile returns the (z, value) pairs of a channel identifier across
// its whole axial extent at one time.
func (f *File) AxialProfile(time float64, channel string) ([]AxialPoint, error) {
	r := f.Resolve(channel)
	zLocs, err := f.AxialLocations(time, r.CompID, r.CompType, r.VarName)
	if err != nil {
		return nil, err
	}
	profile := make([]AxialPoint, 0, len(zLocs))
	for _, z := range zLocs {
		value, err := f.AxialData(time, r.CompID, r.CompType, r.VarName, z, r.Radial, r.Theta)
		if err != nil {
			return nil, err
		}
		profile = append(profile, AxialPoint{Z: z, Value: value})
	}
	return profile, nil
}

// TimeData retrieves values at explicit mesh indices for a list of times.
func (f *File) TimeData(times []float64, id int32, compType, varName string, i, j, k int32) ([]float64, error) {
	result := make([]float64, 0, len(times))
	for _, time := range times {
		value, err := f.Data(time, id, compType, varName, i, j, k)
		if err != nil {
			return nil, err
		}
		result = append(result, value)
	}
	return result, nil
}
