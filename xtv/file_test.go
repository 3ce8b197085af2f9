package xtv

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xtvkit/xtv/xcomp"
)

func TestNewDecodesCatalog(t *testing.T) {
	file, err := openTestFile()
	require.NoError(t, err)

	assert.Equal(t, "MUX", file.Header.Format)
	assert.Equal(t, int32(len(testTimes)), file.Header.NumPoints)
	assert.Equal(t, testDataLen, file.Header.DataLen)
	assert.Equal(t, testTimes, file.Times)

	keys := file.Components.Keys()
	require.Equal(
		t,
		[]xcomp.Key{
			{ID: 500, Type: "vessel"},
			{ID: 100, Type: "pipe"},
			{ID: 140, Type: "htstrc"},
			{ID: 140, Type: "htstr"},
		},
		keys,
	)
}

func TestNewDecodesTemplates(t *testing.T) {
	file, err := openTestFile()
	require.NoError(t, err)

	vessel, ok := file.Component(500, "vessel")
	require.True(t, ok)
	template3D, ok := vessel.Template(1).(*xcomp.Template3D)
	require.True(t, ok)
	assert.Equal(t, xcomp.Cart3D, template3D.Coord)
	dimi, dimj, dimk := template3D.Dims()
	assert.Equal(t, int32(2), dimi)
	assert.Equal(t, int32(2), dimj)
	assert.Equal(t, int32(3), dimk)
	assert.Equal(t, []float64{0, 1, 2, 3}, template3D.FaceK)

	pipe, ok := file.Component(100, "pipe")
	require.True(t, ok)
	template1D, ok := pipe.Template(1).(*xcomp.Template1D)
	require.True(t, ok)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5}, template1D.FaceI)
	assert.Equal(t, []float64{0.05, 0.05, 0.05, 0.05, 0.05}, template1D.FlowArea)
	require.Len(t, pipe.SideLegs, 1)
	assert.Equal(t, xcomp.SideLeg{StartCell: 1, EndCell: 5, JunctionCell: 3}, pipe.SideLegs[0])

	core, ok := file.Component(140, "htstrc")
	require.True(t, ok)
	template2D, ok := core.Template(1).(*xcomp.Template2D)
	require.True(t, ok)
	assert.Equal(t, xcomp.CylRZ, template2D.Coord)
	require.Len(t, core.DynAxes, 1)
	assert.Equal(t, "zht", core.DynAxes[0].ShortName)
}

// The record offset of every channel accumulates over the declaration order
// of the time-dependent channels that precede it.
func TestNewAssignsStartIncrements(t *testing.T) {
	file, err := openTestFile()
	require.NoError(t, err)

	expected := []struct {
		id             int32
		compType       string
		name           string
		startIncrement int32
	}{
		{500, "vessel", "pn", 24},
		{500, "vessel", "vlnz", 72},
		{100, "pipe", "pn", 136},
		{100, "pipe", "count", 156},
		{140, "htstrc", "zht", 160},
		{140, "htstrc", "rftn", 184},
		{140, "htstr", "htemp", 224},
	}
	for _, e := range expected {
		comp, ok := file.Component(e.id, e.compType)
		require.True(t, ok, e.name)
		channel, ok := comp.Channels.Get(e.name)
		require.True(t, ok, e.name)
		assert.Equal(t, e.startIncrement, channel.StartIncrement, e.name)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New(bytes.NewReader(testStartingBlockWithFormat(0, "XXX")))
	require.Error(t, err)
	target := ErrUnsupportedFormat{}
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "XXX", target.Format)
}

func TestNewRejectsTruncatedHeader(t *testing.T) {
	full := testFileBytes()
	_, err := New(bytes.NewReader(full[:50]))
	require.Error(t, err)
}
