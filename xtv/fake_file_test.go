package xtv

import (
	"bytes"
	"encoding/binary"
)

// testWriter accumulates the big-endian fields a synthetic file is built
// from, mirroring the layout the decoder expects byte for byte.
type testWriter struct {
	buf bytes.Buffer
}

func (w *testWriter) putInt(value int32) {
	_ = binary.Write(&w.buf, binary.BigEndian, value)
}

func (w *testWriter) putFloat(value float32) {
	_ = binary.Write(&w.buf, binary.BigEndian, value)
}

func (w *testWriter) putString(value string) {
	w.putInt(int32(len(value)))
	padded := (len(value) + 3) / 4 * 4
	bs := make([]byte, padded)
	copy(bs, value)
	w.buf.Write(bs)
}

func (w *testWriter) putDoubleArray(values []float64) {
	w.putInt(int32(len(values)))
	for _, value := range values {
		_ = binary.Write(&w.buf, binary.BigEndian, value)
	}
}

func (w *testWriter) bytes() []byte {
	return w.buf.Bytes()
}

// putBlock writes one self-sized header block: tag, revision, byte size,
// payload. The size covers the 16 byte preamble as well, so seeking
// start+size always lands on the next block.
func (w *testWriter) putBlock(tag string, payload []byte) {
	w.putString(tag)
	w.putInt(0)
	w.putInt(int32(16 + len(payload)))
	w.buf.Write(payload)
}

var (
	testTimes   = []float64{10, 11, 12, 13}
	testZht     = []float32{0, 0.5, 1, 1.5, -1, -1}
	testDataLen = int32(240)
)

type testChannelDecl struct {
	name     string
	dimPosAt string
	vTmpl    int32
	vLength  int32
}

func testStartingBlock(dataStart int32) []byte {
	return testStartingBlockWithFormat(dataStart, "MUX")
}

func testStartingBlockWithFormat(dataStart int32, format string) []byte {
	w := testWriter{}
	w.putString("XTV test fixture")
	ints := []int32{
		3, 0, 1, 0, // major, minor, revision, resolution
		0, 4, 0, 8, 0, 8, // units, components, static/dynamic vars and channels
		dataStart, testDataLen, int32(len(testTimes)),
		2,       // status: complete
		0, 0, 0, // spares
	}
	for _, value := range ints {
		w.putInt(value)
	}
	for _, value := range []string{
		format, "si", "testsys", "linux", "30 Aug 26", "12:00:00", "synthetic transient",
	} {
		w.putString(value)
	}
	return w.bytes()
}

func testComponentBlock(id int32, compType, title string, dim, nTempl, nLegs, nDynAx int32) []byte {
	w := testWriter{}
	w.putInt(id)
	w.putInt(0)
	w.putString(compType)
	w.putString(title)
	for _, value := range []int32{dim, nTempl, 0, nLegs, 0, 2, 0, 0, nDynAx} {
		w.putInt(value)
	}
	return w.bytes()
}

func testChannelBlock(decl testChannelDecl) []byte {
	w := testWriter{}
	w.putString(decl.name)
	w.putString(decl.name + " label")
	w.putString("unit type")
	w.putString("unit")
	w.putString(decl.dimPosAt)
	w.putString("TD")
	for i := 0; i < 4; i++ {
		w.putString("")
	}
	w.putInt(decl.vTmpl)
	w.putInt(decl.vLength)
	return w.bytes()
}

// testCatalog lays out four components over three header-block families:
// a 3D vessel, a 1D pipe with a side leg, and two heat structures sharing
// id 140 under the "htstrc" and "htstr" type tags.
func testCatalog() []byte {
	w := testWriter{}

	w.putBlock("GCHd", testComponentBlock(500, "vessel", "test vessel", 3, 1, 0, 0))
	g3 := testWriter{}
	for _, value := range []int32{12, 2, 2, 3, 0, 0, 0} {
		g3.putInt(value)
	}
	g3.putString("CART3D")
	w.putBlock("GD3D", g3.bytes())
	a3 := testWriter{}
	a3.putDoubleArray([]float64{0, 1, 2})
	a3.putDoubleArray([]float64{0, 1, 2})
	a3.putDoubleArray([]float64{0, 1, 2, 3})
	a3.putDoubleArray([]float64{0, 0, 1})
	w.putBlock("GD3A", a3.bytes())
	w.putBlock("VARD", testChannelBlock(testChannelDecl{"pn", "3dCc", 1, 12}))
	w.putBlock("VARD", testChannelBlock(testChannelDecl{"vlnz", "3dFaK", 1, 16}))

	w.putBlock("GCHd", testComponentBlock(100, "pipe", "test pipe", 1, 1, 1, 0))
	g1 := testWriter{}
	g1.putInt(5)
	g1.putInt(0)
	w.putBlock("GD1D", g1.bytes())
	a1 := testWriter{}
	a1.putDoubleArray([]float64{0, 1, 2, 3, 4, 5})
	a1.putDoubleArray([]float64{0, 0, 0, 0, 0, 0})
	a1.putDoubleArray([]float64{0.05, 0.05, 0.05, 0.05, 0.05})
	w.putBlock("GD1A", a1.bytes())
	leg := testWriter{}
	leg.putInt(1)
	leg.putInt(5)
	leg.putInt(3)
	w.putBlock("GDLg", leg.bytes())
	w.putBlock("VARD", testChannelBlock(testChannelDecl{"pn", "1dCc", 1, 5}))
	w.putBlock("VARD", testChannelBlock(testChannelDecl{"count", "0D", 0, 1}))

	w.putBlock("GCHd", testComponentBlock(140, "htstrc", "core rod", 2, 1, 0, 1))
	g2 := testWriter{}
	for _, value := range []int32{8, 2, 4, 0, 0} {
		g2.putInt(value)
	}
	g2.putString("CYLRZ")
	w.putBlock("GD2D", g2.bytes())
	a2 := testWriter{}
	a2.putDoubleArray([]float64{0, 0.005, 0.01})
	a2.putDoubleArray([]float64{0, 0.5, 1, 1.5, 2})
	a2.putDoubleArray(nil)
	w.putBlock("GD2A", a2.bytes())
	axis := testWriter{}
	axis.putString("J")
	axis.putString("real")
	axis.putString("zht")
	axis.putString("fine mesh heights")
	axis.putInt(6)
	w.putBlock("DsAx", axis.bytes())
	w.putBlock("VARD", testChannelBlock(testChannelDecl{"zht", "1dFa", 1, 6}))
	w.putBlock("VARD", testChannelBlock(testChannelDecl{"rftn", "2dFaJ", 1, 10}))

	w.putBlock("GCHd", testComponentBlock(140, "htstr", "downcomer wall", 2, 1, 0, 0))
	g2b := testWriter{}
	for _, value := range []int32{3, 1, 3, 0, 0} {
		g2b.putInt(value)
	}
	g2b.putString("CART2D")
	w.putBlock("GD2D", g2b.bytes())
	a2b := testWriter{}
	a2b.putDoubleArray([]float64{0, 1, 2, 3})
	a2b.putDoubleArray([]float64{0, 1, 2, 3})
	a2b.putDoubleArray(nil)
	w.putBlock("GD2A", a2b.bytes())
	w.putBlock("VARD", testChannelBlock(testChannelDecl{"htemp", "2dFaJ", 1, 4}))

	// a block type the decoder does not know and must skip by its size
	extra := testWriter{}
	extra.putInt(7)
	extra.putInt(7)
	w.putBlock("XtRa", extra.bytes())

	w.putBlock("DATA", nil)
	return w.bytes()
}

// testData builds the data region: one record per time edit, with the value
// of each channel cell derived from the record number and cell index so
// tests can predict any lookup exactly.
func testData() []byte {
	w := testWriter{}
	for record, time := range testTimes {
		for i := 0; i < 5; i++ {
			w.putFloat(0)
		}
		w.putFloat(float32(time))
		for cell := 1; cell <= 12; cell++ {
			w.putFloat(float32(1000*record + cell))
		}
		for cell := 1; cell <= 16; cell++ {
			w.putFloat(float32(2000*record + cell))
		}
		for cell := 0; cell < 5; cell++ {
			zcc := float64(cell) + 0.5
			w.putFloat(float32(2*time + 3*zcc))
		}
		w.putFloat(float32(record))
		for _, z := range testZht {
			w.putFloat(z)
		}
		for cell := 1; cell <= 10; cell++ {
			w.putFloat(float32(100*record + cell))
		}
		for cell := 1; cell <= 4; cell++ {
			w.putFloat(float32(10*record + cell))
		}
	}
	return w.bytes()
}

func testFileBytes() []byte {
	catalog := testCatalog()
	probe := testStartingBlock(0)
	dataStart := int32(len(probe) + len(catalog))

	out := bytes.Buffer{}
	out.Write(testStartingBlock(dataStart))
	out.Write(catalog)
	out.Write(testData())
	return out.Bytes()
}

func openTestFile() (*File, error) {
	return New(bytes.NewReader(testFileBytes()))
}
