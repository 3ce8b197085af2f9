package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMidpoints(t *testing.T) {
	assert.Equal(t, []float64{0.5, 1.5, 2.5}, Midpoints([]float64{0, 1, 2, 3}))
	assert.Equal(t, []float64{1}, Midpoints([]float64{0.5, 1.5}))
	assert.Equal(t, []float64{}, Midpoints([]float64{1}))
	assert.Equal(t, []float64{}, Midpoints(nil))
}
