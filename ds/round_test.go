package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundPlaces(t *testing.T) {
	assert.Equal(t, 0.1, RoundPlaces(0.1000000000000003, 13))
	assert.Equal(t, 1.5, RoundPlaces(1.5, 13))
	assert.Equal(t, 0.33, RoundPlaces(1.0/3.0, 2))
	assert.Equal(t, -0.33, RoundPlaces(-1.0/3.0, 2))
	assert.Equal(t, 3.0, RoundPlaces(2.5, 0))
}
