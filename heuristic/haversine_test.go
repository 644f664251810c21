package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvardanyan/pathtrace/heuristic"
)

func TestHaversine_SamePointIsZero(t *testing.T) {
	d := heuristic.Haversine(40.18, 44.51, 40.18, 44.51)
	assert.InDelta(t, 0, d, 1e-6)
}

func TestHaversine_KnownDistance(t *testing.T) {
	// Yerevan city center to Gyumri, roughly 87.4km apart in a straight line.
	d := heuristic.Haversine(40.1792, 44.4991, 40.7894, 43.8477)
	assert.InDelta(t, 87400, d, 1000)
}

func TestBuildGreatCircle_Admissible(t *testing.T) {
	coords := map[string][2]float64{
		"A": {40.10, 44.40},
		"B": {40.15, 44.45},
		"C": {40.20, 44.50},
	}
	lookup := func(id string) (float64, float64, error) {
		c := coords[id]
		return c[0], c[1], nil
	}
	h := heuristic.BuildGreatCircle(lookup, "C")
	assert.Equal(t, float64(0), h("C"))
	assert.Greater(t, h("A"), h("B"))
}
