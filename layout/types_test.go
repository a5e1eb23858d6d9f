package layout_test

import (
	"testing"

	"github.com/katalvlaran/forcegraph/layout"
	"github.com/stretchr/testify/assert"
)

// TestSettings_Defaults verifies the shipped profile is valid and sequential.
func TestSettings_Defaults(t *testing.T) {
	s := layout.DefaultSettings[float64]()
	assert.NoError(t, s.Validate())
	assert.Equal(t, 2, s.Dimensions)
	assert.Zero(t, s.ChunkSize, "default profile is sequential")
	assert.Zero(t, s.BarnesHut, "default profile is exact")
	assert.Nil(t, s.PreventOverlapping)
}

// TestSettings_Validate walks the sentinel table.
func TestSettings_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*layout.Settings[float64])
		want   error
	}{
		{"dimensions 1", func(s *layout.Settings[float64]) { s.Dimensions = 1 }, layout.ErrBadDimensions},
		{"dimensions 4", func(s *layout.Settings[float64]) { s.Dimensions = 4 }, layout.ErrBadDimensions},
		{"negative chunk", func(s *layout.Settings[float64]) { s.ChunkSize = -1 }, layout.ErrBadChunkSize},
		{"negative ka", func(s *layout.Settings[float64]) { s.Ka = -1 }, layout.ErrBadCoefficient},
		{"negative kg", func(s *layout.Settings[float64]) { s.Kg = -0.5 }, layout.ErrBadCoefficient},
		{"negative kr", func(s *layout.Settings[float64]) { s.Kr = -2 }, layout.ErrBadCoefficient},
		{"zero speed", func(s *layout.Settings[float64]) { s.Speed = 0 }, layout.ErrBadSpeed},
		{"negative theta", func(s *layout.Settings[float64]) { s.BarnesHut = -0.5 }, layout.ErrBadTheta},
		{"theta above 2", func(s *layout.Settings[float64]) { s.BarnesHut = 2.5 }, layout.ErrBadTheta},
		{"zero node size", func(s *layout.Settings[float64]) {
			s.PreventOverlapping = &layout.Overlap[float64]{NodeSize: 0, KrPrime: 1}
		}, layout.ErrBadOverlap},
		{"zero kr prime", func(s *layout.Settings[float64]) {
			s.PreventOverlapping = &layout.Overlap[float64]{NodeSize: 1, KrPrime: 0}
		}, layout.ErrBadOverlap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := layout.DefaultSettings[float64]()
			tc.mutate(&s)
			assert.ErrorIs(t, s.Validate(), tc.want)
		})
	}
}

// TestSettings_ValidCombinations verifies boundary values that must pass.
func TestSettings_ValidCombinations(t *testing.T) {
	s := layout.DefaultSettings[float64]()
	s.Dimensions = 3
	s.ChunkSize = 8
	s.BarnesHut = 2 // inclusive upper bound
	s.PreventOverlapping = &layout.Overlap[float64]{NodeSize: 0.5, KrPrime: 10}
	assert.NoError(t, s.Validate())

	s = layout.DefaultSettings[float64]()
	s.Ka, s.Kg, s.Kr = 0, 0, 0 // coefficients may be zero
	assert.NoError(t, s.Validate())
}
