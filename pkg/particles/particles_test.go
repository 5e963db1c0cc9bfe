package particles

import (
	"testing"

	"github.com/0x0FACED/particle-voronoi/pkg/voronoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(20, 500, 300, Random, 7)
	b := New(20, 500, 300, Random, 7)
	assert.Equal(t, a.Sites(), b.Sites())

	c := New(20, 500, 300, Random, 8)
	assert.NotEqual(t, a.Sites(), c.Sites())
}

func TestGridLayout(t *testing.T) {
	s := New(5, 100, 100, Grid, 1)
	require.Len(t, s.Particles, 5)

	// 2 строки по 3 столбца, последняя ячейка пустая
	assert.InDelta(t, 100.0/6, s.Particles[0].Pos.X, 1e-9)
	assert.InDelta(t, 25.0, s.Particles[0].Pos.Y, 1e-9)
	assert.InDelta(t, 100.0/6, s.Particles[3].Pos.X, 1e-9)
	assert.InDelta(t, 75.0, s.Particles[3].Pos.Y, 1e-9)
	assert.InDelta(t, 75.0, s.Particles[4].Pos.Y, 1e-9)

	assert.Empty(t, New(0, 100, 100, Grid, 1).Particles)
}

func TestStepStaysInBox(t *testing.T) {
	s := New(50, 200, 100, Random, 3)
	for i := 0; i < 500; i++ {
		s.Step(1.7)
	}
	for _, p := range s.Particles {
		assert.GreaterOrEqual(t, p.Pos.X, 0.0)
		assert.LessOrEqual(t, p.Pos.X, 200.0)
		assert.GreaterOrEqual(t, p.Pos.Y, 0.0)
		assert.LessOrEqual(t, p.Pos.Y, 100.0)
	}
}

func TestReflect(t *testing.T) {
	x, v := reflect(-3, -2, 10)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 2.0, v)

	x, v = reflect(12, 2, 10)
	assert.Equal(t, 8.0, x)
	assert.Equal(t, -2.0, v)

	x, v = reflect(5, 1, 10)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 1.0, v)
}

func TestSitesFeedSweep(t *testing.T) {
	s := New(30, 400, 400, Random, 11)
	s.Step(1)

	d := voronoi.Compute(s.Sites(), s.Width, s.Height, nil)
	assert.NotEmpty(t, d.VoronoiEdges)
	assert.NotEmpty(t, d.DelaunayEdges)
}
