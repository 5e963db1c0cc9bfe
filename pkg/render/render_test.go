package render

import (
	"bytes"
	"testing"

	"github.com/0x0FACED/particle-voronoi/pkg/voronoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDiagram() *voronoi.Diagram {
	return &voronoi.Diagram{
		VoronoiEdges: []voronoi.Segment{
			{P1: voronoi.Point{X: 5, Y: -100}, P2: voronoi.Point{X: 5, Y: 200}},
			{P1: voronoi.Point{X: 500, Y: 500}, P2: voronoi.Point{X: 600, Y: 600}},
		},
		DelaunayEdges: []voronoi.Segment{
			{P1: voronoi.Point{X: 0, Y: 0}, P2: voronoi.Point{X: 10, Y: 0}},
		},
		ShowVoronoi:  true,
		ShowDelaunay: true,
	}
}

func TestNewLayersClipsToViewport(t *testing.T) {
	d := testDiagram()
	vp := voronoi.NewViewport(0, 100, 0, 100)

	l := NewLayers(nil, d, vp)
	require.Len(t, l.Voronoi, 1)
	assert.InDelta(t, 5.0, l.Voronoi[0].P1.X, 1e-9)
	assert.InDelta(t, 0.0, l.Voronoi[0].P1.Y, 1e-9)
	assert.InDelta(t, 5.0, l.Voronoi[0].P2.X, 1e-9)
	assert.InDelta(t, 100.0, l.Voronoi[0].P2.Y, 1e-9)
	assert.Len(t, l.Delaunay, 1)

	// сама диаграмма не меняется
	assert.Len(t, d.VoronoiEdges, 2)
	assert.Equal(t, -100.0, d.VoronoiEdges[0].P1.Y)
}

func TestNewLayersToggles(t *testing.T) {
	d := testDiagram()
	d.ShowVoronoi = false
	vp := voronoi.NewViewport(0, 100, 0, 100)

	l := NewLayers(nil, d, vp)
	assert.Empty(t, l.Voronoi)
	assert.Len(t, l.Delaunay, 1)

	d.ShowVoronoi, d.ShowDelaunay = true, false
	l = NewLayers(nil, d, vp)
	assert.Len(t, l.Voronoi, 1)
	assert.Empty(t, l.Delaunay)

	assert.Empty(t, NewLayers(nil, nil, vp).Voronoi)
}

func TestChartFollowsViewport(t *testing.T) {
	vp := voronoi.NewViewport(0, 200, 0, 400)
	chart := Chart(NewLayers(nil, nil, vp), "test")

	require.NotEmpty(t, chart.XAxisList)
	require.NotEmpty(t, chart.YAxisList)
	assert.Equal(t, 200.0, chart.XAxisList[0].Max)
	assert.Equal(t, 400.0, chart.YAxisList[0].Max)
	assert.Equal(t, "X, 0..200", chart.XAxisList[0].Name)
	assert.Equal(t, "580px", chart.Initialization.Height)
	assert.Equal(t, "400px", chart.Initialization.Width)

	// широкая область упирается в максимальную ширину
	chart = Chart(NewLayers(nil, nil, voronoi.NewViewport(0, 1000, 0, 100)), "test")
	assert.Equal(t, "1020px", chart.Initialization.Width)
}

func TestPage(t *testing.T) {
	sites := []voronoi.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	d := voronoi.Compute(sites, 100, 100, nil)
	d.ShowVoronoi, d.ShowDelaunay = true, true

	chart := Chart(NewLayers(sites, d, voronoi.NewViewport(0, 100, 0, 100)), "test")

	var buf bytes.Buffer
	require.NoError(t, Page(&buf, chart, map[string]string{"particles": "12", "show_voronoi": "false"}, "<pre>logs here</pre>"))

	out := buf.String()
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "logs here")
	assert.Contains(t, out, `"particles":"12"`)
	assert.Contains(t, out, `"show_voronoi":"false"`)
}
