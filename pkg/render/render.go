package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/0x0FACED/particle-voronoi/pkg/voronoi"
	"github.com/0x0FACED/particle-voronoi/static"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Что попадет на график после фильтрации по видимой области и переключателям
type Layers struct {
	Viewport voronoi.Viewport
	Sites    []voronoi.Point
	Voronoi  []voronoi.Segment
	Delaunay []voronoi.Segment
}

func NewLayers(sites []voronoi.Point, d *voronoi.Diagram, vp voronoi.Viewport) Layers {
	l := Layers{Viewport: vp, Sites: sites}
	if d == nil {
		return l
	}
	if d.ShowVoronoi {
		l.Voronoi = visible(d.VoronoiEdges, vp)
	}
	if d.ShowDelaunay {
		l.Delaunay = visible(d.DelaunayEdges, vp)
	}
	return l
}

// Отбрасываем невидимые ребра и обрезаем остальные, исходные списки не трогаем
func visible(edges []voronoi.Segment, vp voronoi.Viewport) []voronoi.Segment {
	out := make([]voronoi.Segment, 0, len(edges))
	for _, e := range edges {
		if !vp.Intersects(e) {
			continue
		}
		if clipped, ok := vp.Clip(e); ok {
			out = append(out, clipped)
		}
	}
	return out
}

const (
	chartHeight   = 580
	chartMinWidth = 400
	chartMaxWidth = 1020
)

// Оси совпадают с областью, ширина графика повторяет ее пропорции
func prepareScatter(scatter *charts.Scatter, title string, vp voronoi.Viewport) {
	width := chartMaxWidth
	if h := vp.Yb - vp.Yt; h > 0 {
		width = int(math.Round(chartHeight * (vp.Xr - vp.Xl) / h))
		width = max(chartMinWidth, min(chartMaxWidth, width))
	}

	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: fmt.Sprintf("%dpx", chartHeight),
			Width:  fmt.Sprintf("%dpx", width),
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "value",
			Name:      fmt.Sprintf("X, %g..%g", vp.Xl, vp.Xr),
			Min:       vp.Xl,
			Max:       vp.Xr,
			AxisLabel: &opts.AxisLabel{Color: "white"},
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "value",
			Name:      fmt.Sprintf("Y, %g..%g", vp.Yt, vp.Yb),
			Min:       vp.Yt,
			Max:       vp.Yb,
			AxisLabel: &opts.AxisLabel{Color: "white"},
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
		}),
	)

	// масштаб колесом по обеим осям
	for _, orient := range []string{"horizontal", "vertical"} {
		scatter.SetGlobalOptions(charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     orient,
		}))
	}
}

func segmentLine(name, color string, s voronoi.Segment) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)
	line.AddSeries(name, []opts.LineData{
		{Value: []float64{s.P1.X, s.P1.Y}},
		{Value: []float64{s.P2.X, s.P2.Y}},
	}).SetSeriesOptions(
		charts.WithLineStyleOpts(opts.LineStyle{
			Width: 2,
			Color: color,
		}),
	)
	return line
}

// График: частицы точками, ребра линиями поверх
func Chart(l Layers, title string) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, title, l.Viewport)

	points := make([]opts.ScatterData, 0, len(l.Sites))
	for _, p := range l.Sites {
		points = append(points, opts.ScatterData{
			Value: []float64{p.X, p.Y},
		})
	}
	scatter.AddSeries("Частицы", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for _, e := range l.Voronoi {
		scatter.Overlap(segmentLine("Вороной", "#5470c6", e))
	}
	for _, e := range l.Delaunay {
		scatter.Overlap(segmentLine("Делоне", "#ee6666", e))
	}
	return scatter
}

// Страница целиком: форма с текущими значениями, график и логи
func Page(w io.Writer, chart *charts.Scatter, form map[string]string, logsHTML string) error {
	if _, err := fmt.Fprintln(w, static.Part1); err != nil {
		return fmt.Errorf("write page header: %w", err)
	}
	if form == nil {
		form = map[string]string{}
	}
	state, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("encode form state: %w", err)
	}
	if _, err := fmt.Fprintf(w, static.FormState+"\n", state); err != nil {
		return fmt.Errorf("write form state: %w", err)
	}
	if err := chart.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	if _, err := fmt.Fprintln(w, static.Part2); err != nil {
		return fmt.Errorf("write page middle: %w", err)
	}
	if _, err := fmt.Fprintln(w, logsHTML); err != nil {
		return fmt.Errorf("write logs: %w", err)
	}
	if _, err := fmt.Fprintln(w, static.Part3); err != nil {
		return fmt.Errorf("write page footer: %w", err)
	}
	return nil
}
