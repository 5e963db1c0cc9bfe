package voronoi

import "math"

// Результат одного прохода: ребра Вороного и двойственные им ребра Делоне.
// После Compute списки только читаются.
type Diagram struct {
	VoronoiEdges  []Segment
	DelaunayEdges []Segment

	// что рисовать, на сам алгоритм не влияют
	ShowVoronoi  bool
	ShowDelaunay bool
}

// Видимая область
type Viewport struct {
	Xl, Xr, Yt, Yb float64
}

func NewViewport(xl, xr, yt, yb float64) Viewport {
	return Viewport{xl, xr, yt, yb}
}

// Пересекается ли ограничивающий прямоугольник отрезка с областью.
// Ничего не удаляет из диаграммы, используется при отрисовке.
func (v Viewport) Intersects(s Segment) bool {
	minX, maxX := math.Min(s.P1.X, s.P2.X), math.Max(s.P1.X, s.P2.X)
	minY, maxY := math.Min(s.P1.Y, s.P2.Y), math.Max(s.P1.Y, s.P2.Y)
	return minX <= v.Xr && maxX >= v.Xl && minY <= v.Yb && maxY >= v.Yt
}

// Обрезка отрезка по области (Лианг-Барски)
func (v Viewport) Clip(s Segment) (Segment, bool) {
	dx := s.P2.X - s.P1.X
	dy := s.P2.Y - s.P1.Y
	t0, t1, ok := clipParametric(s.P1, dx, dy, v, 0, 1)
	if !ok {
		return Segment{}, false
	}

	clipped := s
	if t0 > 0 {
		clipped.P1 = s.P1.add(t0*dx, t0*dy)
	}
	if t1 < 1 {
		clipped.P2 = s.P1.add(t1*dx, t1*dy)
	}
	return clipped, true
}

// Сужаем [t0, t1] параметра прямой a + t*(dx, dy) до части внутри области
func clipParametric(a Point, dx, dy float64, bbox Viewport, t0, t1 float64) (float64, float64, bool) {
	ax := a.X
	ay := a.Y

	// left
	q := ax - bbox.Xl
	if dx == 0 && q < 0 {
		return 0, 0, false
	}
	r := -q / dx
	if dx < 0 {
		if r < t0 {
			return 0, 0, false
		} else if r < t1 {
			t1 = r
		}
	} else if dx > 0 {
		if r > t1 {
			return 0, 0, false
		} else if r > t0 {
			t0 = r
		}
	}
	// right
	q = bbox.Xr - ax
	if dx == 0 && q < 0 {
		return 0, 0, false
	}
	r = q / dx
	if dx < 0 {
		if r > t1 {
			return 0, 0, false
		} else if r > t0 {
			t0 = r
		}
	} else if dx > 0 {
		if r < t0 {
			return 0, 0, false
		} else if r < t1 {
			t1 = r
		}
	}

	// top
	q = ay - bbox.Yt
	if dy == 0 && q < 0 {
		return 0, 0, false
	}
	r = -q / dy
	if dy < 0 {
		if r < t0 {
			return 0, 0, false
		} else if r < t1 {
			t1 = r
		}
	} else if dy > 0 {
		if r > t1 {
			return 0, 0, false
		} else if r > t0 {
			t0 = r
		}
	}
	// bottom
	q = bbox.Yb - ay
	if dy == 0 && q < 0 {
		return 0, 0, false
	}
	r = q / dy
	if dy < 0 {
		if r > t1 {
			return 0, 0, false
		} else if r > t0 {
			t0 = r
		}
	} else if dy > 0 {
		if r < t0 {
			return 0, 0, false
		} else if r < t1 {
			t1 = r
		}
	}

	return t0, t1, true
}
