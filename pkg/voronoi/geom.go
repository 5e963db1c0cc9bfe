package voronoi

import (
	"math"
)

const epsilon = 1e-9

// Точка на плоскости (позиция частицы или вершина диаграммы)
type Point struct {
	X float64
	Y float64
}

// Евклидово расстояние между точками
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Округление до пикселей для отрисовки, сам алгоритм этим не пользуется
func (p Point) ToDisplay() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

func (p Point) add(dx, dy float64) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Отрезок - ребро Вороного или ребро Делоне
type Segment struct {
	P1 Point
	P2 Point
}

func (s Segment) Length() float64 {
	return s.P1.Distance(s.P2)
}

// Центр окружности, проходящей через left, mid и right, если дуга mid
// между дугами left и right действительно схлопывается при движении
// прямой сканирования вправо. Для коллинеарных фокусов и расходящихся
// изломов события круга нет.
func convergence(left, mid, right Point) (Point, float64, bool) {
	bx := mid.X
	by := mid.Y
	ax := left.X - bx
	ay := left.Y - by
	cx := right.X - bx
	cy := right.Y - by

	d := 2 * (ax*cy - ay*cx)
	if d <= 2e-12 {
		return Point{}, 0, false
	}

	ha := ax*ax + ay*ay
	hc := cx*cx + cy*cy
	x := (cy*ha - ay*hc) / d
	y := (ax*hc - cx*ha) / d

	return Point{x + bx, y + by}, math.Sqrt(x*x + y*y), true
}

// x-координата параболы с фокусом site и директрисой x = directrix на высоте y.
// Если фокус лежит на директрисе, дуга вырождается в луч и возвращается x фокуса.
func parabolaX(site Point, y, directrix float64) float64 {
	p := directrix - site.X
	if p == 0 {
		return site.X
	}
	dy := y - site.Y
	return (site.X+directrix)/2 - dy*dy/(2*p)
}

// Ордината излома между дугой lower и следующей (выше по Y) дугой upper.
// false - у квадратного уравнения нет действительного корня.
func breakpointY(lower, upper Point, directrix float64) (float64, bool) {
	rfocx := upper.Y
	rfocy := upper.X
	pby2 := rfocy - directrix
	if pby2 == 0 {
		return rfocx, true
	}

	lfocx := lower.Y
	lfocy := lower.X
	plby2 := lfocy - directrix
	if plby2 == 0 {
		return lfocx, true
	}

	hl := lfocx - rfocx
	aby2 := 1/pby2 - 1/plby2
	b := hl / plby2
	if aby2 != 0 {
		disc := b*b - 2*aby2*(hl*hl/(-2*plby2)-lfocy+plby2/2+rfocy-pby2/2)
		if disc < 0 {
			return 0, false
		}
		return (-b+math.Sqrt(disc))/aby2 + rfocx, true
	}
	return (rfocx + lfocx) / 2, true
}

// Точка пляжной линии на высоте y на границе дуг a и b.
// Вырожденная дуга (фокус на директрисе) не задает x, берем соседнюю.
func beachPoint(a, b Point, y, directrix float64) Point {
	if a.X != directrix {
		return Point{parabolaX(a, y, directrix), y}
	}
	return Point{parabolaX(b, y, directrix), y}
}

// Направление, в котором уходит граница между нижней дугой lower и верхней upper,
// когда все события обработаны.
func bisectorDirection(lower, upper Point) (float64, float64) {
	dx := upper.X - lower.X
	dy := upper.Y - lower.Y
	l := math.Hypot(dx, dy)
	return dy / l, -dx / l
}
