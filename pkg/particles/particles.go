package particles

import (
	"math"
	"math/rand"

	"github.com/0x0FACED/particle-voronoi/pkg/voronoi"
)

type Layout string

const (
	Random Layout = "random"
	Grid   Layout = "grid"
)

type Particle struct {
	Pos voronoi.Point
	VX  float64
	VY  float64
}

type System struct {
	Particles []Particle
	Width     float64
	Height    float64
}

// Максимальная скорость, доля от размера области за единицу времени
const maxSpeed = 0.05

func New(n int, width, height float64, layout Layout, seed int64) *System {
	rnd := rand.New(rand.NewSource(seed))

	var positions []voronoi.Point
	if layout == Grid {
		positions = gridPositions(n, width, height)
	} else {
		positions = randomPositions(rnd, n, width, height)
	}

	s := &System{Width: width, Height: height, Particles: make([]Particle, len(positions))}
	for i, p := range positions {
		s.Particles[i] = Particle{
			Pos: p,
			VX:  (rnd.Float64()*2 - 1) * maxSpeed * width,
			VY:  (rnd.Float64()*2 - 1) * maxSpeed * height,
		}
	}
	return s
}

func randomPositions(rnd *rand.Rand, n int, width, height float64) []voronoi.Point {
	points := make([]voronoi.Point, n)
	for i := range points {
		points[i] = voronoi.Point{X: rnd.Float64() * width, Y: rnd.Float64() * height}
	}
	return points
}

func gridPositions(n int, width, height float64) []voronoi.Point {
	points := make([]voronoi.Point, 0, n)
	if n <= 0 {
		return points
	}

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := width / float64(cols)
	yStep := height / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// строк и столбцов может быть больше, чем точек
			if len(points) == n {
				return points
			}
			points = append(points, voronoi.Point{X: xStep/2 + float64(j)*xStep, Y: yStep/2 + float64(i)*yStep})
		}
	}
	return points
}

// Сдвигаем частицы на dt, от стенок отражаемся
func (s *System) Step(dt float64) {
	for i := range s.Particles {
		p := &s.Particles[i]
		p.Pos.X, p.VX = reflect(p.Pos.X+p.VX*dt, p.VX, s.Width)
		p.Pos.Y, p.VY = reflect(p.Pos.Y+p.VY*dt, p.VY, s.Height)
	}
}

func reflect(x, v, limit float64) (float64, float64) {
	for x < 0 || x > limit {
		if x < 0 {
			x = -x
		} else {
			x = 2*limit - x
		}
		v = -v
	}
	return x, v
}

// Текущие позиции
func (s *System) Sites() []voronoi.Point {
	sites := make([]voronoi.Point, len(s.Particles))
	for i, p := range s.Particles {
		sites[i] = p.Pos
	}
	return sites
}
