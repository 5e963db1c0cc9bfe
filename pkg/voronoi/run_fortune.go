package voronoi

import (
	"math"

	"github.com/0x0FACED/particle-voronoi/pkg/logger"
	"go.uber.org/zap"
)

type State int

const (
	Uninitialized State = iota
	Running
	Done
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Done:
		return "done"
	}
	return "unknown"
}

// Счетчики одного прохода
type Stats struct {
	Sites          int
	SiteEvents     int
	CircleEvents   int
	DuplicateSites int
	// ребра, хотя бы один конец которых достроен до границы
	UnboundedEdges int
}

// Алгоритм Форчуна: прямая сканирования идет по X слева направо.
// Не потокобезопасен, один Compute за раз.
type Sweep struct {
	ShowVoronoi  bool
	ShowDelaunay bool

	state  State
	width  float64
	height float64
	sweepX float64

	queue   *EventQueue
	beach   *BeachLine
	diagram *Diagram
	stats   Stats

	logger *logger.ZapLogger
}

func NewSweep(log *logger.ZapLogger) *Sweep {
	if log == nil {
		log = logger.NewNop()
	}
	return &Sweep{ShowVoronoi: true, ShowDelaunay: true, logger: log}
}

// Подготовка прохода: исправляем вырожденный старт, кладем точки в очередь,
// начинаем с пустой пляжной линии
func (s *Sweep) Init(sites []Point, width, height float64) {
	points := fixDegenerate(sites)

	s.width = width
	s.height = height
	s.sweepX = math.Inf(-1)
	s.stats = Stats{Sites: len(points)}
	s.diagram = &Diagram{ShowVoronoi: s.ShowVoronoi, ShowDelaunay: s.ShowDelaunay}
	s.queue = NewEventQueue(s.logger)
	s.beach = NewBeachLine(s.queue, s.diagram, &s.stats, s.logger)

	for _, p := range points {
		if _, ok := s.queue.Insert(Event{Point: p, Arc: noArc}); !ok {
			s.stats.DuplicateSites++
		}
	}

	s.state = Running
	s.logger.Info("[f] Проход подготовлен", zap.Int("sites", len(points)), zap.Int("queue", s.queue.Len()))
}

// Обрабатываем все события, затем достраиваем ребра до границы.
// После завершения повторный вызов ничего не меняет.
func (s *Sweep) Compute() {
	if s.state != Running {
		return
	}

	for {
		e, id, ok := s.queue.PopMin()
		if !ok {
			break
		}
		s.sweepX = math.Max(s.sweepX, e.X)

		if e.Circle {
			if s.beach.collapse(e, id) {
				s.stats.CircleEvents++
			}
			continue
		}
		s.logger.Debug("[f-for] Событие точки", zap.Any("site", e.Point), zap.Float64("sweep", s.sweepX))
		s.beach.InsertSite(e.Point, s.sweepX)
		s.stats.SiteEvents++
	}

	s.beach.Finalize(s.width, s.height)
	s.state = Done

	s.logger.Info("[f] Алгоритм завершен",
		zap.Int("voronoi", len(s.diagram.VoronoiEdges)),
		zap.Int("delaunay", len(s.diagram.DelaunayEdges)),
		zap.Int("circles", s.stats.CircleEvents),
		zap.Int("duplicates", s.stats.DuplicateSites),
	)
}

func (s *Sweep) State() State {
	return s.state
}

func (s *Sweep) Diagram() *Diagram {
	return s.diagram
}

func (s *Sweep) Stats() Stats {
	return s.stats
}

// Сколько событий осталось в очереди
func (s *Sweep) QueueLen() int {
	if s.queue == nil {
		return 0
	}
	return s.queue.Len()
}

// Полный проход за один вызов
func Compute(sites []Point, width, height float64, log *logger.ZapLogger) *Diagram {
	s := NewSweep(log)
	s.Init(sites, width, height)
	s.Compute()
	return s.Diagram()
}

// Если несколько точек делят минимальный X, стартовая дуга не определена.
// Сдвигаем совпавшие точки влево: j-я из k (по порядку) на k-1-j,
// так что при двух совпадениях сдвигается ровно одна на 1. Точные дубликаты
// сдвигаются вместе, их потом отбросит очередь.
func fixDegenerate(sites []Point) []Point {
	points := make([]Point, len(sites))
	copy(points, sites)
	if len(points) < 2 {
		return points
	}

	minX := points[0].X
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
	}

	var tied []Point
	for _, p := range points {
		if p.X != minX || containsPoint(tied, p) {
			continue
		}
		tied = append(tied, p)
	}
	if len(tied) < 2 {
		return points
	}

	k := len(tied)
	for i, p := range points {
		if p.X != minX {
			continue
		}
		for j, t := range tied {
			if t == p {
				points[i].X -= float64(k - 1 - j)
				break
			}
		}
	}
	return points
}

func containsPoint(points []Point, p Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}
