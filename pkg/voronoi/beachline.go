package voronoi

import (
	"math"

	"github.com/0x0FACED/particle-voronoi/pkg/logger"
	"go.uber.org/zap"
)

// Запас, на который продлеваются бесконечные ребра, не пересекающие область
const finalizeMargin = 1000

type traceID int

const noTrace traceID = -1

// Ребро Вороного в процессе построения.
// Два ребра, начатые одной вставкой точки, - половинки одного ребра (twin).
type trace struct {
	start  Point
	end    Point
	twin   traceID
	closed bool
	// закрыто на границе области
	final bool
}

// Пляжная линия: дуги упорядочены снизу вверх по Y, head - самая нижняя
type BeachLine struct {
	arcs   []arc
	head   ArcID
	traces []trace
	// область, по которой закрываются ребра в Finalize
	box Viewport

	queue   *EventQueue
	diagram *Diagram
	stats   *Stats

	logger *logger.ZapLogger
}

func NewBeachLine(queue *EventQueue, diagram *Diagram, stats *Stats, log *logger.ZapLogger) *BeachLine {
	if log == nil {
		log = logger.NewNop()
	}
	if stats == nil {
		stats = &Stats{}
	}
	return &BeachLine{
		head:    noArc,
		queue:   queue,
		diagram: diagram,
		stats:   stats,
		logger:  log,
	}
}

// Количество дуг на линии
func (b *BeachLine) Len() int {
	n := 0
	for id := b.head; id != noArc; id = b.arcs[id].next {
		n++
	}
	return n
}

// Фокусы дуг снизу вверх
func (b *BeachLine) Sites() []Point {
	var sites []Point
	for id := b.head; id != noArc; id = b.arcs[id].next {
		sites = append(sites, b.arcs[id].site)
	}
	return sites
}

func (b *BeachLine) newArc(site Point) ArcID {
	b.arcs = append(b.arcs, arc{site: site, prev: noArc, next: noArc, circle: noEvent, trace: noTrace, alive: true})
	return ArcID(len(b.arcs) - 1)
}

func (b *BeachLine) newTrace(start Point) traceID {
	b.traces = append(b.traces, trace{start: start, twin: noTrace})
	return traceID(len(b.traces) - 1)
}

func (b *BeachLine) newTwinTraces(start Point) (traceID, traceID) {
	lower := b.newTrace(start)
	upper := b.newTrace(start)
	b.traces[lower].twin = upper
	b.traces[upper].twin = lower
	return lower, upper
}

// Вставка дуги для новой точки на текущей позиции прямой сканирования
func (b *BeachLine) InsertSite(p Point, sweepX float64) {
	if b.head == noArc {
		b.head = b.newArc(p)
		b.logger.Debug("[bl] Первая дуга", zap.Any("site", p))
		return
	}

	// ищем дугу прямо над точкой, идя снизу вверх
	id := b.head
	for {
		next := b.arcs[id].next
		if next == noArc {
			b.split(id, p, sweepX)
			return
		}

		y, ok := breakpointY(b.arcs[id].site, b.arcs[next].site, sweepX)
		if !ok {
			b.logger.Debug("[bl] Нет пересечения парабол, идем дальше", zap.Any("site", b.arcs[id].site))
			id = next
			continue
		}
		if p.Y < y-epsilon {
			b.split(id, p, sweepX)
			return
		}
		if p.Y <= y+epsilon {
			v := beachPoint(b.arcs[id].site, b.arcs[next].site, y, sweepX)
			b.insertAtBreakpoint(id, next, p, v, sweepX)
			return
		}
		id = next
	}
}

// Разрезаем дугу id новой дугой: id, new, copy, next
func (b *BeachLine) split(id ArcID, p Point, sweepX float64) {
	b.removeCircle(id)

	old := b.arcs[id]
	start := Point{parabolaX(old.site, p.Y, sweepX), p.Y}
	b.logger.Debug("[bl] Разрез дуги", zap.Any("arc-site", old.site), zap.Any("site", p), zap.Any("start", start))

	n := b.newArc(p)
	c := b.newArc(old.site)

	b.arcs[n].prev = id
	b.arcs[n].next = c
	b.arcs[c].prev = n
	b.arcs[c].next = old.next
	if old.next != noArc {
		b.arcs[old.next].prev = c
	}
	b.arcs[id].next = n

	// незавершенное ребро с верхним соседом переходит к правой копии
	b.arcs[c].trace = old.trace
	b.arcs[id].trace, b.arcs[n].trace = b.newTwinTraces(start)

	b.addDelaunay(old.site, p)

	b.checkCircle(id, sweepX)
	b.checkCircle(n, sweepX)
	b.checkCircle(c, sweepX)
}

// Точка попала ровно в излом между left и right: старое ребро заканчивается в v,
// от v начинаются два новых
func (b *BeachLine) insertAtBreakpoint(left, right ArcID, p, v Point, sweepX float64) {
	b.logger.Debug("[bl] Точка попала в излом", zap.Any("site", p), zap.Any("vertex", v))
	b.removeCircle(left)
	b.removeCircle(right)

	b.closeTrace(b.arcs[left].trace, v, false)

	n := b.newArc(p)
	b.arcs[n].prev = left
	b.arcs[n].next = right
	b.arcs[left].next = n
	b.arcs[right].prev = n

	b.arcs[left].trace = b.newTrace(v)
	b.arcs[n].trace = b.newTrace(v)

	b.addDelaunay(b.arcs[left].site, p)
	b.addDelaunay(p, b.arcs[right].site)

	b.checkCircle(left, sweepX)
	b.checkCircle(right, sweepX)
}

// Закрываем ребро в точке end. Половинка ждет свою пару, после чего
// выдается один отрезок между их концами.
func (b *BeachLine) closeTrace(id traceID, end Point, final bool) {
	if id == noTrace {
		return
	}
	t := &b.traces[id]
	if t.closed {
		return
	}
	t.end = end
	t.closed = true
	t.final = final

	if t.twin == noTrace {
		b.addVoronoi(b.cutAtBox(Segment{t.start, t.end}, false, t.final), t.final)
		return
	}
	twin := b.traces[t.twin]
	if !twin.closed {
		return
	}
	b.addVoronoi(b.cutAtBox(Segment{twin.end, t.end}, twin.final, t.final), t.final || twin.final)
}

// Концы, достроенные до границы, переносим туда, где ребро выходит из области.
// Вершины диаграммы не двигаются, даже если лежат вне области.
func (b *BeachLine) cutAtBox(s Segment, finalP1, finalP2 bool) Segment {
	if !finalP1 && !finalP2 {
		return s
	}
	dx := s.P2.X - s.P1.X
	dy := s.P2.Y - s.P1.Y
	t0, t1, ok := clipParametric(s.P1, dx, dy, b.box, 0, 1)
	if !ok {
		return s
	}

	cut := s
	if finalP1 {
		cut.P1 = s.P1.add(t0*dx, t0*dy)
	}
	if finalP2 {
		cut.P2 = s.P1.add(t1*dx, t1*dy)
	}
	if cut.Length() < epsilon {
		return s
	}
	return cut
}

func (b *BeachLine) addVoronoi(s Segment, unbounded bool) {
	if s.Length() < epsilon {
		b.logger.Debug("[bl] Ребро нулевой длины, пропускаем", zap.Any("at", s.P1))
		return
	}
	b.diagram.VoronoiEdges = append(b.diagram.VoronoiEdges, s)
	if unbounded {
		b.stats.UnboundedEdges++
	}
}

func (b *BeachLine) addDelaunay(p1, p2 Point) {
	b.diagram.DelaunayEdges = append(b.diagram.DelaunayEdges, Segment{p1, p2})
}

// Достраиваем оставшиеся ребра до границы области [0,width]x[0,height]
func (b *BeachLine) Finalize(width, height float64) {
	box := NewViewport(0, width, 0, height)
	b.box = box

	for id := b.head; id != noArc; id = b.arcs[id].next {
		a := b.arcs[id]
		if a.next == noArc || a.trace == noTrace || b.traces[a.trace].closed {
			continue
		}

		start := b.traces[a.trace].start
		dx, dy := bisectorDirection(a.site, b.arcs[a.next].site)
		end := rayExit(start, dx, dy, box)
		b.logger.Debug("[bl] Ребро уходит за границу", zap.Any("start", start), zap.Any("end", end))

		b.closeTrace(a.trace, end, true)
		b.arcs[id].trace = noTrace
	}
}

// Точка, в которой луч из start выходит из области.
// Если луч область не пересекает - продлеваем на запас.
func rayExit(start Point, dx, dy float64, box Viewport) Point {
	_, t1, ok := clipParametric(start, dx, dy, box, 0, math.Inf(1))
	if !ok || math.IsInf(t1, 1) {
		return start.add(dx*finalizeMargin, dy*finalizeMargin)
	}
	return start.add(dx*t1, dy*t1)
}
