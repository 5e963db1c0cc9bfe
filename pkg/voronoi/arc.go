package voronoi

import (
	"go.uber.org/zap"
)

// Индекс дуги в арене пляжной линии
type ArcID int

const noArc ArcID = -1

// Дуга пляжной линии. Параметры параболы не хранятся - они зависят
// от положения прямой сканирования и считаются по фокусу на месте.
type arc struct {
	site Point
	prev ArcID
	next ArcID
	// ожидающее событие круга, которое удалит эту дугу
	circle EventID
	// незавершенное ребро между этой дугой и next
	trace traceID
	alive bool
}

// Пересчитываем событие круга для тройки prev, id, next.
// Старое событие дуги всегда снимается.
func (b *BeachLine) checkCircle(id ArcID, sweepX float64) {
	b.removeCircle(id)

	a := b.arcs[id]
	if a.prev == noArc || a.next == noArc {
		return
	}
	left := b.arcs[a.prev].site
	right := b.arcs[a.next].site
	if left == right {
		return
	}

	center, radius, ok := convergence(left, a.site, right)
	if !ok {
		return
	}
	x := center.X + radius
	if x < sweepX-epsilon {
		b.logger.Debug("[c] Событие круга позади прямой, пропускаем", zap.Float64("x", x), zap.Float64("sweep", sweepX))
		return
	}

	ev, ok := b.queue.Insert(Event{Point: Point{x, center.Y}, Circle: true, Radius: radius, Arc: id})
	if !ok {
		return
	}
	b.arcs[id].circle = ev
	b.logger.Debug("[c] Новое событие круга", zap.Any("center", center), zap.Float64("radius", radius), zap.Any("arc-site", a.site))
}

func (b *BeachLine) removeCircle(id ArcID) {
	ev := b.arcs[id].circle
	if ev == noEvent {
		return
	}
	b.queue.Remove(ev)
	b.arcs[id].circle = noEvent
}

// Схлопывание дуги по событию круга. false - событие устарело.
func (b *BeachLine) collapse(e Event, id EventID) bool {
	arcID := e.Arc
	if arcID < 0 || int(arcID) >= len(b.arcs) {
		return false
	}
	a := b.arcs[arcID]
	if !a.alive || a.circle != id || a.prev == noArc || a.next == noArc {
		b.logger.Warn("[c] Устаревшее событие круга", zap.Any("event", e.Point))
		return false
	}
	b.arcs[arcID].circle = noEvent

	left, right := a.prev, a.next
	center := Point{e.X - e.Radius, e.Y}
	b.logger.Debug("[c] Дуга исчезает", zap.Any("arc-site", a.site), zap.Any("vertex", center))

	b.closeTrace(b.arcs[left].trace, center, false)
	b.closeTrace(a.trace, center, false)
	b.addDelaunay(b.arcs[left].site, b.arcs[right].site)

	b.arcs[left].next = right
	b.arcs[right].prev = left
	b.arcs[arcID] = arc{site: a.site, prev: noArc, next: noArc, circle: noEvent, trace: noTrace}

	b.removeCircle(left)
	b.removeCircle(right)
	b.arcs[left].trace = b.newTrace(center)

	b.checkCircle(left, e.X)
	b.checkCircle(right, e.X)
	return true
}
