package voronoi

import (
	"github.com/0x0FACED/particle-voronoi/pkg/logger"
	"go.uber.org/zap"
)

// Индекс события в арене очереди
type EventID int

const noEvent EventID = -1

// Событие сканирования: точка (site event) или событие круга.
// Для события круга X уже сдвинут на радиус вправо, центр окружности - (X-Radius, Y).
type Event struct {
	Point
	Circle bool
	Radius float64
	// дуга, которая исчезнет (только для события круга)
	Arc ArcID
}

type eventNode struct {
	Event
	prev   EventID
	next   EventID
	queued bool
}

// Очередь событий - упорядоченный по (X, Y) двусвязный список в арене.
// Ссылки на события у дуг - индексы в эту арену.
type EventQueue struct {
	nodes []eventNode
	head  EventID
	size  int

	logger *logger.ZapLogger
}

func NewEventQueue(log *logger.ZapLogger) *EventQueue {
	if log == nil {
		log = logger.NewNop()
	}
	return &EventQueue{head: noEvent, logger: log}
}

func (q *EventQueue) Len() int {
	return q.size
}

func eventLess(a, b *Event) bool {
	return a.X < b.X || (a.X == b.X && a.Y < b.Y)
}

// Вставка с линейным проходом от головы. Точка, совпадающая с уже стоящей
// в очереди точкой, отбрасывается (false). События круга вставляются всегда,
// при равных координатах - после уже стоящих.
func (q *EventQueue) Insert(e Event) (EventID, bool) {
	prev := noEvent
	cur := q.head
	for cur != noEvent {
		node := &q.nodes[cur]
		if !e.Circle && !node.Circle && node.X == e.X && node.Y == e.Y {
			q.logger.Warn("[q] Найден дубликат точки, пропускаем", zap.Float64("x", e.X), zap.Float64("y", e.Y))
			return noEvent, false
		}
		if eventLess(&e, &node.Event) {
			break
		}
		prev = cur
		cur = node.next
	}

	id := EventID(len(q.nodes))
	q.nodes = append(q.nodes, eventNode{Event: e, prev: prev, next: cur, queued: true})

	if prev == noEvent {
		q.head = id
	} else {
		q.nodes[prev].next = id
	}
	if cur != noEvent {
		q.nodes[cur].prev = id
	}
	q.size++
	return id, true
}

// Удаление по идентификатору за O(1). Повторное удаление ничего не делает.
func (q *EventQueue) Remove(id EventID) {
	if id < 0 || int(id) >= len(q.nodes) {
		return
	}
	node := &q.nodes[id]
	if !node.queued {
		return
	}

	if node.prev == noEvent {
		q.head = node.next
	} else {
		q.nodes[node.prev].next = node.next
	}
	if node.next != noEvent {
		q.nodes[node.next].prev = node.prev
	}

	node.prev, node.next = noEvent, noEvent
	node.queued = false
	q.size--
}

// Достаем минимальное событие
func (q *EventQueue) PopMin() (Event, EventID, bool) {
	if q.head == noEvent {
		return Event{}, noEvent, false
	}
	id := q.head
	e := q.nodes[id].Event
	q.Remove(id)
	return e, id, true
}

// Событие по идентификатору и признак того, что оно еще в очереди
func (q *EventQueue) Get(id EventID) (Event, bool) {
	if id < 0 || int(id) >= len(q.nodes) {
		return Event{}, false
	}
	return q.nodes[id].Event, q.nodes[id].queued
}

// События в порядке очереди (для отладки и тестов)
func (q *EventQueue) Events() []Event {
	events := make([]Event, 0, q.size)
	for id := q.head; id != noEvent; id = q.nodes[id].next {
		events = append(events, q.nodes[id].Event)
	}
	return events
}
