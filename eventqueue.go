package clipping

import "container/heap"

// eventQueue orders pending events for the sweep, following the original
// implementation's events-queue comparator: events are ordered primarily by
// point (lexicographically), then so that end events precede start events
// at the same point, then so that lower segments are processed before
// higher ones, matching the priorityq.go pattern of a container/heap-backed
// priority queue rather than a hand-rolled binary heap.
type eventQueue struct {
	arena *eventArena
	items eventHeap
}

func newEventQueue(arena *eventArena) *eventQueue {
	q := &eventQueue{arena: arena}
	heap.Init(&q.items)
	return q
}

func (q *eventQueue) push(id eventID) {
	heap.Push(&q.items, eventQueueEntry{id: id, arena: q.arena})
}

func (q *eventQueue) pop() (eventID, bool) {
	if q.items.Len() == 0 {
		return noEvent, false
	}
	entry := heap.Pop(&q.items).(eventQueueEntry)
	return entry.id, true
}

func (q *eventQueue) empty() bool {
	return q.items.Len() == 0
}

type eventQueueEntry struct {
	id    eventID
	arena *eventArena
}

// eventQueueLess implements the strict event ordering described by spec
// section 3 (strict lexicographic point order, end-before-start tie-break,
// then orientation-based tie-break for two start events sharing a point).
func eventQueueLess(arena *eventArena, a, b eventID) bool {
	ea, eb := arena.get(a), arena.get(b)
	if c := ea.Point.Compare(eb.Point); c != 0 {
		return c < 0
	}
	if ea.IsStart != eb.IsStart {
		// end events sort before start events at the same point, so that a
		// segment ending exactly where another begins is fully retired from
		// the status before the new one is inserted.
		return !ea.IsStart
	}
	oa, ob := arena.get(ea.Other), arena.get(eb.Other)
	if ea.IsStart {
		// both are start events of segments sharing their left endpoint:
		// order by the segment that turns more clockwise below the other,
		// i.e. the one whose other endpoint is oriented clockwise relative
		// to the other segment, so the sweep-line status receives the
		// geometrically lower segment first.
		switch Orient(ea.Point, oa.Point, ob.Point) {
		case Clockwise:
			return false
		case CounterClockwise:
			return true
		default:
			return ea.FromOperand < eb.FromOperand
		}
	}
	switch Orient(ea.Point, oa.Point, ob.Point) {
	case Clockwise:
		return true
	case CounterClockwise:
		return false
	default:
		return ea.FromOperand < eb.FromOperand
	}
}

// eventHeap implements container/heap.Interface, following the structural
// pattern of the reference priority queue used for tessellation event
// scheduling.
type eventHeap []eventQueueEntry

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	return eventQueueLess(h[i].arena, h[i].id, h[j].id)
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(eventQueueEntry))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
