package pathfinder

import (
	"math"

	pqueue "gopkg.in/oleiade/lane.v1"
)

// frontier is a min-priority queue of tentative distances. Entries with equal
// distance pop in node rank order because the rank is folded into the key.
// A node may be queued several times; callers skip stale entries.
type frontier struct {
	queue *pqueue.PQueue
	span  int
}

type entry struct {
	name     string
	distance int
}

func newFrontier(nodes int) *frontier {
	if nodes < 1 {
		nodes = 1
	}
	return &frontier{
		queue: pqueue.NewPQueue(pqueue.MINPQ),
		span:  nodes,
	}
}

func (f *frontier) push(name string, distance, rank int) error {
	if distance > (math.MaxInt-rank)/f.span {
		return ErrDistanceOverflow
	}
	f.queue.Push(entry{name: name, distance: distance}, distance*f.span+rank)
	return nil
}

func (f *frontier) pop() (entry, bool) {
	if f.queue.Size() == 0 {
		return entry{}, false
	}
	item, _ := f.queue.Pop()
	e, ok := item.(entry)
	return e, ok
}
