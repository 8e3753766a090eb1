package route

import "container/heap"

// Queue is a min-heap of labels ordered by (Primary, Secondary, discovery
// sequence). The sequence number is assigned on Push, so entries with equal
// keys pop in the order they were discovered and no comparison ever falls
// through to the path itself.
//
// Stale entries are not removed ("lazy decrease-key"); searches skip them
// when popped.
type Queue struct {
	items entries
	seq   uint64
}

// Entry is one queued label with its ordering keys.
type Entry struct {
	Label     *Label
	Primary   float64
	Secondary float64
	seq       uint64
}

// NewQueue returns an empty queue with room for capacity entries.
func NewQueue(capacity int) *Queue {
	return &Queue{items: make(entries, 0, capacity)}
}

// Push enqueues l with the given keys.
func (q *Queue) Push(l *Label, primary, secondary float64) {
	q.seq++
	heap.Push(&q.items, Entry{Label: l, Primary: primary, Secondary: secondary, seq: q.seq})
}

// Pop removes the smallest entry. ok is false when the queue is empty.
func (q *Queue) Pop() (e Entry, ok bool) {
	if len(q.items) == 0 {
		return Entry{}, false
	}

	return heap.Pop(&q.items).(Entry), true
}

// Len returns the number of queued entries, stale ones included.
func (q *Queue) Len() int { return len(q.items) }

// entries implements heap.Interface.
type entries []Entry

func (pq entries) Len() int { return len(pq) }

func (pq entries) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.Primary != b.Primary {
		return a.Primary < b.Primary
	}
	if a.Secondary != b.Secondary {
		return a.Secondary < b.Secondary
	}

	return a.seq < b.seq
}

func (pq entries) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entries) Push(x interface{}) { *pq = append(*pq, x.(Entry)) }

func (pq *entries) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
