// File: queue.go
// Role: a lazy-invalidated binary min-heap over (vertex id, key), mirroring
// the lazy-deletion approach search.bestFirstFrontier uses: a stale entry
// is left in the heap and skipped on pop rather than removed eagerly,
// since D*-Lite's priority queue has no native decrease-key either.

package dstarlite

import "container/heap"

type pqEntry struct {
	id  string
	k   key
}

type priorityQueue struct {
	items   []pqEntry
	current map[string]key // id -> its current authoritative key, if queued
}

func newPriorityQueue() *priorityQueue {
	return &priorityQueue{current: make(map[string]key)}
}

// Insert adds or updates id's key and pushes a fresh heap entry; a
// previous stale entry for id (if any) is skipped lazily on Pop.
func (q *priorityQueue) Insert(id string, k key) {
	q.current[id] = k
	heap.Push(q, pqEntry{id: id, k: k})
}

// Remove drops id from consideration; any stale heap entries for it will
// be skipped lazily on Pop.
func (q *priorityQueue) Remove(id string) {
	delete(q.current, id)
}

// Contains reports whether id is currently queued.
func (q *priorityQueue) Contains(id string) bool {
	_, ok := q.current[id]

	return ok
}

// TopKey returns the smallest live key in the queue, or a key of
// {inf, inf} (the package's 1e300 sentinel) if the queue is empty.
func (q *priorityQueue) TopKey() key {
	for len(q.items) > 0 {
		top := q.items[0]
		if k, ok := q.current[top.id]; ok && k.equal(top.k) {
			return top.k
		}
		heap.Pop(q)
	}

	return key{k1: inf, k2: inf}
}

// PopMin removes and returns the id with the smallest live key.
func (q *priorityQueue) PopMin() (string, bool) {
	for len(q.items) > 0 {
		top := heap.Pop(q).(pqEntry)
		if k, ok := q.current[top.id]; ok && k.equal(top.k) {
			delete(q.current, top.id)

			return top.id, true
		}
	}

	return "", false
}

const inf = 1e300

// heap.Interface implementation.

func (q *priorityQueue) Len() int { return len(q.items) }

func (q *priorityQueue) Less(i, j int) bool { return q.items[i].k.less(q.items[j].k) }

func (q *priorityQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *priorityQueue) Push(x any) { q.items = append(q.items, x.(pqEntry)) }

func (q *priorityQueue) Pop() any {
	old := q.items
	n := len(old)
	x := old[n-1]
	q.items = old[:n-1]

	return x
}
