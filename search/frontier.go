// File: frontier.go
// Role: Frontier capability interface plus FIFO (BFS), LIFO (DFS), and
// best-first (UCS/A*) implementations.
//
// Determinism: ties in the best-first frontier are broken by insertion
// sequence (earlier-inserted nodes come first), so replaying a search on
// the same graph always expands nodes in the same order.

package search

import (
	"container/heap"
	"math"
	"sort"
)

// Frontier is the fringe of unexpanded nodes. BFS uses a FIFO frontier,
// DFS a LIFO frontier, UCS/A* a best-first (min-heap) frontier ordered by
// a NodeEvalFunc.
type Frontier interface {
	// Push adds n to the frontier.
	Push(n *Node)
	// Pop removes and returns the next node to expand. ok is false if the
	// frontier is empty.
	Pop() (n *Node, ok bool)
	// Len reports the number of live entries in the frontier.
	Len() int
	// Contains reports whether a state with the given id is currently in
	// the frontier (used by graph-mode search to avoid frontier duplicates).
	Contains(id string) bool
	// Remove drops a state from the frontier bookkeeping, e.g. when a
	// better path to it is found (lazy deletion: the heap entry itself is
	// not removed, only invalidated — see bestFirstFrontier).
	Remove(id string)
}

// Bester is an optional Frontier capability exposing the current best
// (lowest) live evaluation without popping it. bestFirstFrontier
// implements it; bidirectional search type-asserts for it to evaluate
// its min(g_min_fwd, g_min_bwd) >= C_best termination rule.
type Bester interface {
	Best() (float64, bool)
}

// NewFIFOFrontier returns a queue-ordered Frontier (BFS).
func NewFIFOFrontier() Frontier {
	return &listFrontier{lifo: false, present: make(map[string]int)}
}

// NewLIFOFrontier returns a stack-ordered Frontier (DFS).
func NewLIFOFrontier() Frontier {
	return &listFrontier{lifo: true, present: make(map[string]int)}
}

// listFrontier implements both FIFO and LIFO orderings over a slice,
// since both share the same push/contains bookkeeping and differ only in
// which end Pop reads from.
type listFrontier struct {
	items   []*Node
	lifo    bool
	present map[string]int // state id → count currently queued
}

func (f *listFrontier) Push(n *Node) {
	f.items = append(f.items, n)
	f.present[n.State.ID()]++
}

func (f *listFrontier) Pop() (*Node, bool) {
	if len(f.items) == 0 {
		return nil, false
	}
	var n *Node
	if f.lifo {
		n = f.items[len(f.items)-1]
		f.items = f.items[:len(f.items)-1]
	} else {
		n = f.items[0]
		f.items = f.items[1:]
	}
	id := n.State.ID()
	f.present[id]--
	if f.present[id] <= 0 {
		delete(f.present, id)
	}

	return n, true
}

func (f *listFrontier) Len() int { return len(f.items) }

// IDs returns the state ids currently queued, in pop order.
func (f *listFrontier) IDs() []string {
	ids := make([]string, len(f.items))
	for i, n := range f.items {
		ids[i] = n.State.ID()
	}
	if f.lifo {
		for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
			ids[i], ids[j] = ids[j], ids[i]
		}
	}

	return ids
}

func (f *listFrontier) Contains(id string) bool {
	return f.present[id] > 0
}

func (f *listFrontier) Remove(id string) {
	// No-op for FIFO/LIFO frontiers. Graph-mode Run calls Remove before
	// pushing a cheaper node for the same state; the older entry stays
	// queued and Run skips it as stale when it is popped, since its PathG
	// exceeds the reached cost.
}

// bestFirstFrontier is a binary min-heap ordered by eval(n), with lazy
// deletion: Remove marks a state's current entries stale instead of
// scanning the heap, and Pop skips stale entries — push a fresh, better
// entry and let the stale one rot at the bottom of the heap.
type bestFirstFrontier struct {
	h    *nodeHeap
	live map[string]*Node // state id → node currently considered live
	seq  uint64
}

// NewBestFirstFrontier returns a Frontier ordered by the given
// node-evaluation function (UCSEval for UCS, an f(n)=g+h for A*).
func NewBestFirstFrontier(eval NodeEvalFunc) Frontier {
	h := &nodeHeap{eval: eval}
	heap.Init(h)

	return &bestFirstFrontier{h: h, live: make(map[string]*Node)}
}

func (f *bestFirstFrontier) Push(n *Node) {
	f.seq++
	n.seq = f.seq
	f.live[n.State.ID()] = n
	heap.Push(f.h, n)
}

func (f *bestFirstFrontier) Pop() (*Node, bool) {
	for f.h.Len() > 0 {
		n := heap.Pop(f.h).(*Node)
		if cur, ok := f.live[n.State.ID()]; !ok || cur != n {
			// stale entry superseded by a later, better Push
			continue
		}
		delete(f.live, n.State.ID())

		return n, true
	}

	return nil, false
}

func (f *bestFirstFrontier) Len() int {
	return len(f.live)
}

func (f *bestFirstFrontier) Contains(id string) bool {
	_, ok := f.live[id]

	return ok
}

func (f *bestFirstFrontier) Remove(id string) {
	delete(f.live, id)
}

// IDs returns the currently live state ids, ordered by eval(n) ascending
// (insertion sequence breaking ties), without disturbing the heap.
func (f *bestFirstFrontier) IDs() []string {
	live := make([]*Node, 0, len(f.live))
	for _, n := range f.live {
		live = append(live, n)
	}
	sort.Slice(live, func(i, j int) bool {
		vi, vj := f.h.eval(live[i]), f.h.eval(live[j])
		if vi != vj {
			return vi < vj
		}

		return live[i].seq < live[j].seq
	})

	ids := make([]string, len(live))
	for i, n := range live {
		ids[i] = n.State.ID()
	}

	return ids
}

// Best returns the current best live node's evaluation, or (+Inf, false)
// if the frontier is empty. Used by bidirectional search's termination
// check (min(g_min_fwd, g_min_bwd) >= C_best).
func (f *bestFirstFrontier) Best() (float64, bool) {
	for f.h.Len() > 0 {
		n := f.h.items[0]
		if cur, ok := f.live[n.State.ID()]; ok && cur == n {
			return f.h.eval(n), true
		}
		heap.Pop(f.h)
	}

	return math.Inf(1), false
}

// nodeHeap is a container/heap.Interface over *Node, ordered by eval(n)
// with insertion-sequence as the tie-break — the composite key
// (value, insertion_seq) guaranteeing deterministic replay.
type nodeHeap struct {
	items []*Node
	eval  NodeEvalFunc
}

func (h *nodeHeap) Len() int { return len(h.items) }

func (h *nodeHeap) Less(i, j int) bool {
	vi, vj := h.eval(h.items[i]), h.eval(h.items[j])
	if vi != vj {
		return vi < vj
	}

	return h.items[i].seq < h.items[j].seq
}

func (h *nodeHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *nodeHeap) Push(x any) { h.items = append(h.items, x.(*Node)) }

func (h *nodeHeap) Pop() any {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[:n-1]

	return x
}
