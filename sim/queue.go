// Implements the RequestQueue, which holds all track requests waiting to be serviced.
// Requests are inserted by the active policy and removed when the disk head services them.

package sim

import (
	"fmt"
	"strings"
)

// Slot addresses one element of a RequestQueue. Slots stay valid until the
// element they hold is removed; after that the slot may be reused.
type Slot int

// NoSlot is returned when there is no element in the requested position.
const NoSlot Slot = -1

type queueNode struct {
	track int
	prev  Slot
	next  Slot
	live  bool
}

// RequestQueue is a doubly-linked sequence of pending track requests stored in
// an arena of slots. Both ends are exposed: Front is the "low" end that
// policies scan from, Back is the opposite end.
//
// Invariants:
//   - front == NoSlot iff back == NoSlot iff Len() == 0
//   - with one element, front == back
//   - every live slot is reachable from both ends, with no cycles
//
// Thread-safety: NOT thread-safe. A queue belongs to a single trial.
type RequestQueue struct {
	nodes []queueNode
	free  []Slot
	front Slot
	back  Slot
	n     int
}

// NewRequestQueue returns an empty queue.
func NewRequestQueue() *RequestQueue {
	return &RequestQueue{front: NoSlot, back: NoSlot}
}

// Len returns the number of pending requests.
func (q *RequestQueue) Len() int {
	return q.n
}

// Empty reports whether the queue holds no requests.
func (q *RequestQueue) Empty() bool {
	return q.front == NoSlot
}

// Front returns the slot at the front end, or NoSlot when empty.
func (q *RequestQueue) Front() Slot {
	return q.front
}

// Back returns the slot at the back end, or NoSlot when empty.
func (q *RequestQueue) Back() Slot {
	return q.back
}

// Next returns the slot after s (towards the back), or NoSlot.
func (q *RequestQueue) Next(s Slot) Slot {
	return q.node(s).next
}

// Prev returns the slot before s (towards the front), or NoSlot.
func (q *RequestQueue) Prev(s Slot) Slot {
	return q.node(s).prev
}

// Track returns the track number held in slot s.
func (q *RequestQueue) Track(s Slot) int {
	return q.node(s).track
}

// PushBack appends a request at the back end and returns its slot.
func (q *RequestQueue) PushBack(track int) Slot {
	s := q.alloc(track)
	if q.back == NoSlot {
		q.front, q.back = s, s
		return s
	}
	q.nodes[s].prev = q.back
	q.nodes[q.back].next = s
	q.back = s
	return s
}

// InsertBefore places a new request immediately before slot at.
// Passing NoSlot appends at the back end.
func (q *RequestQueue) InsertBefore(at Slot, track int) Slot {
	if at == NoSlot {
		return q.PushBack(track)
	}
	q.node(at)
	s := q.alloc(track)
	prev := q.nodes[at].prev
	q.nodes[s].prev = prev
	q.nodes[s].next = at
	q.nodes[at].prev = s
	if prev == NoSlot {
		q.front = s
	} else {
		q.nodes[prev].next = s
	}
	return s
}

// PopFront removes the request at the front end and returns its track.
// Panics with ErrEmptyQueue if the queue is empty.
func (q *RequestQueue) PopFront() int {
	if q.front == NoSlot {
		panic(ErrEmptyQueue)
	}
	return q.Remove(q.front)
}

// Remove unlinks slot s and returns the track it held. The slot is recycled.
func (q *RequestQueue) Remove(s Slot) int {
	nd := q.node(s)
	if nd.prev == NoSlot {
		q.front = nd.next
	} else {
		q.nodes[nd.prev].next = nd.next
	}
	if nd.next == NoSlot {
		q.back = nd.prev
	} else {
		q.nodes[nd.next].prev = nd.prev
	}
	q.nodes[s] = queueNode{prev: NoSlot, next: NoSlot}
	q.free = append(q.free, s)
	q.n--
	return nd.track
}

// Tracks returns the pending tracks from front to back.
func (q *RequestQueue) Tracks() []int {
	out := make([]int, 0, q.n)
	for s := q.front; s != NoSlot; s = q.nodes[s].next {
		out = append(out, q.nodes[s].track)
	}
	return out
}

func (q *RequestQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for s := q.front; s != NoSlot; s = q.nodes[s].next {
		sb.WriteString(fmt.Sprint(q.nodes[s].track))
		if q.nodes[s].next != NoSlot {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

func (q *RequestQueue) alloc(track int) Slot {
	var s Slot
	if k := len(q.free); k > 0 {
		s = q.free[k-1]
		q.free = q.free[:k-1]
	} else {
		s = Slot(len(q.nodes))
		q.nodes = append(q.nodes, queueNode{})
	}
	q.nodes[s] = queueNode{track: track, prev: NoSlot, next: NoSlot, live: true}
	q.n++
	return s
}

func (q *RequestQueue) node(s Slot) queueNode {
	if s < 0 || int(s) >= len(q.nodes) || !q.nodes[s].live {
		panic(fmt.Sprintf("RequestQueue: slot %d is not live", s))
	}
	return q.nodes[s]
}
