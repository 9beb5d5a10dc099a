package sim

// SSTFPolicy services the pending request nearest to the current head
// position (Shortest Seek Time First).
//
// The queue is kept sorted by ascending track from Front to Back. Seek
// distance over a sorted sequence falls and then rises, so removal walks from
// the low end and stops as soon as the distance stops falling.
//
// Tie-break: between two different tracks at the same distance the lower
// track wins. Among equal tracks the one nearest the front is removed.
type SSTFPolicy struct {
	queue *RequestQueue
}

// NewSSTFPolicy returns an SSTF policy with an empty queue.
func NewSSTFPolicy() *SSTFPolicy {
	return &SSTFPolicy{queue: NewRequestQueue()}
}

// Insert places track before the first pending request whose track is >= it,
// or at the back when every pending track is lower.
func (p *SSTFPolicy) Insert(track int) {
	q := p.queue
	s := q.Front()
	for s != NoSlot && q.Track(s) < track {
		s = q.Next(s)
	}
	q.InsertBefore(s, track)
}

// RemoveNext removes the pending track with the smallest seek distance from
// currentTrack.
func (p *SSTFPolicy) RemoveNext(currentTrack int) int {
	q := p.queue
	best := q.Front()
	if best == NoSlot {
		panic(ErrEmptyQueue)
	}
	bestDist := SeekDistance(currentTrack, q.Track(best))
	for s := q.Next(best); s != NoSlot; s = q.Next(s) {
		// equal tracks form a plateau; keep scanning past it
		if q.Track(s) == q.Track(best) {
			continue
		}
		d := SeekDistance(currentTrack, q.Track(s))
		if d >= bestDist {
			break
		}
		best, bestDist = s, d
	}
	return q.Remove(best)
}

func (p *SSTFPolicy) Len() int { return p.queue.Len() }

func (p *SSTFPolicy) Name() string { return PolicySSTF }

// Queue exposes the pending queue for inspection.
func (p *SSTFPolicy) Queue() *RequestQueue { return p.queue }
