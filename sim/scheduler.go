package sim

import (
	"fmt"
	"sort"
	"strings"
)

// Policy decides where a new track request goes in the pending queue and
// which request the disk head services next.
// Implementations own their RequestQueue exclusively.
type Policy interface {
	// Insert adds a pending request for track.
	Insert(track int)
	// RemoveNext removes and returns the track serviced next, given the
	// current head position. Panics with ErrEmptyQueue when nothing is pending.
	RemoveNext(currentTrack int) int
	// Len returns the number of pending requests.
	Len() int
	// Name returns the registered policy name.
	Name() string
}

// Policy names.
const (
	PolicyFCFS = "fcfs"
	PolicySSTF = "sstf"
)

// ValidPolicies is the set of recognized policy names.
// Empty string selects the default (fcfs).
var ValidPolicies = map[string]bool{"": true, PolicyFCFS: true, PolicySSTF: true}

// IsValidPolicy returns true if name is a recognized policy (case-insensitive).
func IsValidPolicy(name string) bool {
	return ValidPolicies[strings.ToLower(name)]
}

// PolicyNames returns the non-empty policy names in sorted order.
func PolicyNames() []string {
	names := make([]string, 0, len(ValidPolicies))
	for n := range ValidPolicies {
		if n != "" {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// NewPolicy creates a Policy with an empty queue by name.
// Valid names: "fcfs" (default), "sstf".
func NewPolicy(name string) (Policy, error) {
	switch strings.ToLower(name) {
	case "", PolicyFCFS:
		return NewFCFSPolicy(), nil
	case PolicySSTF:
		return NewSSTFPolicy(), nil
	default:
		return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownPolicy, name, strings.Join(PolicyNames(), ", "))
	}
}

// FCFSPolicy services requests strictly in arrival order.
// New requests join the back of the queue; the front is always serviced next.
type FCFSPolicy struct {
	queue *RequestQueue
}

// NewFCFSPolicy returns an FCFS policy with an empty queue.
func NewFCFSPolicy() *FCFSPolicy {
	return &FCFSPolicy{queue: NewRequestQueue()}
}

func (f *FCFSPolicy) Insert(track int) {
	f.queue.PushBack(track)
}

// RemoveNext ignores the head position: the oldest request is serviced.
func (f *FCFSPolicy) RemoveNext(_ int) int {
	return f.queue.PopFront()
}

func (f *FCFSPolicy) Len() int { return f.queue.Len() }

func (f *FCFSPolicy) Name() string { return PolicyFCFS }

// Queue exposes the pending queue for inspection.
func (f *FCFSPolicy) Queue() *RequestQueue { return f.queue }
