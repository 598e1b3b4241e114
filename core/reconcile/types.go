package reconcile

import "sort"

// KeySet is a set of fully-qualified keys already known to the system.
type KeySet map[string]struct{}

// NewKeySet builds a set from keys.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	s.Add(keys...)
	return s
}

// Has reports whether key is in the set. A nil set contains nothing.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Add inserts keys into the set.
func (s KeySet) Add(keys ...string) {
	for _, k := range keys {
		s[k] = struct{}{}
	}
}

// Len returns the number of keys.
func (s KeySet) Len() int {
	return len(s)
}

// Clone returns an independent copy.
func (s KeySet) Clone() KeySet {
	out := make(KeySet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// Missing returns the keys of s that are absent from other, sorted.
func (s KeySet) Missing(other KeySet) []string {
	var out []string
	for k := range s {
		if !other.Has(k) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Stats provides aggregate counts for a reconciliation.
type Stats struct {
	// Total is the number of keys in the source.
	Total int `json:"total" yaml:"total"`

	// Added counts keys that were absent from the existing set.
	Added int `json:"added" yaml:"added"`

	// Skipped counts keys that already existed.
	Skipped int `json:"skipped" yaml:"skipped"`
}

// Consistent reports whether Total == Added + Skipped.
func (s Stats) Consistent() bool {
	return s.Total == s.Added+s.Skipped
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionCreate creates a new item in the backend.
	ActionCreate ActionType = "create"
)

// Action represents a planned mutation operation.
type Action[T any] struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type" yaml:"type"`

	// Key is the fully-qualified key of the item.
	Key string `json:"key" yaml:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason" yaml:"reason"`

	// Item is the payload handed to the Creator.
	Item T `json:"item" yaml:"item"`
}

// Plan contains planned actions and aggregate counts.
type Plan[T any] struct {
	// Actions are in source order.
	Actions []Action[T] `json:"actions" yaml:"actions"`

	// Stats provides aggregate counts.
	Stats Stats `json:"stats" yaml:"stats"`
}

// Items returns the payloads of all actions in order.
func (p *Plan[T]) Items() []T {
	items := make([]T, 0, len(p.Actions))
	for _, a := range p.Actions {
		items = append(items, a.Item)
	}
	return items
}

// Options controls whether and how a plan is applied.
type Options struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Confirmed indicates the user has confirmed the mutations.
	// If false, nothing is executed regardless of DryRun.
	Confirmed bool

	// Concurrency bounds parallel Create calls. Zero means DefaultConcurrency.
	Concurrency int
}

// DefaultConcurrency is used when Options.Concurrency is not set.
const DefaultConcurrency = 4
