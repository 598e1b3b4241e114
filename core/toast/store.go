package toast

import (
	"sync"
	"time"

	"pot-portal/core/state"
)

// Type is the visual category of a toast.
type Type string

const (
	TypeDefault Type = "default"
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// NoDismiss keeps a toast until it is removed explicitly.
const NoDismiss time.Duration = -1

// Item is a single notification.
type Item struct {
	ID       int           `json:"id"`
	Message  string        `json:"message"`
	Type     Type          `json:"type"`
	Duration time.Duration `json:"duration"`
}

// Options customizes a pushed toast. Zero values fall back to the defaults
// (TypeSuccess and the configured duration).
type Options struct {
	Type     Type
	Duration time.Duration
}

// Sink accepts notifications.
type Sink interface {
	Push(message string, opts Options) int
}

// Store keeps the visible toasts, newest first.
type Store struct {
	items           *state.Store[[]Item]
	defaultDuration time.Duration

	mu     sync.Mutex
	nextID int
	timers map[int]*time.Timer
}

// NewStore creates an empty store.
func NewStore(cfg Config) *Store {
	return &Store{
		items:           state.New([]Item{}),
		defaultDuration: cfg.duration(),
		nextID:          1,
		timers:          make(map[int]*time.Timer),
	}
}

// Push adds a toast in front of the others and returns its ID.
// Toasts with a positive duration are removed automatically once it elapses.
func (s *Store) Push(message string, opts Options) int {
	item := Item{
		Message:  message,
		Type:     opts.Type,
		Duration: opts.Duration,
	}
	if item.Type == "" {
		item.Type = TypeSuccess
	}
	if item.Duration == 0 {
		item.Duration = s.defaultDuration
	}
	if item.Duration < 0 {
		item.Duration = 0
	}

	s.mu.Lock()
	item.ID = s.nextID
	s.nextID++
	s.mu.Unlock()

	s.items.Update(func(items []Item) []Item {
		next := make([]Item, 0, len(items)+1)
		next = append(next, item)
		return append(next, items...)
	})

	if item.Duration > 0 {
		id := item.ID
		// The callback blocks on mu until the timer is registered.
		s.mu.Lock()
		s.timers[id] = time.AfterFunc(item.Duration, func() { s.Remove(id) })
		s.mu.Unlock()
	}

	return item.ID
}

// Remove dismisses the toast with id. Unknown IDs are ignored.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	s.items.Update(func(items []Item) []Item {
		next := make([]Item, 0, len(items))
		for _, it := range items {
			if it.ID != id {
				next = append(next, it)
			}
		}
		return next
	})
}

// Items returns the visible toasts, newest first.
func (s *Store) Items() []Item {
	items := s.items.Get()
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Subscribe registers fn for every change of the visible toasts.
func (s *Store) Subscribe(fn func([]Item)) (unsubscribe func()) {
	return s.items.Subscribe(fn)
}

// Close stops pending auto-dismiss timers.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}
