package hjson

import "iter"

// Translations is an insertion-ordered mapping of fully-qualified keys to values.
// Setting an existing key replaces its value but keeps its original position.
type Translations struct {
	keys   []string
	values map[string]string
}

// NewTranslations creates an empty mapping.
func NewTranslations() *Translations {
	return &Translations{values: make(map[string]string)}
}

// Set inserts or overwrites a key.
func (t *Translations) Set(key, value string) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Get returns the value stored for key.
func (t *Translations) Get(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Len returns the number of distinct keys.
func (t *Translations) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns a copy of the keys in insertion order.
func (t *Translations) Keys() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// All iterates key/value pairs in insertion order.
func (t *Translations) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if t == nil {
			return
		}
		for _, k := range t.keys {
			if !yield(k, t.values[k]) {
				return
			}
		}
	}
}

// Map returns an unordered copy of the mapping.
func (t *Translations) Map() map[string]string {
	out := make(map[string]string, t.Len())
	for k, v := range t.All() {
		out[k] = v
	}
	return out
}
