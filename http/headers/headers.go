package headers

import (
	"github.com/indigo-web/iter"
	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Headers is a storage for header pairs. It acts as a case-insensitive map
// but uses linear search instead, which proves to be more efficient on
// relatively low amount of entries, which is always the case for a single
// request's headers. Insertion order is preserved.
type Headers struct {
	pairs      []Pair
	uniqueBuff []string
}

func New() *Headers {
	return NewPrealloc(0)
}

// NewPrealloc returns an instance of Headers with pre-allocated underlying
// storage.
func NewPrealloc(n int) *Headers {
	return &Headers{
		pairs: make([]Pair, 0, n),
	}
}

// NewFromMap returns a new instance with already inserted values from given
// map. Note: as maps are unordered, resulting underlying structure will also
// contain unordered pairs.
func NewFromMap(m map[string]string) *Headers {
	h := NewPrealloc(len(m))

	for key, value := range m {
		h.Set(key, value)
	}

	return h
}

// Set inserts a new pair, overwriting the value of an already existing key.
// Key comparison ignores case, the spelling of the first insertion wins.
func (h *Headers) Set(key, value string) *Headers {
	for i, pair := range h.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			h.pairs[i].Value = value
			return h
		}
	}

	h.pairs = append(h.pairs, Pair{
		Key:   key,
		Value: value,
	})

	return h
}

// Value returns the value corresponding to the key. Otherwise, empty string
// is returned.
func (h *Headers) Value(key string) string {
	return h.ValueOr(key, "")
}

// ValueOr returns either the value corresponding to the key or custom value,
// defined via the second parameter.
func (h *Headers) ValueOr(key, or string) string {
	value, found := h.Get(key)
	if !found {
		return or
	}

	return value
}

// Get returns a value corresponding to the key and a bool, indicating whether
// the key exists. In case it doesn't, empty string will be returned either.
func (h *Headers) Get(key string) (string, bool) {
	for _, pair := range h.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Has indicates, whether there's an entry of the key.
func (h *Headers) Has(key string) bool {
	_, found := h.Get(key)
	return found
}

// Keys returns all the keys in insertion order.
//
// WARNING: calling it twice will override values, returned by the first call.
// Consider copying the returned slice for safe use.
func (h *Headers) Keys() []string {
	h.uniqueBuff = h.uniqueBuff[:0]

	for _, pair := range h.pairs {
		h.uniqueBuff = append(h.uniqueBuff, pair.Key)
	}

	return h.uniqueBuff
}

// Iter returns an iterator over the pairs.
func (h *Headers) Iter() iter.Iterator[Pair] {
	return iter.Slice(h.pairs)
}

// Unwrap reveals underlying data structure. Try to avoid the method if
// possible, as changing the signature may not affect a major version.
func (h *Headers) Unwrap() []Pair {
	return h.pairs
}

func (h *Headers) Len() int {
	return len(h.pairs)
}

// Clear all the entries. However, all the allocated space won't be freed.
func (h *Headers) Clear() {
	h.pairs = h.pairs[:0]
}
