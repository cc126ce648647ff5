package pkg

type Map[K comparable, V any] map[K]V

func (m Map[K, V]) Get(key K) V {
	return m[key]
}

func (m Map[K, V]) Set(key K, value V) {
	m[key] = value
}

func (m Map[K, V]) Has(key K) bool {
	_, ok := m[key]
	return ok
}

func (m Map[K, V]) Delete(key K) {
	delete(m, key)
}

func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// OrderedMap is a map that remembers the order keys were first set in.
// Setting a key that already exists replaces its value in place and keeps
// the key's position.
type OrderedMap[K comparable, V any] struct {
	idx    Map[K, V]
	sorted []K
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{idx: Map[K, V]{}, sorted: []K{}}
}

func (m *OrderedMap[K, V]) Len() int { return len(m.sorted) }

func (m *OrderedMap[K, V]) Get(key K) V { return m.idx.Get(key) }

func (m *OrderedMap[K, V]) Has(key K) bool { return m.idx.Has(key) }

func (m *OrderedMap[K, V]) Set(key K, value V) {
	if !m.idx.Has(key) {
		m.sorted = append(m.sorted, key)
	}
	m.idx.Set(key, value)
}

func (m *OrderedMap[K, V]) Delete(key K) {
	if !m.idx.Has(key) {
		return
	}
	m.idx.Delete(key)
	for i, k := range m.sorted {
		if k == key {
			m.sorted = append(m.sorted[:i], m.sorted[i+1:]...)
			break
		}
	}
}

// PopLast removes and returns the most recently added entry.
func (m *OrderedMap[K, V]) PopLast() (K, V, bool) {
	if len(m.sorted) == 0 {
		var k K
		var v V
		return k, v, false
	}
	key := m.sorted[len(m.sorted)-1]
	value := m.idx.Get(key)
	m.sorted = m.sorted[:len(m.sorted)-1]
	m.idx.Delete(key)
	return key, value, true
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, len(m.sorted))
	copy(keys, m.sorted)
	return keys
}

// Reorder replaces the key order with keys, which must be a permutation
// of the current key set.
func (m *OrderedMap[K, V]) Reorder(keys []K) {
	m.sorted = make([]K, len(keys))
	copy(m.sorted, keys)
}

func (m *OrderedMap[K, V]) Clear() {
	m.idx = Map[K, V]{}
	m.sorted = m.sorted[:0]
}
