package aoc

// LUT is a lookup table used to dedupe or accumulate per-key state.
// Values are stored by pointer so callers can update them in place.
type LUT[K comparable, V any] struct {
	m map[K]*V
}

func NewLUT[K comparable, V any](sizeHint int) *LUT[K, V] {
	return &LUT[K, V]{m: make(map[K]*V, sizeHint)}
}

// Add returns the value stored for k, inserting a zero value first if
// k is new. added reports whether the insert happened.
func (l *LUT[K, V]) Add(k K) (v *V, added bool) {
	if v, ok := l.m[k]; ok {
		return v, false
	}
	v = new(V)
	l.m[k] = v
	return v, true
}

func (l *LUT[K, V]) Lookup(k K) (*V, bool) {
	v, ok := l.m[k]
	return v, ok
}

func (l *LUT[K, V]) Delete(k K) { delete(l.m, k) }

func (l *LUT[K, V]) Len() int { return len(l.m) }

// Do calls f for every entry, in no particular order.
func (l *LUT[K, V]) Do(f func(k K, v *V)) {
	for k, v := range l.m {
		f(k, v)
	}
}
