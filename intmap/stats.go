package intmap

// Stats summarises a map.
type Stats struct {
	Kind    Kind `json:"kind" yaml:"kind"`
	Live    bool `json:"live" yaml:"live"`
	Len     int  `json:"len" yaml:"len"`
	Ordered bool `json:"ordered" yaml:"ordered"`
	Min     *int `json:"min,omitempty" yaml:"min,omitempty"`
	Max     *int `json:"max,omitempty" yaml:"max,omitempty"`
}

// Stats returns the current size, backend and key range.
func (m *Map) Stats() *Stats {
	ret := &Stats{Kind: m.kind, Live: m.Live()}
	s := m.live()
	if s == nil {
		return ret
	}
	ret.Len = s.len()
	ret.Ordered = s.ordered()
	first := true
	var lo, hi int
	s.each(func(key, _ int) bool {
		if first {
			lo, hi, first = key, key, false
			return true
		}
		lo, hi = min(lo, key), max(hi, key)
		return true
	})
	if !first {
		ret.Min, ret.Max = &lo, &hi
	}
	return ret
}

// Keys returns all keys, ascending for ordered backends.
func (m *Map) Keys() []int {
	ret := make([]int, 0, m.Len())
	m.Range(func(key, _ int) bool {
		ret = append(ret, key)
		return true
	})
	return ret
}
