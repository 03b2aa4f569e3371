package intmap

import (
	"runtime"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	var testCases = []struct {
		description string
		keys        []int
		probe       []int
		expectLen   int
		expectHits  int
		expectValue map[int]int
	}{
		{
			description: "unique keys",
			keys:        []int{1, 2, 3},
			probe:       []int{1, 2, 3},
			expectLen:   3,
			expectHits:  3,
			expectValue: map[int]int{1: 0, 2: 1, 3: 2},
		},
		{
			description: "absent key",
			keys:        []int{1, 2, 3},
			probe:       []int{4},
			expectLen:   3,
			expectHits:  0,
		},
		{
			description: "duplicates collapse, last write wins",
			keys:        []int{5, 5, 5},
			probe:       []int{5},
			expectLen:   1,
			expectHits:  1,
			expectValue: map[int]int{5: 2},
		},
		{
			description: "mixed duplicates",
			keys:        []int{7, -1, 7, 0, -1},
			probe:       []int{7, -1, 0, 8},
			expectLen:   3,
			expectHits:  3,
			expectValue: map[int]int{7: 2, -1: 4, 0: 3},
		},
		{
			description: "empty map",
			keys:        nil,
			probe:       []int{0, 1, -1},
			expectLen:   0,
			expectHits:  0,
		},
		{
			description: "extreme keys",
			keys:        []int{minInt, maxInt, 0},
			probe:       []int{minInt, maxInt},
			expectLen:   3,
			expectHits:  2,
			expectValue: map[int]int{minInt: 0, maxInt: 1},
		},
	}

	for _, testCase := range testCases {
		for _, kind := range Kinds() {
			m := Create(testCase.keys, WithKind(kind), WithCapacity(2, 2))
			require.NotNil(t, m, testCase.description)
			assert.True(t, m.Live(), testCase.description)
			assert.EqualValues(t, kind, m.Kind(), testCase.description)
			assert.EqualValues(t, testCase.expectLen, m.Len(), "%v %v", testCase.description, kind)
			assert.EqualValues(t, testCase.expectHits, m.Probe(testCase.probe), "%v %v", testCase.description, kind)
			for key, expected := range testCase.expectValue {
				actual, ok := m.Get(key)
				assert.True(t, ok, "%v %v", testCase.description, kind)
				assert.EqualValues(t, expected, actual, "%v %v", testCase.description, kind)
			}
			m.Destroy()
		}
	}
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)

func TestCreate_DoesNotRetainKeys(t *testing.T) {
	keys := []int{10, 20, 30}
	m := Create(keys)
	keys[0] = 99
	assert.True(t, m.Contains(10))
	assert.False(t, m.Contains(99))
}

func TestCreate_UnknownKind(t *testing.T) {
	m := Create([]int{1}, WithKind("skiplist"))
	assert.EqualValues(t, KindBTree, m.Kind())
	assert.True(t, m.Contains(1))
}

func TestMap_Destroy(t *testing.T) {
	for _, kind := range Kinds() {
		m := Create([]int{1, 2, 3}, WithKind(kind))
		m.Destroy()
		assert.False(t, m.Live(), kind)
		assert.EqualValues(t, 0, m.Len(), kind)
		assert.EqualValues(t, 0, m.Probe([]int{1, 2, 3}), kind)
		assert.False(t, m.Contains(1), kind)
		assert.NotPanics(t, m.Destroy, kind)
		assert.NotPanics(t, func() { m.Lookup([]int{1}) }, kind)
		assert.Empty(t, m.Keys(), kind)
	}
}

func TestMap_DestroyReleasesStore(t *testing.T) {
	for _, kind := range Kinds() {
		m := Create(sequence(10000), WithKind(kind))
		released := make(chan struct{})
		runtime.SetFinalizer(m.backend.Load(), func(*backend) { close(released) })
		m.Destroy()
		require.Eventually(t, func() bool {
			runtime.GC()
			select {
			case <-released:
				return true
			default:
				return false
			}
		}, 5*time.Second, 10*time.Millisecond, kind)
	}
}

func TestMap_ProbeDuringDestroy(t *testing.T) {
	keys := sequence(200000)
	for _, kind := range Kinds() {
		m := Create(keys, WithKind(kind))
		var wg sync.WaitGroup
		results := make([]int, 4)
		for w := range results {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				results[w] = m.Probe(keys)
			}(w)
		}
		time.Sleep(time.Millisecond)
		m.Destroy()
		wg.Wait()
		for _, hits := range results {
			// a probe sees either the whole map or nothing
			assert.Contains(t, []int{0, len(keys)}, hits, kind)
		}
		assert.False(t, m.Live(), kind)
	}
}

func sequence(n int) []int {
	ret := make([]int, n)
	for i := range ret {
		ret[i] = i * 7
	}
	return ret
}

func TestMap_Lookup_Sink(t *testing.T) {
	m := Create([]int{1, 2, 3})
	before := Sink()
	m.Lookup([]int{1, 2, 3, 4})
	assert.NotEqual(t, before, Sink())
}

func TestMap_Keys(t *testing.T) {
	keys := []int{9, -4, 3, 3, 12, 0}
	expected := []int{-4, 0, 3, 9, 12}
	for _, kind := range Kinds() {
		m := Create(keys, WithKind(kind))
		actual := m.Keys()
		if !m.Ordered() {
			sort.Ints(actual)
		}
		assert.EqualValues(t, expected, actual, kind)
	}
}

func TestMap_Stats(t *testing.T) {
	for _, kind := range Kinds() {
		m := Create([]int{4, -2, 8}, WithKind(kind))
		stats := m.Stats()
		assert.EqualValues(t, kind, stats.Kind)
		assert.True(t, stats.Live)
		assert.EqualValues(t, 3, stats.Len)
		if assert.NotNil(t, stats.Min) && assert.NotNil(t, stats.Max) {
			assert.EqualValues(t, -2, *stats.Min)
			assert.EqualValues(t, 8, *stats.Max)
		}
		assert.EqualValues(t, kind == KindBTree, stats.Ordered)

		m.Destroy()
		stats = m.Stats()
		assert.False(t, stats.Live)
		assert.Nil(t, stats.Min)
	}

	empty := Create(nil).Stats()
	assert.EqualValues(t, 0, empty.Len)
	assert.Nil(t, empty.Max)
}

func TestMap_ConcurrentProbe(t *testing.T) {
	keys := make([]int, 1000)
	for i := range keys {
		keys[i] = i * 3
	}
	for _, kind := range []Kind{KindSync, KindLockFree} {
		m := Create(keys, WithKind(kind))
		var wg sync.WaitGroup
		results := make([]int, 8)
		for w := range results {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				results[w] = m.Probe(keys)
			}(w)
		}
		wg.Wait()
		for _, hits := range results {
			assert.EqualValues(t, len(keys), hits, kind)
		}
	}
}

func TestParseKind(t *testing.T) {
	var testCases = []struct {
		input     string
		expect    Kind
		expectErr bool
	}{
		{input: "", expect: KindBTree},
		{input: "btree", expect: KindBTree},
		{input: " Hash ", expect: KindHash},
		{input: "sync", expect: KindSync},
		{input: "LOCKFREE", expect: KindLockFree},
		{input: "skiplist", expectErr: true},
	}
	for _, testCase := range testCases {
		actual, err := ParseKind(testCase.input)
		if testCase.expectErr {
			assert.Error(t, err, testCase.input)
			continue
		}
		require.NoError(t, err, testCase.input)
		assert.EqualValues(t, testCase.expect, actual, testCase.input)
	}
}
