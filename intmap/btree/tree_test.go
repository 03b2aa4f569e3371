package btree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_Set(t *testing.T) {
	var testCases = []struct {
		description      string
		leafCapacity     int
		internalCapacity int
		keys             []int
	}{
		{description: "empty", leafCapacity: 2, internalCapacity: 2},
		{description: "single leaf", leafCapacity: 8, internalCapacity: 4, keys: []int{3, 1, 2}},
		{description: "ascending with splits", leafCapacity: 2, internalCapacity: 2, keys: sequence(0, 200, 1)},
		{description: "descending with splits", leafCapacity: 3, internalCapacity: 2, keys: sequence(200, 0, -1)},
		{description: "odd capacities", leafCapacity: 5, internalCapacity: 3, keys: shuffled(1000, 7)},
		{description: "default capacities", leafCapacity: DefaultLeafCapacity, internalCapacity: DefaultInternalCapacity, keys: shuffled(20000, 11)},
		{description: "negative keys", leafCapacity: 4, internalCapacity: 4, keys: []int{-5, -1, -100, 0, 42, -3}},
	}

	for _, testCase := range testCases {
		tree := New(testCase.leafCapacity, testCase.internalCapacity)
		for i, key := range testCase.keys {
			assert.False(t, tree.Set(key, i), testCase.description)
		}
		require.NoError(t, tree.CheckInvariants(), testCase.description)
		assert.EqualValues(t, len(testCase.keys), tree.Len(), testCase.description)
		for i, key := range testCase.keys {
			value, ok := tree.Get(key)
			assert.True(t, ok, testCase.description)
			assert.EqualValues(t, i, value, testCase.description)
		}

		expected := append([]int{}, testCase.keys...)
		sort.Ints(expected)
		var actual []int
		tree.Ascend(func(key, _ int) bool {
			actual = append(actual, key)
			return true
		})
		assert.EqualValues(t, expected, actual, testCase.description)
	}
}

func TestTree_Replace(t *testing.T) {
	tree := New(2, 2)
	keys := []int{5, 1, 5, 9, 1, 5}
	replaced := 0
	for i, key := range keys {
		if tree.Set(key, i) {
			replaced++
		}
	}
	assert.EqualValues(t, 3, replaced)
	assert.EqualValues(t, 3, tree.Len())
	value, ok := tree.Get(5)
	assert.True(t, ok)
	assert.EqualValues(t, 5, value)
	value, _ = tree.Get(1)
	assert.EqualValues(t, 4, value)
	require.NoError(t, tree.CheckInvariants())
}

func TestTree_Get_Absent(t *testing.T) {
	tree := NewDefault()
	_, ok := tree.Get(1)
	assert.False(t, ok)

	for _, key := range sequence(0, 100, 2) {
		tree.Set(key, key)
	}
	for _, key := range sequence(1, 101, 2) {
		assert.False(t, tree.Contains(key), "key %d", key)
	}
	assert.True(t, tree.Contains(98))
}

func TestTree_MinMax(t *testing.T) {
	tree := New(3, 3)
	_, _, ok := tree.Min()
	assert.False(t, ok)
	_, _, ok = tree.Max()
	assert.False(t, ok)

	for i, key := range shuffled(500, 3) {
		tree.Set(key-250, i)
	}
	key, _, ok := tree.Min()
	assert.True(t, ok)
	assert.EqualValues(t, -250, key)
	key, _, ok = tree.Max()
	assert.True(t, ok)
	assert.EqualValues(t, 249, key)
}

func TestTree_Height(t *testing.T) {
	tree := New(2, 2)
	assert.EqualValues(t, 0, tree.Height())
	tree.Set(1, 1)
	assert.EqualValues(t, 1, tree.Height())
	for _, key := range sequence(2, 64, 1) {
		tree.Set(key, key)
	}
	assert.Greater(t, tree.Height(), 2)
	assert.NoError(t, tree.CheckInvariants())
}

func TestTree_Ascend_Stop(t *testing.T) {
	tree := New(2, 2)
	for _, key := range sequence(0, 50, 1) {
		tree.Set(key, key)
	}
	var visited []int
	tree.Ascend(func(key, _ int) bool {
		visited = append(visited, key)
		return key < 9
	})
	assert.EqualValues(t, sequence(0, 10, 1), visited)
}

func TestNew_InvalidCapacity(t *testing.T) {
	assert.Panics(t, func() { New(1, 16) })
	assert.Panics(t, func() { New(16, 0) })
}

func sequence(from, to, step int) []int {
	var ret []int
	for i := from; i != to; i += step {
		ret = append(ret, i)
	}
	return ret
}

func shuffled(n int, seed int64) []int {
	ret := sequence(0, n, 1)
	rand.New(rand.NewSource(seed)).Shuffle(len(ret), func(i, j int) { ret[i], ret[j] = ret[j], ret[i] })
	return ret
}
