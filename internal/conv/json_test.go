package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keysArg struct {
	Handle uint64 `json:"handle"`
	Keys   []int  `json:"keys"`
}

func TestConvert(t *testing.T) {
	var testCases = []struct {
		description string
		input       any
		expect      keysArg
	}{
		{
			description: "generic map",
			input:       map[string]interface{}{"handle": float64(3), "keys": []interface{}{float64(1), float64(-2)}},
			expect:      keysArg{Handle: 3, Keys: []int{1, -2}},
		},
		{
			description: "value",
			input:       keysArg{Handle: 1, Keys: []int{5}},
			expect:      keysArg{Handle: 1, Keys: []int{5}},
		},
		{
			description: "pointer",
			input:       &keysArg{Handle: 2},
			expect:      keysArg{Handle: 2},
		},
		{
			description: "nil",
			input:       nil,
		},
	}
	for _, testCase := range testCases {
		var actual keysArg
		require.NoError(t, Convert(testCase.input, &actual), testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestConvert_InvalidDestination(t *testing.T) {
	assert.Error(t, Convert(1, nil))
	var target keysArg
	assert.Error(t, Convert(1, target))
}

func TestToMap(t *testing.T) {
	m, err := ToMap(&keysArg{Handle: 7, Keys: []int{1}})
	require.NoError(t, err)
	assert.EqualValues(t, float64(7), m["handle"])
	assert.EqualValues(t, []interface{}{float64(1)}, m["keys"])
}

func TestPointer(t *testing.T) {
	p := Pointer(true)
	assert.True(t, *p)
	assert.EqualValues(t, "", Dereference[string](nil))
	assert.EqualValues(t, "x", Dereference(Pointer("x")))
}
