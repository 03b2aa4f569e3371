package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandName(t *testing.T) {
	testCases := []struct {
		description string
		args        []string
		expect      string
	}{
		{description: "plain command", args: []string{"probe", "-k", "1"}, expect: "probe"},
		{description: "config before command", args: []string{"-f", "intmap.yaml", "stats"}, expect: "stats"},
		{description: "long config before command", args: []string{"--config", "intmap.yaml", "serve"}, expect: "serve"},
		{description: "no command", args: []string{"-f", "intmap.yaml"}, expect: ""},
		{description: "empty", args: nil, expect: ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expect, commandName(tc.args), tc.description)
	}
}

func TestExtractConfigPath(t *testing.T) {
	testCases := []struct {
		description string
		args        []string
		expect      string
	}{
		{description: "short flag", args: []string{"-f", "a.yaml", "probe"}, expect: "a.yaml"},
		{description: "long flag", args: []string{"probe", "--config", "b.yaml"}, expect: "b.yaml"},
		{description: "long flag with value", args: []string{"--config=c.yaml", "probe"}, expect: "c.yaml"},
		{description: "dangling flag", args: []string{"probe", "-f"}, expect: ""},
		{description: "absent", args: []string{"probe"}, expect: ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expect, extractConfigPath(tc.args), tc.description)
	}
}

func TestParseInline(t *testing.T) {
	keys, err := parseInline(" 1,2, 3 ")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, keys)

	keys, err = parseInline("[5, 5, 5]")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 5, 5}, keys)

	_, err = parseInline("1,x")
	assert.Error(t, err)
}

func TestOptionsInit(t *testing.T) {
	opts := &Options{}
	opts.Init("exec")
	assert.NotNil(t, opts.Exec)
	assert.Nil(t, opts.Probe)

	opts = &Options{}
	opts.Init("unknown")
	assert.Nil(t, opts.Serve)
}
