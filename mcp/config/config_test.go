package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/intmap/intmap"
)

func TestParseKeys(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      []int
		expectErr   bool
	}{
		{description: "empty", input: "  \n"},
		{description: "json", input: "[1, 2, -3]", expect: []int{1, 2, -3}},
		{description: "yaml", input: "- 5\n- 5\n- 7\n", expect: []int{5, 5, 7}},
		{description: "plain", input: "1 2\n3,4", expect: []int{1, 2, 3, 4}},
		{description: "single", input: "42", expect: []int{42}},
		{description: "invalid", input: "1 two 3", expectErr: true},
	}
	for _, testCase := range testCases {
		actual, err := ParseKeys([]byte(testCase.input))
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	keysPath := filepath.Join(dir, "keys.json")
	require.NoError(t, os.WriteFile(keysPath, []byte("[3, 1, 2]"), 0o644))
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
backend: hash
nodeCapacity: 64
tools:
  - intmap-probe
keys:
  url: `+keysPath+`
`), 0o644))

	ctx := context.Background()
	cfg, err := Load(ctx, cfgPath)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.EqualValues(t, "hash", cfg.Backend)
	assert.EqualValues(t, 64, cfg.NodeCapacity)
	assert.EqualValues(t, []string{"intmap-probe"}, cfg.Tools)

	keys, err := cfg.LoadKeys(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, []int{3, 1, 2}, keys)

	opts, err := cfg.MapOptions()
	require.NoError(t, err)
	assert.EqualValues(t, intmap.KindHash, intmap.Create(keys, opts...).Kind())

	_, err = Load(ctx, filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_LoadKeys_Inline(t *testing.T) {
	cfg := &Config{Keys: &Group[int]{URL: "mem://localhost/ignored", Items: []int{9}}}
	keys, err := cfg.LoadKeys(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, []int{9}, keys)

	keys, err = (&Config{}).LoadKeys(context.Background())
	require.NoError(t, err)
	assert.Nil(t, keys)
}

func TestConfig_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		config      Config
		expectErr   bool
	}{
		{description: "zero value", config: Config{}},
		{description: "sync backend", config: Config{Backend: "sync"}},
		{description: "unknown backend", config: Config{Backend: "trie"}, expectErr: true},
		{description: "tiny leaf", config: Config{NodeCapacity: 1}, expectErr: true},
		{description: "tiny internal", config: Config{InternalCapacity: 1}, expectErr: true},
	}
	for _, testCase := range testCases {
		err := testCase.config.Validate()
		assert.EqualValues(t, testCase.expectErr, err != nil, testCase.description)
	}
}
