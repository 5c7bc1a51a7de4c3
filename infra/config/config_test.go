package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"iris","value":0.25}`), 0644))

	s := sample{Count: 3}
	require.NoError(t, Load(path, &s))
	assert.Equal(t, sample{Name: "iris", Value: 0.25, Count: 3}, s)

	err := Load(filepath.Join(dir, "missing.json"), &s)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"name":`), 0644))
	err = Load(path, &s)
	assert.Error(t, err)
}

func TestMustLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.json"), []byte(`{"count":7}`), 0644))

	defer func(p string) { Path = p }(Path)
	Path = dir

	var s sample
	assert.NotPanics(t, func() { MustLoad("sample", &s) })
	assert.Equal(t, 7, s.Count)

	assert.Panics(t, func() { MustLoad("other", &s) })
}

func TestMustLoad_Runner(t *testing.T) {
	defer func(p string) { Path = p }(Path)
	Path = "."

	var s struct {
		Holdout float64 `json:"holdout"`
		Seed    int64   `json:"seed"`
	}
	MustLoad("runner", &s)
	assert.Equal(t, 0.2, s.Holdout)
	assert.Equal(t, int64(42), s.Seed)
}
