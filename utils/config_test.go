package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"use_parallel": false, "revival_policy": "classic", "history_size": 3}`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, config.UseParallel)
	assert.Equal(t, "classic", config.RevivalPolicy)
	assert.Equal(t, 3, config.HistorySize)
	// untouched fields keep their defaults
	assert.Equal(t, DefaultConfig().ProgressEvery, config.ProgressEvery)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "workers: 3\ndetect_cycles: false\nlog_level: debug\n")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, config.Workers)
	assert.False(t, config.DetectCycles)
	assert.Equal(t, "debug", config.LogLevel)
	assert.True(t, config.UseMemoryPool)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "[LoadConfig] failed to read file")

	_, err = LoadConfig(writeFile(t, "bad.yml", "workers: [nope"))
	assert.ErrorContains(t, err, "[LoadConfig] failed to unmarshal data")
}

func TestWorkerCount(t *testing.T) {
	tests := []struct {
		name     string
		parallel bool
		workers  int
		want     int
	}{
		{"sequential", false, 8, 1},
		{"parallel", true, 8, 8},
		{"parallel without workers", true, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{UseParallel: tt.parallel, Workers: tt.workers}
			assert.Equal(t, tt.want, c.WorkerCount())
		})
	}
}
