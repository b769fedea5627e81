package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", log.LevelTrace},
		{"DEBUG", log.LevelDebug},
		{"", log.LevelInfo},
		{" info ", log.LevelInfo},
		{"warning", log.LevelWarn},
		{"error", log.LevelError},
		{"crit", log.LevelCrit},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestSetup(t *testing.T) {
	prev := log.Root()
	defer log.SetDefault(prev)

	var buf bytes.Buffer
	require.NoError(t, Setup(&buf, "warn", false))

	log.Info("hidden")
	log.Warn("shown", "lane", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "lane=3")

	assert.Error(t, Setup(&buf, "loud", false))
}
