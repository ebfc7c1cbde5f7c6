package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_FormatByTerminal(t *testing.T) {
	t.Run("terminal gets text", func(t *testing.T) {
		var buf bytes.Buffer
		logger, _, err := newLogger(Config{}, &buf, true)
		require.NoError(t, err)

		logger.Info("hello", "k", "v")
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "k=v")
	})

	t.Run("pipe gets json", func(t *testing.T) {
		var buf bytes.Buffer
		logger, _, err := newLogger(Config{}, &buf, false)
		require.NoError(t, err)

		logger.Info("hello", "k", "v")
		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "hello", line["msg"])
		assert.Equal(t, "v", line["k"])
	})

	t.Run("explicit format wins", func(t *testing.T) {
		var buf bytes.Buffer
		logger, _, err := newLogger(Config{Format: "json"}, &buf, true)
		require.NoError(t, err)

		logger.Info("hello")
		assert.True(t, strings.HasPrefix(buf.String(), "{"))
	})
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := newLogger(Config{Level: "warn", Format: "text"}, &buf, false)
	require.NoError(t, err)

	logger.Info("skipped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewLogger_Errors(t *testing.T) {
	_, _, err := newLogger(Config{Level: "loud"}, &bytes.Buffer{}, false)
	assert.Error(t, err)

	_, _, err = newLogger(Config{Format: "xml"}, &bytes.Buffer{}, false)
	assert.Error(t, err)
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "depot.log")

	var buf bytes.Buffer
	logger, closer, err := newLogger(Config{File: path, MaxSizeMB: 1}, &buf, true)
	require.NoError(t, err)

	logger.Info("to file", "entry", 7)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)
	assert.Contains(t, buf.String(), `"entry":7`)
}
