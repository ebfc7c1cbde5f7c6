// Package logging builds the slog logger shared by the client and the
// reference server.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config параметры логирования (секция log в depot.yaml)
type Config struct {
	Level      string `mapstructure:"level"`        // debug, info, warn, error
	Format     string `mapstructure:"format"`       // text, json; пусто = по терминалу
	File       string `mapstructure:"file"`         // путь к файлу, пусто = только stderr
	MaxSizeMB  int    `mapstructure:"max_size_mb"`  // размер файла до ротации
	MaxBackups int    `mapstructure:"max_backups"`  // сколько старых файлов хранить
	MaxAgeDays int    `mapstructure:"max_age_days"` // сколько дней хранить старые файлы
}

// ParseLevel converts a level name into slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// New creates the logger described by cfg writing to stderr, and to a
// rotating file when cfg.File is set. The returned closer releases the file.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	return newLogger(cfg, os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))
}

func newLogger(cfg Config, stderr io.Writer, tty bool) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		out              = stderr
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(stderr, rotator)
		closer = rotator
		// в файл пишем JSON, даже если stderr терминал
		tty = false
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	case "text":
		handler = slog.NewTextHandler(out, opts)
	case "":
		if tty {
			handler = slog.NewTextHandler(out, opts)
		} else {
			handler = slog.NewJSONHandler(out, opts)
		}
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return slog.New(handler), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
