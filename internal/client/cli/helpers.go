package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"
)

// maskKey shows only the first and last 4 characters of a key
func maskKey(key string) string {
	if len(key) <= 8 {
		return "********" // короткие ключи маскируем полностью
	}
	return key[:4] + "****" + key[len(key)-4:]
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "never"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

func parseEntryID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid entry id %q", s)
	}
	return id, nil
}

func parseDeadLetterID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid dead letter id %q", s)
	}
	return id, nil
}

// table пишет выровненные колонки через c.io
func (c *Cli) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
