package storage

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iudanet/depotsync/internal/models"
)

// String returns the column as text, "" when absent or NULL.
func (r Row) String(col string) string {
	switch v := r[col].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	}
	return ""
}

// Int64 returns the column as an integer, 0 when absent or not numeric.
func (r Row) Int64(col string) int64 {
	switch v := r[col].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	}
	n, _ := strconv.ParseInt(strings.TrimSpace(r.String(col)), 10, 64)
	return n
}

// Bool interprets 0/1 integer columns.
func (r Row) Bool(col string) bool {
	return r.Int64(col) != 0
}

// Decimal returns the column as a decimal, zero when absent or not numeric.
func (r Row) Decimal(col string) decimal.Decimal {
	switch v := r[col].(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int64:
		return decimal.NewFromInt(v)
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(r.String(col)), ",", "."))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Time parses a timestamp column, zero time when absent or unparsable.
func (r Row) Time(col string) time.Time {
	s := strings.TrimSpace(r.String(col))
	if s == "" {
		return time.Time{}
	}
	t, err := models.ParseTimestamp(s)
	if err != nil {
		return time.Time{}
	}
	return t
}
