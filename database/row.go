package database

import (
	"bytes"
	"encoding/json"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Row is one result row: an ordered mapping from declared column name to
// typed value. Serialization is a pure function of the column order, so two
// runs of the same query produce byte-identical output for identical data.
type Row struct {
	Columns []string
	Values  []any
}

// Get returns the value of the named column.
func (r Row) Get(column string) (any, bool) {
	for i, c := range r.Columns {
		if c == column {
			return r.Values[i], true
		}
	}
	return nil, false
}

// MarshalJSON writes the row as a JSON object with keys in column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.Values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Table is one store table with its columns in declared order.
type Table struct {
	Name    string
	Columns []string
}

// Schema is the ordered table list of the store.
type Schema []Table

// normalizeValue maps driver-specific types onto plain Go values so that
// rows marshal cleanly and compare naturally in tests. Dates come back as
// "2006-01-02" strings, matching the store's own literal format.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case pgtype.Numeric:
		f, err := val.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case *big.Int:
		return val.Int64()
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format(time.RFC3339)
	case int32:
		return int(val)
	case int64:
		return int(val)
	default:
		return v
	}
}
