package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Value represents a typed scalar cell with deterministic coercion
type Value struct {
	Type         ValueType  `json:"type"`
	StringVal    *string    `json:"string_val,omitempty"`
	NumericVal   *float64   `json:"numeric_val,omitempty"`
	BooleanVal   *bool      `json:"boolean_val,omitempty"`
	TimestampVal *time.Time `json:"timestamp_val,omitempty"`
	IsNull       bool       `json:"is_null"`
}

// ValueType defines the storage type for cell values
type ValueType string

const (
	ValueTypeString    ValueType = "string"
	ValueTypeNumeric   ValueType = "numeric"
	ValueTypeBoolean   ValueType = "boolean"
	ValueTypeTimestamp ValueType = "timestamp"
	ValueTypeNull      ValueType = "null"
)

// NewStringValue creates a string value; empty strings become null
func NewStringValue(s string) Value {
	if s == "" {
		return NewNullValue()
	}
	return Value{Type: ValueTypeString, StringVal: &s}
}

// NewNumericValue creates a numeric value
func NewNumericValue(n float64) Value {
	return Value{Type: ValueTypeNumeric, NumericVal: &n}
}

// NewBooleanValue creates a boolean value
func NewBooleanValue(b bool) Value {
	return Value{Type: ValueTypeBoolean, BooleanVal: &b}
}

// NewTimestampValue creates a timestamp value
func NewTimestampValue(t time.Time) Value {
	return Value{Type: ValueTypeTimestamp, TimestampVal: &t}
}

// NewNullValue creates a null value
func NewNullValue() Value {
	return Value{Type: ValueTypeNull, IsNull: true}
}

// Number returns the numeric payload and whether one is present
func (v Value) Number() (float64, bool) {
	if v.Type == ValueTypeNumeric && v.NumericVal != nil {
		return *v.NumericVal, true
	}
	return 0, false
}

// Time returns the timestamp payload and whether one is present
func (v Value) Time() (time.Time, bool) {
	if v.Type == ValueTypeTimestamp && v.TimestampVal != nil {
		return *v.TimestampVal, true
	}
	return time.Time{}, false
}

// Bool returns the boolean payload and whether one is present
func (v Value) Bool() (bool, bool) {
	if v.Type == ValueTypeBoolean && v.BooleanVal != nil {
		return *v.BooleanVal, true
	}
	return false, false
}

// String returns a canonical string form used for distinct-value counting
// and categorical frequencies
func (v Value) String() string {
	switch v.Type {
	case ValueTypeString:
		if v.StringVal != nil {
			return *v.StringVal
		}
	case ValueTypeNumeric:
		if v.NumericVal != nil {
			return strconv.FormatFloat(*v.NumericVal, 'g', -1, 64)
		}
	case ValueTypeBoolean:
		if v.BooleanVal != nil {
			return strconv.FormatBool(*v.BooleanVal)
		}
	case ValueTypeTimestamp:
		if v.TimestampVal != nil {
			return v.TimestampVal.Format(time.RFC3339)
		}
	case ValueTypeNull:
		return ""
	}
	return ""
}

// Column is an ordered sequence of values under a unique name
type Column struct {
	Name   string  `json:"name"`
	Values []Value `json:"values"`
}

// Table is the in-memory tabular representation of a loaded dataset.
// Columns are equal-length and uniquely named; a Table is never mutated
// after construction.
type Table struct {
	SourceName string
	columns    []Column
	rows       int
	index      map[string]int
}

// New validates columns and builds an immutable Table
func New(sourceName string, columns []Column) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table must have at least one column")
	}

	rows := len(columns[0].Values)
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		name := strings.TrimSpace(col.Name)
		if name == "" {
			return nil, fmt.Errorf("column %d has an empty name", i)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		if len(col.Values) != rows {
			return nil, fmt.Errorf("column %q has %d values, expected %d", name, len(col.Values), rows)
		}
		index[name] = i
	}

	return &Table{
		SourceName: sourceName,
		columns:    columns,
		rows:       rows,
		index:      index,
	}, nil
}

// NumRows returns the row count
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the column count
func (t *Table) NumCols() int { return len(t.columns) }

// Columns returns the columns in original order
func (t *Table) Columns() []Column { return t.columns }

// ColumnNames returns the column names in original order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// Column looks up a column by name
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.columns[i], true
}

// ColumnAt returns the column at position i
func (t *Table) ColumnAt(i int) Column { return t.columns[i] }

// HasColumn reports whether a column with the given name exists
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}
