package table

import (
	"testing"
	"time"
)

func TestNewValidatesColumns(t *testing.T) {
	tests := []struct {
		name     string
		columns  []Column
		hasError bool
	}{
		{
			name:     "no columns",
			columns:  nil,
			hasError: true,
		},
		{
			name: "valid single column",
			columns: []Column{
				{Name: "a", Values: []Value{NewNumericValue(1)}},
			},
			hasError: false,
		},
		{
			name: "duplicate names",
			columns: []Column{
				{Name: "a", Values: []Value{NewNumericValue(1)}},
				{Name: "a", Values: []Value{NewNumericValue(2)}},
			},
			hasError: true,
		},
		{
			name: "unequal lengths",
			columns: []Column{
				{Name: "a", Values: []Value{NewNumericValue(1)}},
				{Name: "b", Values: []Value{NewNumericValue(1), NewNumericValue(2)}},
			},
			hasError: true,
		},
		{
			name: "empty column name",
			columns: []Column{
				{Name: "  ", Values: []Value{NewNumericValue(1)}},
			},
			hasError: true,
		},
		{
			name: "zero rows is valid",
			columns: []Column{
				{Name: "a", Values: nil},
				{Name: "b", Values: nil},
			},
			hasError: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := New("test.csv", test.columns)
			if test.hasError && err == nil {
				t.Error("expected error, got none")
			}
			if !test.hasError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestTableAccessors(t *testing.T) {
	tbl, err := New("sales.csv", []Column{
		{Name: "region", Values: []Value{NewStringValue("north"), NewStringValue("south")}},
		{Name: "revenue", Values: []Value{NewNumericValue(10), NewNumericValue(20)}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tbl.NumRows() != 2 || tbl.NumCols() != 2 {
		t.Errorf("expected 2x2 table, got %dx%d", tbl.NumRows(), tbl.NumCols())
	}

	col, ok := tbl.Column("revenue")
	if !ok {
		t.Fatal("revenue column not found")
	}
	if n, _ := col.Values[1].Number(); n != 20 {
		t.Errorf("expected 20, got %v", n)
	}

	if _, ok := tbl.Column("missing"); ok {
		t.Error("expected lookup miss for unknown column")
	}

	names := tbl.ColumnNames()
	if names[0] != "region" || names[1] != "revenue" {
		t.Errorf("unexpected column order: %v", names)
	}
}

func TestValueCanonicalString(t *testing.T) {
	ts := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		value    Value
		expected string
	}{
		{NewStringValue("hello"), "hello"},
		{NewNumericValue(1), "1"},
		{NewNumericValue(2.5), "2.5"},
		{NewBooleanValue(true), "true"},
		{NewTimestampValue(ts), "2024-03-01T00:00:00Z"},
		{NewNullValue(), ""},
		{NewStringValue(""), ""}, // empty strings collapse to null
	}

	for _, test := range tests {
		if got := test.value.String(); got != test.expected {
			t.Errorf("String() = %q, expected %q", got, test.expected)
		}
	}
}

func TestEmptyStringBecomesNull(t *testing.T) {
	v := NewStringValue("")
	if !v.IsNull {
		t.Error("expected empty string value to be null")
	}
}
