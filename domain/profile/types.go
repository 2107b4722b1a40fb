package profile

// ColumnType is the inferred semantic type of a column
type ColumnType string

const (
	TypeNumeric     ColumnType = "numeric"
	TypeCategorical ColumnType = "categorical"
	TypeDatetime    ColumnType = "datetime"
	TypeBoolean     ColumnType = "boolean"
	TypeText        ColumnType = "text"
)

// NumericStats holds summary statistics for numeric columns.
// Present only when at least one non-null numeric value exists.
type NumericStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	// Skewness of the non-null values; 0 for constant columns
	Skewness float64 `json:"skewness"`
}

// TopValue is one entry of a categorical frequency table
type TopValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ColumnProfile holds derived statistics and the inferred type for one
// column. Profiles are recomputed whenever a new Table is loaded.
type ColumnProfile struct {
	Name          string        `json:"name"`
	Position      int           `json:"position"`
	Type          ColumnType    `json:"type"`
	RowCount      int           `json:"row_count"`
	NullCount     int           `json:"null_count"`
	DistinctCount int           `json:"distinct_count"`
	Numeric       *NumericStats `json:"numeric,omitempty"`
	// TopValues is populated for categorical and boolean columns,
	// ordered by descending count with first-appearance tie-break
	TopValues []TopValue `json:"top_values,omitempty"`
}

// IsNumeric reports whether the column carries usable numeric statistics
func (p ColumnProfile) IsNumeric() bool {
	return p.Type == TypeNumeric && p.Numeric != nil
}

// NullRatio returns the fraction of null cells, 0 for empty columns
func (p ColumnProfile) NullRatio() float64 {
	if p.RowCount == 0 {
		return 0
	}
	return float64(p.NullCount) / float64(p.RowCount)
}
