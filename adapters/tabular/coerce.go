package tabular

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"autoviz/domain/table"
)

// datetimeFormats is the fixed set of formats attempted during cell
// coercion and schema inference. Order matters: more specific first.
var datetimeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"02-Jan-2006",
	"Jan 2, 2006",
}

// CoerceCell deterministically converts a raw cell string to a typed
// Value. Datetime is attempted first against the fixed format list, then
// numeric, then boolean; anything else stays text. Empty cells are null.
func CoerceCell(raw string) table.Value {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return table.NewNullValue()
	}

	if t, ok := tryParseDatetime(cleaned); ok {
		return table.NewTimestampValue(t)
	}

	if n, ok := tryParseNumeric(cleaned); ok {
		return table.NewNumericValue(n)
	}

	if b, ok := tryParseBoolean(cleaned); ok {
		return table.NewBooleanValue(b)
	}

	return table.NewStringValue(cleaned)
}

// tryParseDatetime attempts the fixed format list and requires a sane
// year so serial numbers never masquerade as dates
func tryParseDatetime(s string) (time.Time, bool) {
	for _, format := range datetimeFormats {
		if t, err := time.Parse(format, s); err == nil {
			if y := t.Year(); y >= 1900 && y <= 2100 {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// tryParseNumeric attempts to parse as numeric with lenient cleanup.
// Handles thousands separators, currency symbols, percent signs and
// parenthesized negatives: (123) -> -123
func tryParseNumeric(s string) (float64, bool) {
	cleanVal := strings.TrimSpace(s)

	isNegative := false
	if strings.HasPrefix(cleanVal, "(") && strings.HasSuffix(cleanVal, ")") {
		cleanVal = strings.TrimPrefix(cleanVal, "(")
		cleanVal = strings.TrimSuffix(cleanVal, ")")
		isNegative = true
	}

	for _, symbol := range []string{"$", "€", "£", "¥"} {
		cleanVal = strings.ReplaceAll(cleanVal, symbol, "")
	}
	cleanVal = strings.ReplaceAll(cleanVal, "%", "")
	cleanVal = strings.ReplaceAll(cleanVal, ",", "")
	cleanVal = strings.TrimSpace(cleanVal)

	if cleanVal == "" {
		return 0, false
	}
	if isNegative {
		cleanVal = "-" + cleanVal
	}

	val, err := strconv.ParseFloat(cleanVal, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, false
	}
	return val, true
}

// tryParseBoolean accepts only the literal true/false tokens at cell
// level; column-level boolean detection over {yes/no, 0/1} sets happens
// in the profiler where the full distinct set is visible
func tryParseBoolean(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// NormalizeHeaders trims and de-duplicates column names. Blank headers
// become column_N; duplicates get a _2, _3, ... suffix.
func NormalizeHeaders(raw []string) []string {
	seen := make(map[string]int, len(raw))
	headers := make([]string, len(raw))

	for i, h := range raw {
		name := strings.Join(strings.Fields(strings.TrimSpace(h)), " ")
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}

		base := name
		for n := 2; ; n++ {
			if _, dup := seen[name]; !dup {
				break
			}
			name = fmt.Sprintf("%s_%d", base, n)
		}

		seen[name] = i
		headers[i] = name
	}
	return headers
}
