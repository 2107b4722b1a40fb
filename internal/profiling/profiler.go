package profiling

import (
	"sort"
	"strings"

	"autoviz/domain/profile"
	"autoviz/domain/table"
	"autoviz/internal"
	"autoviz/internal/config"
	"autoviz/internal/errors"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// booleanTokens is the distinct-value universe that classifies a column
// as boolean: any non-empty subset of {true/false, yes/no, 0/1},
// case-insensitive
var booleanTokens = map[string]bool{
	"true": true, "false": true,
	"yes": true, "no": true,
	"0": true, "1": true,
}

// Profiler derives per-column statistics and inferred types from a
// Table. Implements ports.SchemaProfiler. Profiling is deterministic:
// the same Table always yields the same profiles.
type Profiler struct {
	cfg    config.ProfilerConfig
	logger *internal.Logger // Logger for controlled verbosity
}

// NewProfiler creates a profiler with the given thresholds
func NewProfiler(cfg config.ProfilerConfig) *Profiler {
	if cfg.CategoricalMaxDistinct <= 0 {
		cfg.CategoricalMaxDistinct = 20
	}
	if cfg.ParseRatio <= 0 || cfg.ParseRatio > 1 {
		cfg.ParseRatio = 0.8
	}
	if cfg.TopK <= 0 {
		cfg.TopK = 10
	}
	return &Profiler{cfg: cfg, logger: internal.NewDefaultLogger()}
}

// Profile produces one ColumnProfile per column, in column order. A
// table with zero columns fails with a LOAD_ERROR; a table with zero
// rows yields profiles whose statistics blocks are nil.
func (p *Profiler) Profile(t *table.Table) ([]profile.ColumnProfile, error) {
	if t == nil || t.NumCols() == 0 {
		return nil, errors.LoadError("cannot profile an empty table")
	}

	profiles := make([]profile.ColumnProfile, 0, t.NumCols())
	for i, col := range t.Columns() {
		prof := p.profileColumn(col, i)
		p.logger.Debug("Column %q classified %s: %d nulls, %d distinct",
			prof.Name, prof.Type, prof.NullCount, prof.DistinctCount)
		profiles = append(profiles, prof)
	}
	return profiles, nil
}

func (p *Profiler) profileColumn(col table.Column, position int) profile.ColumnProfile {
	prof := profile.ColumnProfile{
		Name:     col.Name,
		Position: position,
		Type:     profile.TypeText,
		RowCount: len(col.Values),
	}

	// Single pass: split nulls out, track distinct canonical forms in
	// first-appearance order and per-kind counts
	var (
		nonNull      int
		numericVals  []float64
		numericCount int
		timeCount    int
		distinct     = make(map[string]int)
		firstSeen    = make(map[string]int)
		order        []string
	)

	for _, v := range col.Values {
		if v.IsNull {
			prof.NullCount++
			continue
		}
		nonNull++

		key := v.String()
		if _, seen := distinct[key]; !seen {
			firstSeen[key] = nonNull
			order = append(order, key)
		}
		distinct[key]++

		if n, ok := v.Number(); ok {
			numericCount++
			numericVals = append(numericVals, n)
		}
		if _, ok := v.Time(); ok {
			timeCount++
		}
	}

	prof.DistinctCount = len(distinct)

	// Entirely null (or zero-row) columns carry no statistics
	if nonNull == 0 {
		return prof
	}

	if isBooleanSet(order) {
		prof.Type = profile.TypeBoolean
		prof.TopValues = p.topValues(distinct, firstSeen, order)
		return prof
	}

	if float64(timeCount)/float64(nonNull) >= p.cfg.ParseRatio {
		prof.Type = profile.TypeDatetime
		return prof
	}

	if float64(numericCount)/float64(nonNull) >= p.cfg.ParseRatio {
		prof.Type = profile.TypeNumeric
		prof.Numeric = numericStats(numericVals)
		return prof
	}

	if len(distinct) <= p.cfg.CategoricalMaxDistinct {
		prof.Type = profile.TypeCategorical
		prof.TopValues = p.topValues(distinct, firstSeen, order)
		return prof
	}

	return prof
}

// isBooleanSet reports whether the distinct values fold to at most two
// recognized boolean tokens
func isBooleanSet(values []string) bool {
	if len(values) == 0 {
		return false
	}
	folded := make(map[string]bool, 2)
	for _, v := range values {
		low := strings.ToLower(v)
		if !booleanTokens[low] {
			return false
		}
		folded[low] = true
	}
	return len(folded) <= 2
}

// topValues builds the frequency table, descending by count with
// first-appearance tie-break, truncated to TopK
func (p *Profiler) topValues(distinct map[string]int, firstSeen map[string]int, order []string) []profile.TopValue {
	entries := make([]profile.TopValue, 0, len(order))
	for _, key := range order {
		entries = append(entries, profile.TopValue{Value: key, Count: distinct[key]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return firstSeen[entries[i].Value] < firstSeen[entries[j].Value]
	})

	if len(entries) > p.cfg.TopK {
		entries = entries[:p.cfg.TopK]
	}
	return entries
}

// numericStats computes summary statistics over the non-null numeric
// values of a column
func numericStats(vals []float64) *profile.NumericStats {
	if len(vals) == 0 {
		return nil
	}

	min, _ := stats.Min(vals)
	max, _ := stats.Max(vals)
	mean, _ := stats.Mean(vals)
	median, _ := stats.Median(vals)
	stdDev, _ := stats.StandardDeviation(vals)

	skew := 0.0
	if len(vals) > 2 && stdDev > 0 {
		skew = stat.Skew(vals, nil)
	}

	return &profile.NumericStats{
		Min:      min,
		Max:      max,
		Mean:     mean,
		Median:   median,
		StdDev:   stdDev,
		Skewness: skew,
	}
}
