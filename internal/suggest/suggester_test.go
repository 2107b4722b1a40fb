package suggest

import (
	"testing"

	"autoviz/domain/chart"
	"autoviz/domain/profile"
)

func col(name string, pos int, kind profile.ColumnType, distinct int) profile.ColumnProfile {
	return profile.ColumnProfile{Name: name, Position: pos, Type: kind, DistinctCount: distinct}
}

func TestTimeSeriesProducesLinePerNumeric(t *testing.T) {
	profiles := []profile.ColumnProfile{
		col("date", 0, profile.TypeDatetime, 30),
		col("sales", 1, profile.TypeNumeric, 28),
		col("units", 2, profile.TypeNumeric, 15),
	}

	got := NewSuggester(Config{}).Suggest(profiles)

	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(got))
	}
	for i, y := range []string{"sales", "units"} {
		if got[i].Kind != chart.KindLine {
			t.Errorf("suggestion %d: expected line, got %s", i, got[i].Kind)
		}
		if got[i].X != "date" || got[i].Y != y {
			t.Errorf("suggestion %d: expected date/%s, got %s/%s", i, y, got[i].X, got[i].Y)
		}
	}
}

func TestCategoricalNumericProducesBarNotPie(t *testing.T) {
	profiles := []profile.ColumnProfile{
		col("region", 0, profile.TypeCategorical, 4),
		col("revenue", 1, profile.TypeNumeric, 40),
	}

	got := NewSuggester(Config{}).Suggest(profiles)

	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(got))
	}
	if got[0].Kind != chart.KindBar {
		t.Errorf("expected bar, got %s", got[0].Kind)
	}
	if got[0].X != "region" || got[0].Y != "revenue" {
		t.Errorf("expected region/revenue, got %s/%s", got[0].X, got[0].Y)
	}
	for _, s := range got {
		if s.Kind == chart.KindPie {
			t.Error("pie must not appear when a bar pairing exists")
		}
	}
}

func TestLoneCategoricalProducesSinglePie(t *testing.T) {
	profiles := []profile.ColumnProfile{
		col("status", 0, profile.TypeCategorical, 3),
	}

	got := NewSuggester(Config{}).Suggest(profiles)

	if len(got) != 1 {
		t.Fatalf("expected exactly 1 suggestion, got %d", len(got))
	}
	if got[0].Kind != chart.KindPie || got[0].X != "status" {
		t.Errorf("expected pie over status, got %s over %s", got[0].Kind, got[0].X)
	}
	if got[0].Y != "" {
		t.Errorf("frequency pie must not reference a Y column, got %q", got[0].Y)
	}
}

func TestCardinalityBounds(t *testing.T) {
	tests := []struct {
		name     string
		distinct int
		numeric  bool
		expected int
	}{
		{"single category no bar", 1, true, 0},
		{"two categories bar", 2, true, 1},
		{"twelve categories bar", 12, true, 1},
		{"thirteen categories no bar", 13, true, 0},
		{"nine categories no pie", 9, false, 0},
		{"eight categories pie", 8, false, 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			profiles := []profile.ColumnProfile{
				col("cat", 0, profile.TypeCategorical, test.distinct),
			}
			if test.numeric {
				profiles = append(profiles, col("val", 1, profile.TypeNumeric, 10))
			}

			got := NewSuggester(Config{}).Suggest(profiles)
			if len(got) != test.expected {
				t.Errorf("expected %d suggestions, got %d: %+v", test.expected, len(got), got)
			}
		})
	}
}

func TestDisableFlags(t *testing.T) {
	profiles := []profile.ColumnProfile{
		col("date", 0, profile.TypeDatetime, 30),
		col("region", 1, profile.TypeCategorical, 4),
		col("sales", 2, profile.TypeNumeric, 28),
	}

	all := NewSuggester(Config{}).Suggest(profiles)
	if len(all) != 2 {
		t.Fatalf("expected line+bar, got %d suggestions", len(all))
	}

	noLine := NewSuggester(Config{DisableLine: true}).Suggest(profiles)
	for _, s := range noLine {
		if s.Kind == chart.KindLine {
			t.Error("line suggested despite DisableLine")
		}
	}

	// With bars disabled the categorical column falls through to the pie rule
	noBar := NewSuggester(Config{DisableBar: true}).Suggest(profiles)
	sawPie := false
	for _, s := range noBar {
		if s.Kind == chart.KindBar {
			t.Error("bar suggested despite DisableBar")
		}
		if s.Kind == chart.KindPie {
			sawPie = true
		}
	}
	if !sawPie {
		t.Error("expected pie once bars are disabled")
	}
}

func TestSuggestionsReferenceExistingColumns(t *testing.T) {
	profiles := []profile.ColumnProfile{
		col("date", 0, profile.TypeDatetime, 10),
		col("region", 1, profile.TypeCategorical, 5),
		col("sales", 2, profile.TypeNumeric, 10),
		col("cost", 3, profile.TypeNumeric, 10),
	}
	known := map[string]bool{}
	for _, p := range profiles {
		known[p.Name] = true
	}

	for _, s := range NewSuggester(Config{}).Suggest(profiles) {
		if !known[s.X] {
			t.Errorf("suggestion references unknown X column %q", s.X)
		}
		if s.Y != "" && !known[s.Y] {
			t.Errorf("suggestion references unknown Y column %q", s.Y)
		}
	}
}

func TestNoMatchReturnsEmpty(t *testing.T) {
	profiles := []profile.ColumnProfile{
		col("notes", 0, profile.TypeText, 40),
		col("comment", 1, profile.TypeText, 40),
	}

	got := NewSuggester(Config{}).Suggest(profiles)
	if len(got) != 0 {
		t.Fatalf("expected no suggestions, got %+v", got)
	}

	fb, ok := Fallback(profiles)
	if !ok {
		t.Fatal("expected a fallback for two columns")
	}
	if fb.Kind != chart.KindBar || fb.X != "notes" || fb.Y != "comment" {
		t.Errorf("unexpected fallback: %+v", fb)
	}

	if _, ok := Fallback(profiles[:1]); ok {
		t.Error("single-column profiles must not produce a fallback")
	}
}
