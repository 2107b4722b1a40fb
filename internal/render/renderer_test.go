package render

import (
	"testing"
	"time"

	"autoviz/domain/chart"
	"autoviz/domain/table"
)

func buildTable(t *testing.T, cols []table.Column) *table.Table {
	t.Helper()
	tbl, err := table.New("test.csv", cols)
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}
	return tbl
}

func TestRenderLineSortsByTime(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tbl := buildTable(t, []table.Column{
		{Name: "date", Values: []table.Value{
			table.NewTimestampValue(base.AddDate(0, 0, 2)),
			table.NewTimestampValue(base),
			table.NewTimestampValue(base.AddDate(0, 0, 1)),
		}},
		{Name: "sales", Values: []table.Value{
			table.NewNumericValue(30),
			table.NewNumericValue(10),
			table.NewNumericValue(20),
		}},
	})

	art, err := NewRenderer().Render(tbl, chart.Suggestion{Kind: chart.KindLine, X: "date", Y: "sales"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(art.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(art.Points))
	}
	for i := 1; i < len(art.Points); i++ {
		if art.Points[i].X.Before(art.Points[i-1].X) {
			t.Error("points are not sorted ascending by time")
		}
	}
	if art.Points[0].Y != 10 || art.Points[2].Y != 30 {
		t.Errorf("y values did not follow their x after sorting: %+v", art.Points)
	}
}

func TestRenderLineDropsIncompleteRows(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tbl := buildTable(t, []table.Column{
		{Name: "date", Values: []table.Value{
			table.NewTimestampValue(base),
			table.NewNullValue(),
			table.NewTimestampValue(base.AddDate(0, 0, 2)),
		}},
		{Name: "sales", Values: []table.Value{
			table.NewNumericValue(10),
			table.NewNumericValue(20),
			table.NewNullValue(),
		}},
	})

	art, err := NewRenderer().Render(tbl, chart.Suggestion{Kind: chart.KindLine, X: "date", Y: "sales"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(art.Points) != 1 {
		t.Fatalf("expected 1 complete point, got %d", len(art.Points))
	}
}

func TestRenderBarSumsPerCategory(t *testing.T) {
	tbl := buildTable(t, []table.Column{
		{Name: "region", Values: []table.Value{
			table.NewStringValue("north"),
			table.NewStringValue("south"),
			table.NewStringValue("north"),
		}},
		{Name: "revenue", Values: []table.Value{
			table.NewNumericValue(100),
			table.NewNumericValue(50),
			table.NewNumericValue(25),
		}},
	})

	art, err := NewRenderer().Render(tbl, chart.Suggestion{Kind: chart.KindBar, X: "region", Y: "revenue"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(art.Labels) != 2 {
		t.Fatalf("expected 2 labels, got %v", art.Labels)
	}
	// first-appearance order, not sorted
	if art.Labels[0] != "north" || art.Labels[1] != "south" {
		t.Errorf("unexpected label order: %v", art.Labels)
	}
	if art.Values[0] != 125 || art.Values[1] != 50 {
		t.Errorf("unexpected sums: %v", art.Values)
	}
}

func TestRenderPieFrequenciesSortedDescending(t *testing.T) {
	tbl := buildTable(t, []table.Column{
		{Name: "status", Values: []table.Value{
			table.NewStringValue("open"),
			table.NewStringValue("closed"),
			table.NewStringValue("closed"),
			table.NewStringValue("pending"),
			table.NewStringValue("closed"),
		}},
	})

	art, err := NewRenderer().Render(tbl, chart.Suggestion{Kind: chart.KindPie, X: "status"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if art.Labels[0] != "closed" || art.Values[0] != 3 {
		t.Errorf("expected closed(3) first, got %s(%v)", art.Labels[0], art.Values[0])
	}
	for i := 1; i < len(art.Values); i++ {
		if art.Values[i] > art.Values[i-1] {
			t.Error("pie slices are not in descending order")
		}
	}
}

func TestRenderUnknownColumnFails(t *testing.T) {
	tbl := buildTable(t, []table.Column{
		{Name: "a", Values: []table.Value{table.NewNumericValue(1)}},
	})

	if _, err := NewRenderer().Render(tbl, chart.Suggestion{Kind: chart.KindBar, X: "missing"}); err == nil {
		t.Error("expected error for unknown x column")
	}
	if _, err := NewRenderer().Render(tbl, chart.Suggestion{Kind: chart.KindLine, X: "a"}); err == nil {
		t.Error("expected error for a line chart without a y column")
	}
}

func TestThemeOrDefault(t *testing.T) {
	if got := ThemeOrDefault("Dark"); got.Name != "Dark" {
		t.Errorf("expected Dark theme, got %s", got.Name)
	}
	if got := ThemeOrDefault("nope"); got.Name != "Default" {
		t.Errorf("unknown theme must fall back to Default, got %s", got.Name)
	}
	if got := ThemeOrDefault(""); got.Name != "Default" {
		t.Errorf("empty theme must fall back to Default, got %s", got.Name)
	}

	names := ThemeNames()
	if len(names) != len(Themes) {
		t.Errorf("expected %d theme names, got %d", len(Themes), len(names))
	}
}
