package tabular

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"

	"autoviz/domain/table"
	"autoviz/internal/errors"
)

var sheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)

// NormalizeSheetURL rewrites a plain Google Sheets URL into its CSV
// export form (.../gviz/tq?tqx=out:csv). URLs already in export form, or
// pointing elsewhere entirely, pass through unchanged.
func NormalizeSheetURL(url string) string {
	if strings.Contains(url, "gviz/tq") {
		return url
	}
	m := sheetIDPattern.FindStringSubmatch(url)
	if m == nil {
		return url
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:csv", m[1])
}

// FetchSheet loads a Google Sheets CSV export URL into a Table
func (l *Loader) FetchSheet(ctx context.Context, url string) (*table.Table, error) {
	url = NormalizeSheetURL(strings.TrimSpace(url))
	if url == "" {
		return nil, errors.LoadError("sheet URL is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, l.httpTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NetworkError("invalid sheet URL", err)
	}

	log.Printf("[Loader] Fetching sheet: %s", url)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.NetworkError("failed to fetch sheet", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NetworkError(fmt.Sprintf("sheet fetch returned status %d", resp.StatusCode), nil)
	}

	return l.readCSV(resp.Body, "GoogleSheets.csv")
}
