package tabular

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"autoviz/domain/table"
	"autoviz/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Loader reads CSV and XLSX input into an immutable Table. It implements
// ports.TableLoader together with the sheet fetcher in sheets.go.
type Loader struct {
	httpTimeout time.Duration
}

// NewLoader creates a loader; httpTimeout bounds remote sheet fetches
func NewLoader(httpTimeout time.Duration) *Loader {
	if httpTimeout <= 0 {
		httpTimeout = 20 * time.Second
	}
	return &Loader{httpTimeout: httpTimeout}
}

// ReadFile loads a CSV or XLSX file from disk
func (l *Loader) ReadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()
	return l.Read(f, filepath.Base(path))
}

// Read loads from a byte stream; the filename extension decides the format
func (l *Loader) Read(r io.Reader, filename string) (*table.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return l.readCSV(r, filename)
	case ".xlsx":
		return l.readXLSX(r, filename)
	default:
		return nil, errors.UnsupportedFormat(filename)
	}
}

// readCSV reads CSV data into structured rows
func (l *Loader) readCSV(r io.Reader, sourceName string) (*table.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; short rows pad with nulls

	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WithCode(errors.CodeLoadError, errors.Wrap(err, "failed to parse CSV"))
	}
	log.Printf("[Loader] CSV %s read in %.2fms (%d rows)",
		sourceName, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return l.buildTable(rows, sourceName)
}

// readXLSX reads the first sheet of an XLSX workbook
func (l *Loader) readXLSX(r io.Reader, sourceName string) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.WithCode(errors.CodeLoadError, errors.Wrap(err, "failed to open XLSX workbook"))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.LoadError("workbook has no sheets")
	}

	readStart := time.Now()
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.WithCode(errors.CodeLoadError, errors.Wrapf(err, "failed to read sheet %s", sheets[0]))
	}
	log.Printf("[Loader] XLSX %s sheet %s read in %.2fms (%d rows)",
		sourceName, sheets[0], float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return l.buildTable(rows, sourceName)
}

// buildTable converts raw string rows into a validated Table. The first
// row is the header; a header-only file yields a zero-row Table, which is
// valid. A file with no rows at all is a load error.
func (l *Loader) buildTable(rows [][]string, sourceName string) (*table.Table, error) {
	if len(rows) == 0 {
		return nil, errors.LoadError("input has no header row")
	}

	headers := NormalizeHeaders(rows[0])
	if len(headers) == 0 {
		return nil, errors.LoadError("input has no columns")
	}

	columns := make([]table.Column, len(headers))
	for i, name := range headers {
		columns[i] = table.Column{
			Name:   name,
			Values: make([]table.Value, 0, len(rows)-1),
		}
	}

	for _, row := range rows[1:] {
		for i := range columns {
			if i < len(row) {
				columns[i].Values = append(columns[i].Values, CoerceCell(row[i]))
			} else {
				columns[i].Values = append(columns[i].Values, table.NewNullValue())
			}
		}
	}

	t, err := table.New(sourceName, columns)
	if err != nil {
		return nil, errors.WithCode(errors.CodeLoadError, err)
	}

	log.Printf("[Loader] %s loaded (%d columns, %d rows)", sourceName, t.NumCols(), t.NumRows())
	return t, nil
}
