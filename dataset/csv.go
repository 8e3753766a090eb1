package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/railpath/logging"
)

// Columns names the CSV headers holding each Record field.
type Columns struct {
	Source      string
	Destination string
	Line        string
	Distance    string
	Cost        string
	Duration    string

	// Comma is the field separator; 0 means ','.
	Comma rune
}

// DefaultColumns returns the headers of the Shinkansen edge table.
func DefaultColumns() Columns {
	return Columns{
		Source:      "Source_Stations",
		Destination: "Destination_Stations",
		Line:        "Line",
		Distance:    "Distance_(Km)",
		Cost:        "Cost_(Yen)",
		Duration:    "Durations_(Min)",
	}
}

// ReadCSV parses an edge table. Headers are matched by name after
// trimming, so column order and extra columns do not matter. Station and
// line cells are trimmed; numeric cells must parse as floats.
func ReadCSV(r io.Reader, cols Columns) ([]Record, error) {
	cr := csv.NewReader(r)
	if cols.Comma != 0 {
		cr.Comma = cols.Comma
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", ErrMissingColumn)
	}
	if err != nil {
		return nil, errors.Wrap(err, "can not read CSV header")
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	names := [...]string{cols.Source, cols.Destination, cols.Line, cols.Distance, cols.Cost, cols.Duration}
	var pos [len(names)]int
	for i, name := range names {
		idx, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		pos[i] = idx
	}

	var out []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "can not read CSV row")
		}
		line, _ := cr.FieldPos(0)

		cell := func(i int) string {
			if pos[i] >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[pos[i]])
		}
		rec := Record{Source: cell(0), Destination: cell(1), Line: cell(2)}
		for i, dst := range [...]*float64{&rec.Distance, &rec.Cost, &rec.Duration} {
			raw := cell(3 + i)
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %q: %q", ErrBadValue, line, names[3+i], raw)
			}
			*dst = v
		}
		out = append(out, rec)
	}

	return out, nil
}

// LoadCSVFile opens path and parses it with ReadCSV. Close failures are
// logged on the context logger.
func LoadCSVFile(ctx context.Context, path string, cols Columns) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can not open %s", path)
	}

	return loadCSV(ctx, f, path, cols)
}

func loadCSV(ctx context.Context, rc io.ReadCloser, path string, cols Columns) ([]Record, error) {
	defer logging.SafeCloseWithLogging(rc, logging.FromContext(ctx), "load_csv")

	records, err := ReadCSV(rc, cols)
	if err != nil {
		return nil, errors.Wrapf(err, "can not parse %s", path)
	}

	return records, nil
}
