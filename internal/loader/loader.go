package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"StockSeer/internal/model"
)

// Source yields the ordered records of one instrument.
type Source interface {
	Records() ([]model.Record, error)
	Name() string
}

// DefaultDateLayout is used when a CSVFile does not specify one.
const DefaultDateLayout = "2006-01-02"

// CSVFile reads daily records from a delimiter-separated file with a header
// row. Columns are located by header name (case-insensitive): date, open,
// high, low, close, volume. Rows with any blank or unparseable field are
// dropped; surviving rows are sorted chronologically.
type CSVFile struct {
	Path       string
	DateLayout string // defaults to DefaultDateLayout
	Delimiter  rune   // defaults to ','
}

func (f *CSVFile) Name() string { return f.Path }

// Records reads and parses the file. Duplicate dates keep the first
// occurrence; later ones are dropped with a warning.
func (f *CSVFile) Records() ([]model.Record, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Path, err)
	}
	defer file.Close()
	return f.parse(file)
}

func (f *CSVFile) parse(r io.Reader) ([]model.Record, error) {
	layout := f.DateLayout
	if layout == "" {
		layout = DefaultDateLayout
	}

	cr := csv.NewReader(r)
	if f.Delimiter != 0 {
		cr.Comma = f.Delimiter
	}
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []model.Record
	seen := make(map[time.Time]bool)
	dropped := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rec, ok := parseRow(row, cols, layout)
		if !ok {
			dropped++
			continue
		}
		if seen[rec.Date] {
			log.Printf("[WARN] %s: duplicate date %s, keeping first", f.Path, rec.Date.Format(layout))
			continue
		}
		seen[rec.Date] = true
		records = append(records, rec)
	}

	if dropped > 0 {
		log.Printf("[INFO] %s: dropped %d rows with missing or invalid fields", f.Path, dropped)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: no usable rows", f.Path)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
	return records, nil
}

// columnIndexes maps each required column to its position in the header.
type columnIndexes struct {
	date  int
	field [model.FieldCount]int
}

func mapColumns(header []string) (columnIndexes, error) {
	idx := columnIndexes{date: -1}
	for i := range idx.field {
		idx.field[i] = -1
	}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "date", "timestamp":
			idx.date = i
		case "open":
			idx.field[model.FieldOpen] = i
		case "high":
			idx.field[model.FieldHigh] = i
		case "low":
			idx.field[model.FieldLow] = i
		case "close", "adj close", "adj_close":
			if idx.field[model.FieldClose] == -1 {
				idx.field[model.FieldClose] = i
			}
		case "volume":
			idx.field[model.FieldVolume] = i
		}
	}
	if idx.date == -1 {
		return idx, fmt.Errorf("header is missing a date column")
	}
	for i, pos := range idx.field {
		if pos == -1 {
			return idx, fmt.Errorf("header is missing column %q", model.FieldNames[i])
		}
	}
	return idx, nil
}

// parseRow converts one CSV row to a Record. Any blank or unparseable cell
// makes the whole row unusable.
func parseRow(row []string, cols columnIndexes, layout string) (model.Record, bool) {
	var rec model.Record

	cell := func(i int) (string, bool) {
		if i >= len(row) {
			return "", false
		}
		v := strings.TrimSpace(row[i])
		if v == "" || strings.EqualFold(v, "null") || strings.EqualFold(v, "nan") {
			return "", false
		}
		return v, true
	}

	ds, ok := cell(cols.date)
	if !ok {
		return rec, false
	}
	date, err := time.Parse(layout, ds)
	if err != nil {
		return rec, false
	}
	rec.Date = date

	vals := [model.FieldCount]float64{}
	for i, pos := range cols.field {
		s, ok := cell(pos)
		if !ok {
			return rec, false
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
		if err != nil {
			return rec, false
		}
		vals[i] = v
	}
	rec.Open = vals[model.FieldOpen]
	rec.High = vals[model.FieldHigh]
	rec.Low = vals[model.FieldLow]
	rec.Close = vals[model.FieldClose]
	rec.Volume = vals[model.FieldVolume]
	return rec, true
}
