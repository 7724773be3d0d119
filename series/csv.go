package series

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads one numeric column from a CSV file.
//
// When the file has a header row containing column, that column is used.
// A single-column file whose first row parses as a number is treated as
// headerless. Empty or unparseable cells become NaN (missing).
func LoadCSV(path, column string) ([]float64, error) {
	records, err := readAll(path)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("csv %s: file is empty", path)
	}

	col, skipHeader, err := resolveColumn(records[0], column)
	if err != nil {
		return nil, fmt.Errorf("csv %s: %w", path, err)
	}

	rows := records
	if skipHeader {
		rows = records[1:]
	}

	values := make([]float64, 0, len(rows))
	for _, rec := range rows {
		if col >= len(rec) {
			values = append(values, nan())
			continue
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
		if err != nil {
			values = append(values, nan())
			continue
		}

		values = append(values, v)
	}

	return values, nil
}

// Dates returns the unique values of a label column in file order,
// mirroring available-date discovery over an index file.
func Dates(path, column string) ([]string, error) {
	records, err := readAll(path)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("csv %s: file is empty", path)
	}

	col, skipHeader, err := resolveColumn(records[0], column)
	if err != nil {
		return nil, fmt.Errorf("csv %s: %w", path, err)
	}

	rows := records
	if skipHeader {
		rows = records[1:]
	}

	seen := make(map[string]struct{}, len(rows))
	dates := make([]string, 0, len(rows))
	for _, rec := range rows {
		if col >= len(rec) {
			continue
		}

		d := strings.TrimSpace(rec[col])
		if d == "" {
			continue
		}

		if _, ok := seen[d]; ok {
			continue
		}

		seen[d] = struct{}{}
		dates = append(dates, d)
	}

	return dates, nil
}

func readAll(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}

	return records, nil
}

// resolveColumn locates column in the first record. It reports whether the
// first record is a header row that should be skipped.
func resolveColumn(first []string, column string) (int, bool, error) {
	for i, name := range first {
		if strings.EqualFold(strings.TrimSpace(name), column) {
			return i, true, nil
		}
	}

	// Headerless single-column files are accepted as-is.
	if len(first) == 1 {
		if _, err := strconv.ParseFloat(strings.TrimSpace(first[0]), 64); err == nil {
			return 0, false, nil
		}
	}

	return 0, false, fmt.Errorf("column %q not found", column)
}

func nan() float64 {
	return math.NaN()
}
