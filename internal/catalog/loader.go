package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/citypress/internal/errors"
)

// Load reads and validates a catalog CSV from disk.
func Load(path string) ([]Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryCatalog, "open catalog file").WithContext("path", path)
	}
	defer func() { _ = f.Close() }()

	locations, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryCatalog, "parse catalog").WithContext("path", path)
	}
	return locations, nil
}

// Parse reads a headered CSV (city,state,col) and returns validated records.
// Any malformed row aborts the load; the core never sees partial data.
func Parse(r io.Reader) ([]Location, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"city", "state", "col"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("CSV must have headers city,state,col (found: %v)", header)
		}
	}

	var out []Location
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		city := strings.TrimSpace(row[cols["city"]])
		state := strings.ToUpper(strings.TrimSpace(row[cols["state"]]))
		colRaw := strings.TrimSpace(row[cols["col"]])
		if city == "" || state == "" || colRaw == "" {
			return nil, fmt.Errorf("missing city/state/col at CSV line %d", line)
		}
		if len(state) != 2 {
			return nil, fmt.Errorf("state must be a 2-letter code at CSV line %d: %q", line, state)
		}
		factor, err := strconv.ParseFloat(colRaw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid col at CSV line %d: %q", line, colRaw)
		}
		if factor <= 0 {
			return nil, fmt.Errorf("col must be > 0 at CSV line %d: %q", line, colRaw)
		}

		out = append(out, Location{City: city, StateCode: state, CostFactor: factor})
	}
	return out, nil
}
