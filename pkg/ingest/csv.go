package ingest

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"welltrack/pkg/errors"
	"welltrack/pkg/wellog/measure"
)

// Column aliases accepted in CSV headers, compared case-insensitively.
var columnAliases = map[string][]string{
	"depth":     {"depth", "depth_m", "md", "dept"},
	"lithology": {"lithology", "litho", "lith", "rock", "category"},
	"gamma":     {"gamma_ray", "gamma", "gr"},
	"porosity":  {"porosity", "phi", "por", "nphi"},
}

// columnMap holds resolved header positions.
type columnMap struct {
	depth     int
	lithology int
	gamma     int
	porosity  int
}

// ReadCSV reads measurements from a comma-separated stream. The first
// row must be a header naming all four columns; column order is free.
func ReadCSV(r io.Reader) ([]measure.Measurement, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidRecord, "missing header row")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRecord, err, "failed to read header")
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []measure.Measurement
	row := 1
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRecord, err, "row %d: malformed row", row)
		}

		m, err := parseRow(fields, cols, row)
		if err != nil {
			return nil, err
		}
		records = append(records, m)
	}

	return records, nil
}

// resolveColumns maps header names to field positions via columnAliases.
func resolveColumns(header []string) (columnMap, error) {
	cols := columnMap{depth: -1, lithology: -1, gamma: -1, porosity: -1}
	targets := map[string]*int{
		"depth":     &cols.depth,
		"lithology": &cols.lithology,
		"gamma":     &cols.gamma,
		"porosity":  &cols.porosity,
	}

	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		for field, aliases := range columnAliases {
			for _, alias := range aliases {
				if name == alias {
					*targets[field] = i
				}
			}
		}
	}

	for field, pos := range targets {
		if *pos == -1 {
			return columnMap{}, errors.New(errors.ErrCodeInvalidColumn, "missing %s column in header", field)
		}
	}
	return cols, nil
}

// parseRow coerces one data row into a Measurement.
func parseRow(fields []string, cols columnMap, row int) (measure.Measurement, error) {
	max := cols.depth
	for _, idx := range []int{cols.lithology, cols.gamma, cols.porosity} {
		if idx > max {
			max = idx
		}
	}
	if len(fields) <= max {
		return measure.Measurement{}, errors.New(errors.ErrCodeInvalidRecord, "row %d: expected at least %d fields, got %d", row, max+1, len(fields))
	}

	depth, err := parseFloat(fields[cols.depth], "depth", row)
	if err != nil {
		return measure.Measurement{}, err
	}
	gamma, err := parseFloat(fields[cols.gamma], "gamma", row)
	if err != nil {
		return measure.Measurement{}, err
	}
	porosity, err := parseFloat(fields[cols.porosity], "porosity", row)
	if err != nil {
		return measure.Measurement{}, err
	}

	lithology := strings.TrimSpace(fields[cols.lithology])
	if err := errors.ValidateLithology(lithology); err != nil {
		return measure.Measurement{}, errors.Wrap(errors.ErrCodeInvalidRecord, err, "row %d: invalid lithology", row)
	}

	return measure.Measurement{
		Depth:     depth,
		Lithology: lithology,
		GammaRay:  gamma,
		Porosity:  porosity,
	}, nil
}

func parseFloat(field, name string, row int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidRecord, "row %d: invalid %s value %q", row, name, strings.TrimSpace(field))
	}
	return v, nil
}
