package ingest

import (
	"bufio"
	"io"
	"strings"

	"welltrack/pkg/errors"
	"welltrack/pkg/wellog/measure"
)

// ReadLAS reads measurements from a simplified LAS stream. Only the
// ~Curve and ~ASCII sections are interpreted; header sections are
// skipped. The ~Curve section must declare the four channels in order,
// and ~ASCII rows are whitespace-separated values in that order except
// lithology, which is a bare token.
func ReadLAS(r io.Reader) ([]measure.Measurement, error) {
	scanner := bufio.NewScanner(r)

	var cols columnMap
	colsResolved := false
	section := ""
	curveHeader := make([]string, 0, 4)

	var records []measure.Measurement
	row := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "~") {
			section = strings.ToUpper(line)
			if len(section) > 2 {
				section = section[:2]
			}
			if section == "~A" && !colsResolved {
				var err error
				cols, err = resolveColumns(curveHeader)
				if err != nil {
					return nil, err
				}
				colsResolved = true
			}
			continue
		}

		switch section {
		case "~C":
			// Curve lines look like "DEPT.M : measured depth".
			if isCurveLine(line) {
				curveHeader = append(curveHeader, curveMnemonic(line))
			}
			continue
		case "~A":
			// fall through to data parsing below
		default:
			continue
		}

		row++
		fields := strings.Fields(line)
		m, err := parseRow(fields, cols, row)
		if err != nil {
			return nil, err
		}
		records = append(records, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRecord, err, "failed to read las stream")
	}

	if !colsResolved {
		return nil, errors.New(errors.ErrCodeInvalidRecord, "missing ~ASCII data section")
	}
	return records, nil
}

// isCurveLine reports whether a header line declares a curve mnemonic.
func isCurveLine(line string) bool {
	return strings.Contains(line, ".") || strings.Contains(line, ":")
}

// curveMnemonic extracts the channel name from a curve declaration,
// "DEPT.M : measured depth" becomes "DEPT".
func curveMnemonic(line string) string {
	if idx := strings.IndexAny(line, ".:"); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}
