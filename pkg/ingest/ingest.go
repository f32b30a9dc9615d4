// Package ingest reads well-log measurements from data files.
//
// Ingest owns all input coercion: column mapping, numeric parsing, and
// row-level validation live here, so the layout core only ever sees
// clean measurements. Two formats are supported, comma-separated files
// with a header row and a simplified LAS ASCII section.
package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"welltrack/pkg/errors"
	"welltrack/pkg/observability"
	"welltrack/pkg/wellog/measure"
)

// Formats understood by Read.
const (
	FormatCSV = "csv"
	FormatLAS = "las"
)

// DetectFormat maps a file path to an ingest format by extension.
func DetectFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".las":
		return FormatLAS, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unsupported data file %q (expected .csv or .las)", filepath.Base(path))
	}
}

// Read loads measurements from a data file, choosing the reader by
// extension. The returned slice preserves file order; sorting is the
// normalizer's job.
func Read(ctx context.Context, path string) ([]measure.Measurement, error) {
	if err := errors.ValidateDataPath(path); err != nil {
		return nil, err
	}

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	observability.Pipeline().OnIngestStart(ctx, format, path)
	start := time.Now()

	records, err := readFile(path, format)

	observability.Pipeline().OnIngestComplete(ctx, format, path, len(records), time.Since(start), err)
	return records, err
}

func readFile(path, format string) ([]measure.Measurement, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "data file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to open %s", path)
	}
	defer f.Close()

	switch format {
	case FormatCSV:
		return ReadCSV(f)
	case FormatLAS:
		return ReadLAS(f)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
	}
}
