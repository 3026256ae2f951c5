// Package csv exposes the schema of CSV data as a schema.Frame.
//
// The header row provides column names. Dtype tags are derived by scanning
// cell values: a column where every non-empty cell parses as an integer is
// int64, as a number is float64, as true/false is bool; anything else is
// object. Scanning is capped so huge files stay cheap to describe.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jeffamaxey/framecheck/pkg/schema"
)

// sampleRows caps how many data rows contribute to dtype derivation.
const sampleRows = 1000

// Frame is the schema view of one CSV document. Row data is not retained
// beyond what dtype derivation needs.
type Frame struct {
	names  []string
	dtypes map[string]string
	rows   int
}

// Read parses CSV data from r into a Frame.
func Read(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	names := make([]string, len(header))
	samples := make([][]string, len(header))
	for i, name := range header {
		names[i] = strings.TrimSpace(name)
	}

	rows := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", rows+2, err)
		}
		if rows < sampleRows {
			for i := range names {
				if i < len(rec) {
					samples[i] = append(samples[i], rec[i])
				}
			}
		}
		rows++
	}

	f := &Frame{names: names, dtypes: make(map[string]string, len(names)), rows: rows}
	for i, name := range names {
		f.dtypes[name] = classify(samples[i])
	}
	return f, nil
}

// Open reads the CSV file at path into a Frame.
func Open(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	f, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ColumnNames returns the header names in file order.
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

// ColumnType returns the derived dtype tag, or "" for unknown columns.
func (f *Frame) ColumnType(name string) string {
	return f.dtypes[name]
}

// Rows returns the number of data rows read.
func (f *Frame) Rows() int { return f.rows }

func classify(values []string) string {
	isInt, isFloat, isBool := true, true, true
	seen := false
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		seen = true
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			isInt = false
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			isFloat = false
		}
		if !strings.EqualFold(v, "true") && !strings.EqualFold(v, "false") {
			isBool = false
		}
		if !isInt && !isFloat && !isBool {
			break
		}
	}
	if !seen {
		return schema.TypeObject
	}
	switch {
	case isInt:
		return schema.TypeInt
	case isFloat:
		return schema.TypeFloat
	case isBool:
		return schema.TypeBool
	default:
		return schema.TypeObject
	}
}
