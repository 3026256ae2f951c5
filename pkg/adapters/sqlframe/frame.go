// Package sqlframe exposes the schema of a database/sql result set as a
// schema.Frame.
//
// Only column metadata is read; the rows themselves stay with the caller.
// Database type names are folded to the pandas-style dtype tags the rest of
// framecheck uses, with the raw name still available through DatabaseType.
package sqlframe

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jeffamaxey/framecheck/pkg/schema"
)

// Frame is the schema view of one query result.
type Frame struct {
	names   []string
	dtypes  map[string]string
	dbTypes map[string]string
}

// FromRows captures the column schema of rows. Call it before iterating;
// it does not consume or close the result set.
func FromRows(rows *sql.Rows) (*Frame, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("column types: %w", err)
	}

	f := &Frame{
		dtypes:  make(map[string]string, len(types)),
		dbTypes: make(map[string]string, len(types)),
	}
	for _, ct := range types {
		name := ct.Name()
		f.names = append(f.names, name)
		f.dbTypes[name] = ct.DatabaseTypeName()
		f.dtypes[name] = dtypeTag(ct.DatabaseTypeName())
	}
	return f, nil
}

// ColumnNames returns the result columns in select order.
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

// ColumnType returns the folded dtype tag, or "" for unknown columns.
func (f *Frame) ColumnType(name string) string {
	return f.dtypes[name]
}

// DatabaseType returns the driver-reported type name, e.g. "INTEGER".
func (f *Frame) DatabaseType(name string) string {
	return f.dbTypes[name]
}

// dtypeTag folds a driver type name to a dtype tag. Driver names vary
// wildly (INTEGER, INT8, BIGINT, NUMERIC(10,2), ...), so matching is by
// token prefix after normalization.
func dtypeTag(dbType string) string {
	t := strings.ToUpper(strings.TrimSpace(dbType))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = t[:i]
	}
	switch {
	case t == "":
		return schema.TypeObject
	case strings.Contains(t, "INT") || t == "SERIAL" || t == "BIGSERIAL":
		return schema.TypeInt
	case strings.Contains(t, "FLOAT") || strings.Contains(t, "DOUBLE") ||
		t == "REAL" || t == "NUMERIC" || t == "DECIMAL":
		return schema.TypeFloat
	case strings.Contains(t, "BOOL"):
		return schema.TypeBool
	default:
		return schema.TypeObject
	}
}
