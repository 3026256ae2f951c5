// Package memory provides an in-memory schema.Frame, mainly for tests,
// examples and programs that build small tables by hand.
package memory

import (
	"fmt"

	"github.com/jeffamaxey/framecheck/pkg/schema"
)

// Frame is a column-ordered, in-memory tabular value. The zero value is
// unusable; build one with New and WithColumn. Frames are not safe for
// concurrent mutation, but once built they are only ever read.
type Frame struct {
	names  []string
	dtypes map[string]string
	data   map[string][]any
}

// New creates an empty frame.
func New() *Frame {
	return &Frame{
		dtypes: make(map[string]string),
		data:   make(map[string][]any),
	}
}

// FromFields creates a frame with the given schema and no rows. Fields with
// an empty Type get the object tag.
func FromFields(fields ...schema.Field) *Frame {
	f := New()
	for _, field := range fields {
		dtype := field.Type
		if dtype == "" {
			dtype = schema.TypeObject
		}
		f.names = append(f.names, field.Name)
		f.dtypes[field.Name] = dtype
	}
	return f
}

// WithColumn appends a column, deriving its dtype tag from the values:
// int64, float64, bool when every value agrees, object otherwise. It
// returns the frame for chaining and replaces any column of the same name
// in place.
func (f *Frame) WithColumn(name string, values ...any) *Frame {
	if _, exists := f.dtypes[name]; !exists {
		f.names = append(f.names, name)
	}
	f.dtypes[name] = dtypeOf(values)
	f.data[name] = values
	return f
}

// ColumnNames returns the column names in insertion order.
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

// ColumnType returns the dtype tag of the named column, or "" when absent.
func (f *Frame) ColumnType(name string) string {
	return f.dtypes[name]
}

// Column returns the values of the named column, or nil when absent.
func (f *Frame) Column(name string) []any {
	return f.data[name]
}

// Len returns the number of rows, taken from the longest column.
func (f *Frame) Len() int {
	n := 0
	for _, values := range f.data {
		if len(values) > n {
			n = len(values)
		}
	}
	return n
}

func (f *Frame) String() string {
	return fmt.Sprintf("Frame(%s)", schema.Describe(f, true))
}

func dtypeOf(values []any) string {
	if len(values) == 0 {
		return schema.TypeObject
	}
	dtype := dtypeOfValue(values[0])
	for _, v := range values[1:] {
		if dtypeOfValue(v) != dtype {
			return schema.TypeObject
		}
	}
	return dtype
}

func dtypeOfValue(v any) string {
	switch v.(type) {
	case int, int8, int16, int32, int64:
		return schema.TypeInt
	case float32, float64:
		return schema.TypeFloat
	case bool:
		return schema.TypeBool
	default:
		return schema.TypeObject
	}
}
