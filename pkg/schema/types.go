package schema

import "fmt"

// Frame is the contract for tabular values. Any table-like structure that
// can report its column names in order, and a dtype tag per column, can be
// validated.
type Frame interface {
	// ColumnNames returns the column names in their declared order.
	ColumnNames() []string
	// ColumnType returns the dtype tag of the named column, or the empty
	// string when the column does not exist.
	ColumnType(name string) string
}

// Dtype tags used by the built-in frame adapters, following the pandas
// naming convention. Contracts are free to use any tag a Frame reports.
const (
	TypeInt    = "int64"
	TypeFloat  = "float64"
	TypeBool   = "bool"
	TypeObject = "object"
)

// Field declares one expected column. An empty Type constrains the name
// only.
type Field struct {
	Name string `yaml:"name" mapstructure:"name"`
	Type string `yaml:"type,omitempty" mapstructure:"type"`
}

// Contract declares the expected schema of a tabular value. A Contract with
// no Fields asserts nothing beyond "the value is tabular". Contracts are
// immutable by convention: build one, then share it freely across calls.
type Contract struct {
	// Name identifies the contract in contract files and the HTTP API.
	// The validator ignores it.
	Name string

	// Fields lists the expected columns in declaration order. Order matters
	// for error reporting: the first declared column found missing wins.
	Fields []Field

	// Strict rejects any column the contract does not declare.
	Strict bool
}

// Cols builds name-only fields for contracts that do not constrain dtypes.
func Cols(names ...string) []Field {
	fields := make([]Field, len(names))
	for i, name := range names {
		fields[i] = Field{Name: name}
	}
	return fields
}

// Describe renders a frame's schema the way log lines and error messages
// report it, e.g. "columns: [Brand Price] with dtypes [object int64]".
func Describe(f Frame, withDtypes bool) string {
	cols := f.ColumnNames()
	s := fmt.Sprintf("columns: %v", cols)
	if withDtypes {
		dtypes := make([]string, len(cols))
		for i, name := range cols {
			dtypes[i] = f.ColumnType(name)
		}
		s += fmt.Sprintf(" with dtypes %v", dtypes)
	}
	return s
}
