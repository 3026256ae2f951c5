package schema

import "sort"

// Validate checks a frame against a contract.
//
// Checks run in a fixed order so failures are deterministic: missing
// columns first (in declaration order), then dtype mismatches (also in
// declaration order), then undeclared columns when the contract is strict.
// The first violation found is returned; a single call never reports more
// than one failure, except that strict mode aggregates all undeclared
// columns into one error.
func Validate(f Frame, c Contract) error {
	actual := f.ColumnNames()
	present := make(map[string]bool, len(actual))
	for _, name := range actual {
		present[name] = true
	}

	for _, field := range c.Fields {
		if !present[field.Name] {
			return &MissingColumnError{Column: field.Name, Actual: actual}
		}
	}

	for _, field := range c.Fields {
		if field.Type == "" {
			continue
		}
		if got := f.ColumnType(field.Name); got != field.Type {
			return &DtypeError{Column: field.Name, Actual: got, Expected: field.Type}
		}
	}

	// A contract with no fields asserts only that the value is tabular, so
	// strict mode has nothing to reject against.
	if c.Strict && len(c.Fields) > 0 {
		declared := make(map[string]bool, len(c.Fields))
		for _, field := range c.Fields {
			declared[field.Name] = true
		}
		var extra []string
		for _, name := range actual {
			if !declared[name] {
				extra = append(extra, name)
			}
		}
		if len(extra) > 0 {
			sort.Strings(extra)
			return &ExtraColumnsError{Columns: extra}
		}
	}

	return nil
}
