package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSchema matches every validation failure produced by this package, so
// callers can test errors.Is(err, schema.ErrSchema) without caring which
// violation occurred.
var ErrSchema = errors.New("schema validation failed")

// MissingColumnError reports an expected column absent from the frame.
type MissingColumnError struct {
	Column string   // the declared column that was not found
	Actual []string // the frame's actual columns, in order
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("Column %s missing from DataFrame. Got columns: %v", e.Column, e.Actual)
}

func (e *MissingColumnError) Is(target error) bool { return target == ErrSchema }

// DtypeError reports a column whose dtype tag does not match the contract.
type DtypeError struct {
	Column   string
	Actual   string
	Expected string
}

func (e *DtypeError) Error() string {
	return fmt.Sprintf("Column %s has wrong dtype. Was %s, expected %s", e.Column, e.Actual, e.Expected)
}

func (e *DtypeError) Is(target error) bool { return target == ErrSchema }

// ExtraColumnsError reports columns a strict contract does not declare.
// Columns is sorted so the message is deterministic.
type ExtraColumnsError struct {
	Columns []string
}

func (e *ExtraColumnsError) Error() string {
	return fmt.Sprintf("DataFrame contained unexpected column(s): %s", strings.Join(e.Columns, ", "))
}

func (e *ExtraColumnsError) Is(target error) bool { return target == ErrSchema }
