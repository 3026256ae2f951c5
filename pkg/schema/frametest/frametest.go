// Package frametest verifies that a schema.Frame implementation adheres to
// the interface contract. Adapter test suites call Run with a frame of
// known schema.
package frametest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffamaxey/framecheck/pkg/schema"
)

// Target describes a frame with a known schema.
type Target struct {
	Frame   schema.Frame
	Columns []string          // expected names, in order
	Dtypes  map[string]string // expected tag per column
}

// Run runs the conformance suite against the target.
func Run(t *testing.T, target Target) {
	t.Run("ColumnNames order", func(t *testing.T) {
		require.Equal(t, target.Columns, target.Frame.ColumnNames())
	})

	t.Run("ColumnNames isolation", func(t *testing.T) {
		names := target.Frame.ColumnNames()
		if len(names) == 0 {
			t.Skip("no columns to mutate")
		}
		names[0] = "mutated"
		assert.Equal(t, target.Columns, target.Frame.ColumnNames(),
			"mutating the returned slice must not affect the frame")
	})

	t.Run("ColumnType", func(t *testing.T) {
		for name, dtype := range target.Dtypes {
			assert.Equal(t, dtype, target.Frame.ColumnType(name), "column %s", name)
		}
	})

	t.Run("ColumnType unknown column", func(t *testing.T) {
		assert.Empty(t, target.Frame.ColumnType("framecheck-no-such-column"))
	})

	t.Run("Validates against own schema", func(t *testing.T) {
		fields := make([]schema.Field, len(target.Columns))
		for i, name := range target.Columns {
			fields[i] = schema.Field{Name: name, Type: target.Frame.ColumnType(name)}
		}
		assert.NoError(t, schema.Validate(target.Frame, schema.Contract{Fields: fields, Strict: true}))
	})
}
