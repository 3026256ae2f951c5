/*
Package framecheck validates the schema of tabular values (DataFrames)
flowing into and out of functions, in the spirit of runtime contract
annotations.

It wraps ordinary functions with small, composable checks: an input check
resolves a named argument and validates its columns and dtypes before the
function runs; an output check validates the return value after it; a log
annotation records schemas without ever failing. Because Go has no decorator
syntax and cannot reflect parameter names, the caller supplies an explicit
Signature once at wrap time and the library binds arguments against it on
every call.

# Concept

A tabular value is anything implementing schema.Frame: ordered column names
plus a dtype tag per column. A schema.Contract declares what a caller
expects; validation compares the two and reports exactly one violation per
call, in a fixed order (missing columns, then dtypes, then undeclared
columns under strict mode). The library never inspects row data and never
constructs, repairs or mutates a frame.

# Usage

	concat := framecheck.MustNew(
		func(ctx context.Context, call framecheck.Call) (any, error) {
			return call.Args[0], nil
		},
		framecheck.NewSignature("concat", "df"),
		framecheck.In("df", schema.Contract{Fields: schema.Cols("Brand", "Price")}),
		framecheck.Out(schema.Contract{Fields: schema.Cols("Brand", "Price")}),
		framecheck.Log(framecheck.WithDtypes()),
	)

	result, err := concat(ctx, framecheck.Call{Args: []any{df}})

Annotations wrap in declared order with the first listed outermost, so
composition is explicit rather than implied by syntax. Several In
annotations may target different parameters of the same function; each
validates independently.

Adapters under pkg/adapters provide Frame implementations for in-memory
data, CSV files and database/sql results, plus an HTTP service that checks
uploaded CSVs against contracts loaded from YAML documents.
*/
package framecheck
