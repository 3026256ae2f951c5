package framecheck_test

import (
	"context"
	"fmt"

	"github.com/jeffamaxey/framecheck"
	"github.com/jeffamaxey/framecheck/pkg/adapters/memory"
	"github.com/jeffamaxey/framecheck/pkg/schema"
)

func Example() {
	cars := memory.New().
		WithColumn("Brand", "Ford", "BMW").
		WithColumn("Price", 22000, 25000)

	contract := schema.Contract{Fields: schema.Cols("Brand", "Price")}

	normalize := framecheck.MustNew(
		func(ctx context.Context, call framecheck.Call) (any, error) {
			return call.Args[0], nil
		},
		framecheck.NewSignature("normalize", "df"),
		framecheck.In("df", contract),
		framecheck.Out(contract),
	)

	_, err := normalize(context.Background(), framecheck.Call{Args: []any{cars}})
	fmt.Println(err)
	// Output: <nil>
}

func ExampleIn_missingColumn() {
	cars := memory.New().WithColumn("Brand", "Ford")

	load := framecheck.MustNew(
		func(ctx context.Context, call framecheck.Call) (any, error) {
			return call.Args[0], nil
		},
		framecheck.NewSignature("load", "df"),
		framecheck.In("df", schema.Contract{Fields: schema.Cols("Brand", "Price")}),
	)

	_, err := load(context.Background(), framecheck.Call{Args: []any{cars}})
	fmt.Println(err)
	// Output: Column Price missing from DataFrame. Got columns: [Brand]
}

func ExampleOut_strict() {
	cars := memory.New().
		WithColumn("Brand", "Ford").
		WithColumn("Price", 22000)

	load := framecheck.MustNew(
		func(ctx context.Context, call framecheck.Call) (any, error) {
			return call.Args[0], nil
		},
		framecheck.NewSignature("load", "df"),
		framecheck.Out(schema.Contract{Fields: schema.Cols("Brand"), Strict: true}),
	)

	_, err := load(context.Background(), framecheck.Call{Args: []any{cars}})
	fmt.Println(err)
	// Output: DataFrame contained unexpected column(s): Price
}
