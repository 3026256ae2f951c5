// Package schema validates the column structure of tabular values.
//
// It defines the minimal capability a tabular value must expose (Frame),
// the declared expectations a caller places on one (Contract), and the
// Validate function that compares the two. Contracts can constrain column
// names only, or names and dtype tags, and can optionally reject columns
// they do not declare (strict mode).
//
// Basic usage:
//
//	contract := schema.Contract{
//	    Fields: []schema.Field{
//	        {Name: "Brand"},
//	        {Name: "Price", Type: schema.TypeInt},
//	    },
//	}
//
//	if err := schema.Validate(frame, contract); err != nil {
//	    // exactly one violation is reported per call
//	}
//
// Contracts can also be declared in YAML documents and loaded with
// ParseContract or LoadContract, which is how the framecheck CLI and HTTP
// server consume them.
//
// Validation only reads column metadata: it is O(columns) and never touches
// row data. The package never constructs or mutates a Frame; adapters under
// pkg/adapters provide implementations for common sources.
package schema
