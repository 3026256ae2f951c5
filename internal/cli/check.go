// Package cli implements the framecheck commands, keeping cmd/framecheck
// thin and the logic testable.
package cli

import (
	"fmt"
	"io"

	"github.com/jeffamaxey/framecheck/pkg/adapters/csv"
	"github.com/jeffamaxey/framecheck/pkg/schema"
)

// CheckOptions configures the check command.
type CheckOptions struct {
	DataPath     string
	ContractPath string
	Strict       bool // force strict mode regardless of the contract file
}

// Check validates a CSV file against a contract file. A validation failure
// is returned as the error, so the caller decides the exit code.
func Check(out io.Writer, opts CheckOptions) error {
	contract, err := schema.LoadContract(opts.ContractPath)
	if err != nil {
		return err
	}
	if opts.Strict {
		contract.Strict = true
	}

	frame, err := csv.Open(opts.DataPath)
	if err != nil {
		return err
	}

	if err := schema.Validate(frame, contract); err != nil {
		return fmt.Errorf("%s does not satisfy contract %q: %w", opts.DataPath, contract.Name, err)
	}

	fmt.Fprintf(out, "%s satisfies contract %q (%s, %d rows)\n",
		opts.DataPath, contract.Name, schema.Describe(frame, false), frame.Rows())
	return nil
}
