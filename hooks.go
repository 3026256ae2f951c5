package framecheck

import (
	"context"
	"time"

	"github.com/jeffamaxey/framecheck/pkg/schema"
)

// Check directions as they appear in CheckEvent.Direction.
const (
	DirectionParameters = "parameters"
	DirectionReturn     = "return value"
)

// CheckEvent describes one completed input or output validation.
type CheckEvent struct {
	Time      time.Time
	Function  string   // signature name of the wrapped function
	Direction string   // DirectionParameters or DirectionReturn
	Param     string   // the validated parameter; empty for return values
	Columns   []string // the frame's actual columns at check time
	Err       error    // nil when validation passed
}

// Hooks carries observability callbacks for wrapped functions. Callbacks
// run synchronously on the calling goroutine and must not block.
type Hooks struct {
	// OnCheck fires after every In and Out validation, pass or fail.
	OnCheck func(context.Context, *CheckEvent)
}

func (w *wrapper) fireCheck(ctx context.Context, direction, param string, f schema.Frame, err error) {
	if w.hooks.OnCheck == nil {
		return
	}
	w.hooks.OnCheck(ctx, &CheckEvent{
		Time:      time.Now(),
		Function:  w.sig.Name,
		Direction: direction,
		Param:     param,
		Columns:   f.ColumnNames(),
		Err:       err,
	})
}
