package framecheck

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/jeffamaxey/framecheck/pkg/schema"
)

// In validates the named input argument against the contract before the
// wrapped function runs. The argument is resolved fresh on every call,
// whether it was passed positionally or by name, and is never modified.
//
// name may be empty only when the signature declares exactly one parameter;
// with more than one, an explicit name is required and New fails otherwise.
// Several In annotations can be stacked, each targeting a different
// parameter.
func In(name string, c schema.Contract) Option {
	return func(w *wrapper) {
		w.anns = append(w.anns, &inAnnotation{name: name, contract: c})
	}
}

// Out validates the wrapped function's return value against the contract.
// The function runs first; its result is handed to the caller only when
// validation passes, otherwise the failure propagates instead.
func Out(c schema.Contract) Option {
	return func(w *wrapper) {
		w.anns = append(w.anns, &outAnnotation{contract: c})
	}
}

// Log records the schema of every tabular argument before the call and of a
// tabular return value after it. It never fails and never alters arguments
// or result. Lines go to the wrapper's logger at Debug level unless
// WithLogLevel says otherwise.
func Log(opts ...LogOption) Option {
	return func(w *wrapper) {
		ann := &logAnnotation{level: slog.LevelDebug}
		for _, opt := range opts {
			opt(ann)
		}
		w.anns = append(w.anns, ann)
	}
}

// LogOption configures a Log annotation.
type LogOption func(*logAnnotation)

// WithDtypes appends each column's dtype tag to the logged schema.
func WithDtypes() LogOption {
	return func(a *logAnnotation) {
		a.withDtypes = true
	}
}

// WithLogLevel sets the level Log emits at.
func WithLogLevel(level slog.Level) LogOption {
	return func(a *logAnnotation) {
		a.level = level
	}
}

type inAnnotation struct {
	name     string
	contract schema.Contract
}

func (a *inAnnotation) check(sig Signature) error {
	if a.name == "" {
		if len(sig.Params) != 1 {
			return fmt.Errorf("input annotation on %q requires a parameter name: signature declares %d parameters", sig.Name, len(sig.Params))
		}
		a.name = sig.Params[0]
		return nil
	}
	for _, p := range sig.Params {
		if p == a.name {
			return nil
		}
	}
	return &BindingError{Param: a.name, Params: sig.Params}
}

func (a *inAnnotation) wrap(w *wrapper, next Func) Func {
	return func(ctx context.Context, call Call) (any, error) {
		v, ok := resolve(w.sig, call, a.name)
		if !ok {
			return nil, fmt.Errorf("no value supplied for parameter %q", a.name)
		}
		f, ok := asFrame(v)
		if !ok {
			return nil, fmt.Errorf("Wrong parameter type. Expected DataFrame, got %T instead.", v)
		}
		err := schema.Validate(f, a.contract)
		w.fireCheck(ctx, DirectionParameters, a.name, f, err)
		if err != nil {
			return nil, err
		}
		return next(ctx, call)
	}
}

type outAnnotation struct {
	contract schema.Contract
}

func (a *outAnnotation) check(Signature) error { return nil }

func (a *outAnnotation) wrap(w *wrapper, next Func) Func {
	return func(ctx context.Context, call Call) (any, error) {
		result, err := next(ctx, call)
		if err != nil {
			return nil, err
		}
		f, ok := asFrame(result)
		if !ok {
			return nil, fmt.Errorf("Wrong return type. Expected DataFrame, got %T", result)
		}
		verr := schema.Validate(f, a.contract)
		w.fireCheck(ctx, DirectionReturn, "", f, verr)
		if verr != nil {
			return nil, verr
		}
		return result, nil
	}
}

type logAnnotation struct {
	withDtypes bool
	level      slog.Level
}

func (a *logAnnotation) check(Signature) error { return nil }

func (a *logAnnotation) wrap(w *wrapper, next Func) Func {
	return func(ctx context.Context, call Call) (any, error) {
		logger := w.logger
		if logger != nil {
			for _, v := range call.Args {
				a.logValue(ctx, logger, w.sig.Name, "parameters contained", v)
			}
			// Kwargs have no inherent order; sort so log output is stable.
			names := make([]string, 0, len(call.Kwargs))
			for name := range call.Kwargs {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				a.logValue(ctx, logger, w.sig.Name, "parameters contained", call.Kwargs[name])
			}
		}

		result, err := next(ctx, call)

		if logger != nil && err == nil {
			a.logValue(ctx, logger, w.sig.Name, "returned", result)
		}
		return result, err
	}
}

func (a *logAnnotation) logValue(ctx context.Context, logger *slog.Logger, funcName, verb string, v any) {
	f, ok := asFrame(v)
	if !ok {
		return
	}
	msg := fmt.Sprintf("Function %s %s a DataFrame: %s", funcName, verb, schema.Describe(f, a.withDtypes))
	logger.Log(ctx, a.level, msg)
}
