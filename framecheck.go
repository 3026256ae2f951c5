package framecheck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jeffamaxey/framecheck/pkg/schema"
)

// Version of the framecheck library.
const Version = "0.1.0"

// Call carries the arguments of one invocation of a wrapped function.
// Args are positional, Kwargs are passed by name. The same parameter can be
// supplied either way; named values win during resolution.
type Call struct {
	Args   []any
	Kwargs map[string]any
}

// Signature describes a wrapped function: the name used in log lines and
// the declared parameter order. Go cannot reflect parameter names, so the
// caller supplies them once at wrap time and annotations resolve against
// them on every call.
type Signature struct {
	Name   string
	Params []string
}

// NewSignature builds a Signature.
func NewSignature(name string, params ...string) Signature {
	return Signature{Name: name, Params: params}
}

// Func is the uniform shape of a wrappable function.
type Func func(ctx context.Context, call Call) (any, error)

// BindingError reports an annotation targeting a parameter the signature
// does not declare. It is a configuration error, returned by New before any
// call is made.
type BindingError struct {
	Param  string
	Params []string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("parameter %q not found in signature %v", e.Param, e.Params)
}

// resolve finds the value bound to the named parameter, independent of how
// the caller passed it: by name first, then by the signature's declared
// position. Pure lookup; ok is false when the call carries no value for it.
func resolve(sig Signature, call Call, name string) (any, bool) {
	if v, ok := call.Kwargs[name]; ok {
		return v, true
	}
	for i, p := range sig.Params {
		if p == name {
			if i < len(call.Args) {
				return call.Args[i], true
			}
			return nil, false
		}
	}
	return nil, false
}

// Option configures a wrapped function. In, Out and Log attach annotations;
// WithLogger and WithHooks adjust observability.
type Option func(*wrapper)

// annotation is one layer of wrapping. check runs once at New time, wrap
// builds the call-time layer after all options are applied.
type annotation interface {
	check(sig Signature) error
	wrap(w *wrapper, next Func) Func
}

type wrapper struct {
	sig    Signature
	anns   []annotation
	logger *slog.Logger
	hooks  Hooks
}

// WithLogger sets the logger used by Log annotations. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(w *wrapper) {
		w.logger = logger
	}
}

// WithHooks registers observability callbacks fired after every input and
// output validation.
func WithHooks(hooks Hooks) Option {
	return func(w *wrapper) {
		w.hooks = hooks
	}
}

// New wraps fn with the given annotations.
//
// Annotations wrap in declared order with the first listed outermost: its
// input check runs first and its output check runs last. Each invocation of
// the returned Func resolves arguments fresh, so the wrapped function is
// safe for concurrent use.
//
// Configuration errors (a name missing from the signature, an input
// annotation without a name on a multi-parameter signature) surface here,
// not at call time.
func New(fn Func, sig Signature, opts ...Option) (Func, error) {
	w := &wrapper{sig: sig, logger: slog.Default()}
	for _, opt := range opts {
		opt(w)
	}
	for _, ann := range w.anns {
		if err := ann.check(sig); err != nil {
			return nil, err
		}
	}

	wrapped := fn
	for i := len(w.anns) - 1; i >= 0; i-- {
		wrapped = w.anns[i].wrap(w, wrapped)
	}
	return wrapped, nil
}

// MustNew is New for wiring done at program start, where a configuration
// error is fatal anyway.
func MustNew(fn Func, sig Signature, opts ...Option) Func {
	wrapped, err := New(fn, sig, opts...)
	if err != nil {
		panic(err)
	}
	return wrapped
}

// asFrame reports the value's tabular view, if it has one.
func asFrame(v any) (schema.Frame, bool) {
	f, ok := v.(schema.Frame)
	return f, ok
}
