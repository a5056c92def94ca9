// Package mediator dispatches requests to the handler registered for the
// request's type, running them through a chain of behaviors.
package mediator

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-faster/errors"
)

// ErrNoHandler is returned by Send when no handler is registered for the request type.
var ErrNoHandler = errors.New("no handler registered")

// Handler handles one request type.
type Handler[Req, Resp any] interface {
	Handle(ctx context.Context, req Req) (Resp, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc[Req, Resp any] func(ctx context.Context, req Req) (Resp, error)

func (f HandlerFunc[Req, Resp]) Handle(ctx context.Context, req Req) (Resp, error) {
	return f(ctx, req)
}

// Next invokes the rest of the pipeline.
type Next func(ctx context.Context) (any, error)

// Behavior wraps handler invocation. Behaviors run in registration order and
// must call next to continue the pipeline.
type Behavior func(ctx context.Context, request any, next Next) (any, error)

type handlerFunc func(ctx context.Context, request any) (any, error)

type Mediator struct {
	mu        sync.RWMutex
	handlers  map[reflect.Type]handlerFunc
	behaviors []Behavior
}

func New(behaviors ...Behavior) *Mediator {
	return &Mediator{
		handlers:  map[reflect.Type]handlerFunc{},
		behaviors: behaviors,
	}
}

// Register binds h to requests of type Req. Registering the same request
// type twice panics.
func Register[Req, Resp any](m *Mediator, h Handler[Req, Resp]) {
	t := reflect.TypeFor[Req]()

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.handlers[t]; dup {
		panic(fmt.Sprintf("mediator: handler for %s already registered", t))
	}
	m.handlers[t] = func(ctx context.Context, request any) (any, error) {
		return h.Handle(ctx, request.(Req))
	}
}

// Send dispatches req to its handler.
func Send[Req, Resp any](ctx context.Context, m *Mediator, req Req) (Resp, error) {
	var zero Resp
	t := reflect.TypeFor[Req]()

	m.mu.RLock()
	h, ok := m.handlers[t]
	m.mu.RUnlock()
	if !ok {
		return zero, errors.Wrapf(ErrNoHandler, "%s", t)
	}

	next := func(ctx context.Context) (any, error) { return h(ctx, req) }
	for i := len(m.behaviors) - 1; i >= 0; i-- {
		b, inner := m.behaviors[i], next
		next = func(ctx context.Context) (any, error) { return b(ctx, req, inner) }
	}

	out, err := next(ctx)
	if err != nil {
		return zero, err
	}
	if out == nil {
		return zero, nil
	}
	resp, ok := out.(Resp)
	if !ok {
		return zero, errors.Errorf("mediator: %s handler returned %T", t, out)
	}
	return resp, nil
}

// RequestName is the unqualified type name of a request, used in logs.
func RequestName(request any) string {
	t := reflect.TypeOf(request)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}
