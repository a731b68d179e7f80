// Package decorator demonstrates the Decorator structural pattern: attaching
// behavior to an object by placing it inside wrappers that share its
// interface. A decorator is structurally a degenerate composite with exactly
// one child plus a prologue/epilogue around its result.
package decorator

import (
	"context"
	"fmt"
	"io"
)

// Component is the contract shared by wrapped objects and their wrappers.
type Component interface {
	Execute() string
}

// Func adapts an ordinary function to the Component interface.
type Func func() string

// Execute calls f.
func (f Func) Execute() string { return f() }

// ConcreteComponent is the plain object decorators wrap.
type ConcreteComponent struct{}

// Execute returns the component's fixed literal.
func (ConcreteComponent) Execute() string { return "ConcreteComponent" }

// wrapper holds the single wrapped component. It is set at construction and
// never rebound; concrete decorators embed it and layer their own text around
// the delegated result.
type wrapper struct {
	inner Component
}

func (w wrapper) Execute() string { return w.inner.Execute() }

// ConcreteDecoratorA wraps a component and tags its result with the A label.
type ConcreteDecoratorA struct {
	wrapper
}

// NewConcreteDecoratorA wraps inner.
func NewConcreteDecoratorA(inner Component) ConcreteDecoratorA {
	return ConcreteDecoratorA{wrapper{inner: inner}}
}

// Execute delegates to the wrapped component and wraps the result.
func (d ConcreteDecoratorA) Execute() string {
	return "ConcreteDecoratorA(" + d.wrapper.Execute() + ")"
}

// ConcreteDecoratorB wraps a component and tags its result with the B label.
type ConcreteDecoratorB struct {
	wrapper
}

// NewConcreteDecoratorB wraps inner.
func NewConcreteDecoratorB(inner Component) ConcreteDecoratorB {
	return ConcreteDecoratorB{wrapper{inner: inner}}
}

// Execute delegates to the wrapped component and wraps the result.
func (d ConcreteDecoratorB) Execute() string {
	return "ConcreteDecoratorB(" + d.wrapper.Execute() + ")"
}

// Middleware decorates a Component, returning the wrapped form.
type Middleware func(Component) Component

// Chain wraps c with all middlewares. The first middleware becomes the
// outermost wrapper, so the textual nesting reads left to right:
// Chain(x, B, A) yields B(A(x)).
func Chain(c Component, middlewares ...Middleware) Component {
	for i := len(middlewares) - 1; i >= 0; i-- {
		c = middlewares[i](c)
	}
	return c
}

// Demo writes the catalogue transcript to w: a bare component first, then the
// same component under two nested decorators.
func Demo(ctx context.Context, w io.Writer) error {
	simple := ConcreteComponent{}
	fmt.Fprintln(w, "Client: I've got a simple component:")
	fmt.Fprintf(w, "RESULT: %s\n\n", simple.Execute())

	// Decorators wrap other decorators as readily as plain components.
	decorated := NewConcreteDecoratorB(NewConcreteDecoratorA(simple))
	fmt.Fprintln(w, "Client: Now I've got a decorated component:")
	_, err := fmt.Fprintf(w, "RESULT: %s\n\n", decorated.Execute())
	return err
}
