// Package strategy demonstrates the Strategy behavioral pattern: a Context
// that delegates its work to an interchangeable algorithm object, swappable
// at runtime.
package strategy

import (
	"context"
	"fmt"
	"io"
)

// Strategy is one interchangeable algorithm.
type Strategy interface {
	Execute() string
}

// Context delegates work to its current strategy. A nil strategy is legal;
// DoSomething then reports that nothing is configured instead of failing.
type Context struct {
	out      io.Writer
	strategy Strategy
}

// NewContext returns a context reporting to out. strategy may be nil.
func NewContext(out io.Writer, strategy Strategy) *Context {
	return &Context{out: out, strategy: strategy}
}

// SetStrategy swaps the algorithm used by subsequent DoSomething calls.
func (c *Context) SetStrategy(strategy Strategy) {
	c.strategy = strategy
}

// DoSomething runs the current strategy, if any.
func (c *Context) DoSomething() {
	if c.strategy == nil {
		fmt.Fprintln(c.out, "Context: Strategy isn't set")
		return
	}
	fmt.Fprintln(c.out, "Context: Execute strategy:")
	fmt.Fprintln(c.out, c.strategy.Execute())
}

// ConcreteStrategyA carries numeric internal data.
type ConcreteStrategyA struct {
	Number int
}

// Execute reports the strategy's work and its internal data.
func (s ConcreteStrategyA) Execute() string {
	return fmt.Sprintf("Doing something using Strategy A - Internal data \"%d\"", s.Number)
}

// ConcreteStrategyB carries textual internal data.
type ConcreteStrategyB struct {
	Text string
}

// Execute reports the strategy's work and its internal data.
func (s ConcreteStrategyB) Execute() string {
	return fmt.Sprintf("Doing something using Strategy B - Internal data %q", s.Text)
}

// Demo writes the catalogue transcript to w: a context without a strategy,
// then the same context run with strategy A and re-pointed at strategy B.
func Demo(ctx context.Context, w io.Writer) error {
	bare := NewContext(w, nil)
	fmt.Fprintln(w, "Client: Running without Strategy.")
	bare.DoSomething()
	fmt.Fprintln(w)

	c := NewContext(w, ConcreteStrategyA{Number: 100})
	fmt.Fprintln(w, "Client: Running using Strategy A.")
	c.DoSomething()
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Client: Running using Strategy B.")
	c.SetStrategy(ConcreteStrategyB{Text: "abcd"})
	c.DoSomething()
	return nil
}
