// Package facade demonstrates the Facade structural pattern: a single entry
// point that drives a set of subsystems so callers never touch them directly.
package facade

import (
	"context"
	"fmt"
	"io"
)

// SubsystemA is one of the units hidden behind the facade.
type SubsystemA struct {
	out io.Writer
}

// NewSubsystemA returns a subsystem reporting to out.
func NewSubsystemA(out io.Writer) *SubsystemA {
	return &SubsystemA{out: out}
}

func (s *SubsystemA) Init() {
	fmt.Fprintln(s.out, "SubsystemA: Initialized.")
}

func (s *SubsystemA) Deinit() {
	fmt.Fprintln(s.out, "SubsystemA: Deinitialized.")
}

func (s *SubsystemA) DoSomething() {
	fmt.Fprintln(s.out, "SubsystemA: Doing something.")
}

// SubsystemB is the second unit hidden behind the facade.
type SubsystemB struct {
	out io.Writer
}

// NewSubsystemB returns a subsystem reporting to out.
func NewSubsystemB(out io.Writer) *SubsystemB {
	return &SubsystemB{out: out}
}

func (s *SubsystemB) Init() {
	fmt.Fprintln(s.out, "SubsystemB: Initialized.")
}

func (s *SubsystemB) Deinit() {
	fmt.Fprintln(s.out, "SubsystemB: Deinitialized.")
}

func (s *SubsystemB) DoSomething() {
	fmt.Fprintln(s.out, "SubsystemB: Doing something.")
}

// Facade drives whichever subsystems it was built with, in a fixed order.
// Absent subsystems are skipped silently.
type Facade struct {
	out io.Writer
	a   *SubsystemA
	b   *SubsystemB
}

// New builds a facade over the requested subsystems.
func New(out io.Writer, withA, withB bool) *Facade {
	f := &Facade{out: out}
	if withA {
		f.a = NewSubsystemA(out)
	}
	if withB {
		f.b = NewSubsystemB(out)
	}
	return f
}

// Init brings every present subsystem up.
func (f *Facade) Init() {
	fmt.Fprintln(f.out, "Facade initializes subsystems:")
	if f.a != nil {
		f.a.Init()
	}
	if f.b != nil {
		f.b.Init()
	}
}

// Deinit tears every present subsystem down.
func (f *Facade) Deinit() {
	fmt.Fprintln(f.out, "Facade deinitializes subsystems:")
	if f.a != nil {
		f.a.Deinit()
	}
	if f.b != nil {
		f.b.Deinit()
	}
}

// Build asks every present subsystem to perform its action.
func (f *Facade) Build() {
	fmt.Fprintln(f.out, "Facade subsystems perform the action:")
	if f.a != nil {
		f.a.DoSomething()
	}
	if f.b != nil {
		f.b.DoSomething()
	}
}

// Demo writes the catalogue transcript to w: one full facade, then one built
// with a single subsystem.
func Demo(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "===== Building Facade with subsystem A & B =====")
	runClient(w, true, true)

	fmt.Fprintln(w, "===== Building Facade with subsystem A only =====")
	runClient(w, true, false)
	return nil
}

func runClient(w io.Writer, withA, withB bool) {
	f := New(w, withA, withB)
	f.Init()
	f.Build()
	f.Deinit()
	fmt.Fprintln(w)
}
