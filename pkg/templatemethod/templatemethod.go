// Package templatemethod demonstrates the Template Method behavioral pattern.
// The algorithm skeleton is fixed in Run; variants supply the required steps
// and may opt into the trailing hooks. Go has no inheritance, so the classic
// abstract base class becomes an interface plus optional hook interfaces.
package templatemethod

import (
	"context"
	"fmt"
	"io"
)

// Steps supplies the variant-specific parts of the algorithm.
type Steps interface {
	Name() string
	Step3(w io.Writer)
	Step4(w io.Writer)
}

// Step5Hook is implemented by variants overriding the fifth step. Variants
// without it keep the default, which does nothing.
type Step5Hook interface {
	Step5(w io.Writer)
}

// Step6Hook is implemented by variants overriding the sixth step.
type Step6Hook interface {
	Step6(w io.Writer)
}

// Run executes the algorithm skeleton: two shared steps, the variant's
// required steps, then whichever hooks the variant implements.
func Run(w io.Writer, s Steps) {
	fmt.Fprintln(w, "AbstractClass: Implements step 1")
	fmt.Fprintln(w, "AbstractClass: Implements step 2")
	s.Step3(w)
	s.Step4(w)
	if h, ok := s.(Step5Hook); ok {
		h.Step5(w)
	}
	if h, ok := s.(Step6Hook); ok {
		h.Step6(w)
	}
}

// ConcreteClass1 supplies only the required steps.
type ConcreteClass1 struct{}

func (ConcreteClass1) Name() string { return "ConcreteClass1" }

func (c ConcreteClass1) Step3(w io.Writer) {
	fmt.Fprintf(w, "%s: Implements step 3\n", c.Name())
}

func (c ConcreteClass1) Step4(w io.Writer) {
	fmt.Fprintf(w, "%s: Implements step 4\n", c.Name())
}

// ConcreteClass2 supplies the required steps and overrides the fifth.
type ConcreteClass2 struct{}

func (ConcreteClass2) Name() string { return "ConcreteClass2" }

func (c ConcreteClass2) Step3(w io.Writer) {
	fmt.Fprintf(w, "%s: Implements step 3\n", c.Name())
}

func (c ConcreteClass2) Step4(w io.Writer) {
	fmt.Fprintf(w, "%s: Implements step 4\n", c.Name())
}

func (c ConcreteClass2) Step5(w io.Writer) {
	fmt.Fprintf(w, "%s: Implements step 5\n", c.Name())
}

// Demo writes the catalogue transcript to w: the same skeleton driven by both
// variants.
func Demo(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "Same client code can work with different subclasses:")
	Run(w, ConcreteClass1{})
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Same client code can work with different subclasses:")
	Run(w, ConcreteClass2{})
	return nil
}
