// Package abstractfactory demonstrates the Abstract Factory creational
// pattern: producing families of related products without naming their
// concrete types. Products of one variant collaborate with each other;
// mixing variants is possible but outside the families' guarantees.
package abstractfactory

import (
	"context"
	"fmt"
	"io"
)

// ProductA is the first product family.
type ProductA interface {
	MethodA() string
}

// ProductB is the second product family. Its members can collaborate with
// any ProductA, though they are designed for the one from their own variant.
type ProductB interface {
	MethodB() string
	Collaborate(a ProductA) string
}

// Factory creates one product of each family, all from a single variant.
type Factory interface {
	CreateProductA() ProductA
	CreateProductB() ProductB
}

type productA1 struct{}

func (productA1) MethodA() string { return "The result of the product A1." }

type productA2 struct{}

func (productA2) MethodA() string { return "The result of the product A2." }

type productB1 struct{}

func (productB1) MethodB() string { return "The result of the product B1." }

func (productB1) Collaborate(a ProductA) string {
	return "The result of the B1 collaborating with ( " + a.MethodA() + " )"
}

type productB2 struct{}

func (productB2) MethodB() string { return "The result of the product B2." }

func (productB2) Collaborate(a ProductA) string {
	return "The result of the B2 collaborating with ( " + a.MethodA() + " )"
}

type factory1 struct{}

func (factory1) CreateProductA() ProductA { return productA1{} }
func (factory1) CreateProductB() ProductB { return productB1{} }

type factory2 struct{}

func (factory2) CreateProductA() ProductA { return productA2{} }
func (factory2) CreateProductB() ProductB { return productB2{} }

// NewFactory1 returns the factory for the first product variant.
func NewFactory1() Factory { return factory1{} }

// NewFactory2 returns the factory for the second product variant.
func NewFactory2() Factory { return factory2{} }

// RunClient exercises a factory through the abstract interfaces only.
func RunClient(w io.Writer, f Factory) {
	a := f.CreateProductA()
	b := f.CreateProductB()
	fmt.Fprintln(w, b.MethodB())
	fmt.Fprintln(w, b.Collaborate(a))
}

// Demo writes the catalogue transcript to w: the same client code run against
// both factory variants.
func Demo(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, "Client: Testing client code with the 1st factory type:")
	RunClient(w, NewFactory1())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Client: Testing the same client code with the 2nd factory type:")
	RunClient(w, NewFactory2())
	fmt.Fprintln(w)
	return nil
}
