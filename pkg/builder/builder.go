// Package builder demonstrates the Builder creational pattern: constructing a
// complex product step by step, with a Director encoding the step recipes.
package builder

import (
	"context"
	"fmt"
	"io"
)

// Engine enumerates the engine types a car can be assembled with.
type Engine int

const (
	EngineV4 Engine = iota
	EngineV6
	EngineV12
)

// String returns the engine's display name.
func (e Engine) String() string {
	switch e {
	case EngineV4:
		return "V4"
	case EngineV6:
		return "V6"
	case EngineV12:
		return "V12"
	}
	return "unknown"
}

// Car is the product specification the builder works from.
type Car struct {
	Seats        int
	Engine       Engine
	TripComputer bool
	GPS          bool
}

// Builder declares the assembly steps. Concrete builders decide what each
// step means for their product.
type Builder interface {
	Reset()
	AssembleSeats()
	AssembleEngine()
	AssembleTripComputer()
	AssembleGPS()
}

// CarBuilder assembles a Car, reporting each step to its writer. Optional
// equipment steps are silent when the specification does not include them.
type CarBuilder struct {
	out io.Writer
	car Car
}

// NewCarBuilder returns a builder for the given specification.
func NewCarBuilder(out io.Writer, car Car) *CarBuilder {
	return &CarBuilder{out: out, car: car}
}

// Reset discards assembly progress. The demo builder keeps no intermediate
// state, so there is nothing to discard.
func (b *CarBuilder) Reset() {}

func (b *CarBuilder) AssembleSeats() {
	fmt.Fprintf(b.out, "Assembling %d seats\n", b.car.Seats)
}

func (b *CarBuilder) AssembleEngine() {
	fmt.Fprintf(b.out, "Assembling engine type %s\n", b.car.Engine)
}

func (b *CarBuilder) AssembleTripComputer() {
	if b.car.TripComputer {
		fmt.Fprintln(b.out, "Assembling trip computer")
	}
}

func (b *CarBuilder) AssembleGPS() {
	if b.car.GPS {
		fmt.Fprintln(b.out, "Assembling GPS")
	}
}

// Director runs assembly recipes against any Builder.
type Director struct{}

// MakeMVP assembles the minimum viable product: seats and engine only.
func (Director) MakeMVP(b Builder) {
	b.AssembleSeats()
	b.AssembleEngine()
}

// MakeFullFeature assembles every step, including optional equipment.
func (Director) MakeFullFeature(b Builder) {
	b.AssembleSeats()
	b.AssembleEngine()
	b.AssembleTripComputer()
	b.AssembleGPS()
}

// Demo writes the catalogue transcript to w: the same sedan assembled first
// as an MVP, then with the full feature recipe.
func Demo(ctx context.Context, w io.Writer) error {
	var director Director
	sedan := NewCarBuilder(w, Car{Seats: 5, Engine: EngineV4, TripComputer: true})

	director.MakeMVP(sedan)
	fmt.Fprintln(w)
	director.MakeFullFeature(sedan)
	return nil
}
