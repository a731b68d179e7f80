package abstractfactory_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternarium/patternarium/pkg/abstractfactory"
)

func TestFactories_ProduceMatchingVariants(t *testing.T) {
	tests := []struct {
		name      string
		factory   abstractfactory.Factory
		wantA     string
		wantB     string
		wantJoint string
	}{
		{
			name:      "Variant 1",
			factory:   abstractfactory.NewFactory1(),
			wantA:     "The result of the product A1.",
			wantB:     "The result of the product B1.",
			wantJoint: "The result of the B1 collaborating with ( The result of the product A1. )",
		},
		{
			name:      "Variant 2",
			factory:   abstractfactory.NewFactory2(),
			wantA:     "The result of the product A2.",
			wantB:     "The result of the product B2.",
			wantJoint: "The result of the B2 collaborating with ( The result of the product A2. )",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.factory.CreateProductA()
			b := tt.factory.CreateProductB()
			assert.Equal(t, tt.wantA, a.MethodA())
			assert.Equal(t, tt.wantB, b.MethodB())
			assert.Equal(t, tt.wantJoint, b.Collaborate(a))
		})
	}
}

func TestProductB_AcceptsForeignVariant(t *testing.T) {
	// The interfaces do not stop a cross-variant pairing; the collaboration
	// result simply mixes the labels.
	a := abstractfactory.NewFactory2().CreateProductA()
	b := abstractfactory.NewFactory1().CreateProductB()
	assert.Equal(t,
		"The result of the B1 collaborating with ( The result of the product A2. )",
		b.Collaborate(a))
}

func TestDemo_Transcript(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, abstractfactory.Demo(context.Background(), &buf))

	want := "Client: Testing client code with the 1st factory type:\n" +
		"The result of the product B1.\n" +
		"The result of the B1 collaborating with ( The result of the product A1. )\n" +
		"\n" +
		"Client: Testing the same client code with the 2nd factory type:\n" +
		"The result of the product B2.\n" +
		"The result of the B2 collaborating with ( The result of the product A2. )\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}
