package strategy_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternarium/patternarium/pkg/strategy"
)

func TestContext_NoStrategy(t *testing.T) {
	var buf bytes.Buffer
	strategy.NewContext(&buf, nil).DoSomething()
	assert.Equal(t, "Context: Strategy isn't set\n", buf.String())
}

func TestContext_ExecutesStrategy(t *testing.T) {
	var buf bytes.Buffer
	c := strategy.NewContext(&buf, strategy.ConcreteStrategyA{Number: 100})
	c.DoSomething()

	want := "Context: Execute strategy:\n" +
		"Doing something using Strategy A - Internal data \"100\"\n"
	assert.Equal(t, want, buf.String())
}

func TestContext_SetStrategySwapsAlgorithm(t *testing.T) {
	var buf bytes.Buffer
	c := strategy.NewContext(&buf, strategy.ConcreteStrategyA{Number: 7})

	c.SetStrategy(strategy.ConcreteStrategyB{Text: "abcd"})
	c.DoSomething()

	want := "Context: Execute strategy:\n" +
		"Doing something using Strategy B - Internal data \"abcd\"\n"
	assert.Equal(t, want, buf.String())
}

func TestStrategies_CarryInternalData(t *testing.T) {
	assert.Equal(t,
		"Doing something using Strategy A - Internal data \"42\"",
		strategy.ConcreteStrategyA{Number: 42}.Execute())
	assert.Equal(t,
		"Doing something using Strategy B - Internal data \"xyz\"",
		strategy.ConcreteStrategyB{Text: "xyz"}.Execute())
}

func TestDemo_Transcript(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, strategy.Demo(context.Background(), &buf))

	want := "Client: Running without Strategy.\n" +
		"Context: Strategy isn't set\n" +
		"\n" +
		"Client: Running using Strategy A.\n" +
		"Context: Execute strategy:\n" +
		"Doing something using Strategy A - Internal data \"100\"\n" +
		"\n" +
		"Client: Running using Strategy B.\n" +
		"Context: Execute strategy:\n" +
		"Doing something using Strategy B - Internal data \"abcd\"\n"
	assert.Equal(t, want, buf.String())
}
