package decorator_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternarium/patternarium/pkg/decorator"
)

func TestConcreteComponent(t *testing.T) {
	c := decorator.ConcreteComponent{}
	assert.Equal(t, "ConcreteComponent", c.Execute())
	assert.Equal(t, "ConcreteComponent", c.Execute(), "result must be stable across calls")
}

func TestDecorator_Nesting(t *testing.T) {
	base := decorator.ConcreteComponent{}

	t.Run("A then B", func(t *testing.T) {
		d := decorator.NewConcreteDecoratorB(decorator.NewConcreteDecoratorA(base))
		assert.Equal(t, "ConcreteDecoratorB(ConcreteDecoratorA(ConcreteComponent))", d.Execute())
	})

	t.Run("B then A", func(t *testing.T) {
		// Same wrappers, opposite construction order: the output differs.
		d := decorator.NewConcreteDecoratorA(decorator.NewConcreteDecoratorB(base))
		assert.Equal(t, "ConcreteDecoratorA(ConcreteDecoratorB(ConcreteComponent))", d.Execute())
	})
}

func TestDecorator_WrapsFunc(t *testing.T) {
	d := decorator.NewConcreteDecoratorA(decorator.Func(func() string { return "X" }))
	assert.Equal(t, "ConcreteDecoratorA(X)", d.Execute())
}

func TestChain(t *testing.T) {
	wrapA := func(c decorator.Component) decorator.Component {
		return decorator.NewConcreteDecoratorA(c)
	}
	wrapB := func(c decorator.Component) decorator.Component {
		return decorator.NewConcreteDecoratorB(c)
	}

	t.Run("Outermost First", func(t *testing.T) {
		c := decorator.Chain(decorator.ConcreteComponent{}, wrapB, wrapA)
		assert.Equal(t, "ConcreteDecoratorB(ConcreteDecoratorA(ConcreteComponent))", c.Execute())
	})

	t.Run("No Middlewares", func(t *testing.T) {
		c := decorator.Chain(decorator.ConcreteComponent{})
		assert.Equal(t, "ConcreteComponent", c.Execute())
	})
}

func TestDemo_Transcript(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, decorator.Demo(context.Background(), &buf))

	want := "Client: I've got a simple component:\n" +
		"RESULT: ConcreteComponent\n\n" +
		"Client: Now I've got a decorated component:\n" +
		"RESULT: ConcreteDecoratorB(ConcreteDecoratorA(ConcreteComponent))\n\n"
	assert.Equal(t, want, buf.String())
}
