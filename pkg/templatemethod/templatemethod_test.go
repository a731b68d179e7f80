package templatemethod_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternarium/patternarium/pkg/templatemethod"
)

func TestRun_SkeletonOrder(t *testing.T) {
	var buf bytes.Buffer
	templatemethod.Run(&buf, templatemethod.ConcreteClass1{})

	want := "AbstractClass: Implements step 1\n" +
		"AbstractClass: Implements step 2\n" +
		"ConcreteClass1: Implements step 3\n" +
		"ConcreteClass1: Implements step 4\n"
	assert.Equal(t, want, buf.String())
}

func TestRun_OptionalHooks(t *testing.T) {
	var buf bytes.Buffer
	templatemethod.Run(&buf, templatemethod.ConcreteClass2{})

	out := buf.String()
	assert.Contains(t, out, "ConcreteClass2: Implements step 5")
	assert.NotContains(t, out, "step 6", "unimplemented hooks stay silent")
}

type fullVariant struct {
	templatemethod.ConcreteClass2
}

func (fullVariant) Step6(w io.Writer) {
	fmt.Fprintln(w, "fullVariant: Implements step 6")
}

func TestRun_BothHooks(t *testing.T) {
	var buf bytes.Buffer
	templatemethod.Run(&buf, fullVariant{})
	assert.Contains(t, buf.String(), "fullVariant: Implements step 6")
}

func TestDemo_Transcript(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, templatemethod.Demo(context.Background(), &buf))

	want := "Same client code can work with different subclasses:\n" +
		"AbstractClass: Implements step 1\n" +
		"AbstractClass: Implements step 2\n" +
		"ConcreteClass1: Implements step 3\n" +
		"ConcreteClass1: Implements step 4\n" +
		"\n" +
		"Same client code can work with different subclasses:\n" +
		"AbstractClass: Implements step 1\n" +
		"AbstractClass: Implements step 2\n" +
		"ConcreteClass2: Implements step 3\n" +
		"ConcreteClass2: Implements step 4\n" +
		"ConcreteClass2: Implements step 5\n"
	assert.Equal(t, want, buf.String())
}
