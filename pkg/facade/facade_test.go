package facade_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternarium/patternarium/pkg/facade"
)

func TestFacade_FullLifecycle(t *testing.T) {
	var buf bytes.Buffer
	f := facade.New(&buf, true, true)

	f.Init()
	f.Build()
	f.Deinit()

	want := "Facade initializes subsystems:\n" +
		"SubsystemA: Initialized.\n" +
		"SubsystemB: Initialized.\n" +
		"Facade subsystems perform the action:\n" +
		"SubsystemA: Doing something.\n" +
		"SubsystemB: Doing something.\n" +
		"Facade deinitializes subsystems:\n" +
		"SubsystemA: Deinitialized.\n" +
		"SubsystemB: Deinitialized.\n"
	assert.Equal(t, want, buf.String())
}

func TestFacade_PartialSubsystems(t *testing.T) {
	tests := []struct {
		name  string
		withA bool
		withB bool
		want  string
	}{
		{
			name:  "A Only",
			withA: true,
			want:  "Facade initializes subsystems:\nSubsystemA: Initialized.\n",
		},
		{
			name:  "B Only",
			withB: true,
			want:  "Facade initializes subsystems:\nSubsystemB: Initialized.\n",
		},
		{
			name: "None",
			want: "Facade initializes subsystems:\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			facade.New(&buf, tt.withA, tt.withB).Init()
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDemo_Transcript(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, facade.Demo(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, "===== Building Facade with subsystem A & B =====")
	assert.Contains(t, out, "===== Building Facade with subsystem A only =====")
	assert.Contains(t, out, "SubsystemB: Doing something.")

	// The A-only facade never mentions subsystem B after its banner.
	parts := strings.SplitN(out, "subsystem A only =====", 2)
	require.Len(t, parts, 2)
	assert.NotContains(t, parts[1], "SubsystemB")
}
