/*
Package patternarium is a catalogue of classic object-oriented design
patterns, each implemented as a small, self-contained Go demonstration.

Every pattern lives in its own package under pkg/ and exposes a Demo
function that writes a fixed, deterministic transcript to an io.Writer.
The root package ties them together: Default returns a catalog with all
built-in demonstrations registered, and Runner executes one against any
writer, optionally passing section headers through a markdown renderer.

# Patterns

  - Creational: builder, abstractfactory
  - Behavioral: strategy, templatemethod
  - Structural: composite, decorator, facade

# Usage

	cat := patternarium.Default()

	r := patternarium.NewRunner()
	r.Output = os.Stdout
	if err := r.Run(context.Background(), cat, "composite"); err != nil {
		log.Fatal(err)
	}

The demonstrations have no configuration surface and no state outliving a
single run; each is a pure function of its inputs to the supplied writer.
*/
package patternarium
