// Package cli glues the catalogue library to the cobra commands: it owns
// logging, run IDs, and the choice between plain and rendered output.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/patternarium/patternarium"
	"github.com/patternarium/patternarium/internal/logging"
	"github.com/patternarium/patternarium/internal/presentation/tui"
	"github.com/patternarium/patternarium/pkg/catalog"
)

// Options carries the flags shared by every subcommand.
type Options struct {
	// Plain disables ANSI rendering (colors, markdown styling).
	Plain   bool
	Verbose bool
}

// RunDemo executes one named demonstration against w.
func RunDemo(w io.Writer, name string, opts Options) error {
	logger := logging.New(logging.Level(opts.Verbose))
	cat := patternarium.Default()

	if !cat.Has(name) {
		return fmt.Errorf("unknown pattern %q (available: %s)",
			name, strings.Join(cat.Names(), ", "))
	}

	runner := newRunner(w, opts)
	runID := uuid.NewString()
	logger.Debug("running demonstration", "pattern", name, "run_id", runID)

	start := time.Now()
	if err := runner.Run(context.Background(), cat, name); err != nil {
		logger.Error("demonstration failed", "pattern", name, "run_id", runID, "error", err)
		return err
	}
	logger.Debug("demonstration finished",
		"pattern", name, "run_id", runID, "duration", time.Since(start))
	return nil
}

// RunAll executes every demonstration in name order.
func RunAll(w io.Writer, opts Options) error {
	logger := logging.New(logging.Level(opts.Verbose))
	runID := uuid.NewString()
	logger.Debug("running full catalogue", "run_id", runID)

	return newRunner(w, opts).RunAll(context.Background(), patternarium.Default())
}

// List writes the catalogue grouped by category.
func List(w io.Writer, opts Options) error {
	m, err := catalog.LoadManifest()
	if err != nil {
		return err
	}

	for _, category := range m.Categories() {
		heading := category
		if !opts.Plain {
			heading = tui.Category(heading)
		}
		fmt.Fprintln(w, heading)
		for _, p := range m.ByCategory(category) {
			// Pad before styling so ANSI escapes don't skew the columns.
			name := fmt.Sprintf("%-18s", p.Name)
			if !opts.Plain {
				name = tui.PatternName(name)
			}
			fmt.Fprintf(w, "  %s %s\n", name, p.Summary)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// Describe writes the pattern's markdown write-up, rendered unless plain
// output is requested.
func Describe(w io.Writer, name string, opts Options) error {
	m, err := catalog.LoadManifest()
	if err != nil {
		return err
	}

	p, ok := m.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown pattern %q", name)
	}

	doc := p.Doc
	if !opts.Plain {
		rendered, err := tui.NewRenderer()(doc)
		if err != nil {
			return fmt.Errorf("render write-up: %w", err)
		}
		doc = rendered
	}
	_, err = fmt.Fprint(w, doc)
	return err
}

func newRunner(w io.Writer, opts Options) *patternarium.Runner {
	r := patternarium.NewRunner()
	r.Output = w
	if !opts.Plain {
		r.Renderer = tui.NewRenderer()
	}
	return r
}
