package patternarium

import (
	"context"
	"fmt"
	"io"

	"github.com/patternarium/patternarium/pkg/catalog"
)

// Runner executes catalogue demonstrations using provided IO.
// This allows for easy testing and integration with different frontends.
type Runner struct {
	Output   io.Writer
	Renderer ContentRenderer
}

// ContentRenderer transforms a section header before it is written.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// NewRunner creates a new Runner. The caller must set Output before running
// (use os.Stdout for a CLI).
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the named demonstration, preceded by a section header.
func (r *Runner) Run(ctx context.Context, cat *catalog.Catalog, name string) error {
	w, err := r.writer()
	if err != nil {
		return err
	}
	if err := r.printHeader(w, name); err != nil {
		return err
	}
	return cat.Run(ctx, name, w)
}

// RunAll executes every registered demonstration in name order, stopping at
// the first failure.
func (r *Runner) RunAll(ctx context.Context, cat *catalog.Catalog) error {
	w, err := r.writer()
	if err != nil {
		return err
	}
	for _, name := range cat.Names() {
		if err := r.printHeader(w, name); err != nil {
			return err
		}
		if err := cat.Run(ctx, name, w); err != nil {
			return fmt.Errorf("demo %s: %w", name, err)
		}
	}
	return nil
}

func (r *Runner) writer() (io.Writer, error) {
	if r.Output == nil {
		return nil, fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	return r.Output, nil
}

func (r *Runner) printHeader(w io.Writer, name string) error {
	header := fmt.Sprintf("## %s\n\n", name)
	if r.Renderer != nil {
		rendered, err := r.Renderer(header)
		if err != nil {
			return fmt.Errorf("render header: %w", err)
		}
		header = rendered
	}
	_, err := fmt.Fprint(w, header)
	return err
}
