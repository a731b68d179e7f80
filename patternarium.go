package patternarium

import (
	"github.com/patternarium/patternarium/pkg/abstractfactory"
	"github.com/patternarium/patternarium/pkg/builder"
	"github.com/patternarium/patternarium/pkg/catalog"
	"github.com/patternarium/patternarium/pkg/composite"
	"github.com/patternarium/patternarium/pkg/decorator"
	"github.com/patternarium/patternarium/pkg/facade"
	"github.com/patternarium/patternarium/pkg/strategy"
	"github.com/patternarium/patternarium/pkg/templatemethod"
)

// Version is the catalogue release. Overridable at build time via -ldflags.
var Version = "0.1.0"

// Default returns a catalog with every built-in demonstration registered
// under its manifest name. Hosts may register additional demos on top.
func Default() *catalog.Catalog {
	c := catalog.New()
	c.Register("builder", builder.Demo)
	c.Register("abstractfactory", abstractfactory.Demo)
	c.Register("strategy", strategy.Demo)
	c.Register("templatemethod", templatemethod.Demo)
	c.Register("composite", composite.Demo)
	c.Register("decorator", decorator.Demo)
	c.Register("facade", facade.Demo)
	return c
}
