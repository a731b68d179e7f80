package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner for the patternarium CLI.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{`                 _   _                                   `, "#818cf8"},
		{`  _ __   __ _  | |_| |_ ___ _ __ _ __   __ _ _ __(_)_  _`, "#a78bfa"},
		{` | '_ \ / _` + "`" + ` | | __| __/ _ \ '__| '_ \ / _` + "`" + ` | '__| | || |`, "#c084fc"},
		{` | |_) | (_| | | |_| ||  __/ |  | | | | (_| | |  | | || |`, "#e879f9"},
		{` | .__/ \__,_|  \__|\__\___|_|  |_| |_|\__,_|_|  |_|\__,_|`, "#f472b6"},
		{` |_|                                                      `, "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
