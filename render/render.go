// Package render prints routes, rankings and timings as plain text in the
// format the Shinkansen planner has always shown riders: stations and
// lines joined by " -> ", totals with two decimals, transits as integers,
// and explicit messages instead of empty output.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/railpath/aggregate"
	"github.com/katalvlaran/railpath/route"
	"github.com/katalvlaran/railpath/strategy"
)

// Messages printed when there is nothing to show.
const (
	NotFoundMessage    = "Route not found."
	NoSuitableMessage  = "No suitable route found based on your preference."
	routeSeparator     = " -> "
	alternativeHeading = "Alternative Route:"
)

// printer remembers the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) outcome(o route.Outcome) {
	if !o.Found() {
		p.printf("%s\n", NotFoundMessage)
		return
	}
	p.printf("Route: %s\n", strings.Join(o.Path, routeSeparator))
	p.printf("Lines: %s\n", strings.Join(o.Lines, routeSeparator))
	p.printf("Total Distance: %.2f km\n", o.Distance)
	p.printf("Total Cost: %.2f Yen\n", o.Cost)
	p.printf("Total Duration: %.2f minutes\n", o.Duration)
	p.printf("Total Transits: %d\n", o.Transits)
}

// Outcome prints o under an optional title line.
func Outcome(w io.Writer, title string, o route.Outcome) error {
	p := &printer{w: w}
	if title != "" {
		p.printf("%s\n", title)
	}
	p.outcome(o)

	return p.err
}

// Selection prints the best candidate followed by every alternative, or
// NoSuitableMessage for an empty selection.
func Selection(w io.Writer, sel aggregate.Selection) error {
	p := &printer{w: w}
	best, ok := sel.Best()
	if !ok {
		p.printf("%s\n", NoSuitableMessage)
		return p.err
	}

	p.printf("Best Route Based on Your Preference:\n")
	p.outcome(best.Outcome)
	for _, c := range sel.Candidates[1:] {
		p.printf("\n%s\n", alternativeHeading)
		p.outcome(c.Outcome)
	}

	return p.err
}

// Timings prints one line per strategy run: name, elapsed milliseconds
// with two decimals, and whether a route was found.
func Timings(w io.Writer, results []strategy.Result) error {
	p := &printer{w: w}
	for _, r := range results {
		status := "found"
		if !r.Outcome.Found() {
			status = "not found"
		}
		p.printf("%-10s %8.2f ms  %s\n", r.Kind, float64(r.Elapsed)/float64(time.Millisecond), status)
	}

	return p.err
}
