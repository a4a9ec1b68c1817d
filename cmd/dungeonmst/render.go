package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/katalvlaran/dungeonmst/explorer"
	"github.com/katalvlaran/dungeonmst/gridgraph"
)

// Styles for terminal output.
var (
	colorHeading = color.Style{color.FgCyan, color.OpBold}
	colorKey     = color.Style{color.FgYellow, color.OpBold}
	colorPath    = color.Style{color.FgGreen, color.OpBold}
	colorWall    = color.Style{color.FgGray}
	colorDenied  = color.Style{color.FgRed, color.OpBold}
	colorSubtle  = color.Style{color.FgGray, color.OpBold}
)

// renderer writes a report as text, colored when out is a terminal.
type renderer struct {
	out   io.Writer
	color bool
	width int // terminal columns, 0 when unknown
}

func newRenderer(out io.Writer, noColor bool) *renderer {
	r := &renderer{out: out}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.color = !noColor
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			r.width = w
		}
	}
	return r
}

func (r *renderer) paint(s color.Style, a ...any) string {
	if !r.color {
		return fmt.Sprint(a...)
	}
	return s.Sprint(a...)
}

func (r *renderer) printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

// Report prints keys, paths, tree, unreached locations and the overlay.
func (r *renderer) Report(rep *explorer.Report, showPaths bool) {
	r.printf("%s\n", r.paint(colorHeading, fmt.Sprintf("Key locations (%d)", len(rep.Graph.Nodes))))
	for _, n := range rep.Graph.Nodes {
		r.printf("  %s %s\n", r.paint(colorKey, n.ID), n.Point)
	}

	r.printf("%s\n", r.paint(colorHeading, fmt.Sprintf("Paths (%d)", len(rep.Graph.Edges))))
	for _, e := range rep.Graph.Edges {
		if showPaths {
			r.printf("  %s %s\n", e, r.paint(colorSubtle, joinPoints(e.Path)))
		} else {
			r.printf("  %s\n", e)
		}
	}
	for _, f := range rep.Graph.Failures {
		r.printf("  %s %s->%s: %v\n", r.paint(colorDenied, "failed"), f.From, f.To, f.Err)
	}

	tree := rep.Tree
	state := r.paint(colorPath, "connected")
	if !tree.Connected() {
		state = r.paint(colorDenied, "disconnected")
	}
	r.printf("%s\n", r.paint(colorHeading, fmt.Sprintf("Spanning tree (%s, root %s)", rep.Method, tree.Root)))
	for _, e := range tree.InOrder() {
		r.printf("  %s %d\n", e.Key(), e.Weight)
	}
	r.printf("  total weight %d, %s\n", tree.TotalWeight, state)
	for _, b := range rep.Breaches {
		r.printf("  %s %s, %d wall(s) away\n", r.paint(colorDenied, "unreached"), b.Node.ID, b.Walls)
	}
	if len(rep.Breaches) == 0 {
		for _, n := range tree.Unreached {
			r.printf("  %s %s\n", r.paint(colorDenied, "unreached"), n.ID)
		}
	}

	if route := rep.Route; route != nil && len(route.Stops) > 0 {
		r.printf("%s\n", r.paint(colorHeading, "Route"))
		r.printf("  %s\n", strings.Join(route.Stops, " -> "))
		r.printf("  cost %d (seed %d, %d improvement(s))\n", route.Cost, route.SeedCost, route.Moves)
	}

	r.overlay(rep)
	r.printf("%s\n", r.paint(colorSubtle, fmt.Sprintf("done in %s", rep.Duration)))
}

func (r *renderer) overlay(rep *explorer.Report) {
	if r.width > 0 && rep.Grid.Width > r.width {
		r.printf("%s\n", r.paint(colorSubtle, fmt.Sprintf("map is %d columns wide, overlay skipped", rep.Grid.Width)))
		return
	}
	r.printf("%s\n", r.paint(colorHeading, "Overlay"))
	mark := rep.Mark()
	for _, row := range rep.Overlay() {
		var b strings.Builder
		for _, ch := range row {
			switch {
			case ch == mark:
				b.WriteString(r.paint(colorPath, string(ch)))
			case ch == rep.Grid.Wall:
				b.WriteString(r.paint(colorWall, string(ch)))
			case ch == rep.Grid.Open:
				b.WriteRune(ch)
			default:
				b.WriteString(r.paint(colorKey, string(ch)))
			}
		}
		r.printf("  %s\n", b.String())
	}
}

func joinPoints(ps []gridgraph.Point) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
