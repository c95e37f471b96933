// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/cliquer/clique"
)

var (
	colorTitle = lipgloss.Color("#2CD7C7")
	colorLabel = lipgloss.Color("#20B9B4")
	colorMuted = lipgloss.Color("#2C4A54")
)

// styles is bound to one output; color is dropped when w is not a terminal.
type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	muted lipgloss.Style
	bold  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title: r.NewStyle().Bold(true).Foreground(colorTitle),
		label: r.NewStyle().Foreground(colorLabel),
		muted: r.NewStyle().Foreground(colorMuted),
		bold:  r.NewStyle().Bold(true),
	}
}

func renderText(w io.Writer, r *Report) error {
	s := newStyles(w)
	bw := bufio.NewWriter(w)

	if r.Source != "" || r.RunID != "" {
		fmt.Fprintln(bw, s.muted.Render(strings.TrimSpace(r.Source+" "+r.RunID)))
	}
	if g := r.Graph; g != nil {
		fmt.Fprintln(bw, s.title.Render("Graph"))
		fmt.Fprintf(bw, "%s %d  %s %d  %s %d  %s %d  %s %d\n",
			s.label.Render("vertices"), g.VertexCount,
			s.label.Render("edges"), g.EdgeCount,
			s.label.Render("isolated"), g.IsolatedCount,
			s.label.Render("max degree"), g.MaxDegree,
			s.label.Render("components"), g.Components)
		fmt.Fprintln(bw)
	}

	for _, e := range r.Enumerations {
		heading := "Bron–Kerbosch (" + e.Variant
		if e.Pivot != "" {
			heading += ", " + e.Pivot + " pivot"
		}
		heading += ")"
		fmt.Fprintln(bw, s.title.Render(heading))
		fmt.Fprintf(bw, "%s maximal cliques found\n", s.bold.Render(strconv.Itoa(e.Count)))
		fmt.Fprintln(bw, s.muted.Render(fmt.Sprintf("%d calls, max depth %d", e.Calls, e.MaxDepth)))
		for _, c := range e.Cliques {
			fmt.Fprintln(bw, clique.Clique(c).String())
		}
		fmt.Fprintln(bw)
	}

	if c := r.Clustering; c != nil {
		fmt.Fprintln(bw, s.title.Render("Clustering"))
		fmt.Fprintf(bw, "%s %s\n", s.label.Render("average coefficient"), strconv.FormatFloat(c.Average, 'f', 6, 64))
		fmt.Fprintf(bw, "%s %d\n", s.label.Render("triangles"), c.Triangles)
		if c.Local != nil {
			fmt.Fprintln(bw, s.muted.Render("vertex coefficient"))
			vs := slices.Sorted(maps.Keys(c.Local))
			for _, v := range vs {
				fmt.Fprintf(bw, "%d %s\n", v, strconv.FormatFloat(c.Local[v], 'f', 6, 64))
			}
		}
	}

	return bw.Flush()
}
