// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/cliquer/core"
)

// Write emits g as an edge list that Read accepts: a comment header, then one
// "u v" line per edge in sorted order, then one "% isolated v" comment per
// isolated vertex.
//
// Load registers the isolated vertices again; Read, which returns edges
// only, drops them.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	st := g.Stats()
	fmt.Fprintf(bw, "%% cliquer edge list: %d vertices, %d edges\n", st.VertexCount, st.EdgeCount)
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d\n", e.U, e.V)
	}
	for _, v := range g.Vertices() {
		if g.Degree(v) == 0 {
			fmt.Fprintf(bw, "%s%d\n", isolatedDirective, v)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("loader: Write: %w", err)
	}

	return nil
}
