// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/cliquer/core"
)

// ErrMalformedInput is returned for a line that is not a valid edge.
var ErrMalformedInput = errors.New("loader: malformed input")

// Option configures a read.
type Option func(*options)

type options struct {
	matrixMarket bool
	maxLineBytes int
}

// defaultMaxLineBytes bounds a single input line.
const defaultMaxLineBytes = 1 << 20

// WithMatrixMarket skips the size header that follows the comment block of a
// MatrixMarket coordinate file.
func WithMatrixMarket() Option {
	return func(o *options) { o.matrixMarket = true }
}

// WithMaxLineBytes overrides the per-line size limit. Values ≤ 0 are ignored.
func WithMaxLineBytes(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLineBytes = n
		}
	}
}

// Read parses every edge in r. Isolated-vertex comments are ignored; use
// Load to keep them.
func Read(r io.Reader, opts ...Option) ([]core.Edge, error) {
	edges, _, err := parse(r, opts)

	return edges, err
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts ...Option) ([]core.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: ReadFile: %w", err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// Load parses r and builds a graph from its edges. Vertices named by
// "% isolated v" comments (as emitted by Write) are registered too.
func Load(r io.Reader, opts ...Option) (*core.Graph, error) {
	edges, isolated, err := parse(r, opts)
	if err != nil {
		return nil, err
	}
	g, err := core.NewGraphFromEdges(edges)
	if err != nil {
		return nil, err
	}
	for _, v := range isolated {
		g.AddVertex(v)
	}

	return g, nil
}

// LoadFile is Load for a path.
func LoadFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: LoadFile: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// isolatedDirective prefixes the comment Write uses for a degree-0 vertex.
const isolatedDirective = "% isolated "

func parse(r io.Reader, opts []Option) ([]core.Edge, []int, error) {
	o := options{maxLineBytes: defaultMaxLineBytes}
	for _, fn := range opts {
		fn(&o)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), o.maxLineBytes)

	var (
		edges      []core.Edge
		isolated   []int
		lineNo     int
		headerSeen = !o.matrixMarket
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if rest, ok := strings.CutPrefix(line, isolatedDirective); ok {
			v, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				return nil, nil, fmt.Errorf("loader: Read: line %d: %w: isolated vertex %q is not an integer",
					lineNo, ErrMalformedInput, rest)
			}
			isolated = append(isolated, v)
			continue
		}
		if line == "" || line[0] == '%' || line[0] == '#' {
			continue
		}
		if !headerSeen {
			headerSeen = true
			continue
		}

		e, err := parseLine(line)
		if err != nil {
			return nil, nil, fmt.Errorf("loader: Read: line %d: %w", lineNo, err)
		}
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("loader: Read: line %d: %w", lineNo+1, err)
	}

	return edges, isolated, nil
}

func parseLine(line string) (core.Edge, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return core.Edge{}, fmt.Errorf("%w: want at least 2 tokens, got %d", ErrMalformedInput, len(fields))
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: vertex %q is not an integer", ErrMalformedInput, fields[0])
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: vertex %q is not an integer", ErrMalformedInput, fields[1])
	}
	if u == v {
		return core.Edge{}, fmt.Errorf("%w: self-loop on %d", ErrMalformedInput, u)
	}

	return core.Edge{U: u, V: v}, nil
}
