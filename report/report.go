// SPDX-License-Identifier: MIT

// Package report renders clique and clustering results as text, JSON or YAML.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/cliquer/clique"
	"github.com/katalvlaran/cliquer/core"
)

// ErrUnknownFormat is returned for an output format other than text, json or yaml.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects a renderer.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat normalises s; "" means Text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return Text, nil
	case Text, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("report: format %q: %w", s, ErrUnknownFormat)
	}
}

// Report is everything one run produced. Nil sections are omitted.
type Report struct {
	RunID        string          `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Source       string          `json:"source,omitempty" yaml:"source,omitempty"`
	Graph        *GraphSection   `json:"graph,omitempty" yaml:"graph,omitempty"`
	Enumerations []*Enumeration  `json:"enumerations,omitempty" yaml:"enumerations,omitempty"`
	Clustering   *ClusteringInfo `json:"clustering,omitempty" yaml:"clustering,omitempty"`
}

// GraphSection summarises the input graph.
type GraphSection struct {
	core.GraphStats `yaml:",inline"`
	Components      int `json:"components" yaml:"components"`
}

// Enumeration is the outcome of one Bron–Kerbosch variant.
type Enumeration struct {
	Variant  string  `json:"variant" yaml:"variant"`
	Pivot    string  `json:"pivot,omitempty" yaml:"pivot,omitempty"`
	Count    int     `json:"count" yaml:"count"`
	Calls    int64   `json:"calls" yaml:"calls"`
	MaxDepth int     `json:"max_depth" yaml:"max_depth"`
	Cliques  [][]int `json:"cliques" yaml:"cliques,flow"`
}

// ClusteringInfo carries the coefficient summary.
type ClusteringInfo struct {
	Average   float64         `json:"average" yaml:"average"`
	Triangles int             `json:"triangles" yaml:"triangles"`
	Local     map[int]float64 `json:"local,omitempty" yaml:"local,omitempty"`
}

// NewGraphSection fills a GraphSection from g.
func NewGraphSection(g *core.Graph) *GraphSection {
	return &GraphSection{GraphStats: g.Stats(), Components: len(g.Components())}
}

// NewEnumeration converts a clique.Result. pivot names the strategy and is
// dropped for the plain variant.
func NewEnumeration(res *clique.Result, pivot string) *Enumeration {
	e := &Enumeration{
		Variant:  res.Variant.String(),
		Count:    res.Count(),
		Calls:    res.Calls,
		MaxDepth: res.MaxDepth,
		Cliques:  make([][]int, len(res.Cliques)),
	}
	if res.Variant == clique.Pivot {
		e.Pivot = pivot
	}
	for i, c := range res.Cliques {
		e.Cliques[i] = []int(c)
	}

	return e
}

// Render writes r to w in format f.
func Render(w io.Writer, r *Report, f Format) error {
	var err error
	switch f {
	case Text, "":
		err = renderText(w, r)
	case JSON:
		err = renderJSON(w, r)
	case YAML:
		err = renderYAML(w, r)
	default:
		return fmt.Errorf("report: Render(%q): %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("report: Render(%s): %w", f, err)
	}

	return nil
}
