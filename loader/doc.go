// Package loader parses whitespace-separated edge lists into core graphs.
//
// Format:
//
//	% comment          lines starting with '%' or '#' are skipped
//	1 2                first two integer tokens form an undirected edge
//	3 4 0.75           extra columns (weights) are ignored
//	% isolated 9       registers vertex 9 with no edges (Load only)
//
// With WithMatrixMarket the first data line is the "rows cols nnz" size
// header and is skipped as well.
//
// Input is parsed in full before anything is returned: a malformed line
// yields ErrMalformedInput with its line number and no edges.
package loader
