// Command cliquer enumerates maximal cliques and clustering coefficients of
// an undirected edge list.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/cliquer/internal/app"
	"github.com/katalvlaran/cliquer/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	streams := app.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	if err := cli.Execute(ctx, streams, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "cliquer:", err)
		stop()
		os.Exit(1)
	}
}
