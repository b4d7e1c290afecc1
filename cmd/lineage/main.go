// Command lineage generates a random multi-generational family tree and
// answers questions about it interactively.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lineage/config"
	lineagecmd "github.com/katalvlaran/lineage/internal/cmd/lineage"
)

func main() {
	base, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	cfg, err := lineagecmd.ParseConfig(flag.CommandLine, os.Args[1:], base)
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := lineagecmd.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		config.Exitf("lineage: %v", err)
	}
}
