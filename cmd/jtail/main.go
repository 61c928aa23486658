package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/jtail/internal/app"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "TOML config file (optional)")
	limit := flag.Int("limit", 0, "records kept in the buffer (optional, defaults to 1024)")
	showVersion := flag.Bool("version", false, "print version information")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: jtail [flags] [file]\n\nReads JSONL from file, or from standard input when file is omitted or \"-\".\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("jtail %s\n", version)
		return 0
	}
	if flag.NArg() > 1 {
		flag.Usage()
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Input:      flag.Arg(0),
		Limit:      *limit,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "jtail: %v\n", err)
		return 1
	}
	return 0
}
