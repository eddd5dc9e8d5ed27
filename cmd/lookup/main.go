package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/eliseohh/torrebot/internal/config"
	"github.com/eliseohh/torrebot/internal/logger"
	"github.com/eliseohh/torrebot/internal/lookup"
)

// lookup answers one query against the configured source, exactly as the bot would.
//
//	lookup 1-101
//	lookup -env prod.env T1101
func main() {
	envFile := flag.String("env", ".env", "dotenv file to load")
	verbose := flag.Bool("v", false, "log to stderr")
	flag.Parse()

	text := strings.Join(flag.Args(), " ")
	if text == "" {
		fmt.Fprintln(os.Stderr, lookup.UsageMessage)
		os.Exit(2)
	}

	if err := config.LoadDotEnv(*envFile); err != nil {
		fail(err)
	}
	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}
	if err := cfg.Validate(false); err != nil {
		fail(err)
	}

	level := "error"
	if *verbose {
		level = "debug"
	}
	l, err := logger.NewLogger(level, "console", "torrebot-lookup")
	if err != nil {
		fail(err)
	}
	defer l.Sync()

	src, closeSrc, err := cfg.OpenSource(context.Background(), l)
	if err != nil {
		fail(err)
	}
	defer closeSrc()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
	defer cancel()

	reply, err := lookup.NewService(src, cfg.Columns, l).Reply(ctx, text)
	if err != nil {
		fail(err)
	}
	fmt.Println(reply.Text)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "❌ %v\n", err)
	os.Exit(1)
}
