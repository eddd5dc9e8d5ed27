package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/eliseohh/torrebot/internal/bot"
	"github.com/eliseohh/torrebot/internal/config"
	"github.com/eliseohh/torrebot/internal/logger"
	"github.com/eliseohh/torrebot/internal/lookup"
	"go.uber.org/zap"
)

func main() {
	fmt.Println("TorreBot: consulta de cartera por torre y apartamento")

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Fatal: %v", err)
	}

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Fatal: %v", err)
	}
	if err := cfg.Validate(true); err != nil {
		log.Fatalf("Invalid configuration:\n%v", err)
	}

	// 2. Logger
	l, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "torrebot")
	if err != nil {
		log.Fatalf("Logger init failed: %v", err)
	}
	defer l.Sync()

	l.Info("config loaded",
		zap.String("source", cfg.Source),
		zap.Bool("sheet_id_set", cfg.Sheets.ID != ""),
		zap.Duration("fetch_timeout", cfg.FetchTimeout),
	)

	// 3. Record source
	src, closeSrc, err := cfg.OpenSource(context.Background(), l)
	if err != nil {
		l.Fatal("source init failed", zap.Error(err))
	}
	defer closeSrc()

	// 4. Bot
	svc := lookup.NewService(src, cfg.Columns, l)
	b, err := bot.New(bot.Config{Token: cfg.Token, FetchTimeout: cfg.FetchTimeout}, svc, l)
	if err != nil {
		l.Fatal("bot init failed", zap.Error(err))
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		l.Info("shutting down")
		b.Stop()
	}()

	fmt.Println("🤖 Bot Online. Listening...")
	b.Start()
}
