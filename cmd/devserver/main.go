package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/booshananamudara/zoura-mobile/internal/devserver"
	"github.com/booshananamudara/zoura-mobile/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := devserver.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	zl, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer zl.Sync()

	srv := devserver.NewServer(cfg, logging.NewZapLogger(zl))
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
