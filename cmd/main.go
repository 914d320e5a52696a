package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/creatorlabs/creator-platform/internal/cache"
	"github.com/creatorlabs/creator-platform/internal/config"
	"github.com/creatorlabs/creator-platform/internal/events"
	"github.com/creatorlabs/creator-platform/internal/handlers"
	"github.com/creatorlabs/creator-platform/internal/logger"
	"github.com/creatorlabs/creator-platform/internal/server"
	"github.com/creatorlabs/creator-platform/internal/store/mongostore"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	zlog, err := logger.New(cfg.App.Development())
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	st, err := mongostore.Connect(context.Background(), cfg.Mongo.URI, cfg.Mongo.DB)
	if err != nil {
		zlog.Fatalw("mongo connect", "err", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	var feedCache *cache.Client
	if cfg.Redis.Addr != "" {
		feedCache, err = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		if err != nil {
			zlog.Fatalw("redis connect", "err", err)
		}
		defer feedCache.Close()
	}

	var pub *events.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		pub = events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, zlog)
		defer pub.Close()
	}

	h := handlers.New(st, feedCache, pub, cfg.Mongo.DB, zlog)
	app := server.New(h)

	go func() {
		if err := app.Listen(":" + cfg.App.PortString()); err != nil {
			zlog.Fatalw("server listen", "err", err)
		}
	}()
	zlog.Infow("creator-platform started", "port", cfg.App.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	zlog.Info("creator-platform stopped")
}
