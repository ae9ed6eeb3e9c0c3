package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/vegetanizando/api/internal/notification/application"
	notifemail "github.com/vegetanizando/api/internal/notification/infrastructure/email"
	notifkafka "github.com/vegetanizando/api/internal/notification/infrastructure/kafka"
	"github.com/vegetanizando/api/pkg/idempotency"
	"github.com/vegetanizando/api/pkg/logging"
	"github.com/vegetanizando/api/pkg/shutdown"
	"github.com/vegetanizando/api/pkg/tracing"
)

func main() {
	_ = godotenv.Load()
	log := logging.New()

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	kafkaBrokers := []string{env("KAFKA_ADDR", "localhost:9092")}
	redisAddr := env("REDIS_ADDR", "localhost:6379")
	otlpURL := env("OTLP_URL", "http://localhost:4318")
	topic := env("OUTBOX_TOPIC", "purchase.events")
	group := env("CONSUMER_GROUP", "vegetanizando-notifier")

	tp, err := tracing.Init(ctx, "vegetanizando-notifier", otlpURL, log)
	if err != nil {
		log.Error("otel init failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = tp.Shutdown(ctx) }()

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer rdb.Close()

	idem := idempotency.NewStore(rdb, 24*time.Hour)
	svc := application.NewService(log, notifemail.NewLogSender(log))
	consumer := notifkafka.NewConsumer(log, kafkaBrokers, topic, group, svc, idem)

	log.Info("notifier consuming", "topic", topic, "group", group)
	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("consumer stopped with error", "err", err)
		os.Exit(1)
	}
	log.Info("vegetanizando-notifier shutdown complete")
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
