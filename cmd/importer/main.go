package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/IBM/sarama"
	"github.com/MichalMitros/catalog-feed-importer/cmd/importer/config"
	"github.com/MichalMitros/catalog-feed-importer/internal/decoder"
	"github.com/MichalMitros/catalog-feed-importer/internal/fetcher"
	"github.com/MichalMitros/catalog-feed-importer/internal/handler"
	"github.com/MichalMitros/catalog-feed-importer/internal/images"
	"github.com/MichalMitros/catalog-feed-importer/internal/ingester"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/cache"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/kafka"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/rabbitmq"
	"github.com/MichalMitros/catalog-feed-importer/internal/platform/storage"
	"github.com/MichalMitros/catalog-feed-importer/internal/resolver"
	"github.com/MichalMitros/catalog-feed-importer/internal/scheduler"
	"github.com/MichalMitros/catalog-feed-importer/pkg/v1/commander"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Fatal().
			Err(err).
			Msg("can't load .env file")
	}

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("logLevel", cfg.LogLevel).
			Msg("can't parse log level")
	}
	logger = logger.Level(level)

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange, rabbitmq.WithPrefetch(cfg.RabbitMQ.Prefetch))
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ channel")
	}

	if err := conn.Declare(cfg.RabbitMQ.FeedQueue, cfg.RabbitMQ.FeedRoutingKey); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't declare feed queue")
	}

	if err := conn.Declare(cfg.RabbitMQ.ImagesQueue, cfg.RabbitMQ.ImagesRoutingKey); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't declare images queue")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	store := storage.NewPostgres(pgDB, storage.WithRunStaleAfter(cfg.RunStaleAfter))

	var (
		resolverCache resolver.Cache = cache.NewMemory()
		redisClient   *redis.Client
	)
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		resolverCache = cache.NewRedis(redisClient)
	}

	feedCommander := commander.NewFeedCommander(commander.NewRabbitMQSender(conn, cfg.RabbitMQ.FeedRoutingKey))
	imagesCommander := commander.NewImagesCommander(commander.NewRabbitMQSender(conn, cfg.RabbitMQ.ImagesRoutingKey))

	ingesterOps := []ingester.Option{}
	var producer sarama.SyncProducer
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err = kafka.NewSyncProducer(cfg.Kafka.Brokers)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't create Kafka producer")
		}
		ingesterOps = append(ingesterOps, ingester.WithReportPublisher(kafka.NewReportPublisher(producer, cfg.Kafka.ReportsTopic)))
	}

	ing := ingester.NewIngester(
		fetcher.NewFetcher(
			&http.Client{Timeout: cfg.HTTP.Timeout},
			cfg.HTTP.UserAgent,
			fetcher.WithRetries(cfg.HTTP.DownloadRetries),
			fetcher.WithLogger(&logger),
		),
		decoder.NewDecoder(&logger),
		resolver.NewResolver(store, resolverCache, &logger, resolver.WithTTL(cfg.Resolver.CacheTTL)),
		store,
		imagesCommander,
		&logger,
		ingesterOps...,
	)

	synchronizer := images.NewSynchronizer(
		fetcher.NewFetcher(&http.Client{Timeout: cfg.HTTP.ImageTimeout}, cfg.HTTP.UserAgent),
		store,
		&logger,
		images.WithConcurrency(cfg.Images.Concurrency),
	)

	han := handler.NewHandler(conn, ing, synchronizer, feedCommander, &logger, handler.WithMaxAttempts(cfg.MaxAttempts))

	// start consuming and handling messages
	err = han.Start(ctx, cfg.RabbitMQ.FeedQueue, cfg.RabbitMQ.ImagesQueue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	schedulerDone := make(chan struct{})
	if cfg.Scheduler.Enabled {
		sch := scheduler.NewScheduler(
			store,
			feedCommander,
			&logger,
			scheduler.WithInterval(cfg.Scheduler.Interval),
			scheduler.WithLease(cfg.Scheduler.Lease),
		)
		go func() {
			defer close(schedulerDone)
			sch.Run(ctx)
		}()
	} else {
		close(schedulerDone)
	}

	logger.Info().Msg("catalog feed importer up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumers and scheduler to finish
	<-conn.Done()
	<-schedulerDone

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := conn.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close RabbitMQ channel")
		}
		if err := amqpConnection.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	if redisClient != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := redisClient.Close(); err != nil {
				logger.Error().
					Err(err).
					Msg("can't close Redis connection")
			}
		}()
	}

	if producer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := producer.Close(); err != nil {
				logger.Error().
					Err(err).
					Msg("can't close Kafka producer")
			}
		}()
	}

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
