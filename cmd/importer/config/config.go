package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string        `env:"DATABASE_URL"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	RunStaleAfter time.Duration `env:"RUN_STALE_AFTER" envDefault:"2h"`
	MaxAttempts   int           `env:"MAX_JOB_ATTEMPTS" envDefault:"3"`

	HTTP      HTTP
	Resolver  Resolver
	Images    Images
	RabbitMQ  RabbitMQ
	Redis     Redis
	Kafka     Kafka
	Scheduler Scheduler
}

// HTTP holds feed and image fetching configuration.
type HTTP struct {
	Timeout         time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	ImageTimeout    time.Duration `env:"IMAGE_TIMEOUT" envDefault:"10s"`
	DownloadRetries int           `env:"DOWNLOAD_RETRIES" envDefault:"3"`
	UserAgent       string        `env:"USER_AGENT" envDefault:"catalog-feed-importer/0.1.0"`
}

// Resolver holds entity resolver configuration.
type Resolver struct {
	CacheTTL time.Duration `env:"MATCH_CACHE_TTL" envDefault:"1h"`
}

// Images holds image synchronizer configuration.
type Images struct {
	Concurrency int `env:"IMAGE_FETCH_CONCURRENCY" envDefault:"4"`
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL              string `env:"RABBITMQ_URL"`
	Exchange         string `env:"RABBITMQ_EXCHANGE" envDefault:"cfi-ex"`
	FeedQueue        string `env:"RABBITMQ_FEED_QUEUE" envDefault:"catalog-feed-importer.feeds"`
	ImagesQueue      string `env:"RABBITMQ_IMAGES_QUEUE" envDefault:"catalog-feed-importer.images"`
	FeedRoutingKey   string `env:"RABBITMQ_FEED_ROUTING_KEY" envDefault:"feeds.process"`
	ImagesRoutingKey string `env:"RABBITMQ_IMAGES_ROUTING_KEY" envDefault:"images.sync"`
	Prefetch         int    `env:"RABBITMQ_PREFETCH" envDefault:"1"`
}

// Redis holds resolver cache configuration. Empty address means in-process cache.
type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Kafka holds report events configuration. No brokers means events are disabled.
type Kafka struct {
	Brokers      []string `env:"KAFKA_BROKERS" envSeparator:","`
	ReportsTopic string   `env:"KAFKA_REPORTS_TOPIC" envDefault:"catalog-feed-importer.reports"`
}

// Scheduler holds run scheduler configuration.
type Scheduler struct {
	Enabled  bool          `env:"SCHEDULER_ENABLED" envDefault:"false"`
	Interval time.Duration `env:"SCHEDULER_INTERVAL" envDefault:"1m"`
	Lease    time.Duration `env:"SCHEDULER_LEASE" envDefault:"1h"`
}
