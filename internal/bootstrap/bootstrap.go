package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"upline-server/internal/auth"
	kafkaClient "upline-server/internal/clients/kafka"
	redisClient "upline-server/internal/clients/redis"
	commissionHandler "upline-server/internal/commission/handler"
	commissionProcessor "upline-server/internal/commission/processor"
	"upline-server/internal/config"
	"upline-server/internal/events"
	"upline-server/internal/events/consumers"
	"upline-server/internal/jobs"
	"upline-server/internal/jobs/workers"
	"upline-server/internal/leaderboard"
	"upline-server/internal/observability"
	"upline-server/internal/store"
	teamrankHandler "upline-server/internal/teamrank/handler"
	teamrankProcessor "upline-server/internal/teamrank/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	CommissionHandler  commissionHandler.Handler
	TeamRankHandler    teamrankHandler.Handler
	LeaderboardHandler leaderboard.Handler
	AuthMiddleware     auth.Middleware

	// Engines
	CommissionProcessor commissionProcessor.CommissionProcessor
	TeamRankProcessor   teamrankProcessor.TeamRankProcessor

	// Event infrastructure
	Publisher          *events.Publisher
	CommissionConsumer *consumers.CommissionConsumer
	TeamConsumer       *consumers.TeamConsumer
	RetryWorker        *workers.RetryWorker

	// Clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	RedisClient   *redisClient.Client
	JobClient     *jobs.Client

	kafkaConsumers []*kafkaClient.Consumer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize Redis (leaderboard + asynq broker)
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	leaderboardService := leaderboard.New(deps.RedisClient, logger)
	deps.LeaderboardHandler = leaderboard.NewHandler(leaderboardService, logger)

	// Initialize Kafka producer and event publisher
	brokerList := strings.Split(cfg.Kafka.Brokers, ",")
	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: brokerList,
		Topic:   cfg.Kafka.Topic,
	}, logger)
	deps.Publisher = events.NewPublisher(deps.KafkaProducer, logger)

	// Initialize job queue client
	deps.JobClient = jobs.NewClient(cfg.Redis.RedisAddr(), logger)

	// Initialize the commission distributor. With Redis disabled the
	// processor gets no board at all rather than one that fails every
	// increment.
	var earningsBoard commissionProcessor.EarningsBoard
	if deps.RedisClient.IsEnabled() {
		earningsBoard = leaderboardService
	}
	deps.CommissionProcessor = commissionProcessor.New(&deps.Store, earningsBoard, logger)
	deps.CommissionHandler = commissionHandler.New(deps.CommissionProcessor, &deps.Store, deps.Publisher, logger)

	// Initialize the team propagation and rank engine
	deps.TeamRankProcessor = teamrankProcessor.New(&deps.Store, logger)
	deps.TeamRankHandler = teamrankHandler.New(deps.TeamRankProcessor, &deps.Store, deps.Publisher, logger)

	// Initialize auth middleware
	deps.AuthMiddleware = auth.NewMiddleware(cfg.Auth.JWTSecret, logger)

	// Initialize event consumers, one consumer group per engine so each
	// engine sees every event on the topic
	commissionKafkaConsumer := kafkaClient.NewConsumer(kafkaClient.ConsumerConfig{
		Brokers: brokerList,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.ConsumerGroup + "-commission",
	}, logger)
	teamKafkaConsumer := kafkaClient.NewConsumer(kafkaClient.ConsumerConfig{
		Brokers: brokerList,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.ConsumerGroup + "-team",
	}, logger)
	deps.kafkaConsumers = []*kafkaClient.Consumer{commissionKafkaConsumer, teamKafkaConsumer}

	deps.CommissionConsumer = consumers.NewCommissionConsumer(
		commissionKafkaConsumer,
		deps.CommissionProcessor,
		deps.JobClient,
		logger,
		cfg.Workers.CommissionWorkers,
	)
	deps.TeamConsumer = consumers.NewTeamConsumer(
		teamKafkaConsumer,
		deps.TeamRankProcessor,
		deps.JobClient,
		logger,
		cfg.Workers.TeamWorkers,
	)

	// Initialize the asynq retry worker
	deps.RetryWorker = workers.NewRetryWorker(
		deps.CommissionProcessor,
		deps.TeamRankProcessor,
		deps.JobClient,
		logger,
	)

	return deps, nil
}

// Cleanup releases all held connections
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	for _, consumer := range d.kafkaConsumers {
		if err := consumer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka consumer", err)
		}
	}
	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close job client", err)
		}
	}
	if err := d.RedisClient.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis client", err)
	}
}
