package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	commitmentapp "github.com/muhammadheryan/inventory-ledger/application/commitment"
	itemapp "github.com/muhammadheryan/inventory-ledger/application/item"
	ledgerapp "github.com/muhammadheryan/inventory-ledger/application/ledger"
	locationapp "github.com/muhammadheryan/inventory-ledger/application/location"
	transferapp "github.com/muhammadheryan/inventory-ledger/application/transfer"
	"github.com/muhammadheryan/inventory-ledger/cmd/config"
	redisclient "github.com/muhammadheryan/inventory-ledger/cmd/redis"
	_ "github.com/muhammadheryan/inventory-ledger/docs"
	commitmentRepo "github.com/muhammadheryan/inventory-ledger/repository/commitment"
	itemRepo "github.com/muhammadheryan/inventory-ledger/repository/item"
	locationRepo "github.com/muhammadheryan/inventory-ledger/repository/location"
	movementRepo "github.com/muhammadheryan/inventory-ledger/repository/movement"
	redisRepo "github.com/muhammadheryan/inventory-ledger/repository/redis"
	transferRepo "github.com/muhammadheryan/inventory-ledger/repository/transfer"
	txRepo "github.com/muhammadheryan/inventory-ledger/repository/tx"
	"github.com/muhammadheryan/inventory-ledger/thirdparty/catalog"
	"github.com/muhammadheryan/inventory-ledger/thirdparty/rabbitmq"
	"github.com/muhammadheryan/inventory-ledger/transport"
	"github.com/muhammadheryan/inventory-ledger/utils/logger"
	"go.uber.org/zap"
)

// @title INVENTORY LEDGER API
// @version 1.0
// @description Append-only stock ledger with locations, transfers and checkout holds
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// RabbitMQ publisher for commitment expirations
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	// RabbitMQ consumer: expired holds and catalog deletions call back
	// into the internal REST endpoints
	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password, cfg.RabbitMQ.APIURL, cfg.RabbitMQ.APIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	defer cancelConsumer()
	if err := consumer.Start(consumerCtx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	MovementRepo := movementRepo.NewMovementRepository(db)
	ItemRepo := itemRepo.NewItemRepository(db)
	LocationRepo := locationRepo.NewLocationRepository(db)
	CommitmentRepo := commitmentRepo.NewCommitmentRepository(db)
	TransferRepo := transferRepo.NewTransferRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Catalog collaborator client
	CatalogClient := catalog.NewClient(cfg)

	// Initialize application layers
	LedgerApp := ledgerapp.NewLedgerApp(cfg, TxRepo, MovementRepo, ItemRepo, LocationRepo, RedisRepo)
	CommitmentApp := commitmentapp.NewCommitmentApp(cfg, TxRepo, MovementRepo, CommitmentRepo, ItemRepo, LocationRepo, RedisRepo, publisher)
	TransferApp := transferapp.NewTransferApp(TxRepo, TransferRepo, MovementRepo, ItemRepo, LocationRepo, RedisRepo)
	ItemApp := itemapp.NewItemApp(ItemRepo, CatalogClient)
	LocationApp := locationapp.NewLocationApp(LocationRepo)

	httpTransport := transport.NewTransport(cfg, LedgerApp, CommitmentApp, TransferApp, ItemApp, LocationApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
