package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dsc-protocol/dsc-indexer/internal/adapter"
	"github.com/dsc-protocol/dsc-indexer/internal/audit"
	"github.com/dsc-protocol/dsc-indexer/internal/block"
	"github.com/dsc-protocol/dsc-indexer/internal/config"
	"github.com/dsc-protocol/dsc-indexer/internal/indexer"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
	"github.com/dsc-protocol/dsc-indexer/internal/providers/ethereum"
	"github.com/dsc-protocol/dsc-indexer/internal/providers/temporal"
	"github.com/dsc-protocol/dsc-indexer/internal/store"
	"github.com/dsc-protocol/dsc-indexer/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerCoreConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "worker-core",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Worker Core")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Backfills only read history so plain RPC is enough
	ethDialer := adapter.NewEthClientDialer()
	adapterEthClient, err := ethDialer.Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial Ethereum RPC", zap.Error(err), zap.String("rpc_url", cfg.Ethereum.RPCURL))
	}
	defer adapterEthClient.Close()

	blockProvider := block.NewBlockProvider(
		ethereum.NewEthereumBlockFetcher(adapterEthClient),
		block.Config{
			TTL:               cfg.Ethereum.BlockHeadTTL,
			StaleWindow:       cfg.Ethereum.BlockHeadStale,
			BlockTimestampTTL: cfg.Ethereum.BlockTimestampTTL,
		},
		clockAdapter,
	)

	ethereumClient := ethereum.NewClient(ethereum.ClientConfig{
		ChainID: cfg.Ethereum.ChainID,
		Contracts: ethereum.Contracts{
			DSC:    common.HexToAddress(cfg.Ethereum.DSCAddress),
			Engine: common.HexToAddress(cfg.Ethereum.EngineAddress),
		},
		LogPageSize:      cfg.Ethereum.LogPageSize,
		TimestampWorkers: cfg.Worker.WorkerPoolSize,
	}, adapterEthClient, blockProvider)
	logger.InfoCtx(ctx, "Connected to Ethereum RPC", zap.String("rpc_url", cfg.Ethereum.RPCURL))

	processor := indexer.NewProcessor(dataStore, adapter.NewJCS(jsonAdapter), indexer.Config{
		NewUserCutoff: indexer.NewUserCutoff(cfg.Indexer.NewUserCutoff),
	})
	auditor := audit.NewAuditor(dataStore, cfg.Worker.WorkerPoolSize)

	executor := workflows.NewExecutor(ethereumClient, processor, auditor, adapter.NewActivity())

	// Connect to Temporal with logger integration
	temporalLogger := temporal.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal",
		zap.String("host_port", cfg.Temporal.HostPort),
		zap.String("namespace", cfg.Temporal.Namespace),
	)

	temporalWorker := worker.New(temporalClient,
		cfg.Temporal.TaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
			Interceptors: []interceptor.WorkerInterceptor{
				temporal.NewSentryActivityInterceptor(),
			},
		})

	workerCore := workflows.NewWorkerCore(executor, workflows.WorkerCoreConfig{
		EthereumChainID: cfg.Ethereum.ChainID,
	})

	// Register workflows
	temporalWorker.RegisterWorkflow(workerCore.IndexBlockRange)
	temporalWorker.RegisterWorkflow(workerCore.AuditProtocolStats)
	logger.InfoCtx(ctx, "Registered workflows")

	// Register activities
	temporalWorker.RegisterActivity(executor.GetLatestBlock)
	temporalWorker.RegisterActivity(executor.FetchProtocolEvents)
	temporalWorker.RegisterActivity(executor.ApplyProtocolEvents)
	temporalWorker.RegisterActivity(executor.AuditProtocolTotals)
	temporalWorker.RegisterActivity(executor.AuditMonthlyStats)
	logger.InfoCtx(ctx, "Registered activities")

	err = temporalWorker.Start()
	if err != nil {
		logger.FatalCtx(ctx, "Failed to start Temporal worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker Core started", zap.String("task_queue", cfg.Temporal.TaskQueue))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.InfoCtx(ctx, "Shutting down Worker Core...")
	temporalWorker.Stop()
	logger.Info("Worker Core stopped")
}
