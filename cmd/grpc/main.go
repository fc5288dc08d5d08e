package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	clinicv1 "github.com/fekuna/omnipos-clinic-service/api/clinicv1"
	"github.com/fekuna/omnipos-clinic-service/config"
	"github.com/fekuna/omnipos-clinic-service/internal/blobsync"
	"github.com/fekuna/omnipos-clinic-service/internal/inventory"
	"github.com/fekuna/omnipos-clinic-service/internal/order"
	"github.com/fekuna/omnipos-clinic-service/internal/state"
	stateRepoPkg "github.com/fekuna/omnipos-clinic-service/internal/state/repository"
	"github.com/fekuna/omnipos-clinic-service/pkg/broker"
	"github.com/fekuna/omnipos-clinic-service/pkg/cache"
	"github.com/fekuna/omnipos-clinic-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-clinic-service/pkg/database/sqlite"
	"github.com/fekuna/omnipos-clinic-service/pkg/i18n"
	"github.com/fekuna/omnipos-clinic-service/pkg/logger"
	"github.com/fekuna/omnipos-clinic-service/pkg/metrics"
	"github.com/fekuna/omnipos-clinic-service/pkg/middleware"
	"github.com/fekuna/omnipos-clinic-service/pkg/search"

	authH "github.com/fekuna/omnipos-clinic-service/internal/auth/handler"
	authUCPkg "github.com/fekuna/omnipos-clinic-service/internal/auth/usecase"

	userH "github.com/fekuna/omnipos-clinic-service/internal/user/handler"
	userUCPkg "github.com/fekuna/omnipos-clinic-service/internal/user/usecase"

	invH "github.com/fekuna/omnipos-clinic-service/internal/inventory/handler"
	invListenerPkg "github.com/fekuna/omnipos-clinic-service/internal/inventory/listener"
	invRepoPkg "github.com/fekuna/omnipos-clinic-service/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-clinic-service/internal/inventory/usecase"

	orderH "github.com/fekuna/omnipos-clinic-service/internal/order/handler"
	orderUCPkg "github.com/fekuna/omnipos-clinic-service/internal/order/usecase"

	prefH "github.com/fekuna/omnipos-clinic-service/internal/preference/handler"
	prefUCPkg "github.com/fekuna/omnipos-clinic-service/internal/preference/usecase"

	syncH "github.com/fekuna/omnipos-clinic-service/internal/blobsync/handler"
	syncRepoPkg "github.com/fekuna/omnipos-clinic-service/internal/blobsync/repository"
	syncUCPkg "github.com/fekuna/omnipos-clinic-service/internal/blobsync/usecase"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// 2. Initialize i18n and Logger
	i18n.Init()

	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.IsDevelopment() {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Fatal("service stopped with error", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

func run(cfg *config.Config, appLogger logger.ZapLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// 4. Redis (stock lock and optional state backend)
	var redisClient *cache.RedisClient
	if cfg.Redis.Enabled || cfg.State.Driver == config.StateRedis {
		var err error
		redisClient, err = cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5. State repository
	stateRepo, closeState, err := openStateRepository(ctx, cfg, redisClient)
	if err != nil {
		return err
	}
	defer closeState()
	appLogger.Info("State repository ready", zap.String("driver", cfg.State.Driver))

	// 6. Elasticsearch
	var itemSearch inventory.SearchRepository
	if cfg.Elastic.Enabled {
		esClient, err := search.NewClient(&search.Config{
			Addresses: cfg.Elastic.Addresses,
			Username:  cfg.Elastic.Username,
			Password:  cfg.Elastic.Password,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Elasticsearch, item search stays in memory", zap.Error(err))
		} else {
			itemSearch = invRepoPkg.NewElasticRepository(esClient)
			appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
		}
	}

	// 7. Kafka producer
	var publisher order.EventPublisher
	if cfg.Kafka.Enabled {
		producer := broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer producer.Close()
		publisher = producer
	}

	// 8. Initialize UseCases
	var locker inventory.Locker
	if redisClient != nil {
		locker = redisClient
	}

	userUC, err := userUCPkg.NewUserUseCase(stateRepo, cfg.Auth.BcryptCost, appLogger)
	if err != nil {
		return fmt.Errorf("init user directory: %w", err)
	}
	authUC, err := authUCPkg.NewAuthUseCase(stateRepo, userUC, authUCPkg.Config{
		DemoPassword: cfg.Auth.DemoPassword,
		BcryptCost:   cfg.Auth.BcryptCost,
	}, appMetrics, appLogger)
	if err != nil {
		return fmt.Errorf("init auth: %w", err)
	}
	invUC := invUCPkg.NewInventoryUseCase(stateRepo, locker, itemSearch, appMetrics, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(stateRepo, publisher, appMetrics, appLogger)
	prefUC := prefUCPkg.NewPreferenceUseCase(stateRepo, appLogger)
	syncUC := syncUCPkg.NewSyncUseCase(stateRepo, newSyncClient(cfg), invUC, appMetrics, appLogger)
	defer syncUC.Close()

	stores := []state.Saveable{userUC, authUC, invUC, orderUC, prefUC, syncUC}
	loaders := []interface{ Load(context.Context) error }{userUC, authUC, invUC, orderUC, prefUC, syncUC}
	for i, l := range loaders {
		if err := l.Load(ctx); err != nil {
			return fmt.Errorf("load %s: %w", stores[i].Name(), err)
		}
	}

	// 9. Initialize Handlers
	authHandler := authH.NewAuthHandler(authUC, appLogger)
	userHandler := userH.NewUserHandler(userUC, authUC, appLogger)
	invHandler := invH.NewInventoryHandler(invUC, authUC, appLogger)
	orderHandler := orderH.NewOrderHandler(orderUC, invUC, authUC, appLogger)
	prefHandler := prefH.NewPreferenceHandler(prefUC, appLogger)
	syncHandler := syncH.NewSyncHandler(syncUC, authUC, appLogger)

	// 10. gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	lis, err := net.Listen("tcp", port)
	if err != nil {
		return fmt.Errorf("listen %s: %w", port, err)
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(middleware.ContextInterceptor()),
	)
	clinicv1.RegisterAuthServiceServer(grpcServer, authHandler)
	clinicv1.RegisterUserServiceServer(grpcServer, userHandler)
	clinicv1.RegisterInventoryServiceServer(grpcServer, invHandler)
	clinicv1.RegisterOrderServiceServer(grpcServer, orderHandler)
	clinicv1.RegisterPreferenceServiceServer(grpcServer, prefHandler)
	clinicv1.RegisterSyncServiceServer(grpcServer, syncHandler)
	reflection.Register(grpcServer)

	metricsServer := &http.Server{
		Addr:              cfg.Metrics.Port,
		Handler:           promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// The autosaver outlives the request context so it can flush what the
	// last in-flight requests changed.
	saverCtx, stopSaver := context.WithCancel(context.Background())
	autosaver := state.NewAutosaver(time.Duration(cfg.State.AutosaveInterval)*time.Second, appMetrics, appLogger, stores...)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("Starting gRPC server", zap.String("port", port))
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		appLogger.Info("Starting metrics server", zap.String("addr", cfg.Metrics.Port))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	saverDone := make(chan struct{})
	g.Go(func() error {
		defer close(saverDone)
		autosaver.Start(saverCtx)
		return nil
	})

	if cfg.Kafka.Enabled {
		consumer := broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer consumer.Close()
		invListener := invListenerPkg.NewInventoryListener(consumer, invUC, appLogger)
		g.Go(func() error {
			invListener.Start(gctx)
			return nil
		})
		appLogger.Info("Inventory listener subscribed", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	// Graceful Shutdown
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		grpcServer.GracefulStop()
		syncUC.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			appLogger.Warn("metrics server shutdown", zap.Error(err))
		}

		stopSaver()
		<-saverDone
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func openStateRepository(ctx context.Context, cfg *config.Config, redisClient *cache.RedisClient) (state.Repository, func(), error) {
	noop := func() {}
	switch cfg.State.Driver {
	case config.StateMemory:
		return stateRepoPkg.NewMemoryRepository(), noop, nil
	case config.StateRedis:
		return stateRepoPkg.NewRedisRepository(redisClient), noop, nil
	case config.StatePostgres:
		db, err := postgres.NewPostgres(&postgres.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("connect postgres: %w", err)
		}
		repo := stateRepoPkg.NewSQLRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("migrate postgres: %w", err)
		}
		return repo, func() { db.Close() }, nil
	default:
		db, err := sqlite.NewSQLite(cfg.SQLite.Path)
		if err != nil {
			return nil, noop, fmt.Errorf("open sqlite: %w", err)
		}
		repo := stateRepoPkg.NewSQLRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("migrate sqlite: %w", err)
		}
		return repo, func() { db.Close() }, nil
	}
}

func newSyncClient(cfg *config.Config) blobsync.Client {
	if cfg.Sync.Driver == "memory" {
		return syncRepoPkg.NewMemoryClient()
	}
	return syncRepoPkg.NewS3Client(syncRepoPkg.S3Config{
		Region:    cfg.Sync.Region,
		Endpoint:  cfg.Sync.Endpoint,
		PathStyle: cfg.Sync.PathStyle,
	})
}
