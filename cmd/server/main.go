package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/rl1809/product-factory/internal/adapter/handler"
	"github.com/rl1809/product-factory/internal/adapter/handler/pb"
	"github.com/rl1809/product-factory/internal/adapter/notify"
	"github.com/rl1809/product-factory/internal/config"
	"github.com/rl1809/product-factory/internal/core/domain"
	"github.com/rl1809/product-factory/internal/core/service"
	"github.com/rl1809/product-factory/internal/logging"
	"github.com/rl1809/product-factory/internal/port"
)

const serviceName = "product-factory"

func main() {
	cmd := &cli.Command{
		Name:  serviceName,
		Usage: "Serve the product catalog over gRPC and HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "Path to a YAML config file", Sources: cli.EnvVars("FACTORY_CONFIG")},
			&cli.StringFlag{Name: "http-addr", Usage: "HTTP listen address", Sources: cli.EnvVars("HTTP_ADDR")},
			&cli.StringFlag{Name: "grpc-addr", Usage: "gRPC listen address", Sources: cli.EnvVars("GRPC_ADDR")},
			&cli.StringFlag{Name: "redis-addr", Usage: "Redis address for registration notices", Sources: cli.EnvVars("REDIS_ADDR")},
			&cli.BoolFlag{Name: "no-redis", Usage: "Disable registration notices"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error", Sources: cli.EnvVars("LOG_LEVEL")},
			&cli.IntFlag{Name: "workers", Usage: "Number of notice publisher workers"},
			&cli.BoolFlag{Name: "strict", Usage: "Reject products that fail validation"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			return run(ctx, cfg)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Command) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return config.Config{}, err
	}

	if c.IsSet("http-addr") {
		cfg.HTTPAddr = c.String("http-addr")
	}
	if c.IsSet("grpc-addr") {
		cfg.GRPCAddr = c.String("grpc-addr")
	}
	if c.IsSet("redis-addr") {
		cfg.Redis.Addr = c.String("redis-addr")
	}
	if c.Bool("no-redis") {
		cfg.Redis.Enabled = false
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("workers") {
		cfg.Workers = int(c.Int("workers"))
	}
	if c.IsSet("strict") {
		cfg.StrictValidation = c.Bool("strict")
	}

	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg config.Config) error {
	logger, err := logging.New(cfg.LogLevel, serviceName)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Registration notices
	var (
		publisher port.NoticePublisher = logPublisher{logger: logger}
		rdb       *redis.Client
	)
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal("failed to connect redis", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		logger.Info("connected to redis", zap.String("addr", cfg.Redis.Addr))
		publisher = notify.NewRedisPublisher(rdb, cfg.Redis.Channel)
	}

	registry := service.NewInventoryRegistry(logger, cfg.QueueSize)
	catalog := service.NewCatalogService(registry,
		service.WithLogger(logger),
		service.WithStrictValidation(cfg.StrictValidation))

	// Start worker pool
	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			service.RunNoticeWorker(id, registry.Notices(), publisher, logger)
		}(i)
	}
	logger.Info("started notice workers", zap.Int("count", cfg.Workers))

	// gRPC server
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(handler.LoggingInterceptor(logger)))
	pb.RegisterCatalogServiceServer(grpcServer, handler.NewGRPCHandler(catalog))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}

	// HTTP server
	httpHandler := handler.NewHTTPHandler(catalog, logger, cfg.RateLimit, cfg.RateBurst)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpHandler.Routes(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP shutdown failed", zap.Error(err))
		}
		logger.Info("HTTP server stopped")

		healthServer.Shutdown()
		grpcServer.GracefulStop()
		logger.Info("gRPC server stopped")
		return nil
	})

	err = g.Wait()

	// Close notice queue and wait for workers
	registry.Close()
	wg.Wait()
	logger.Info("workers stopped")

	if rdb != nil {
		rdb.Close()
	}
	logger.Info("connections closed")

	return err
}

// logPublisher stands in for Redis when notices are disabled.
type logPublisher struct {
	logger *zap.Logger
}

func (p logPublisher) Publish(ctx context.Context, notice domain.RegistrationNotice) error {
	p.logger.Debug("registration notice",
		zap.String("notice_id", notice.ID),
		zap.String("product", notice.Product.Name),
		zap.Time("registered_at", notice.RegisteredAt))
	return nil
}
