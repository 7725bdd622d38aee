package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/LogiBoard/internal/broker"
	kafkabroker "github.com/Egor213/LogiBoard/internal/broker/kafka"
	"github.com/Egor213/LogiBoard/internal/config"
	grpcv1 "github.com/Egor213/LogiBoard/internal/controller/grpc/v1"
	httpv1 "github.com/Egor213/LogiBoard/internal/controller/http/v1"
	"github.com/Egor213/LogiBoard/internal/metrics"
	"github.com/Egor213/LogiBoard/internal/repo"
	"github.com/Egor213/LogiBoard/internal/repo/webapi"
	"github.com/Egor213/LogiBoard/internal/service"
	errorsUtils "github.com/Egor213/LogiBoard/pkg/errors"
	"github.com/Egor213/LogiBoard/pkg/grpcserver"
	"github.com/Egor213/LogiBoard/pkg/httpserver"
	"github.com/Egor213/LogiBoard/pkg/logger"
	"github.com/Egor213/LogiBoard/pkg/postgres"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

const dashboardRefreshSeconds = 5

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.Setup(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	log.Info("Logger has been set up")

	// Log service client
	log.Infof("Using log service at %s", cfg.Upstream.BaseURL)
	api, err := webapi.New(cfg.Upstream.BaseURL,
		webapi.WithTimeout(cfg.Upstream.Timeout),
		webapi.WithRateLimit(cfg.Upstream.RateLimit),
		webapi.WithRetry(cfg.Upstream.RetryAttempts, cfg.Upstream.RetryDelay),
	)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Alert journal
	var pg *postgres.Postgres
	if cfg.PG.Enabled {
		Migrate(cfg.PG.URL)

		log.Info("Connecting to DB")
		pg, err = postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
		if err != nil {
			log.Fatal(errorsUtils.WrapPathErr(err))
		}
		defer pg.Close()
		log.Info("Connected to DB")
	} else {
		log.Info("Postgres is disabled, alert journal is kept in memory")
	}

	// Repos
	repositories := repo.NewRepositories(api, pg)

	// Producer
	var producer broker.Producer = broker.Nop{}
	if cfg.Kafka.Enabled {
		kafkaProducer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer func() {
			if err := kafkaProducer.Close(); err != nil {
				log.Error(errorsUtils.WrapPathErr(err))
			}
		}()
		producer = kafkaProducer
	}

	// Services
	metricsCnt := metrics.New()
	health := grpcv1.NewHealthController()
	deps := service.ServicesDependencies{
		Repos:    repositories,
		Producer: producer,
		Counters: metricsCnt,
		Upstream: health,
		Dashboard: service.DashboardConfig{
			LogsInterval:    cfg.Polling.LogsInterval,
			MetricsInterval: cfg.Polling.MetricsInterval,
			AlertsInterval:  cfg.Polling.AlertsInterval,
			IdleTimeout:     cfg.Polling.IdleTimeout,
			RecentLimit:     cfg.Polling.RecentLimit,
			FilterLimit:     cfg.Polling.FilterLimit,
		},
	}
	services := service.NewServices(deps)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	services.Dashboard.Start(ctx)
	log.Info("Polling started")

	// Dashboard server
	log.Infof("Starting dashboard server...")
	log.Debugf("Dashboard server port: %s", cfg.HTTP.Port)
	handler := echo.New()
	handler.HideBanner = true
	err = httpv1.ConfigureRouter(handler, services, httpv1.RouterConfig{
		RefreshSeconds: dashboardRefreshSeconds,
	})
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	httpServer, err := httpserver.New(handler, httpserver.Port(cfg.HTTP.Port))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// gRPC Server
	log.Infof("Starting gRPC server...")
	log.Debugf("gRPC server port: %s", cfg.GRPC.Port)
	grpcServer, err := grpcserver.New(grpcv1.RegisterServices(health), grpcserver.WithPort(cfg.GRPC.Port))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Metrics server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metricsHandler.HideBanner = true
	metrics.ConfigureRouter(metricsHandler, nil)
	metricsServer, err := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	log.Info("Configuring graceful shutdown...")

	// Waiting signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info(errorsUtils.WrapPathErr(errors.New(s.String())))
	case err := <-httpServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-grpcServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	shutdownApp(httpServer, metricsServer, grpcServer, health, services)
}

func shutdownApp(
	httpServer, metricsServer *httpserver.Server,
	grpcServer *grpcserver.Server,
	health *grpcv1.HealthController,
	services *service.Services,
) {
	log.Info("Shutting down...")
	for _, s := range []*httpserver.Server{httpServer, metricsServer} {
		if err := s.Shutdown(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}
	health.Shutdown()
	grpcServer.Shutdown()
	services.Dashboard.Stop()
	log.Info("Polling stopped")
}
