package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/config"
	"github.com/wyfcoding/pkg/database"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/messagequeue/kafka"
	"github.com/wyfcoding/pkg/messagequeue/outbox"
	"github.com/wyfcoding/pkg/metrics"
	"golang.org/x/sync/errgroup"

	"github.com/openquant/derivativepricing/internal/instrument/application"
	"github.com/openquant/derivativepricing/internal/instrument/domain"
	"github.com/openquant/derivativepricing/internal/instrument/infrastructure/messaging"
	"github.com/openquant/derivativepricing/internal/instrument/infrastructure/persistence/mysql"
	instrconsumer "github.com/openquant/derivativepricing/internal/instrument/interfaces/consumer"
	httpserver "github.com/openquant/derivativepricing/internal/instrument/interfaces/http"
	pricing "github.com/openquant/derivativepricing/internal/pricing/domain"
)

var configPath = flag.String("config", "configs/instrument/config.toml", "config file path")

func main() {
	flag.Parse()

	// 1. Config
	var cfg config.Config
	if err := config.Load(*configPath, &cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 2. Logger
	logCfg := &logging.Config{Service: cfg.Server.Name, Level: cfg.Log.Level}
	logger := logging.NewFromConfig(logCfg)
	slog.SetDefault(logger.Logger)

	// 3. Metrics
	metricsImpl := metrics.NewMetrics(cfg.Server.Name)
	if cfg.Metrics.Enabled {
		go metricsImpl.ExposeHTTP(cfg.Metrics.Port)
	}

	// 4. Infrastructure
	db, err := database.NewDB(cfg.Data.Database, cfg.CircuitBreaker, logger, metricsImpl)
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}

	if cfg.Server.Environment == "dev" {
		if err := db.RawDB().AutoMigrate(&mysql.PricingResultModel{}, &mysql.QuoteModel{}, &mysql.CatalogEntryModel{}, &outbox.Message{}); err != nil {
			slog.Error("failed to migrate database", "error", err)
		}
	}

	// 5. Kafka & Outbox
	kafkaProducer := kafka.NewProducer(&cfg.MessageQueue.Kafka, logger, metricsImpl)
	outboxMgr := outbox.NewManager(db.RawDB(), logger.Logger)
	pusher := func(ctx context.Context, topic, key string, payload []byte) error {
		return kafkaProducer.PublishToTopic(ctx, topic, []byte(key), payload)
	}
	outboxProcessor := outbox.NewProcessor(outboxMgr, pusher, 100, 2*time.Second)

	// 6. Model catalog
	if err := mysql.SeedDefaultCatalog(context.Background(), db.RawDB()); err != nil {
		slog.Error("failed to seed model catalog", "error", err)
		os.Exit(1)
	}
	catalog, err := mysql.LoadCatalog(context.Background(), db.RawDB())
	if err != nil {
		slog.Error("failed to load model catalog", "error", err)
		os.Exit(1)
	}

	// 7. Repositories
	resultRepo := mysql.NewPricingResultRepository(db.RawDB())
	quoteRepo := mysql.NewQuoteRepository(db.RawDB())
	publisher := messaging.NewOutboxPublisher(outboxMgr)

	// 8. Domain services
	factory := pricing.NewFactory(catalog)
	binder := domain.NewEngineBinder(catalog, factory)

	// 9. Application
	commandSvc := application.NewInstrumentCommandService(binder, resultRepo, publisher)
	querySvc := application.NewInstrumentQueryService(binder, resultRepo, quoteRepo)
	projectionSvc := application.NewInstrumentProjectionService(quoteRepo, logger.Logger)

	projectionHandler := instrconsumer.NewQuoteProjectionHandler(projectionSvc, logger.Logger)
	consumerCfg := cfg.MessageQueue.Kafka
	consumerCfg.Topic = domain.QuoteUpdatedEventType
	if consumerCfg.GroupID == "" {
		consumerCfg.GroupID = "instrument-projection-group"
	}
	quoteConsumer := kafka.NewConsumer(&consumerCfg, logger, metricsImpl)
	quoteConsumer.Start(context.Background(), 3, projectionHandler.Handle)

	// 10. Interfaces
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

	httpHandler := httpserver.NewInstrumentHandler(commandSvc, querySvc)
	httpHandler.RegisterRoutes(r)

	// 11. Start
	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		outboxProcessor.Start()
		<-ctx.Done()
		outboxProcessor.Stop()
		return nil
	})

	g.Go(func() error {
		addr := fmt.Sprintf(":%d", cfg.Server.HTTP.Port)
		server := &http.Server{Addr: addr, Handler: r}
		slog.Info("HTTP server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
			slog.Info("shutting down servers...")
		case <-ctx.Done():
			slog.Info("context cancelled, shutting down...")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited with error", "error", err)
	}
}
