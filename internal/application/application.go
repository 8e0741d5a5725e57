package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"fdrates/internal/config"
	"fdrates/internal/domain/entity"
	"fdrates/internal/domain/service/ingest"
	"fdrates/internal/domain/service/rates"
	"fdrates/internal/domain/service/status"
	"fdrates/internal/infrastructure/feed"
	"fdrates/internal/infrastructure/notifier"
	"fdrates/internal/infrastructure/persistence"
	"fdrates/internal/server"
	"fdrates/internal/transport/bot"
	"fdrates/internal/worker"
	"fdrates/pkg/application/connectors"
	"fdrates/pkg/application/modules"
	"fdrates/pkg/logx"
	"fdrates/pkg/middlewarex"
)

const (
	appName = "fdrates"

	feedTimeout    = 30 * time.Second
	logFieldMaxLen = 4096
	alertBuffer    = 100
)

func Run(ctx context.Context, log *slog.Logger, cancel context.CancelFunc) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	// 2. Database
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	log.Info("database connection OK")

	// 3. Redis
	rd := &connectors.Redis{
		Address:            cfg.Redis.Address,
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	redisClient := rd.Client(ctx)
	defer rd.Close(ctx)

	// 4. Repositories
	quoteRepo := persistence.NewRateQuoteRepository(db)
	runRepo := persistence.NewRunLogRepository(db)
	fingerprints := persistence.NewFingerprintStore(redisClient, cfg.Ingest.FingerprintTTL)

	// 5. Services
	feedClient := feed.NewClient(cfg.Ingest.FeedBaseURL, cfg.Ingest.FeedBearerToken, feedTimeout)

	ingestSvc := ingest.NewService(feedClient, quoteRepo, runRepo, fingerprints)
	ratesSvc := rates.NewService(quoteRepo)
	statusSvc := status.NewService(runRepo, cfg.Ingest.StatusCacheTTL)

	// 6. Alert + command bots (опционально)
	if cfg.Bot.Token != "" {
		alerts := make(chan entity.RateAlert, alertBuffer)
		ingestSvc.WithAlerts(alerts)

		alertBot, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID)
		if err != nil {
			return fmt.Errorf("notifier bot: %w", err)
		}

		// Стартовый пинг сразу показывает, что токен и chat id рабочие
		if err := alertBot.SendText(ctx, "🚀 fdrates started, rate alerts enabled"); err != nil {
			log.Error("bot startup ping failed, check token and chat id", "error", err)
		}

		go func() {
			log.Info("notifier bot started listening")
			if err := alertBot.Run(ctx, alerts); err != nil && ctx.Err() == nil {
				log.Error("notifier bot stopped", "error", err)
			}
		}()

		commandBot, err := bot.New(cfg.Bot, statusSvc, ingestSvc)
		if err != nil {
			return fmt.Errorf("command bot: %w", err)
		}

		go func() {
			if err := commandBot.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error("command bot stopped", "error", err)
				cancel()
			}
		}()
	}

	// 7. Task queue
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Address,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DatabaseNumber,
	}

	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()

	taskHandler := worker.NewTaskHandler(ingestSvc)

	refresher := worker.NewRefresher(asynqClient, cfg.Ingest.RefreshInterval)
	if err := refresher.Start(ctx); err != nil {
		return fmt.Errorf("refresher start: %w", err)
	}
	defer refresher.Stop()

	// 8. HTTP
	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	srv := server.NewServer(
		server.NewRatesServer(ratesSvc),
		server.NewStatusServer(statusSvc, asynqClient),
	)
	srv.RegisterRoutes(router)

	g, gCtx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(gCtx, g, &http.Server{
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	})

	modules.MetricServer{ListenAddress: cfg.HTTP.MetricListenAddress}.Run(gCtx, g)

	modules.ProbeServer{
		Name:          appName,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
	}.Run(gCtx, g)

	modules.AsynqServer{
		RedisUsername: cfg.Redis.Username,
		RedisPassword: cfg.Redis.Password,
		RedisAddress:  cfg.Redis.Address,
		RedisDB:       cfg.Redis.DatabaseNumber,
	}.Run(gCtx, g,
		modules.AsynqQueues{"default": 1},
		modules.AsynqHandler{Pattern: worker.TypeFeedRefresh, Handle: taskHandler.HandleFeedRefresh},
	)

	log.Info("application started", "sources", len(feed.Registry()))

	return g.Wait()
}
