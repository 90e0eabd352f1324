package apiapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Hisham6667/summer-sports-server/internal/config"
	"github.com/Hisham6667/summer-sports-server/internal/infra/httpclient"
	"github.com/Hisham6667/summer-sports-server/internal/infra/metrics"
	"github.com/Hisham6667/summer-sports-server/internal/jobs/cleanup"
	stripeinfra "github.com/Hisham6667/summer-sports-server/internal/infra/stripe"
	pgrepo "github.com/Hisham6667/summer-sports-server/internal/repo/postgres"
	redrepo "github.com/Hisham6667/summer-sports-server/internal/repo/redis"
	authsvc "github.com/Hisham6667/summer-sports-server/internal/services/auth"
	catalogsvc "github.com/Hisham6667/summer-sports-server/internal/services/catalog"
	paymentsvc "github.com/Hisham6667/summer-sports-server/internal/services/payments"
	ratesvc "github.com/Hisham6667/summer-sports-server/internal/services/rate"
	selectionsvc "github.com/Hisham6667/summer-sports-server/internal/services/selections"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	postgres   *pgxpool.Pool
	redis      *goredis.Client
	httpRouter http.Handler
	cleanupJob *cleanup.Job
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	r := chi.NewRouter()
	ApplyMiddlewares(r, log, collector)

	var pool *pgxpool.Pool
	if p, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN); err != nil {
		log.Warn("postgres init failed, continuing in degraded mode", zap.Error(err))
	} else {
		pool = p
	}
	if pool != nil && cfg.Postgres.AutoMigrate {
		if err := pgrepo.RunMigrations(cfg.Postgres.DSN); err != nil {
			log.Warn("migration run failed", zap.Error(err))
		}
	}

	redisClient := redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	rateRepo := redrepo.NewRateRepo(redisClient)

	instructorRepo := pgrepo.NewInstructorRepo(pool)
	classRepo := pgrepo.NewClassRepo(pool)
	selectionRepo := pgrepo.NewSelectionRepo(pool)
	paymentRepo := pgrepo.NewPaymentRepo(pool)

	tokenManager := authsvc.NewTokenManager(cfg.Auth.AccessTokenSecret, cfg.Auth.TokenTTL)
	tokenLimiter := ratesvc.NewLimiter(rateRepo, cfg.Limits.TokenPerMinute, cfg.Limits.TokenPer10Seconds)
	catalogService := catalogsvc.NewService(instructorRepo, classRepo)
	selectionService := selectionsvc.NewService(selectionRepo)

	var gateway paymentsvc.PaymentGateway
	if g, err := stripeinfra.NewGateway(cfg.Stripe.SecretKey, httpclient.New(cfg.Stripe.Timeout)); err != nil {
		log.Warn("stripe init failed, payment intents disabled", zap.Error(err))
	} else {
		gateway = g
	}

	var cleanupJob *cleanup.Job
	if pool != nil {
		cleanupJob = cleanup.New(selectionRepo, cfg.Cleanup.SelectionRetention, log)
	}

	paymentService := paymentsvc.NewService(paymentsvc.Dependencies{
		Pool:       pool,
		Payments:   paymentRepo,
		Selections: selectionRepo,
		Gateway:    gateway,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	RegisterRoutes(r, Dependencies{
		TokenManager:     tokenManager,
		TokenLimiter:     tokenLimiter,
		CatalogService:   catalogService,
		SelectionService: selectionService,
		PaymentService:   paymentService,
		Gatherer:         registry,
		Logger:           log,
	})

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		postgres:   pool,
		redis:      redisClient,
		httpRouter: r,
		cleanupJob: cleanupJob,
	}, nil
}

// RunCleanupLoop prunes abandoned selections until the context ends. It is
// a no-op without a database.
func (a *App) RunCleanupLoop(ctx context.Context) {
	if a.cleanupJob == nil {
		return
	}

	interval := a.cfg.Cleanup.Interval
	if interval <= 0 {
		interval = 6 * time.Hour
	}

	if err := a.cleanupJob.Run(ctx); err != nil {
		a.logger.Warn("selection cleanup failed", zap.Error(err))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.cleanupJob.Run(ctx); err != nil {
				a.logger.Warn("selection cleanup failed", zap.Error(err))
			}
		}
	}
}

func (a *App) Run() error {
	a.logger.Info("api server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	if a.postgres != nil {
		a.postgres.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
