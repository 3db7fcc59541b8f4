package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/config"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/handler"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/integration"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/middleware"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/notification"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/oracle"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/repository"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/repository/memory"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/router"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/scheduler"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/service"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/service/ports"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/storage"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/redis"
)

const (
	appName       = "hutbooker"
	migrationsDir = "migrations"
)

type stores struct {
	bookings   ports.BookingRepo
	users      ports.UserRepo
	properties ports.PropertyRepo
	sessions   ports.SessionRepo
	messages   ports.MessageRepo
}

type App struct {
	cfg *config.Config
	log logger.Logger

	db     *dbpg.DB
	cache  *redis.Client
	gemini *oracle.GeminiOracle

	stores     stores
	sweeper    *scheduler.Sweeper
	httpServer *http.Server
}

// NewLogger инициализирует логгер wbf по секции logger конфига.
func NewLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	if err := app.initStores(); err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err := app.initServices(ctx); err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStores() error {
	switch a.cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store := memory.New()
		if a.cfg.Storage.Fixtures != "" {
			if err := store.LoadFixtures(a.cfg.Storage.Fixtures); err != nil {
				return err
			}
		}
		a.stores = stores{
			bookings:   store.Bookings(),
			users:      store.Users(),
			properties: store.Properties(),
			sessions:   store.Sessions(),
			messages:   store.Messages(),
		}
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "using in-memory storage, data is lost on restart",
			logger.String("fixtures", a.cfg.Storage.Fixtures),
		)
		return nil

	case config.StorageDriverPostgres:
		if err := a.initDB(); err != nil {
			return err
		}
		a.stores = stores{
			bookings:   repository.NewBookingRepo(a.db),
			users:      repository.NewUserRepo(a.db),
			properties: repository.NewPropertyRepo(a.db),
			sessions:   repository.NewSessionRepo(a.db),
			messages:   repository.NewMessageRepo(a.db),
		}
		return nil

	default:
		return fmt.Errorf("unknown storage driver %q", a.cfg.Storage.Driver)
	}
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		_ = db.Master.Close()
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) policy() integration.Policy {
	return integration.Policy{
		Timeout:  a.cfg.Integration.Timeout,
		Strategy: a.cfg.Integration.Strategy(),
	}
}

func (a *App) initServices(ctx context.Context) error {
	policy := a.policy()

	messenger, err := a.initMessenger()
	if err != nil {
		return err
	}

	screenshots, err := a.initOracle(ctx, policy)
	if err != nil {
		return err
	}

	images, err := a.initImageHost(policy)
	if err != nil {
		return err
	}

	notifier := notification.NewRouter(
		a.stores.bookings,
		a.stores.users,
		a.stores.sessions,
		a.stores.messages,
		messenger,
		policy,
		a.cfg.Admin.UserID,
		a.log,
	)

	tolerance, err := a.cfg.Booking.Tolerance()
	if err != nil {
		return err
	}

	reservationService := service.NewReservationService(
		a.stores.bookings,
		a.stores.properties,
		a.stores.users,
		a.stores.sessions,
		a.cfg.Booking.PaymentInstructions,
		a.log,
	)
	paymentService := service.NewPaymentService(
		a.stores.bookings,
		screenshots,
		images,
		notifier,
		service.PaymentConfig{
			AmountTolerance:     tolerance,
			ConfidenceThreshold: a.cfg.Booking.ConfidenceThreshold,
		},
		a.log,
	)

	a.sweeper = scheduler.New(
		a.stores.bookings,
		a.stores.sessions,
		notifier,
		scheduler.Config{
			Interval:        a.cfg.Sweeper.Interval,
			PendingTTL:      a.cfg.Sweeper.PendingTTL,
			BatchSize:       a.cfg.Sweeper.BatchSize,
			SessionInterval: a.cfg.Sweeper.SessionInterval,
			SessionMaxIdle:  a.cfg.Sweeper.SessionMaxIdle,
			SweepTimeout:    a.cfg.Sweeper.SweepTimeout,
		},
		a.log,
	)

	mw := []ginext.HandlerFunc{
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	}
	if a.cfg.RateLimit.Enabled() {
		limiter := middleware.NewIPRateLimiter(a.cfg.RateLimit.RPS, a.cfg.RateLimit.Burst)
		mw = append(mw, middleware.RateLimit(limiter, a.log))
	}

	h := handler.NewHandler(reservationService, paymentService, a.sweeper, a.stores.messages)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.AdminAuth(a.cfg.Admin.APIToken),
		mw...,
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// initMessenger returns a nil interface when no bot token is configured.
func (a *App) initMessenger() (notification.Messenger, error) {
	if a.cfg.Telegram.BotToken == "" {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "telegram bot token not set, messaging channel disabled")
		return nil, nil
	}

	tg, err := notification.NewTelegramMessenger(a.cfg.Telegram.BotToken, a.cfg.Integration.Timeout, a.log)
	if err != nil {
		return nil, fmt.Errorf("init telegram: %w", err)
	}
	return tg, nil
}

func (a *App) initOracle(ctx context.Context, policy integration.Policy) (ports.ScreenshotOracle, error) {
	if a.cfg.Gemini.APIKey == "" {
		a.log.LogAttrs(ctx, logger.WarnLevel, "gemini api key not set, screenshot submissions are disabled")
		return nil, nil
	}

	gemini, err := oracle.NewGeminiOracle(ctx, a.cfg.Gemini.APIKey, a.cfg.Gemini.Model, policy, a.log)
	if err != nil {
		return nil, fmt.Errorf("init gemini: %w", err)
	}
	a.gemini = gemini

	if a.cfg.Redis.Addr == "" {
		return gemini, nil
	}

	cache := redis.New(a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
	if err = cache.Ping(ctx); err != nil {
		// Кэш необязателен: без Redis оракул работает напрямую.
		a.log.LogAttrs(ctx, logger.WarnLevel, "redis unavailable, oracle cache disabled",
			logger.String("addr", a.cfg.Redis.Addr),
			logger.Any("error", err),
		)
		_ = cache.Close()
		return gemini, nil
	}
	a.cache = cache

	a.log.LogAttrs(ctx, logger.InfoLevel, "oracle cache enabled",
		logger.String("addr", a.cfg.Redis.Addr),
		logger.Duration("ttl", a.cfg.Redis.CacheTTL),
	)
	return oracle.NewCachedOracle(gemini, cache, a.cfg.Redis.CacheTTL, a.log), nil
}

func (a *App) initImageHost(policy integration.Policy) (ports.ImageHost, error) {
	if !a.cfg.Cloudinary.Enabled() {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "cloudinary not configured, image uploads are disabled")
		return nil, nil
	}

	host, err := storage.NewCloudinaryHost(
		a.cfg.Cloudinary.CloudName,
		a.cfg.Cloudinary.APIKey,
		a.cfg.Cloudinary.APISecret,
		a.cfg.Cloudinary.Folder,
		policy,
		a.log,
	)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return host, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !a.cfg.Sweeper.Disabled {
		a.sweeper.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case runErr = <-errCh:
	}

	if err := a.shutdown(); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}

// SweepOnce runs a single expiry sweep without starting the scheduler.
func (a *App) SweepOnce(ctx context.Context) (*scheduler.SweepReport, error) {
	return a.sweeper.RunOnce(ctx)
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	var errs []error
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	} else {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")
	}

	if err := a.sweeper.Stop(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("sweeper stop: %w", err))
	}

	if err := a.Close(); err != nil {
		errs = append(errs, err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return errors.Join(errs...)
}

// Close releases external clients. Safe to call on a partially built App.
func (a *App) Close() error {
	var errs []error

	if a.gemini != nil {
		if err := a.gemini.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close gemini: %w", err))
		}
		a.gemini = nil
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
		a.cache = nil
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		} else {
			a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
		}
		a.db = nil
	}

	return errors.Join(errs...)
}

// RunMigrations применяет goose-миграции из каталога migrations.
func RunMigrations(dsn string, log logger.Logger) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err = goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err = goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	log.Info("migrations applied successfully")
	return nil
}
