package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/EventHub/internal/config"
	"github.com/stpnv0/EventHub/internal/handler"
	"github.com/stpnv0/EventHub/internal/keylock"
	"github.com/stpnv0/EventHub/internal/ledger"
	"github.com/stpnv0/EventHub/internal/metrics"
	"github.com/stpnv0/EventHub/internal/middleware"
	"github.com/stpnv0/EventHub/internal/notification"
	"github.com/stpnv0/EventHub/internal/repository"
	"github.com/stpnv0/EventHub/internal/repository/memory"
	"github.com/stpnv0/EventHub/internal/router"
	"github.com/stpnv0/EventHub/internal/scheduler"
	"github.com/stpnv0/EventHub/internal/service"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	migrationsDir    = "migrations"
	metricsNamespace = "eventhub"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

// storage groups the repositories of one backing store.
type storage struct {
	events     ports.EventRepo
	requests   ports.RequestRepo
	users      ports.UserRepo
	categories ports.CategoryRepo
	locations  ports.LocationRepo
	comps      ports.CompilationRepo
	stats      ports.StatsCollector
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventHub",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	var st storage
	if cfg.Storage.InMemory() {
		st = app.memoryStorage()
	} else {
		if err = app.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
		if err = app.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
		st = app.postgresStorage()
	}

	if err = app.initServices(st); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
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

func (a *App) postgresStorage() storage {
	return storage{
		events:     repository.NewEventRepo(a.db),
		requests:   repository.NewRequestRepo(a.db),
		users:      repository.NewUserRepo(a.db),
		categories: repository.NewCategoryRepo(a.db),
		locations:  repository.NewLocationRepo(a.db),
		comps:      repository.NewCompilationRepo(a.db),
		stats:      repository.NewStatsRepo(a.db),
	}
}

func (a *App) memoryStorage() storage {
	a.log.Warn("using in-memory storage, data is lost on restart")

	s := memory.NewStore()
	return storage{
		events:     s.Events(),
		requests:   s.Requests(),
		users:      s.Users(),
		categories: s.Categories(),
		locations:  s.Locations(),
		comps:      s.Compilations(),
		stats:      s.Stats(),
	}
}

func (a *App) initServices(st storage) error {
	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	locks := keylock.New()
	led := ledger.New(st.requests)

	catalogService := service.NewCatalogService(st.events, st.users, led, st.stats, a.log, a.cfg.Stats.App)
	eventService := service.NewEventService(st.events, st.users, st.categories, st.locations,
		led, locks, catalogService, n, a.log)
	requestService := service.NewRequestService(st.requests, st.events, st.users, led, locks, n, a.log)
	userService := service.NewUserService(st.users)
	categoryService := service.NewCategoryService(st.categories)
	compilationService := service.NewCompilationService(st.comps, st.events, catalogService, a.log)

	m := metrics.New(metricsNamespace)

	a.scheduler = scheduler.New(
		m.ObserveReconcile(requestService),
		a.cfg.Reconcile.Interval,
		a.log,
	)

	h := handler.NewHandler(eventService, catalogService, requestService, userService, categoryService,
		compilationService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		m.HTTP(),
		middleware.Recovery(a.log),
	)
	r.GET("/metrics", m.Handler())

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
