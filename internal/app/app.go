package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagering/internal/buffer"
	"github.com/GlebRadaev/wagering/internal/config"
	"github.com/GlebRadaev/wagering/internal/consumer"
	"github.com/GlebRadaev/wagering/internal/events"
	"github.com/GlebRadaev/wagering/internal/handlers"
	"github.com/GlebRadaev/wagering/internal/notify"
	"github.com/GlebRadaev/wagering/internal/pg"
	"github.com/GlebRadaev/wagering/internal/repo"
	"github.com/GlebRadaev/wagering/internal/service"
	"github.com/GlebRadaev/wagering/pkg/auth"
	"github.com/GlebRadaev/wagering/pkg/clients"
	"github.com/GlebRadaev/wagering/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	consumer *consumer.Consumer

	pool   *pgxpool.Pool
	redis  *redis.Client
	writer *kafka.Writer

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.pool = pool
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	buf, err := a.newBuffer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("can't connect to redis: %w", err)
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv, err = service.New(cfg, a.repo, service.Deps{
		Buffer:   buf,
		Notifier: notify.New(a.newWriter(cfg)),
		Client:   clients.NewHTTPClient(),
		Pool:     events.NewWorkerPool(cfg.Workers, cfg.QueueSize),
	})
	if err != nil {
		return fmt.Errorf("can't build services: %w", err)
	}
	a.api = handlers.New(a.srv, auth.NewJWTService(cfg.JWTSecret))

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.startConsumer(ctx)
	a.startScheduler(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// newBuffer keeps cashback deltas in redis when it is configured and in
// process memory otherwise.
func (a *Application) newBuffer(ctx context.Context, cfg *config.Config) (buffer.Buffer, error) {
	if cfg.RedisAddr == "" {
		zap.L().Warn("redis address not set, cashback buffer is in memory")
		return buffer.NewMemory(), nil
	}
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	a.redis = client
	return buffer.NewRedis(client), nil
}

func (a *Application) newWriter(cfg *config.Config) notify.Writer {
	if len(cfg.KafkaBrokers) == 0 {
		zap.L().Warn("kafka brokers not set, notifications are only logged")
		return nil
	}
	a.writer = notify.NewKafkaWriter(cfg.KafkaBrokers)
	return a.writer
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startConsumer(ctx context.Context) {
	if len(a.cfg.KafkaBrokers) == 0 {
		return
	}
	a.consumer = consumer.New(a.cfg.KafkaBrokers, a.cfg.KafkaGroupID, a.srv.Dispatcher)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		if err := a.consumer.Close(); err != nil {
			zap.L().Warn("closing kafka readers", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting kafka consumer", zap.Strings("brokers", a.cfg.KafkaBrokers))
		if err := a.consumer.Run(ctx); err != nil {
			a.errCh <- fmt.Errorf("kafka consumer exited with error: %w", err)
		}
	}()
}

func (a *Application) startScheduler(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.srv.Scheduler.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	a.shutdown()
	return appErr
}

// shutdown drains queued handlers before closing the resources they use.
func (a *Application) shutdown() {
	if a.srv != nil {
		a.srv.Dispatcher.Close()
	}
	if a.writer != nil {
		if err := a.writer.Close(); err != nil {
			zap.L().Warn("closing kafka writer", zap.Error(err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			zap.L().Warn("closing redis client", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
