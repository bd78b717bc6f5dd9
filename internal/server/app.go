// Package server initializes and runs the identity service: it wires the
// storage, the business services, the gRPC and metrics endpoints and the
// outbox relay, and coordinates graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/miragechat/identity/internal/logging"
	"github.com/miragechat/identity/internal/server/config"
	"github.com/miragechat/identity/internal/server/metrics"
	"github.com/miragechat/identity/internal/server/password"
	"github.com/miragechat/identity/internal/server/relay"
	"github.com/miragechat/identity/internal/server/repositories/repomanager"
	"github.com/miragechat/identity/internal/server/token"
	"github.com/miragechat/identity/internal/server/users"

	gs "github.com/miragechat/identity/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       repomanager.RepositoryManager
	userService *users.Service
	metrics     *metrics.Metrics
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	rm, err := repomanager.NewPostgresRepositoryManager(c.DatabaseDSN, c.RegistrationGracePeriod)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher := password.NewHasher(password.DefaultParams())
	tokens := token.NewService([]byte(c.SecretKey), c.SessionTokenValidityDuration)

	us := users.NewService(rm.Users(), hasher, tokens, logger)

	return &App{
		config:      c,
		logger:      logger,
		repos:       rm,
		userService: us,
		metrics:     metrics.New(),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.metrics)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := metrics.NewServer(app.config.EndpointAddrMetrics, app.metrics, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startOutboxRelay(ctx context.Context, cancelFunc context.CancelFunc) {

	publisher, err := relay.NewRabbitMQPublisher(app.config.AmqpURI, app.config.AmqpQueue)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}
	defer func() { _ = publisher.Close() }()

	r := relay.NewRelay(app.repos.Outbox(), publisher, app.logger, app.metrics,
		app.config.OutboxPollInterval, app.config.OutboxBatchSize)

	if err := r.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startMetricsServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startOutboxRelay(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
