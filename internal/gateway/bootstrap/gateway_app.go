package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	directoryapp "github.com/Rutuauti/banking-transaction-manager-project/internal/directory/application"
	directory "github.com/Rutuauti/banking-transaction-manager-project/internal/directory/domain"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/directory/infrastructure/jsonfile"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/directory/infrastructure/postgres"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/gateway/application"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/gateway/infrastructure/engine"
	httpwrap "github.com/Rutuauti/banking-transaction-manager-project/internal/gateway/infrastructure/http"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/pkg/database"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/pkg/jwt"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/pkg/logging"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/ratelimit"
	"github.com/Rutuauti/banking-transaction-manager-project/migrations"
)

const (
	shutdownTimeout = 5 * time.Second
)

type GatewayApp struct {
	cfg    GatewayConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
	rdb    *redis.Client
}

func NewGatewayApp(cfg GatewayConfig, logger logging.Logger) *GatewayApp {
	return &GatewayApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *GatewayApp) Run(ctx context.Context) error {
	logger := a.logger
	cfg := a.cfg

	users, err := a.createUsersRepository(ctx)
	if err != nil {
		return err
	}

	authCase := directoryapp.NewAuthCase(
		users,
		directory.NewArgonPasswordHasher(),
		jwt.NewJWTTokenIssuer(),
		cfg.JwtSecret,
		logger,
	)

	limiter := ratelimit.NewSlidingWindow()
	limiter.StartJanitor(ctx)

	stats, err := a.createStatsStore(ctx)
	if err != nil {
		return err
	}

	bridge := engine.NewBridge(cfg.EnginePath, cfg.EngineTimeout, logger)
	transactionCase := application.NewTransactionCase(bridge, limiter, authCase, stats, logger)

	router := httpwrap.NewRouter(
		httpwrap.NewTransactionHandler(transactionCase),
		httpwrap.NewAuthHandler(authCase),
		httpwrap.NewAuthMiddleware(jwt.NewJWTTokenParser(), []byte(cfg.JwtSecret)),
	)

	a.server = &http.Server{
		Addr:    cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "port", cfg.HttpPort, "engine", cfg.EnginePath)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *GatewayApp) createUsersRepository(ctx context.Context) (directory.UsersRepository, error) {
	if a.cfg.DbSettings == nil {
		store := jsonfile.NewStore(a.cfg.UsersFile, a.logger)
		if err := store.Init(); err != nil {
			return nil, fmt.Errorf("failed to initialize user file store: %w", err)
		}

		return store, nil
	}

	dbURL := a.cfg.DbSettings.GetUrl()

	if err := database.MigrateDatabase(dbURL, migrations.FS, "."); err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	a.dbpool = dbpool
	return postgres.NewUsersRepository(dbpool, a.logger), nil
}

func (a *GatewayApp) createStatsStore(ctx context.Context) (ratelimit.StatsStore, error) {
	if !a.cfg.QuotaStats.Enabled {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     a.cfg.QuotaStats.RedisAddr,
		Password: a.cfg.QuotaStats.RedisPassword,
		DB:       a.cfg.QuotaStats.RedisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	a.rdb = rdb

	opts := []ratelimit.RedisStatsOption{}
	if a.cfg.QuotaStats.Prefix != "" {
		opts = append(opts, ratelimit.WithStatsPrefix(a.cfg.QuotaStats.Prefix))
	}
	if a.cfg.QuotaStats.TTL > 0 {
		opts = append(opts, ratelimit.WithStatsTTL(a.cfg.QuotaStats.TTL))
	}

	return ratelimit.NewRedisStatsStore(rdb, opts...), nil
}

func (a *GatewayApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}

	if a.dbpool != nil {
		a.dbpool.Close()
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close failed", "error", err.Error())
		}
	}
}
