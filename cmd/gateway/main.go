package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Rutuauti/banking-transaction-manager-project/internal/gateway/bootstrap"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/gateway/infrastructure/engine"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/pkg/database"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/pkg/env"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/pkg/logging"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		defaultLogger.Warn("failed to load .env file", "error", err.Error())
	}

	cfg, err := loadConfig()
	if err != nil {
		defaultLogger.Error("invalid configuration", "error", err.Error())
		os.Exit(1)
	}

	app := bootstrap.NewGatewayApp(cfg, defaultLogger)

	if err := app.Run(mainCtx); err != nil {
		defaultLogger.Error("gateway stopped with error", "error", err.Error())
	}

	app.Shutdown()
}

func loadConfig() (bootstrap.GatewayConfig, error) {
	httpPort := ":5000"
	jwtSecret := "dev-secret-change-me"
	enginePath := filepath.Join(".", engine.ExecutableName())
	engineTimeout := engine.DefaultTimeout
	usersFile := filepath.Join("data", "users.json")

	env.TrySetFromEnv(env.EnvHttpPort, &httpPort)
	env.TrySetFromEnv(env.EnvJwtSecret, &jwtSecret)
	env.TrySetFromEnv(env.EnvEnginePath, &enginePath)
	env.TrySetFromEnv(env.EnvUsersFile, &usersFile)

	if raw := os.Getenv(env.EnvEngineTimeout); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return bootstrap.GatewayConfig{}, err
		}

		engineTimeout = parsed
	}

	cfg := bootstrap.GatewayConfig{
		HttpPort:      httpPort,
		JwtSecret:     jwtSecret,
		EnginePath:    enginePath,
		EngineTimeout: engineTimeout,
		UsersFile:     usersFile,
	}

	if env.IsSet(env.EnvDatabaseHost) {
		dbSettings := database.PostgresSettings{
			User:     "postgres",
			Password: "postgres",
			Host:     "localhost",
			Port:     "5432",
			DBName:   "banking",
		}

		env.TrySetFromEnv(env.EnvDatabaseHost, &dbSettings.Host)
		env.TrySetFromEnv(env.EnvDatabasePort, &dbSettings.Port)
		env.TrySetFromEnv(env.EnvDatabaseUser, &dbSettings.User)
		env.TrySetFromEnv(env.EnvDatabasePassword, &dbSettings.Password)
		env.TrySetFromEnv(env.EnvDatabaseName, &dbSettings.DBName)

		cfg.DbSettings = &dbSettings
	}

	statsCfg, err := loadQuotaStatsConfig()
	if err != nil {
		return bootstrap.GatewayConfig{}, err
	}
	cfg.QuotaStats = statsCfg

	return cfg, nil
}

func loadQuotaStatsConfig() (bootstrap.QuotaStatsConfig, error) {
	cfg := bootstrap.QuotaStatsConfig{
		RedisAddr: "localhost:6379",
	}

	if os.Getenv(env.EnvQuotaStatsEnabled) != "true" {
		return cfg, nil
	}

	cfg.Enabled = true

	env.TrySetFromEnv(env.EnvQuotaStatsRedisAddr, &cfg.RedisAddr)
	env.TrySetFromEnv(env.EnvQuotaStatsRedisPassword, &cfg.RedisPassword)
	env.TrySetFromEnv(env.EnvQuotaStatsPrefix, &cfg.Prefix)

	if raw := os.Getenv(env.EnvQuotaStatsRedisDB); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return bootstrap.QuotaStatsConfig{}, err
		}

		cfg.RedisDB = db
	}

	if raw := os.Getenv(env.EnvQuotaStatsTTL); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return bootstrap.QuotaStatsConfig{}, err
		}

		cfg.TTL = ttl
	}

	return cfg, nil
}
