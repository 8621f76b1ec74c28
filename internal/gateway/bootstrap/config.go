package bootstrap

import (
	"time"

	"github.com/Rutuauti/banking-transaction-manager-project/internal/pkg/database"
)

// QuotaStatsConfig enables the optional Redis-backed quota decision counters.
type QuotaStatsConfig struct {
	Enabled       bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Prefix        string
	TTL           time.Duration
}

type GatewayConfig struct {
	HttpPort      string
	JwtSecret     string
	EnginePath    string
	EngineTimeout time.Duration

	// UsersFile backs the directory when DbSettings is nil.
	UsersFile  string
	DbSettings *database.PostgresSettings

	QuotaStats QuotaStatsConfig
}
