package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Game     GameConfig
	Worker   WorkerConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"colourtrade"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

// GameConfig carries the round and payout rules. EdgeProbability is the
// chance that a round settles on the least-staked outcome instead of a
// uniformly random one.
type GameConfig struct {
	RoundDuration   time.Duration `env:"GAME_ROUND_DURATION" envDefault:"60s"`
	ClosingBuffer   time.Duration `env:"GAME_CLOSING_BUFFER" envDefault:"5s"`
	EdgeProbability float64       `env:"GAME_EDGE_PROBABILITY" envDefault:"0.7"`
	WinMultiplier   int64         `env:"GAME_WIN_MULTIPLIER" envDefault:"2"`
	MaxDeposit      int64         `env:"GAME_MAX_DEPOSIT" envDefault:"10000"`
	MinWithdrawal   int64         `env:"GAME_MIN_WITHDRAWAL" envDefault:"1"`
}
type WorkerConfig struct {
	// SettleDelay is how long after a round closes the worker waits
	// before settling, leaving room for in-flight bet commits.
	SettleDelay time.Duration `env:"WORKER_SETTLE_DELAY" envDefault:"1s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
