package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis      Redis  `yaml:"redis"`
	Kafka      Kafka  `yaml:"kafka"`
	Game       Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Kafka is optional; analytics are off while Brokers or Topic is empty.
type Kafka struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `yaml:"topic" env:"KAFKA_TOPIC"`
}

// Game holds the per-game settings. With ExternalClock set sessions do not
// tick on their own and clients drive the turn clock through tick.
type Game struct {
	Rows              int           `yaml:"rows" env:"GAME_ROWS" env-default:"6"`
	Columns           int           `yaml:"columns" env:"GAME_COLUMNS" env-default:"7"`
	TickInterval      time.Duration `yaml:"tick-interval" env:"GAME_TICK_INTERVAL" env-default:"1s"`
	BotDelay          time.Duration `yaml:"bot-delay" env:"GAME_BOT_DELAY" env-default:"1s"`
	SnapshotTTL       time.Duration `yaml:"snapshot-ttl" env:"GAME_SNAPSHOT_TTL" env-default:"1h"`
	SearchParallelism int           `yaml:"search-parallelism" env:"GAME_SEARCH_PARALLELISM" env-default:"4"`
	UpdateQueueSize   int           `yaml:"update-queue-size" env:"GAME_UPDATE_QUEUE_SIZE" env-default:"256"`
	ExternalClock     bool          `yaml:"external-clock" env:"GAME_EXTERNAL_CLOCK" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file, environment variables take precedence.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
