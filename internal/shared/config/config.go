package config

import (
	"time"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"DB_HOST"`
	User     string `mapstructure:"DB_USER"`
	Password string `mapstructure:"DB_PASSWORD"`
	Name     string `mapstructure:"DB_NAME"`
	Port     string `mapstructure:"DB_PORT"`
	SSLMode  string `mapstructure:"DB_SSLMODE"`
}

// URL is the migrate-compatible connection string.
func (d DatabaseConfig) URL() string {
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.Name + "?sslmode=" + d.SSLMode
}

type Config struct {
	AppEnv string `mapstructure:"APP_ENV"`
	Port   string `mapstructure:"PORT"`

	DB DatabaseConfig `mapstructure:",squash"`

	RedisAddr    string `mapstructure:"REDIS_ADDR"`
	KafkaBroker  string `mapstructure:"KAFKA_BROKER"`
	KafkaGroupID string `mapstructure:"KAFKA_GROUP_ID"`
	JWTSecret    string `mapstructure:"JWT_SECRET"`

	MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`

	OutboxPollInterval  time.Duration `mapstructure:"OUTBOX_POLL_INTERVAL"`
	MaintenanceInterval time.Duration `mapstructure:"MAINTENANCE_INTERVAL"`
	MeetingReminderLead time.Duration `mapstructure:"MEETING_REMINDER_LEAD"`
	LeaderboardCacheTTL time.Duration `mapstructure:"LEADERBOARD_CACHE_TTL"`
	ConnectRetries      int           `mapstructure:"CONNECT_RETRIES"`
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

var keys = []string{
	"APP_ENV", "PORT",
	"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_PORT", "DB_SSLMODE",
	"REDIS_ADDR", "KAFKA_BROKER", "KAFKA_GROUP_ID", "JWT_SECRET", "MIGRATIONS_PATH",
	"OUTBOX_POLL_INTERVAL", "MAINTENANCE_INTERVAL", "MEETING_REMINDER_LEAD",
	"LEADERBOARD_CACHE_TTL", "CONNECT_RETRIES",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "3000")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("KAFKA_GROUP_ID", "water-cooler-network")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("OUTBOX_POLL_INTERVAL", 3*time.Second)
	v.SetDefault("MAINTENANCE_INTERVAL", time.Minute)
	v.SetDefault("MEETING_REMINDER_LEAD", 15*time.Minute)
	v.SetDefault("LEADERBOARD_CACHE_TTL", 5*time.Minute)
	v.SetDefault("CONNECT_RETRIES", 5)
}

// Load reads configuration from the process environment. Call godotenv.Load first
// if a .env file should be honoured.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about; AutomaticEnv alone does not register them.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
