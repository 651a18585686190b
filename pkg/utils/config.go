package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Paystack PaystackConfig
	Redis    RedisConfig
	Admin    AdminConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host          string
	Port          string
	Name          string
	User          string
	Password      string
	MaxConns      int32
	MigrationsDir string
}

// PaystackConfig carries the provider credentials. They are injected into the
// payment components at construction, never read from the environment at call
// time.
type PaystackConfig struct {
	SecretKey   string
	BaseURL     string
	CallbackURL string
}

// RedisConfig backs the settlement task queue.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AdminConfig gates destructive operations. KeyHash is a bcrypt hash of the
// admin API key.
type AdminConfig struct {
	KeyHash string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MIGRATIONS_DIR", "migrations")
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("PAYSTACK_BASE_URL", "https://api.paystack.co")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			Name:          viper.GetString("DB_NAME"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASS"),
			MaxConns:      viper.GetInt32("DB_MAX_CONNS"),
			MigrationsDir: viper.GetString("DB_MIGRATIONS_DIR"),
		},
		Paystack: PaystackConfig{
			SecretKey:   viper.GetString("PAYSTACK_SECRET_KEY"),
			BaseURL:     viper.GetString("PAYSTACK_BASE_URL"),
			CallbackURL: viper.GetString("PAYSTACK_CALLBACK_URL"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASS"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Admin: AdminConfig{
			KeyHash: viper.GetString("ADMIN_KEY_HASH"),
		},
	}

	return config, nil
}
