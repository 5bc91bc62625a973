package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/fleetflow/fleetflow/internal/pkg/models"
)

// InitConfig loads configuration from the given yaml file, with environment
// variables taking precedence (FLEET_SERVER_PORT overrides server.port).
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix("FLEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Printf("config file not loaded, using env and defaults: %v", err)
	}

	return &models.Config{
		App: models.AppConfig{
			Name:        v.GetString("app.name"),
			Environment: v.GetString("app.environment"),
			Debug:       v.GetBool("app.debug"),
			Version:     v.GetString("app.version"),
		},
		Server: models.ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetInt("server.port"),
			ReadTimeout:     v.GetInt("server.read_timeout"),
			WriteTimeout:    v.GetInt("server.write_timeout"),
			ShutdownTimeout: v.GetInt("server.shutdown_timeout"),
		},
		Database: models.DatabaseConfig{
			Host:      v.GetString("database.host"),
			Port:      v.GetInt("database.port"),
			Username:  v.GetString("database.username"),
			Password:  v.GetString("database.password"),
			Database:  v.GetString("database.database"),
			SSLMode:   v.GetString("database.ssl_mode"),
			MaxConns:  v.GetInt("database.max_conns"),
			IdleConns: v.GetInt("database.idle_conns"),
		},
		Redis: models.RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			PoolSize: v.GetInt("redis.pool_size"),
		},
		NSQ: models.NSQConfig{
			Address: v.GetString("nsq.address"),
			Enabled: v.GetBool("nsq.enabled"),
		},
		JWT: models.JWTConfig{
			Secret:     v.GetString("jwt.secret"),
			Expiration: v.GetInt("jwt.expiration"),
			Issuer:     v.GetString("jwt.issuer"),
		},
		Logger: models.LoggerConfig{
			Level:    v.GetString("logger.level"),
			FilePath: v.GetString("logger.file_path"),
		},
		Analytics: models.AnalyticsConfig{
			CacheTTLSeconds: v.GetInt("analytics.cache_ttl_seconds"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "fleetflow")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "fleetflow")
	v.SetDefault("database.database", "fleetflow")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.idle_conns", 5)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.address", "localhost:4150")
	v.SetDefault("nsq.enabled", false)

	v.SetDefault("jwt.expiration", 60)
	v.SetDefault("jwt.issuer", "fleetflow")

	v.SetDefault("logger.level", "info")

	v.SetDefault("analytics.cache_ttl_seconds", 30)
}
