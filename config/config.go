package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Env            string
	Server         Server
	Database       Database
	Redis          Redis
	Recommendation Recommendation
}

type Server struct {
	Port string
}

type Database struct {
	Driver   string // "postgres" or "sqlite"
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Path     string // sqlite file, ":memory:" allowed
}

type Redis struct {
	Addr     string // empty disables redis, the in-memory cache is used instead
	Password string
	DB       int
}

// Recommendation holds the static knobs of the matcher. The admin-tunable
// threshold lives in the settings table, not here.
type Recommendation struct {
	DisplayBoundary float64
	Limit           int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_PATH", "shelfscore.db")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("MATCH_DISPLAY_BOUNDARY", 70.0)
	viper.SetDefault("RECOMMENDATION_LIMIT", 6)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Env = viper.GetString("APP_ENV")
	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.Path = viper.GetString("DATABASE_PATH")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")

	config.Recommendation.DisplayBoundary = viper.GetFloat64("MATCH_DISPLAY_BOUNDARY")
	config.Recommendation.Limit = viper.GetInt("RECOMMENDATION_LIMIT")

	log.Info().
		Str("env", config.Env).
		Str("port", config.Server.Port).
		Str("dbDriver", config.Database.Driver).
		Bool("redis", config.Redis.Addr != "").
		Float64("displayBoundary", config.Recommendation.DisplayBoundary).
		Int("recommendationLimit", config.Recommendation.Limit).
		Msg("Config loaded")
	return &config, nil

}
