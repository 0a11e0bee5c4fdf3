package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Resource families the API can serve.
const (
	ResourceItems = "items"
	ResourceUsers = "users"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Service identity and enabled resources
	Service ServiceConfig

	// Storage
	Mongo MongoConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type ServiceConfig struct {
	Name      string
	Version   string
	Resources []string
}

// Serves reports whether the resource family is enabled.
func (s ServiceConfig) Serves(resource string) bool {
	for _, r := range s.Resources {
		if r == resource {
			return true
		}
	}
	return false
}

type MongoConfig struct {
	URI            string
	Host           string
	Port           int
	User           string
	Password       string
	Database       string
	AuthSource     string
	ConnectTimeout time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	if env := viper.GetString("node_env"); env != "" {
		cfg.Environment.Name = env
	}
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ReadTimeout = viper.GetDuration("http_server.read_timeout")
	cfg.HTTPServer.WriteTimeout = viper.GetDuration("http_server.write_timeout")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	// Service
	cfg.Service.Name = viper.GetString("service.name")
	cfg.Service.Version = viper.GetString("service.version")
	cfg.Service.Resources = splitList(viper.GetString("service.resources"))

	// MongoDB. mongo.host and friends already map to MONGO_HOST etc.
	cfg.Mongo.URI = viper.GetString("mongo.uri")
	if uri := viper.GetString("mongodb_uri"); uri != "" {
		cfg.Mongo.URI = uri
	}
	cfg.Mongo.Host = viper.GetString("mongo.host")
	cfg.Mongo.Port = viper.GetInt("mongo.port")
	cfg.Mongo.User = viper.GetString("mongo.user")
	cfg.Mongo.Password = viper.GetString("mongo.password")
	cfg.Mongo.Database = viper.GetString("mongo.database")
	if db := viper.GetString("mongo_db"); db != "" {
		cfg.Mongo.Database = db
	}
	cfg.Mongo.AuthSource = viper.GetString("mongo.auth_source")
	cfg.Mongo.ConnectTimeout = viper.GetDuration("mongo.connect_timeout")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	if len(cfg.Service.Resources) == 0 {
		return fmt.Errorf("service.resources must name at least one of %q, %q", ResourceItems, ResourceUsers)
	}
	for _, r := range cfg.Service.Resources {
		if r != ResourceItems && r != ResourceUsers {
			return fmt.Errorf("unknown resource %q in service.resources", r)
		}
	}
	return nil
}

// splitList splits a comma separated value, since viper does not parse
// lists from env seamlessly.
func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 3000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.read_timeout", "15s")
	viper.SetDefault("http_server.write_timeout", "15s")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("service.name", "Backend API")
	viper.SetDefault("service.version", "1.0.0")
	viper.SetDefault("service.resources", ResourceItems)

	viper.SetDefault("mongo.host", "localhost")
	viper.SetDefault("mongo.port", 27017)
	viper.SetDefault("mongo.auth_source", "admin")
	viper.SetDefault("mongo.connect_timeout", "10s")
}
