package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPServer.Port != 3000 {
		t.Errorf("expected port 3000, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Environment.Name != "development" {
		t.Errorf("expected development, got %s", cfg.Environment.Name)
	}
	if cfg.HTTPServer.ReadTimeout != 15*time.Second || cfg.HTTPServer.ShutdownTimeout != 10*time.Second {
		t.Errorf("unexpected timeouts: %+v", cfg.HTTPServer)
	}
	if !cfg.Service.Serves(ResourceItems) || cfg.Service.Serves(ResourceUsers) {
		t.Errorf("expected only items by default, got %v", cfg.Service.Resources)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Errorf("expected 2 default origins, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Mongo.Host != "localhost" || cfg.Mongo.Port != 27017 || cfg.Mongo.AuthSource != "admin" {
		t.Errorf("unexpected mongo defaults: %+v", cfg.Mongo)
	}
}

func TestLoadEnvAliases(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("PORT", "5000")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("MONGODB_URI", "mongodb://db:27017/shop")
	t.Setenv("MONGO_HOST", "mongo")
	t.Setenv("MONGO_DB", "users_db")
	t.Setenv("SERVICE_RESOURCES", "users, items")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPServer.Port != 5000 {
		t.Errorf("expected PORT alias, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Environment.Name != "production" {
		t.Errorf("expected NODE_ENV alias, got %s", cfg.Environment.Name)
	}
	if cfg.Mongo.URI != "mongodb://db:27017/shop" || cfg.Mongo.Host != "mongo" || cfg.Mongo.Database != "users_db" {
		t.Errorf("unexpected mongo config: %+v", cfg.Mongo)
	}
	if !cfg.Service.Serves(ResourceUsers) || !cfg.Service.Serves(ResourceItems) {
		t.Errorf("expected both resources, got %v", cfg.Service.Resources)
	}
}

func TestLoadRejectsUnknownResource(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("SERVICE_RESOURCES", "items,orders")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown resource")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a, ,b ,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("unexpected split: %q", got)
	}
	if splitList("") != nil {
		t.Errorf("expected nil for empty input")
	}
}
