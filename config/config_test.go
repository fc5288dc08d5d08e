package config

import (
	"reflect"
	"testing"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg := LoadEnv()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if cfg.State.Driver != StateSQLite {
		t.Errorf("state driver = %q, want sqlite", cfg.State.Driver)
	}
	if cfg.Auth.DemoPassword != "1234" {
		t.Errorf("demo password = %q", cfg.Auth.DemoPassword)
	}
	if cfg.Kafka.Enabled || cfg.Elastic.Enabled || cfg.Redis.Enabled {
		t.Error("external services should be disabled by default")
	}
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("STATE_DRIVER", "Postgres")
	t.Setenv("STATE_AUTOSAVE_INTERVAL", "30")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("AUTH_DEMO_PASSWORD", "")
	t.Setenv("AUTH_BCRYPT_COST", "not-a-number")
	t.Setenv("SYNC_S3_PATH_STYLE", "true")

	cfg := LoadEnv()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.State.Driver != StatePostgres || cfg.State.AutosaveInterval != 30 {
		t.Errorf("state = %+v", cfg.State)
	}
	if want := []string{"k1:9092", "k2:9092"}; !reflect.DeepEqual(cfg.Kafka.Brokers, want) {
		t.Errorf("brokers = %q, want %q", cfg.Kafka.Brokers, want)
	}
	if cfg.Auth.DemoPassword != "" {
		t.Error("empty AUTH_DEMO_PASSWORD should disable the demo password")
	}
	if cfg.Auth.BcryptCost != 0 {
		t.Errorf("invalid int should fall back, got %d", cfg.Auth.BcryptCost)
	}
	if !cfg.Sync.PathStyle {
		t.Error("path style not read")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown state driver", func(c *Config) { c.State.Driver = "mongo" }},
		{"zero autosave", func(c *Config) { c.State.AutosaveInterval = 0 }},
		{"unknown sync driver", func(c *Config) { c.Sync.Driver = "ftp" }},
		{"kafka without brokers", func(c *Config) { c.Kafka.Enabled = true; c.Kafka.Brokers = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadEnv()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
