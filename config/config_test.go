package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stockwatch.toml")
	err := os.WriteFile(path, []byte(`
[server]
address = ":9000"
pprof = true

[upstream]
url = "http://127.0.0.1:8080/quote"
timeout_seconds = 2

[log]
level = "debug"
`), 0644)
	if err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}

	config, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if config.Server.Address != ":9000" || !config.Server.Pprof {
		t.Errorf("config.Server = %+v", config.Server)
	}

	if config.Upstream.URL != "http://127.0.0.1:8080/quote" || config.Upstream.Timeout() != time.Second*2 {
		t.Errorf("config.Upstream = %+v", config.Upstream)
	}

	// keep defaults of absent keys
	if config.Upstream.UserAgent == "" || config.Nsq.Topic == "" || config.Log.MaxSize != 100 {
		t.Errorf("config defaults lost: %+v", config)
	}

	if config.Log.Level != "debug" {
		t.Errorf("config.Log.Level = %s, want debug", config.Log.Level)
	}
}

func TestParse_MissingFile(t *testing.T) {
	config, err := Parse(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if config.Upstream.Timeout() != time.Second*5 {
		t.Errorf("config.Upstream.Timeout() = %s, want 5s", config.Upstream.Timeout())
	}
}

func TestParse_Environment(t *testing.T) {
	t.Setenv("ADDRESS", ":7000")
	t.Setenv("UPSTREAM_TIMEOUT_SEC", "9")
	t.Setenv("UPSTREAM_DISABLED", "true")
	t.Setenv("NSQ_BROKER", "127.0.0.1:4150")

	config, err := Parse("")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if config.Server.Address != ":7000" {
		t.Errorf("config.Server.Address = %s", config.Server.Address)
	}

	if config.Upstream.TimeoutSeconds != 9 || !config.Upstream.Disabled {
		t.Errorf("config.Upstream = %+v", config.Upstream)
	}

	if !config.Nsq.Enabled || config.Nsq.Broker != "127.0.0.1:4150" {
		t.Errorf("config.Nsq = %+v", config.Nsq)
	}
}

func TestConfig_Valid(t *testing.T) {
	cases := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "default", modify: func(c *Config) {}, wantErr: false},
		{name: "empty address", modify: func(c *Config) { c.Server.Address = " " }, wantErr: true},
		{name: "empty upstream", modify: func(c *Config) { c.Upstream.URL = "" }, wantErr: true},
		{name: "empty upstream disabled", modify: func(c *Config) { c.Upstream.URL = ""; c.Upstream.Disabled = true }, wantErr: false},
		{name: "zero timeout", modify: func(c *Config) { c.Upstream.TimeoutSeconds = 0 }, wantErr: true},
		{name: "nsq without broker", modify: func(c *Config) { c.Nsq.Enabled = true }, wantErr: true},
		{name: "nsq", modify: func(c *Config) { c.Nsq.Enabled = true; c.Nsq.Broker = "127.0.0.1:4150" }, wantErr: false},
	}

	for _, _case := range cases {
		t.Run(_case.name, func(t *testing.T) {
			config := Default()
			_case.modify(config)

			err := config.Valid()
			if (err != nil) != _case.wantErr {
				t.Errorf("Config.Valid() error = %v, wantErr %v", err, _case.wantErr)
			}
		})
	}
}
