package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	t.Run("server defaults", func(t *testing.T) {
		if config.Server.Host != "127.0.0.1" {
			t.Errorf("Expected host 127.0.0.1, got %q", config.Server.Host)
		}
		if config.Server.Port != 50861 {
			t.Errorf("Expected port 50861, got %d", config.Server.Port)
		}
	})

	t.Run("upstream defaults", func(t *testing.T) {
		if config.Upstream.CredentialsPath != "credentials.json" {
			t.Errorf("Expected credentials.json, got %q", config.Upstream.CredentialsPath)
		}
		if config.Upstream.TimeoutSeconds != 10 {
			t.Errorf("Expected timeout 10, got %d", config.Upstream.TimeoutSeconds)
		}
		if config.Upstream.RateLimit != 5.0 {
			t.Errorf("Expected rate limit 5.0, got %f", config.Upstream.RateLimit)
		}
	})

	t.Run("cache defaults", func(t *testing.T) {
		if !config.Cache.Enabled {
			t.Error("Expected cache enabled by default")
		}
		if config.Cache.Path == "" {
			t.Error("Expected a cache path")
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, ErrMissingConfig) {
			t.Errorf("Expected ErrMissingConfig, got %v", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte("not = [valid"), 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[server]
host = "0.0.0.0"
port = 50000

[upstream]
credentials_path = "/etc/minstrel/credentials.json"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if config.Server.Host != "0.0.0.0" {
			t.Errorf("Expected host 0.0.0.0, got %q", config.Server.Host)
		}
		if config.Server.Port != 50000 {
			t.Errorf("Expected port 50000, got %d", config.Server.Port)
		}
		if config.Upstream.CredentialsPath != "/etc/minstrel/credentials.json" {
			t.Errorf("Unexpected credentials path %q", config.Upstream.CredentialsPath)
		}
	})
}

func TestCreateConfigFile(t *testing.T) {
	t.Run("creates a loadable file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("Expected created config to load, got %v", err)
		}
		if config.Server.Port != DefaultConfig().Server.Port {
			t.Errorf("Expected created config to match defaults")
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}

		if err := CreateConfigFile(path); err == nil {
			t.Error("Expected error when config file already exists")
		}
	})
}

func TestLoadCredentials(t *testing.T) {
	writeCreds := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "credentials.json")
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
		return path
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCredentials(filepath.Join(t.TempDir(), "credentials.json"))
		if !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("Expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := writeCreds(t, "{not json")
		_, err := LoadCredentials(path)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("missing client_id", func(t *testing.T) {
		path := writeCreds(t, `{"client_secret": "shh"}`)
		_, err := LoadCredentials(path)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("empty client_secret", func(t *testing.T) {
		path := writeCreds(t, `{"client_id": "abc", "client_secret": ""}`)
		_, err := LoadCredentials(path)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("valid credentials", func(t *testing.T) {
		path := writeCreds(t, `{"client_id": "abc", "client_secret": "shh"}`)
		creds, err := LoadCredentials(path)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if creds.ClientID != "abc" || creds.ClientSecret != "shh" {
			t.Errorf("Unexpected credentials %+v", creds)
		}
	})
}
