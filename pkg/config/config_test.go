package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestDefaultConfig(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.Name, "TeamWallet")
	is.Equal(cfg.DB.Driver, "sqlite")
	is.NoErr(cfg.Validate())
	is.True(filepath.IsAbs(cfg.DataPath))
	is.True(filepath.IsAbs(cfg.DB.DataSource))
}

func TestValidateNil(t *testing.T) {
	var cfg *Config
	if err := cfg.Validate(); err != ErrNilConfig {
		t.Errorf("Validate() => %v, want %v", err, ErrNilConfig)
	}
}

func TestValidateBadDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DB.Driver = "mongo"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() => nil, want error for unsupported driver")
	}
}

func TestParseEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("TEAMWALLET_NAME", "Wallet Test")
	t.Setenv("TEAMWALLET_HTTP_LISTEN_ADDR", ":9999")
	cfg := DefaultConfig()
	is.NoErr(cfg.ParseEnv())
	is.Equal(cfg.Name, "Wallet Test")
	is.Equal(cfg.HTTP.ListenAddr, ":9999")
}

func TestWriteAndParseFile(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.DataPath = t.TempDir()
	cfg.Name = "On Disk"
	is.NoErr(cfg.WriteConfig())
	is.True(cfg.Exist())

	other := DefaultConfig()
	other.DataPath = cfg.DataPath
	is.NoErr(other.ParseFile())
	is.Equal(other.Name, "On Disk")
}

func TestIsDebug(t *testing.T) {
	os.Unsetenv("TEAMWALLET_DEBUG")
	if IsDebug() {
		t.Error("IsDebug() => true, want false")
	}
	t.Setenv("TEAMWALLET_DEBUG", "1")
	if !IsDebug() {
		t.Error("IsDebug() => false, want true")
	}
}
