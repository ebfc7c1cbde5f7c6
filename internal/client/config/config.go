// Package config loads the depot terminal settings from depot.yaml and
// DEPOT_* environment variables. The same file holds the remote credentials.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/iudanet/depotsync/internal/logging"
	"github.com/iudanet/depotsync/internal/models"
)

const (
	// EnvPrefix префикс переменных окружения
	EnvPrefix = "DEPOT"
	// FileName имя файла конфигурации по умолчанию
	FileName = "depot.yaml"
	dirName  = ".depotsync"
)

// Config holds every setting of the depot terminal agent.
type Config struct {
	Log     logging.Config `mapstructure:"log"`
	Remote  RemoteConfig   `mapstructure:"remote"`
	DB      PathConfig     `mapstructure:"db"`
	State   PathConfig     `mapstructure:"state"`
	Bridge  BridgeConfig   `mapstructure:"bridge"`
	Device  DeviceConfig   `mapstructure:"device"`
	Comanda ComandaConfig  `mapstructure:"comanda"`
	Sync    SyncConfig     `mapstructure:"sync"`
}

// RemoteConfig адрес и ключ удаленного хранилища
type RemoteConfig struct {
	URL     string        `mapstructure:"url"`
	Key     string        `mapstructure:"key"`
	Timeout time.Duration `mapstructure:"timeout"` // таймаут одного запроса
}

// Credentials returns the URL and key pair.
func (r RemoteConfig) Credentials() models.Credentials {
	return models.Credentials{URL: strings.TrimSpace(r.URL), Key: strings.TrimSpace(r.Key)}
}

type PathConfig struct {
	Path string `mapstructure:"path"`
}

type BridgeConfig struct {
	Addr string `mapstructure:"addr"` // пусто = мост выключен
}

type DeviceConfig struct {
	Name string `mapstructure:"name"`
}

type ComandaConfig struct {
	Prefix string `mapstructure:"prefix"`
}

// SyncConfig периоды движка синхронизации
type SyncConfig struct {
	Interval      time.Duration `mapstructure:"interval"`
	ProbeInterval time.Duration `mapstructure:"probe_interval"`
	Retention     time.Duration `mapstructure:"retention"`
}

// DefaultPath returns $HOME/.depotsync/depot.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(dirName, FileName)
	}
	return filepath.Join(home, dirName, FileName)
}

// setDefaults регистрирует все ключи: без этого AutomaticEnv не видит их при Unmarshal
func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("db.path", filepath.Join(dir, "depot.db"))
	v.SetDefault("state.path", filepath.Join(dir, "state.db"))
	v.SetDefault("remote.url", "")
	v.SetDefault("remote.key", "")
	v.SetDefault("remote.timeout", 15*time.Second)
	v.SetDefault("sync.interval", 30*time.Second)
	v.SetDefault("sync.probe_interval", 30*time.Second)
	v.SetDefault("sync.retention", 30*24*time.Hour)
	v.SetDefault("bridge.addr", "127.0.0.1:8787")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("device.name", "Dispositivo Local")
	v.SetDefault("comanda.prefix", "")
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, filepath.Dir(path))
	return v
}

// readFile reads the config file; a missing file is not an error
func readFile(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to read config: %w", err)
}

// Load reads path (DefaultPath when empty) and the environment.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	v := newViper(path)
	if err := readFile(v); err != nil {
		return nil, err
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.Sync.Interval <= 0 {
		return nil, fmt.Errorf("sync.interval must be positive, got %s", cfg.Sync.Interval)
	}
	return &cfg, nil
}
