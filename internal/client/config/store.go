package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/iudanet/depotsync/internal/models"
)

// ErrInvalidURL remote.url не является http(s) адресом
var ErrInvalidURL = errors.New("remote url must be an absolute http or https url")

// CredentialStore keeps the remote URL and key in the config file.
// Credentials are cached; the cache is refreshed by Save, Clear, Reload and
// by the file watcher, so callers on the sync path never touch the disk.
type CredentialStore struct {
	logger *slog.Logger
	path   string
	creds  models.Credentials
	mu     sync.RWMutex
	once   sync.Once
}

// NewCredentialStore reads the credentials stored at path.
func NewCredentialStore(path string, logger *slog.Logger) (*CredentialStore, error) {
	if path == "" {
		path = DefaultPath()
	}
	s := &CredentialStore{path: path, logger: logger}
	if _, err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the config file location.
func (s *CredentialStore) Path() string {
	return s.path
}

// Credentials returns the cached credentials.
func (s *CredentialStore) Credentials() models.Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds
}

// Reload re-reads the file and environment. It reports whether the
// credentials differ from the cached ones.
func (s *CredentialStore) Reload() (bool, error) {
	v := newViper(s.path)
	if err := readFile(v); err != nil {
		return false, err
	}

	// GetString по полному ключу учитывает DEPOT_REMOTE_URL/KEY
	next := RemoteConfig{
		URL: v.GetString("remote.url"),
		Key: v.GetString("remote.key"),
	}.Credentials()

	s.mu.Lock()
	defer s.mu.Unlock()
	changed := next != s.creds
	s.creds = next
	return changed, nil
}

// Save writes url and key into the config file, keeping every other key.
func (s *CredentialStore) Save(creds models.Credentials) error {
	creds.URL = strings.TrimSpace(creds.URL)
	creds.Key = strings.TrimSpace(creds.Key)

	u, err := url.Parse(creds.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}
	if creds.Key == "" {
		return errors.New("remote key is required")
	}

	if err := s.write(func(v *viper.Viper) {
		v.Set("remote.url", creds.URL)
		v.Set("remote.key", creds.Key)
	}); err != nil {
		return err
	}

	_, err = s.Reload()
	return err
}

// Clear removes url and key from the config file.
func (s *CredentialStore) Clear() error {
	if err := s.write(func(v *viper.Viper) {
		v.Set("remote.url", "")
		v.Set("remote.key", "")
	}); err != nil {
		return err
	}

	_, err := s.Reload()
	return err
}

// write применяет set к содержимому файла (без env и defaults) и сохраняет его
func (s *CredentialStore) write(set func(v *viper.Viper)) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")
	v.SetConfigPermissions(0o600)
	if err := readFile(v); err != nil {
		return err
	}

	set(v)
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	// файл мог существовать с другими правами
	if err := os.Chmod(s.path, 0o600); err != nil {
		return fmt.Errorf("failed to chmod config: %w", err)
	}
	return nil
}

// Watch calls onChange whenever an edit of the config file changes the
// credentials. Only the first call installs the watcher.
func (s *CredentialStore) Watch(onChange func(models.Credentials)) error {
	if err := s.ensureFile(); err != nil {
		return err
	}

	s.once.Do(func() {
		v := newViper(s.path)
		if err := readFile(v); err != nil {
			s.logger.Warn("Config watch started on unreadable file", "path", s.path, "error", err)
		}

		v.OnConfigChange(func(e fsnotify.Event) {
			changed, err := s.Reload()
			if err != nil {
				s.logger.Warn("Failed to reload config", "file", e.Name, "error", err)
				return
			}
			s.logger.Debug("Config file changed", "file", e.Name, "op", e.Op.String(), "credentials_changed", changed)
			if changed {
				onChange(s.Credentials())
			}
		})
		v.WatchConfig()
	})
	return nil
}

// ensureFile создает пустой файл: viper не умеет следить за несуществующим
func (s *CredentialStore) ensureFile() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(s.path, nil, 0o600); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	return nil
}
