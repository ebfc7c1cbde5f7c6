package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/iudanet/depotsync/internal/client/iocli"
	"github.com/iudanet/depotsync/internal/client/storage"
	clientsync "github.com/iudanet/depotsync/internal/client/sync"
	"github.com/iudanet/depotsync/internal/models"
)

// KeyEnvVar переменная окружения с ключом удаленного хранилища
const KeyEnvVar = "DEPOT_REMOTE_KEY"

//go:generate moq -out engine_mock.go . SyncEngine
//go:generate moq -out views_mock.go . Views
//go:generate moq -out credentials_mock.go . CredentialStore

// SyncEngine is the part of the sync engine the CLI commands use
type SyncEngine interface {
	RunOnce(ctx context.Context) (*clientsync.CycleResult, error)
	Status() models.SyncStatus
	AddToSyncQueue(ctx context.Context, table string, op models.Operation, recordID string, payload any) (int64, error)
	RemoveFromQueue(ctx context.Context, id int64) error
	ListQueue(ctx context.Context, filter storage.PendingFilter) ([]*models.OutboxEntry, error)
	DeadLetters(ctx context.Context) ([]*models.DeadLetter, error)
	RequeueDeadLetter(ctx context.Context, id uint64) (int64, error)
	DiscardDeadLetter(ctx context.Context, id uint64) error
}

// Views reconciled local + pending views
type Views interface {
	LastItems(ctx context.Context, limit int) ([]models.HistoryItem, error)
	Pendencias(ctx context.Context) ([]models.PendenciaView, error)
}

// CredentialStore хранит URL и ключ удаленного хранилища
type CredentialStore interface {
	Path() string
	Credentials() models.Credentials
	Save(creds models.Credentials) error
	Clear() error
}

// KeySources источники ключа для credentials set
type KeySources struct {
	FromFile string
	FromArgs string
}

// Cli implements the depot client commands on top of the engine, the views
// and the credential store. Output goes through io so tests can capture it.
type Cli struct {
	io     iocli.IO
	engine SyncEngine
	views  Views
	creds  CredentialStore
}

func New(io iocli.IO, engine SyncEngine, views Views, creds CredentialStore) *Cli {
	return &Cli{
		io:     io,
		engine: engine,
		views:  views,
		creds:  creds,
	}
}

// getKey retrieves the remote key from various sources with priority:
// 1. Environment variable DEPOT_REMOTE_KEY
// 2. File specified in sources.FromFile
// 3. Command-line parameter
// 4. Interactive prompt (fallback)
func (c *Cli) getKey(sources KeySources) (string, error) {
	// Priority 1: Environment variable
	if envKey := strings.TrimSpace(os.Getenv(KeyEnvVar)); envKey != "" {
		return envKey, nil
	}

	// Priority 2: File
	if sources.FromFile != "" {
		content, err := os.ReadFile(sources.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read key file: %w", err)
		}
		// Убираем trailing newline/whitespace
		key := strings.TrimSpace(string(content))
		if key == "" {
			return "", fmt.Errorf("key file is empty")
		}
		return key, nil
	}

	// Priority 3: CLI parameter
	if sources.FromArgs != "" {
		return sources.FromArgs, nil
	}

	// Priority 4: Interactive prompt (fallback)
	key, err := c.io.ReadPassword("API key: ")
	if err != nil {
		return "", fmt.Errorf("failed to read key from stdin: %w", err)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("key cannot be empty")
	}
	return key, nil
}
