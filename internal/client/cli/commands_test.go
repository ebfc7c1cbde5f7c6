package cli

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/depotsync/internal/client/storage"
	clientsync "github.com/iudanet/depotsync/internal/client/sync"
	"github.com/iudanet/depotsync/internal/models"
)

func TestCli_RunSync(t *testing.T) {
	tests := []struct {
		result   *clientsync.CycleResult
		err      error
		name     string
		contains []string
		wantErr  string
	}{
		{
			name:     "drained",
			result:   &clientsync.CycleResult{Applied: 3},
			contains: []string{"Applied to remote:    3 entries", "Still pending:        0 entries", "✓ Synchronization completed successfully!"},
		},
		{
			name:     "with dead letters",
			result:   &clientsync.CycleResult{Applied: 1, Dropped: 2},
			contains: []string{"Moved to dead letters: 2 entries"},
		},
		{
			name:     "skipped",
			result:   &clientsync.CycleResult{Skipped: true},
			contains: []string{"Sync skipped", "depot credentials set"},
		},
		{
			name:     "aborted",
			result:   &clientsync.CycleResult{Applied: 1, Pending: 4, Aborted: true, LastError: "connection refused"},
			contains: []string{"Cycle stopped early: connection refused", "Still pending:        4 entries"},
		},
		{name: "in progress", err: clientsync.ErrCycleInProgress, wantErr: "already running"},
		{name: "failure", err: errors.New("database is locked"), wantErr: "synchronization failed: database is locked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &SyncEngineMock{
				RunOnceFunc: func(ctx context.Context) (*clientsync.CycleResult, error) {
					return tt.result, tt.err
				},
			}
			io, out := newTestIO()
			cli := New(io, engine, nil, nil)

			err := cli.RunSync(context.Background())

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out.String(), s)
			}
			assert.Len(t, engine.RunOnceCalls(), 1)
		})
	}
}

func TestCli_RunStatus(t *testing.T) {
	last := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)

	t.Run("online with pending and dead letters", func(t *testing.T) {
		engine := &SyncEngineMock{
			StatusFunc: func() models.SyncStatus {
				return models.SyncStatus{
					LastSyncAt:     &last,
					LastError:      "timeout",
					PendingCount:   2,
					IsOnline:       true,
					HasCredentials: true,
				}
			},
			DeadLettersFunc: func(ctx context.Context) ([]*models.DeadLetter, error) {
				return []*models.DeadLetter{{ID: 1}}, nil
			},
		}
		io, out := newTestIO()

		require.NoError(t, New(io, engine, nil, nil).RunStatus(context.Background()))

		s := out.String()
		assert.Contains(t, s, "Credentials:  yes")
		assert.Contains(t, s, "Online:       yes")
		assert.Contains(t, s, "Last error:   timeout")
		assert.Contains(t, s, "Pending sync: 2 entry(ies)")
		assert.Contains(t, s, "1 entry(ies) rejected")
		assert.NotContains(t, s, "credentials set")
	})

	t.Run("no credentials, archive disabled", func(t *testing.T) {
		engine := &SyncEngineMock{
			StatusFunc: func() models.SyncStatus { return models.SyncStatus{} },
			DeadLettersFunc: func(ctx context.Context) ([]*models.DeadLetter, error) {
				return nil, clientsync.ErrDeadLettersDisabled
			},
		}
		io, out := newTestIO()

		require.NoError(t, New(io, engine, nil, nil).RunStatus(context.Background()))

		s := out.String()
		assert.Contains(t, s, "Credentials:  no")
		assert.Contains(t, s, "Last sync:    never")
		assert.Contains(t, s, "✓ All local changes synchronized")
		assert.Contains(t, s, "depot credentials set")
		assert.NotContains(t, s, "Warning")
	})
}

func TestCli_RunQueueList(t *testing.T) {
	created := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	engine := &SyncEngineMock{
		ListQueueFunc: func(ctx context.Context, filter storage.PendingFilter) ([]*models.OutboxEntry, error) {
			if len(filter.TableNames) > 0 && filter.TableNames[0] == "estoque" {
				return nil, nil
			}
			return []*models.OutboxEntry{
				{ID: 7, CreatedAt: created, TableName: "item", Operation: models.OperationInsert, Payload: json.RawMessage(`{"material":1}`)},
				{ID: 8, CreatedAt: created, TableName: "pendencia", Operation: models.OperationDelete, RecordID: "31", Payload: json.RawMessage(`{}`)},
			}, nil
		},
	}
	io, out := newTestIO()
	cli := New(io, engine, nil, nil)

	require.NoError(t, cli.RunQueueList(context.Background(), nil))
	s := out.String()
	assert.Contains(t, s, "Pending entries (2)")
	assert.Contains(t, s, "ID  CREATED")
	assert.Contains(t, s, `{"material":1}`)
	assert.Contains(t, s, "31")

	out.Reset()
	require.NoError(t, cli.RunQueueList(context.Background(), []string{"estoque"}))
	assert.Equal(t, "Queue is empty.\n", out.String())

	engine.ListQueueFunc = func(ctx context.Context, filter storage.PendingFilter) ([]*models.OutboxEntry, error) {
		return nil, errors.New("closed")
	}
	assert.ErrorContains(t, cli.RunQueueList(context.Background(), nil), "failed to list queue")
}

func TestCli_RunQueueAdd(t *testing.T) {
	tests := []struct {
		name    string
		args    EnqueueArgs
		wantErr string
		wantOp  models.Operation
		called  bool
	}{
		{
			name:   "insert with payload",
			args:   EnqueueArgs{Table: "item", Operation: "insert", Payload: `{"material":2,"kg_total":"3.5"}`},
			called: true,
			wantOp: models.OperationInsert,
		},
		{
			name:   "delete without payload",
			args:   EnqueueArgs{Table: "pendencia", Operation: "DELETE", RecordID: "9"},
			called: true,
			wantOp: models.OperationDelete,
		},
		{name: "bad operation", args: EnqueueArgs{Table: "item", Operation: "merge"}, wantErr: "unknown operation"},
		{name: "bad payload", args: EnqueueArgs{Table: "item", Operation: "insert", Payload: `{"a":`}, wantErr: "not valid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &SyncEngineMock{
				AddToSyncQueueFunc: func(ctx context.Context, table string, op models.Operation, recordID string, payload any) (int64, error) {
					return 12, nil
				},
			}
			io, out := newTestIO()

			err := New(io, engine, nil, nil).RunQueueAdd(context.Background(), tt.args)

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Empty(t, engine.AddToSyncQueueCalls())
				return
			}
			require.NoError(t, err)
			calls := engine.AddToSyncQueueCalls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.wantOp, calls[0].Op)
			assert.Equal(t, tt.args.RecordID, calls[0].RecordID)
			if tt.args.Payload == "" {
				assert.Nil(t, calls[0].Payload)
			} else {
				assert.Equal(t, json.RawMessage(tt.args.Payload), calls[0].Payload)
			}
			assert.Contains(t, out.String(), "Entry 12 added")
		})
	}
}

func TestCli_RunQueueCancel(t *testing.T) {
	tests := []struct {
		err     error
		name    string
		id      string
		wantErr string
	}{
		{name: "cancelled", id: "4"},
		{name: "not found", id: "4", err: storage.ErrEntryNotFound, wantErr: "entry 4 not found"},
		{name: "already synced", id: "4", err: storage.ErrEntryAlreadySynced, wantErr: "already synced"},
		{name: "in flight", id: "4", err: storage.ErrEntryInFlight, wantErr: "being sent"},
		{name: "bad id", id: "x", wantErr: "invalid entry id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &SyncEngineMock{
				RemoveFromQueueFunc: func(ctx context.Context, id int64) error {
					return tt.err
				},
			}
			io, out := newTestIO()

			err := New(io, engine, nil, nil).RunQueueCancel(context.Background(), tt.id)

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), "Entry 4 cancelled")
		})
	}
}

func TestCli_RunCredentialsSet(t *testing.T) {
	t.Setenv(KeyEnvVar, "")

	t.Run("url and key from args", func(t *testing.T) {
		creds := &CredentialStoreMock{
			SaveFunc: func(c models.Credentials) error { return nil },
			PathFunc: func() string { return "/home/caixa/.depotsync/depot.yaml" },
		}
		io, out := newTestIO()

		err := New(io, nil, nil, creds).RunCredentialsSet(context.Background(), " https://depot.example.com ", KeySources{FromArgs: "secret-key"})

		require.NoError(t, err)
		require.Len(t, creds.SaveCalls(), 1)
		assert.Equal(t, models.Credentials{URL: "https://depot.example.com", Key: "secret-key"}, creds.SaveCalls()[0].Creds)
		assert.Contains(t, out.String(), "Credentials saved to /home/caixa/.depotsync/depot.yaml")
	})

	t.Run("prompts for missing values", func(t *testing.T) {
		creds := &CredentialStoreMock{
			SaveFunc: func(c models.Credentials) error { return nil },
			PathFunc: func() string { return "depot.yaml" },
		}
		io, _ := newTestIO()
		io.ReadInputFunc = func(prompt string) (string, error) { return "http://10.0.0.5:8080", nil }
		io.ReadPasswordFunc = func(prompt string) (string, error) { return "typed-key", nil }

		err := New(io, nil, nil, creds).RunCredentialsSet(context.Background(), "", KeySources{})

		require.NoError(t, err)
		require.Len(t, creds.SaveCalls(), 1)
		assert.Equal(t, models.Credentials{URL: "http://10.0.0.5:8080", Key: "typed-key"}, creds.SaveCalls()[0].Creds)
	})

	t.Run("empty url", func(t *testing.T) {
		io, _ := newTestIO()
		io.ReadInputFunc = func(prompt string) (string, error) { return "", nil }
		creds := &CredentialStoreMock{}

		err := New(io, nil, nil, creds).RunCredentialsSet(context.Background(), "", KeySources{})

		assert.ErrorContains(t, err, "URL cannot be empty")
		assert.Empty(t, creds.SaveCalls())
	})

	t.Run("store rejects", func(t *testing.T) {
		creds := &CredentialStoreMock{
			SaveFunc: func(c models.Credentials) error { return errors.New("invalid remote URL") },
		}
		io, _ := newTestIO()

		err := New(io, nil, nil, creds).RunCredentialsSet(context.Background(), "ftp://x", KeySources{FromArgs: "k"})

		assert.ErrorContains(t, err, "failed to save credentials")
	})
}

func TestCli_RunCredentialsShowAndClear(t *testing.T) {
	creds := &CredentialStoreMock{
		CredentialsFunc: func() models.Credentials {
			return models.Credentials{URL: "https://depot.example.com", Key: "abcd1234efgh5678"}
		},
		PathFunc:  func() string { return "depot.yaml" },
		ClearFunc: func() error { return nil },
	}
	io, out := newTestIO()
	cli := New(io, nil, nil, creds)

	require.NoError(t, cli.RunCredentialsShow(context.Background()))
	assert.Contains(t, out.String(), "URL:    https://depot.example.com")
	assert.Contains(t, out.String(), "Key:    abcd****5678")
	assert.NotContains(t, out.String(), "abcd1234efgh5678")

	out.Reset()
	creds.CredentialsFunc = func() models.Credentials { return models.Credentials{} }
	require.NoError(t, cli.RunCredentialsShow(context.Background()))
	assert.Contains(t, out.String(), "not configured")

	out.Reset()
	require.NoError(t, cli.RunCredentialsClear(context.Background()))
	assert.Len(t, creds.ClearCalls(), 1)
	assert.Contains(t, out.String(), "Credentials removed")
}

func TestCli_RunRecent(t *testing.T) {
	views := &ViewsMock{
		LastItemsFunc: func(ctx context.Context, limit int) ([]models.HistoryItem, error) {
			return []models.HistoryItem{
				{
					Data:         time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC),
					Codigo:       "C-17",
					Tipo:         "compra",
					MaterialNome: "Cobre",
					KgTotal:      decimal.RequireFromString("12.5"),
					PrecoKg:      decimal.RequireFromString("35"),
					ValorTotal:   decimal.RequireFromString("437.5"),
					Pending:      true,
				},
				{MaterialNome: "Ferro", Comanda: 44, KgTotal: decimal.NewFromInt(3)},
			}, nil
		},
	}
	io, out := newTestIO()

	require.NoError(t, New(io, nil, views, nil).RunRecent(context.Background(), 10))

	s := out.String()
	assert.Contains(t, s, "Cobre")
	assert.Contains(t, s, "12.500")
	assert.Contains(t, s, "437.50")
	assert.Contains(t, s, "pending")
	assert.Contains(t, s, "44")
	assert.Equal(t, 10, views.LastItemsCalls()[0].Limit)

	views.LastItemsFunc = func(ctx context.Context, limit int) ([]models.HistoryItem, error) { return nil, nil }
	out.Reset()
	require.NoError(t, New(io, nil, views, nil).RunRecent(context.Background(), 0))
	assert.Equal(t, "No items yet.\n", out.String())
}

func TestCli_RunPendencias(t *testing.T) {
	views := &ViewsMock{
		PendenciasFunc: func(ctx context.Context) ([]models.PendenciaView, error) {
			return []models.PendenciaView{
				{Nome: "Maria", Valor: decimal.RequireFromString("10.5"), Obs: "fiado", Pending: true},
			}, nil
		},
	}
	io, out := newTestIO()

	require.NoError(t, New(io, nil, views, nil).RunPendencias(context.Background()))
	assert.Contains(t, out.String(), "Maria")
	assert.Contains(t, out.String(), "10.50")
	assert.Contains(t, out.String(), "fiado")

	views.PendenciasFunc = func(ctx context.Context) ([]models.PendenciaView, error) {
		return nil, errors.New("no such table")
	}
	assert.ErrorContains(t, New(io, nil, views, nil).RunPendencias(context.Background()), "failed to load pendencias")
}

func TestCli_DeadLetters(t *testing.T) {
	engine := &SyncEngineMock{
		DeadLettersFunc: func(ctx context.Context) ([]*models.DeadLetter, error) {
			return []*models.DeadLetter{{
				ID:       3,
				FailedAt: time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC),
				Error:    "remote rejected entry: 422 invalid input syntax",
				Entry:    models.OutboxEntry{TableName: "item", Operation: models.OperationInsert},
			}}, nil
		},
		RequeueDeadLetterFunc: func(ctx context.Context, id uint64) (int64, error) {
			if id == 3 {
				return 55, nil
			}
			return 0, storage.ErrDeadLetterNotFound
		},
		DiscardDeadLetterFunc: func(ctx context.Context, id uint64) error {
			if id == 3 {
				return nil
			}
			return storage.ErrDeadLetterNotFound
		},
	}
	io, out := newTestIO()
	cli := New(io, engine, nil, nil)

	require.NoError(t, cli.RunDeadLetters(context.Background()))
	assert.Contains(t, out.String(), "422 invalid input syntax")

	out.Reset()
	require.NoError(t, cli.RunDeadLetterRequeue(context.Background(), "3"))
	assert.Contains(t, out.String(), "Dead letter 3 requeued as entry 55")
	assert.ErrorContains(t, cli.RunDeadLetterRequeue(context.Background(), "9"), "dead letter 9 not found")
	assert.ErrorContains(t, cli.RunDeadLetterRequeue(context.Background(), "zero"), "invalid dead letter id")

	out.Reset()
	require.NoError(t, cli.RunDeadLetterDiscard(context.Background(), "3"))
	assert.Contains(t, out.String(), "Dead letter 3 discarded")
	assert.ErrorContains(t, cli.RunDeadLetterDiscard(context.Background(), "9"), "not found")

	engine.DeadLettersFunc = func(ctx context.Context) ([]*models.DeadLetter, error) { return nil, nil }
	out.Reset()
	require.NoError(t, cli.RunDeadLetters(context.Background()))
	assert.Equal(t, "No dead letters.\n", out.String())
}
