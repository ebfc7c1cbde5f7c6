package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/depotsync/internal/client/api"
	"github.com/iudanet/depotsync/internal/models"
	"github.com/iudanet/depotsync/internal/server/keys"
	"github.com/iudanet/depotsync/internal/server/storage/sqlite"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type testBackend struct {
	srv    *httptest.Server
	server *Server
	key    string
}

func setupBackend(t *testing.T) *testBackend {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rows, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "remote.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rows.Close() })

	signer, err := keys.NewSigner(testSecret)
	require.NoError(t, err)
	key, err := signer.Mint(keys.RoleAnon, 0)
	require.NoError(t, err)

	server := New(Config{Version: "test", RateLimit: 1000, RateBurst: 1000}, rows, signer, logger)
	srv := httptest.NewServer(server.Handler())
	t.Cleanup(srv.Close)
	t.Cleanup(server.limiter.Stop)

	return &testBackend{srv: srv, server: server, key: key}
}

func (b *testBackend) client(key string) *api.Client {
	creds := &api.CredentialProviderMock{
		CredentialsFunc: func() models.Credentials {
			return models.Credentials{URL: b.srv.URL, Key: key}
		},
	}
	return api.NewClient(creds, 5*time.Second)
}

func TestServer_ClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)
	client := b.client(b.key)

	require.NoError(t, client.Ping(ctx))

	row, err := client.Upsert(ctx, "item", "", map[string]any{
		"codigo":      "AB1",
		"client_uuid": "7f7c1c1e-3c55-4a49-8f57-7d9b3c1a2b10",
		"kg_total":    json.Number("5.000"),
	})
	require.NoError(t, err)
	assert.Equal(t, json.Number("1"), row["id"])

	// pendencia приходит с локальным id как ключом
	row, err = client.Upsert(ctx, "pendencia", "12", map[string]any{"nome": "Ana", "valor": json.Number("30")})
	require.NoError(t, err)
	assert.Equal(t, json.Number("12"), row["id"])

	row, err = client.Update(ctx, "pendencia", "12", map[string]any{"status": true})
	require.NoError(t, err)
	assert.Equal(t, "Ana", row["nome"])
	assert.Equal(t, true, row["status"])

	require.NoError(t, client.Delete(ctx, "pendencia", "12"))
	// удаление отсутствующей строки идемпотентно
	require.NoError(t, client.Delete(ctx, "pendencia", "12"))
}

func TestServer_ErrorClassification(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)

	t.Run("bad key is transient", func(t *testing.T) {
		_, err := b.client("forged").Upsert(ctx, "item", "", map[string]any{"codigo": "A"})
		require.Error(t, err)
		assert.True(t, api.IsTransient(err))
		assert.True(t, api.Reachable(err))
	})

	t.Run("unknown table is permanent", func(t *testing.T) {
		_, err := b.client(b.key).Upsert(ctx, "usuarios", "", map[string]any{"nome": "x"})
		require.Error(t, err)
		assert.True(t, api.IsPermanent(err))
	})

	t.Run("update of absent row is permanent", func(t *testing.T) {
		_, err := b.client(b.key).Update(ctx, "material", "404", map[string]any{"nome": "x"})
		require.Error(t, err)
		assert.True(t, api.IsPermanent(err))
	})
}

func TestServer_HealthIsPublic(t *testing.T) {
	b := setupBackend(t)

	resp, err := http.Get(b.srv.URL + "/api/v1/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(b.srv.URL + "/rest/v1/item")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

func TestServer_ServeStopsOnCancel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rows, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "remote.db"))
	require.NoError(t, err)
	defer rows.Close()

	signer, err := keys.NewSigner(testSecret)
	require.NoError(t, err)

	server := New(Config{}, rows, signer, logger)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- server.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/api/v1/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
