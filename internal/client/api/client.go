package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/iudanet/depotsync/internal/models"
	"github.com/iudanet/depotsync/pkg/api"
)

// DefaultTimeout upper bound of one remote call
const DefaultTimeout = 30 * time.Second

//go:generate moq -out credentials_mock.go . CredentialProvider

// CredentialProvider supplies the remote URL and key. Read on every request,
// so a credentials change applies to the next call.
type CredentialProvider interface {
	Credentials() models.Credentials
}

// Client HTTP клиент Postgrest-совместимого удаленного хранилища
type Client struct {
	httpClient *http.Client
	creds      CredentialProvider
}

// NewClient создает новый API клиент
func NewClient(creds CredentialProvider, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		creds: creds,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки авторизации при редиректе
				if len(via) > 0 {
					req.Header.Set(api.HeaderAPIKey, via[0].Header.Get(api.HeaderAPIKey))
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

var integerPattern = regexp.MustCompile(`^-?[0-9]+$`)

// Upsert inserts or merges fields into table. The key is recordID, else the
// payload "id", else none and the remote assigns it. Returns the stored row.
func (c *Client) Upsert(ctx context.Context, table, recordID string, fields map[string]any) (map[string]any, error) {
	body := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	// ключ записи в очереди главнее id из снимка строки
	if recordID != "" {
		body["id"] = keyValue(recordID)
	}

	rows, err := c.doRequest(ctx, http.MethodPost, table, "", api.PreferUpsert, body)
	if err != nil {
		return nil, c.wrap(err, table, "upsert")
	}
	return firstRow(rows), nil
}

// Update patches the row with the given key using only the payload fields.
func (c *Client) Update(ctx context.Context, table, recordID string, fields map[string]any) (map[string]any, error) {
	if recordID == "" {
		return nil, &RemoteError{Kind: KindPermanent, Table: table, Op: "update", Message: "record id is required"}
	}

	rows, err := c.doRequest(ctx, http.MethodPatch, table, recordID, api.PreferRepresentation, fields)
	if err != nil {
		return nil, c.wrap(err, table, "update")
	}
	return firstRow(rows), nil
}

// Delete removes the row with the given key. A row already absent remotely
// counts as deleted.
func (c *Client) Delete(ctx context.Context, table, recordID string) error {
	if recordID == "" {
		return &RemoteError{Kind: KindPermanent, Table: table, Op: "delete", Message: "record id is required"}
	}

	_, err := c.doRequest(ctx, http.MethodDelete, table, recordID, "", nil)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			return nil
		}
		return c.wrap(err, table, "delete")
	}
	return nil
}

// Ping checks that the remote answers with the current credentials.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.doRequest(ctx, http.MethodHead, "", "", "", nil)
	if err != nil {
		return c.wrap(err, "", "ping")
	}
	return nil
}

// statusError ответ с кодом вне 2xx
type statusError struct {
	message string
	code    int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.code, e.message)
}

// wrap classifies err into a RemoteError
func (c *Client) wrap(err error, table, op string) error {
	if errors.Is(err, ErrNotConfigured) {
		return &RemoteError{Kind: KindTransient, Table: table, Op: op, Err: err}
	}

	var se *statusError
	if errors.As(err, &se) {
		return &RemoteError{
			Kind:       classifyStatus(se.code),
			StatusCode: se.code,
			Table:      table,
			Op:         op,
			Message:    se.message,
		}
	}

	// транспорт, таймаут, отмена контекста
	return &RemoteError{Kind: KindTransient, Table: table, Op: op, Err: err}
}

// doRequest выполняет HTTP запрос к /rest/v1/{table}
func (c *Client) doRequest(ctx context.Context, method, table, recordID, prefer string, body any) ([]map[string]any, error) {
	creds := c.creds.Credentials()
	if !creds.Complete() {
		return nil, ErrNotConfigured
	}

	endpoint := strings.TrimRight(creds.URL, "/") + api.RESTPrefix + "/" + table
	if recordID != "" {
		endpoint += "?id=eq." + url.QueryEscape(recordID)
	}

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(api.HeaderAPIKey, creds.Key)
	req.Header.Set("Authorization", "Bearer "+creds.Key)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set(api.HeaderPrefer, prefer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return nil, &statusError{code: resp.StatusCode, message: errResp.Message}
		}
		return nil, &statusError{code: resp.StatusCode, message: strings.TrimSpace(string(respBody))}
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(respBody))
	dec.UseNumber()

	// Запись уже применена: нераспознанное тело ответа не ошибка
	var rows []map[string]any
	if err := dec.Decode(&rows); err != nil {
		var row map[string]any
		dec = json.NewDecoder(bytes.NewReader(respBody))
		dec.UseNumber()
		if err := dec.Decode(&row); err != nil || row == nil {
			return nil, nil
		}
		rows = []map[string]any{row}
	}
	return rows, nil
}

func firstRow(rows []map[string]any) map[string]any {
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}

// keyValue keeps numeric keys numeric in the JSON body
func keyValue(recordID string) any {
	if integerPattern.MatchString(recordID) {
		return json.Number(recordID)
	}
	return recordID
}
