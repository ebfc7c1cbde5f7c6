package bridge

import (
	"context"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/iudanet/depotsync/internal/models"
)

const writeTimeout = 5 * time.Second

// streamStatus отдает по websocket снимок статуса при подключении и затем
// каждое изменение. Медленный клиент получает только последний снимок.
func (b *Bridge) streamStatus(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: b.origins,
	})
	if err != nil {
		b.logger.Warn("Websocket upgrade failed", "error", err)
		return
	}
	defer conn.CloseNow()

	updates := make(chan models.SyncStatus, 1)
	// Subscribe сразу вызывает listener с текущим снимком
	unsubscribe := b.engine.Subscribe(func(s models.SyncStatus) {
		latest(updates, s)
	})
	defer unsubscribe()

	// клиент ничего не присылает, CloseRead отменит ctx при закрытии
	ctx := conn.CloseRead(r.Context())

	b.logger.Debug("Status stream opened", "remote_addr", r.RemoteAddr)
	defer b.logger.Debug("Status stream closed", "remote_addr", r.RemoteAddr)

	for {
		select {
		case <-ctx.Done():
			return
		case <-b.done:
			_ = conn.Close(websocket.StatusGoingAway, "bridge shutting down")
			return
		case s := <-updates:
			if err := writeStatus(ctx, conn, s); err != nil {
				b.logger.Debug("Status stream write failed", "error", err)
				return
			}
		}
	}
}

func writeStatus(ctx context.Context, conn *websocket.Conn, s models.SyncStatus) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, toStatusResponse(s))
}

// latest кладет s в канал емкости 1, вытесняя непрочитанный снимок.
// Вызывается из одного publisher'а, поэтому цикл конечен.
func latest(ch chan models.SyncStatus, s models.SyncStatus) {
	for {
		select {
		case ch <- s:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
