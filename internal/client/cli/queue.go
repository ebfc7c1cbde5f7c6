package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/depotsync/internal/client/storage"
	"github.com/iudanet/depotsync/internal/models"
)

// EnqueueArgs аргументы команды queue add
type EnqueueArgs struct {
	Table     string
	Operation string
	RecordID  string
	Payload   string // JSON объект, пусто = {}
}

// RunQueueList prints pending outbox entries in send order.
func (c *Cli) RunQueueList(ctx context.Context, tables []string) error {
	entries, err := c.engine.ListQueue(ctx, storage.PendingFilter{TableNames: tables})
	if err != nil {
		return fmt.Errorf("failed to list queue: %w", err)
	}

	if len(entries) == 0 {
		c.io.Println("Queue is empty.")
		return nil
	}

	c.io.Printf("=== Pending entries (%d) ===\n\n", len(entries))

	tw := c.table()
	fmt.Fprintln(tw, "ID\tCREATED\tTABLE\tOP\tRECORD\tPAYLOAD")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			formatTime(&e.CreatedAt),
			e.TableName,
			e.Operation,
			dash(e.RecordID),
			truncate(string(e.Payload), 60),
		)
	}
	return tw.Flush()
}

// RunQueueAdd appends a mutation to the outbox.
func (c *Cli) RunQueueAdd(ctx context.Context, args EnqueueArgs) error {
	op, err := models.ParseOperation(args.Operation)
	if err != nil {
		return err
	}

	var payload any
	if p := strings.TrimSpace(args.Payload); p != "" {
		if !json.Valid([]byte(p)) {
			return fmt.Errorf("payload is not valid JSON")
		}
		payload = json.RawMessage(p)
	}

	id, err := c.engine.AddToSyncQueue(ctx, args.Table, op, args.RecordID, payload)
	if err != nil {
		return fmt.Errorf("failed to enqueue: %w", err)
	}

	c.io.Printf("✓ Entry %d added to the sync queue (%s %s)\n", id, op, args.Table)
	return nil
}

// RunQueueCancel removes a pending entry before it is sent.
func (c *Cli) RunQueueCancel(ctx context.Context, rawID string) error {
	id, err := parseEntryID(rawID)
	if err != nil {
		return err
	}

	err = c.engine.RemoveFromQueue(ctx, id)
	switch {
	case errors.Is(err, storage.ErrEntryNotFound):
		return fmt.Errorf("entry %d not found", id)
	case errors.Is(err, storage.ErrEntryAlreadySynced):
		return fmt.Errorf("entry %d was already synced and cannot be cancelled", id)
	case errors.Is(err, storage.ErrEntryInFlight):
		return fmt.Errorf("entry %d is being sent right now, try again after the cycle", id)
	case err != nil:
		return fmt.Errorf("failed to cancel entry %d: %w", id, err)
	}

	c.io.Printf("✓ Entry %d cancelled\n", id)
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
