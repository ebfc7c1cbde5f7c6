package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/depotsync/internal/client/storage"
)

// RunDeadLetters lists entries the remote store rejected permanently.
func (c *Cli) RunDeadLetters(ctx context.Context) error {
	letters, err := c.engine.DeadLetters(ctx)
	if err != nil {
		return fmt.Errorf("failed to list dead letters: %w", err)
	}

	if len(letters) == 0 {
		c.io.Println("No dead letters.")
		return nil
	}

	tw := c.table()
	fmt.Fprintln(tw, "ID\tFAILED\tTABLE\tOP\tRECORD\tERROR")
	for _, dl := range letters {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			dl.ID,
			formatTime(&dl.FailedAt),
			dl.Entry.TableName,
			dl.Entry.Operation,
			dash(dl.Entry.RecordID),
			truncate(dl.Error, 80),
		)
	}
	return tw.Flush()
}

// RunDeadLetterRequeue puts a dead letter back at the tail of the queue.
func (c *Cli) RunDeadLetterRequeue(ctx context.Context, rawID string) error {
	id, err := parseDeadLetterID(rawID)
	if err != nil {
		return err
	}

	entryID, err := c.engine.RequeueDeadLetter(ctx, id)
	if errors.Is(err, storage.ErrDeadLetterNotFound) {
		return fmt.Errorf("dead letter %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("failed to requeue dead letter %d: %w", id, err)
	}

	c.io.Printf("✓ Dead letter %d requeued as entry %d\n", id, entryID)
	return nil
}

// RunDeadLetterDiscard deletes a dead letter for good.
func (c *Cli) RunDeadLetterDiscard(ctx context.Context, rawID string) error {
	id, err := parseDeadLetterID(rawID)
	if err != nil {
		return err
	}

	err = c.engine.DiscardDeadLetter(ctx, id)
	if errors.Is(err, storage.ErrDeadLetterNotFound) {
		return fmt.Errorf("dead letter %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("failed to discard dead letter %d: %w", id, err)
	}

	c.io.Printf("✓ Dead letter %d discarded\n", id)
	return nil
}
