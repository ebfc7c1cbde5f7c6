package cli

import (
	"context"
	"errors"
	"fmt"

	clientsync "github.com/iudanet/depotsync/internal/client/sync"
)

// RunSync runs one sync cycle in the foreground and prints the report.
func (c *Cli) RunSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	result, err := c.engine.RunOnce(ctx)
	if errors.Is(err, clientsync.ErrCycleInProgress) {
		return fmt.Errorf("a sync cycle is already running, try again later")
	}
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if result.Skipped {
		c.io.Println("Sync skipped: no credentials or remote store unreachable.")
		c.io.Println("Run 'depot credentials set' or check the network connection.")
		return nil
	}

	c.io.Printf("Applied to remote:    %d entries\n", result.Applied)
	if result.Dropped > 0 {
		c.io.Printf("Moved to dead letters: %d entries\n", result.Dropped)
	}
	c.io.Printf("Still pending:        %d entries\n", result.Pending)

	if result.Aborted {
		c.io.Println()
		c.io.Printf("⚠️  Cycle stopped early: %s\n", result.LastError)
		c.io.Println("Pending entries will be retried on the next cycle.")
		return nil
	}

	c.io.Println()
	if result.Pending == 0 {
		c.io.Println("✓ Synchronization completed successfully!")
	} else {
		c.io.Println("✓ Cycle completed, new entries arrived while draining.")
	}
	return nil
}
