package cli

import (
	"context"
	"errors"

	clientsync "github.com/iudanet/depotsync/internal/client/sync"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// RunStatus prints the sync status snapshot.
func (c *Cli) RunStatus(ctx context.Context) error {
	st := c.engine.Status()

	c.io.Println("=== Sync Status ===")
	c.io.Println()
	c.io.Printf("Credentials:  %s\n", yesNo(st.HasCredentials))
	c.io.Printf("Online:       %s\n", yesNo(st.IsOnline))
	c.io.Printf("Syncing:      %s\n", yesNo(st.Syncing))
	c.io.Printf("Last sync:    %s\n", formatTime(st.LastSyncAt))
	if st.LastError != "" {
		c.io.Printf("Last error:   %s\n", st.LastError)
	}

	c.io.Println()
	if st.PendingCount > 0 {
		c.io.Printf("⚠️  Pending sync: %d entry(ies) waiting to be sent\n", st.PendingCount)
		c.io.Println("Run 'depot sync' to synchronize now.")
	} else {
		c.io.Println("✓ All local changes synchronized")
	}

	// dead letters не критичны для статуса
	letters, err := c.engine.DeadLetters(ctx)
	switch {
	case errors.Is(err, clientsync.ErrDeadLettersDisabled):
	case err != nil:
		c.io.Printf("\nWarning: Failed to read dead letters: %v\n", err)
	case len(letters) > 0:
		c.io.Printf("\n⚠️  %d entry(ies) rejected by the remote store, see 'depot deadletters list'\n", len(letters))
	}

	if !st.HasCredentials {
		c.io.Println()
		c.io.Println("Run 'depot credentials set' to configure the remote store.")
	}
	return nil
}
