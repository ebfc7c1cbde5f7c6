package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/depotsync/internal/models"
)

// RunCredentialsSet saves the remote URL and key. A missing URL is asked
// interactively, the key follows the getKey priority.
func (c *Cli) RunCredentialsSet(_ context.Context, url string, sources KeySources) error {
	url = strings.TrimSpace(url)
	if url == "" {
		input, err := c.io.ReadInput("Remote URL: ")
		if err != nil {
			return fmt.Errorf("failed to read URL: %w", err)
		}
		url = strings.TrimSpace(input)
	}
	if url == "" {
		return fmt.Errorf("URL cannot be empty")
	}

	key, err := c.getKey(sources)
	if err != nil {
		return err
	}

	if err := c.creds.Save(models.Credentials{URL: url, Key: key}); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	c.io.Printf("✓ Credentials saved to %s\n", c.creds.Path())
	c.io.Println("A running client picks them up automatically.")
	return nil
}

// RunCredentialsShow prints the configured URL and a masked key.
func (c *Cli) RunCredentialsShow(_ context.Context) error {
	creds := c.creds.Credentials()
	if !creds.Complete() {
		c.io.Println("Credentials: not configured")
		c.io.Println()
		c.io.Println("Run 'depot credentials set' to configure the remote store.")
		return nil
	}

	c.io.Printf("URL:    %s\n", creds.URL)
	c.io.Printf("Key:    %s\n", maskKey(creds.Key))
	c.io.Printf("Config: %s\n", c.creds.Path())
	return nil
}

// RunCredentialsClear removes the stored credentials. Pending entries stay
// in the queue until credentials are set again.
func (c *Cli) RunCredentialsClear(_ context.Context) error {
	if err := c.creds.Clear(); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	c.io.Println("✓ Credentials removed")
	return nil
}
