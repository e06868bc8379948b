package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	status, err := c.replication.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	c.io.Println("=== Node Status ===")
	c.io.Println()
	c.io.Printf("Node ID:   %s\n", status.NodeID)
	c.io.Printf("Revision:  %d\n", status.Revision)

	switch {
	case status.Authenticated:
		remaining := status.TokenExpiresAt.Sub(c.now()).Round(time.Second)
		c.io.Printf("Token:     %s, expires in %s\n", status.Role, remaining)
	case status.Role != "":
		c.io.Printf("Token:     %s, expired. Run 'spawnsync login %s' again.\n", status.Role, status.Role)
	default:
		c.io.Println("Token:     none. Run 'spawnsync login host|client'.")
	}

	if len(status.CachedMaps) == 0 {
		c.io.Println("Cached:    none")
	} else {
		c.io.Printf("Cached:    %s\n", strings.Join(status.CachedMaps, ", "))
	}

	c.io.Printf("Session:   %s\n", status.SessionState)
	return nil
}
