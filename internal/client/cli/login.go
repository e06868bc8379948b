package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/spawnsync/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	if err := expectArgs("login", args, 1, "host|client"); err != nil {
		return err
	}

	role := args[0]
	var hostKey string
	switch role {
	case api.RoleClient:
	case api.RoleHost:
		hostKey = c.hostKey
		if hostKey == "" {
			key, err := c.io.ReadPassword("Host key: ")
			if err != nil {
				return fmt.Errorf("failed to read host key: %w", err)
			}
			hostKey = key
		}
		if hostKey == "" {
			return fmt.Errorf("host key cannot be empty")
		}
	default:
		return fmt.Errorf("%w: role must be host or client", ErrUsage)
	}

	if err := c.replication.Login(ctx, role, hostKey); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Printf("✓ Logged in as %s\n", role)
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.replication.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	c.io.Println("✓ Logged out")
	return nil
}
