package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runPush(ctx context.Context, args []string) error {
	fs := c.newFlagSet("push")
	fileName := fs.String("file", "", "publish a saved table instead of capturing the scene")
	useDefault := fs.Bool("default", false, "publish the table saved under the configured default file name")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if err := expectArgs("push", positional, 1, "<map> [-file NAME | -default]"); err != nil {
		return err
	}
	if *fileName == "" && *useDefault {
		*fileName = c.defaultFile
	}

	if *fileName != "" {
		table, err := c.files.Load(*fileName)
		if err != nil {
			return fmt.Errorf("failed to load spawn table: %w", err)
		}
		if err := c.session.Load(ctx, table, false); err != nil {
			return fmt.Errorf("failed to apply spawn table: %w", err)
		}
	} else if _, err := c.capture(ctx); err != nil {
		return err
	}

	result, err := c.replication.Publish(ctx, positional[0])
	if err != nil {
		return fmt.Errorf("push failed: %w", err)
	}

	c.io.Printf("✓ Published %s revision %d (%d spawners, %d items)\n",
		positional[0], result.Revision, result.Spawners, result.Items)
	if result.Retried {
		c.io.Println("  revision conflict resolved by catching up with the server")
	}
	return nil
}

func (c *Cli) runPull(ctx context.Context, args []string) error {
	fs := c.newFlagSet("pull")
	lock := fs.Bool("lock", false, "lock the session after applying")
	cached := fs.Bool("cached", false, "apply the locally cached snapshot without contacting the server")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if err := expectArgs("pull", positional, 1, "<map> [-lock] [-cached]"); err != nil {
		return err
	}

	pull := c.replication.Pull
	if *cached {
		pull = c.replication.ApplyCached
	}

	result, err := pull(ctx, positional[0], *lock)
	if err != nil {
		return fmt.Errorf("pull failed: %w", err)
	}

	if !result.Applied {
		c.io.Printf("Already up to date: %s revision %d\n", positional[0], result.Revision)
		return nil
	}

	c.io.Printf("✓ Applied %s revision %d from %s: %d spawners, %d matched\n",
		positional[0], result.Revision, result.NodeID, result.Spawners, result.Matched)
	return c.replay(ctx)
}

func (c *Cli) runHistory(ctx context.Context, args []string) error {
	fs := c.newFlagSet("history")
	limit := fs.Int("limit", 0, "maximum number of snapshots")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if err := expectArgs("history", positional, 1, "<map> [-limit N]"); err != nil {
		return err
	}

	snapshots, err := c.replication.History(ctx, positional[0], *limit)
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		c.io.Printf("No snapshots for %s\n", positional[0])
		return nil
	}

	for _, snap := range snapshots {
		c.io.Printf("%6d  %s  %s  %s\n",
			snap.Revision, snap.CreatedAt.Local().Format(time.DateTime), snap.NodeID, snap.ID)
	}
	return nil
}

func (c *Cli) runMaps(ctx context.Context) error {
	maps, err := c.replication.RemoteMaps(ctx)
	if err != nil {
		return err
	}
	if len(maps) == 0 {
		c.io.Println("No maps published yet")
		return nil
	}
	for _, name := range maps {
		c.io.Println(name)
	}
	return nil
}
