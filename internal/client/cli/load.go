package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/spawnsync/internal/models"
)

func (c *Cli) runLoad(ctx context.Context, args []string) error {
	fs := c.newFlagSet("load")
	lock := fs.Bool("lock", false, "lock the session after loading")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	name, err := c.fileArg("load", positional, "[file] [-lock]")
	if err != nil {
		return err
	}

	table, err := c.files.Load(name)
	if err != nil {
		return fmt.Errorf("failed to load spawn table: %w", err)
	}

	if err := c.session.Load(ctx, table, *lock); err != nil {
		return fmt.Errorf("failed to apply spawn table: %w", err)
	}

	c.io.Printf("✓ Loaded %d spawners, %d matched\n", table.Len(), c.session.MatchedCount())
	return c.replay(ctx)
}

func (c *Cli) runInspect(args []string) error {
	name, err := c.fileArg("inspect", args, "[file]")
	if err != nil {
		return err
	}

	data, err := c.files.Read(name)
	if err != nil {
		return fmt.Errorf("failed to read spawn table: %w", err)
	}
	table, err := c.codec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode spawn table: %w", err)
	}

	// В pipe отдаем компактный JSON для дальнейшей обработки
	if !c.io.IsTerminal() {
		encoded, err := c.codec.Encode(table)
		if err != nil {
			return err
		}
		_, err = c.io.Write(append(encoded, '\n'))
		return err
	}

	c.io.Printf("%s: %d spawners, %d items\n", name, table.Len(), table.ItemCount())
	c.io.Println()
	for _, record := range table.Spawners {
		c.io.Printf("%-24s %-6s %s\n", record.SpawnerKind, formatID(record), formatVector(record.SpawnerPosition))
		for _, item := range record.Items {
			c.io.Printf("    %-20s %s\n", item.ItemKind, formatVector(item.Position))
		}
	}
	return nil
}

func (c *Cli) runFiles() error {
	names, err := c.files.List()
	if err != nil {
		return fmt.Errorf("failed to list saved tables: %w", err)
	}
	if len(names) == 0 {
		c.io.Printf("No saved tables in %s\n", c.files.Dir())
		return nil
	}
	for _, name := range names {
		c.io.Println(name)
	}
	return nil
}

// replay воспроизводит загруженную таблицу на стартовых спавнерах.
// Принудительно только при выключенном живом спавне: иначе сцена запускает
// спавнеры сама, и перехватчик отдает им записанный вывод.
func (c *Cli) replay(ctx context.Context) error {
	if c.session.Policy().DisableLiveSpawn {
		before := c.collector.Total()
		spawners, err := c.interceptor.SpawnFromStartSpawners(ctx)
		if err != nil {
			return fmt.Errorf("failed to replay start spawners: %w", err)
		}
		c.io.Printf("Replayed %d items from %d start spawners\n", c.collector.Total()-before, spawners)
	} else {
		c.io.Println("Live spawning is enabled: matched spawners replay the table when they trigger")
	}

	if c.session.IsLocked() {
		c.io.Println("Session is locked: later loads will be rejected")
	}
	return nil
}

func formatID(record *models.SpawnerRecord) string {
	if !record.HasStableID() {
		return "-"
	}
	return fmt.Sprintf("#%d", record.SpawnerID)
}

func formatVector(v models.Vector3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}
