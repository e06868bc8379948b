package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/spawnsync/internal/session"
	"github.com/iudanet/spawnsync/internal/storage/file"
)

func (c *Cli) runCapture(ctx context.Context) error {
	_, err := c.capture(ctx)
	return err
}

func (c *Cli) runSave(ctx context.Context, args []string) error {
	fs := c.newFlagSet("save")
	fileName := fs.String("file", "", "file name inside the data directory (default: timestamped)")
	useDefault := fs.Bool("default", false, "write to the configured default file name")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if err := expectArgs("save", positional, 1, "<map> [-file NAME | -default]"); err != nil {
		return err
	}
	if *fileName == "" && *useDefault {
		*fileName = c.defaultFile
	}

	if _, err := c.capture(ctx); err != nil {
		return err
	}

	table := c.session.Table()
	var path string
	if *fileName != "" {
		path, err = c.files.Save(*fileName, table)
	} else {
		path, err = c.files.SaveTimestamped(positional[0], table, c.now())
	}
	if err != nil {
		if errors.Is(err, file.ErrEmptyTable) {
			return fmt.Errorf("nothing to save: the scene produced no spawn records")
		}
		return fmt.Errorf("failed to save spawn table: %w", err)
	}

	c.io.Printf("✓ Saved %d spawners with %d items to %s\n", table.Len(), table.ItemCount(), path)
	return nil
}

// capture запускает захват и печатает итог
func (c *Cli) capture(ctx context.Context) (session.CaptureResult, error) {
	result, err := c.session.Capture(ctx)
	if err != nil {
		return result, fmt.Errorf("capture failed: %w", err)
	}

	c.io.Printf("Captured %d spawners, %d items\n", result.Spawners, result.Items)
	for _, failure := range result.Failed {
		c.io.Printf("  ⚠️  %v\n", failure)
	}
	return result, nil
}
