package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zforge/internal/cli"
	"github.com/zarlcorp/zforge/internal/tui"
	"github.com/zarlcorp/zforge/internal/user"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zforge"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	code := run(ctx, os.Args[1:])

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		if code == cli.ExitOK {
			code = cli.ExitError
		}
	}

	if code != cli.ExitOK {
		cancel()
		os.Exit(code)
	}
}

func run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		if !cli.IsInteractive() {
			return cli.Run(ctx, nil, os.Stdout, os.Stderr)
		}
		if err := runTUI(); err != nil {
			slog.Error("tui", "err", err)
			return cli.ExitError
		}
		return cli.ExitOK
	}

	switch args[0] {
	case "version":
		fmt.Printf("zforge %s\n", version)
		return cli.ExitOK
	case "help":
		return cli.Run(ctx, []string{"-h"}, os.Stdout, os.Stderr)
	}

	return cli.Run(ctx, args, os.Stdout, os.Stderr)
}

func runTUI() error {
	p := tea.NewProgram(tui.New(user.DefaultConfig()))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := finalModel.(tui.Model); ok && fm.Err() != nil {
		return fmt.Errorf("generate: %w", fm.Err())
	}

	return nil
}
