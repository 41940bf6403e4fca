package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/jxsim/internal/config"
	"github.com/udisondev/jxsim/internal/lesson"
	"github.com/udisondev/jxsim/internal/narrate"
	"github.com/udisondev/jxsim/internal/roster"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfgPath := config.DefaultPath
	if p := os.Getenv("JXSIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	names := cfg.Lessons
	if len(args) > 0 {
		names = args
	}
	lessons, err := lesson.Select(names)
	if err != nil {
		return err
	}
	slog.Info("jxsim starting", "lessons", len(lessons), "language", cfg.Language, "config", cfgPath)

	scripts, err := play(ctx, cfg, lessons)
	if err != nil {
		return err
	}

	for i, lines := range scripts {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return fmt.Errorf("writing lesson %s: %w", lessons[i].Name, err)
			}
		}
	}
	return nil
}

// play runs every lesson concurrently; output keeps the selection order.
func play(ctx context.Context, cfg config.Config, lessons []lesson.Lesson) ([][]string, error) {
	scripts := make([][]string, len(lessons))
	r := roster.New(cfg)

	g, gctx := errgroup.WithContext(ctx)
	for i, l := range lessons {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, err := narrate.New(cfg.Language)
			if err != nil {
				return err
			}
			lines, err := l.Run(lesson.Env{Roster: r, Narrator: n})
			if err != nil {
				return err
			}
			scripts[i] = lines
			slog.Debug("lesson finished", "lesson", l.Name, "lines", len(lines))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, fmt.Errorf("interrupted: %w", err)
		}
		return nil, err
	}
	return scripts, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
