package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"terminal-rpg/internal/config"
	"terminal-rpg/internal/game"
	"terminal-rpg/internal/input"
	"terminal-rpg/internal/logging"
	"terminal-rpg/internal/rules"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	keys, err := input.Load(cfg.Input.Bindings)
	if err != nil {
		return err
	}
	scripts, err := rules.NewLuaActor(cfg.Rules.ScriptsDir, log.Named("rules"))
	if err != nil {
		return err
	}
	defer scripts.Close()

	book := rules.NewBook()
	book.SetFallback(rules.Chain{rules.NewTrace(log.Named("hooks")), scripts})
	g := game.New(cfg.Game, log.Named("game"), book)
	scripts.Say = g.Say
	scripts.Names = g.Special().Name

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting", zap.String("scripts", cfg.Rules.ScriptsDir), zap.String("bindings", cfg.Input.Bindings))
	if err := g.Run(ctx, screen, keys); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
