package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

var ErrUnknownFirstTurn = errors.New("unknown first-turn policy")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	strategy, err := service.ParseStrategy(conf.Game.Strategy)
	if err != nil {
		return fmt.Errorf("could not parse bot strategy: %w", err)
	}

	firstTurn, err := resolveFirstTurn(conf.Game.FirstTurn)
	if err != nil {
		return fmt.Errorf("could not resolve first turn: %w", err)
	}

	botService := service.NewBotService(strategy)
	session := usecase.NewGameSession(logger, botService, firstTurn)
	consoleServer := console.New(logger, os.Stdin, os.Stdout)

	log.Info("Starting game", "strategy", strategy.String(), "first_turn", firstTurn.String(), "game_id", session.ID())

	errCh := make(chan error, 1)
	go func() {
		errCh <- consoleServer.Run(ctx, session)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("console session error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// resolveFirstTurn - maps the configured policy to a player; "random"
// flips a coin.
func resolveFirstTurn(policy string) (entity.Cell, error) {
	switch policy {
	case "human":
		return entity.Human, nil
	case "automaton":
		return entity.Automaton, nil
	case "random":
		if rand.Intn(2) == 0 { //nolint: gosec // it's ok
			return entity.Human, nil
		}
		return entity.Automaton, nil
	default:
		return entity.Empty, fmt.Errorf("%w: %q", ErrUnknownFirstTurn, policy)
	}
}
