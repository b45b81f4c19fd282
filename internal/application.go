package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tui"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sessionRepo, closeRepo, err := newSessionRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeRepo(); err != nil {
			log.Error("could not close session storage", "error", err)
		}
	}()

	gameManager := usecase.NewGameManager(logger, sessionRepo)

	model := tui.New(ctx, logger, gameManager, conf.SessionID, entity.Mark(conf.HumanMark))

	log.Info("Starting terminal UI", "storage", conf.Storage, "session", conf.SessionID)

	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))

	finalModel, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	// a generated session is not resumable, so it is dropped on exit
	if final, ok := finalModel.(tui.Model); ok && conf.SessionID == "" && final.SessionID() != "" {
		if err = gameManager.EndSession(context.Background(), final.SessionID()); err != nil {
			log.Error("could not end session", "error", err)
		}
	}

	log.Info("Application stopped")

	return nil
}

func newSessionRepository(ctx context.Context, conf *config.Config) (repository.SessionRepository, func() error, error) {
	if conf.Storage != config.StorageRedis {
		return repository.NewMemorySessionRepository(), func() error { return nil }, nil
	}

	redisAddr := conf.Redis.GetRedisAddr()

	client, err := storage.New(ctx, redisAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewSessionRepository(client, conf.SessionTTL), client.Close, nil
}
