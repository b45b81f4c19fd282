package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.GameSession) error
	GetByID(ctx context.Context, id string) (*entity.GameSession, error)
	DeleteByID(ctx context.Context, id string) error
}

// TurnResult describes what happened during one call. ComputerCell is -1 when the computer did not move.
type TurnResult struct {
	Session      *entity.GameSession
	HumanCell    int
	ComputerCell int
	Outcome      entity.Outcome
}

// GameManager runs human-vs-computer sessions. Every call holds the manager lock, so applying a
// human move and computing the reply never interleave with another call.
type GameManager struct {
	mu sync.Mutex

	logger      *slog.Logger
	sessionRepo sessionRepo
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		sessionRepo: sessionRepo,
	}
}

// StartGame - resets the session (a new id is generated when empty) and seats the human.
// When the computer holds X it opens right away.
func (that *GameManager) StartGame(ctx context.Context, id string, humanMark entity.Mark) (*TurnResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}

	log := that.logger.With("method", "StartGame", "session", id)

	session := entity.NewGameSession(id)
	if err := tictactoe.NewGame(session, humanMark); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	result := &TurnResult{
		Session:      session,
		HumanCell:    -1,
		ComputerCell: -1,
		Outcome:      tictactoe.CurrentOutcome(session),
	}

	if session.IsComputerTurn() {
		if err := that.computerTurn(result); err != nil {
			return nil, err
		}
	}

	if err := that.saveSession(ctx, session); err != nil {
		return nil, err
	}

	log.Info("game started", "human", humanMark, "computer", session.ComputerMark)

	return result, nil
}

// PlayTurn - applies the human move and, while the game goes on, the computer's reply.
func (that *GameManager) PlayTurn(ctx context.Context, id string, cell int) (*TurnResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "PlayTurn", "session", id)

	session, err := that.getSession(ctx, id)
	if err != nil {
		return nil, err
	}

	outcome, err := tictactoe.ApplyHumanMove(session, cell)
	if err != nil {
		log.Debug("human move rejected", "cell", cell, "error", err)
		return nil, fmt.Errorf("failed to apply human move: %w", err)
	}

	log.Debug("human moved", "cell", cell, "board", session.Board.String())

	result := &TurnResult{
		Session:      session,
		HumanCell:    cell,
		ComputerCell: -1,
		Outcome:      outcome,
	}

	if !outcome.IsTerminal() && session.IsComputerTurn() {
		if err = that.computerTurn(result); err != nil {
			return nil, err
		}
	}

	if err = that.saveSession(ctx, session); err != nil {
		return nil, err
	}

	if result.Outcome.IsTerminal() {
		log.Info("game finished", "outcome", result.Outcome.String(), "board", session.Board.String())
	}

	return result, nil
}

// ComputerTurn - asks the computer to move in the stored session.
func (that *GameManager) ComputerTurn(ctx context.Context, id string) (*TurnResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.getSession(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &TurnResult{
		Session:      session,
		HumanCell:    -1,
		ComputerCell: -1,
		Outcome:      tictactoe.CurrentOutcome(session),
	}

	if err = that.computerTurn(result); err != nil {
		return nil, err
	}

	if err = that.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return result, nil
}

func (that *GameManager) GetSession(ctx context.Context, id string) (*entity.GameSession, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.getSession(ctx, id)
}

// EndSession - removes the stored session. A session that is already gone is not an error.
func (that *GameManager) EndSession(ctx context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	err := that.sessionRepo.DeleteByID(ctx, id)
	if err != nil && !errors.Is(err, apperror.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session ended", "session", id)

	return nil
}

func (that *GameManager) computerTurn(result *TurnResult) error {
	log := that.logger.With("method", "computerTurn", "session", result.Session.ID)

	cell, outcome, err := tictactoe.ApplyComputerMove(result.Session)
	if err != nil {
		if errors.Is(err, apperror.ErrNoLegalMove) {
			log.Error("computer asked to move on a terminal board", "board", result.Session.Board.String())
		}

		return fmt.Errorf("failed to apply computer move: %w", err)
	}

	log.Debug("computer moved", "cell", cell, "board", result.Session.Board.String())

	result.ComputerCell = cell
	result.Outcome = outcome

	return nil
}

func (that *GameManager) getSession(ctx context.Context, id string) (*entity.GameSession, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (that *GameManager) saveSession(ctx context.Context, session *entity.GameSession) error {
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}
