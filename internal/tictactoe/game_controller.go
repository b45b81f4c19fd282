package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// NewGame - resets the session and seats the human. The computer takes the other mark and X always starts.
func NewGame(session *entity.GameSession, humanMark entity.Mark) error {
	if !humanMark.IsPlayer() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, humanMark)
	}

	session.Board.Reset()
	session.Turn = entity.PlayerX
	session.HumanMark = humanMark
	session.ComputerMark = humanMark.Opponent()

	return nil
}

// ApplyHumanMove - places the human's mark and returns the resulting outcome.
func ApplyHumanMove(session *entity.GameSession, cell int) (entity.Outcome, error) {
	if err := confirmOngoing(session); err != nil {
		return session.Board.Outcome(), err
	}

	if !session.IsHumanTurn() {
		return session.Board.Outcome(), apperror.ErrNotYourTurn
	}

	return makeTurn(session, cell)
}

// ApplyComputerMove - searches for the best cell, places the computer's mark there
// and returns the chosen cell with the resulting outcome.
func ApplyComputerMove(session *entity.GameSession) (int, entity.Outcome, error) {
	switch session.Phase() {
	case entity.PhaseAwaitingPlayerChoice:
		return -1, session.Board.Outcome(), apperror.ErrGameIsNotStarted
	case entity.PhaseTerminal:
		return -1, session.Board.Outcome(), apperror.ErrNoLegalMove
	}

	if !session.IsComputerTurn() {
		return -1, session.Board.Outcome(), apperror.ErrNotYourTurn
	}

	cell, err := BestMove(session.Board, session.ComputerMark)
	if err != nil {
		return -1, session.Board.Outcome(), fmt.Errorf("failed to find computer move: %w", err)
	}

	outcome, err := makeTurn(session, cell)
	if err != nil {
		return -1, outcome, fmt.Errorf("failed to apply computer move: %w", err)
	}

	return cell, outcome, nil
}

func CurrentOutcome(session *entity.GameSession) entity.Outcome {
	return session.Board.Outcome()
}

// BoardSnapshot returns a copy of the board for rendering.
func BoardSnapshot(session *entity.GameSession) entity.Board {
	return session.Board
}

func CurrentPhase(session *entity.GameSession) entity.Phase {
	return session.Phase()
}

// makeTurn - places the mark of the player to move and passes the turn on.
func makeTurn(session *entity.GameSession, cell int) (entity.Outcome, error) {
	if err := session.Board.PlaceMark(cell, session.Turn); err != nil {
		return session.Board.Outcome(), err
	}

	session.ToggleTurn()

	return session.Board.Outcome(), nil
}

func confirmOngoing(session *entity.GameSession) error {
	switch session.Phase() {
	case entity.PhaseAwaitingPlayerChoice:
		return apperror.ErrGameIsNotStarted
	case entity.PhaseTerminal:
		return apperror.ErrGameFinished
	default:
		return nil
	}
}
