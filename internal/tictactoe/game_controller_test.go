package tictactoe

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func TestNewGame(t *testing.T) {
	t.Run("Human plays X", func(t *testing.T) {
		// Given: a session left over from a finished game
		session := &entity.GameSession{
			ID:    "123",
			Board: entity.Board{x, x, x, o, o},
			Turn:  o,
		}

		// When: a new game starts with the human on X
		err := NewGame(session, x)
		require.NoError(t, err)

		// Then: the board is empty, X moves first and the computer holds O
		expected := &entity.GameSession{
			ID:           "123",
			Board:        entity.Board{},
			Turn:         x,
			HumanMark:    x,
			ComputerMark: o,
		}
		require.Equal(t, expected, session)
		assert.Equal(t, entity.PhaseInProgress, CurrentPhase(session))
	})

	t.Run("Human plays O", func(t *testing.T) {
		// Given: a fresh session
		session := entity.NewGameSession("123")

		// When: the human chooses O
		err := NewGame(session, o)
		require.NoError(t, err)

		// Then: the computer holds X and it is the computer's turn
		assert.Equal(t, x, session.ComputerMark)
		assert.True(t, session.IsComputerTurn())
	})

	t.Run("Error on invalid mark", func(t *testing.T) {
		// Given: a fresh session
		session := entity.NewGameSession("123")

		// When: the empty mark is chosen
		err := NewGame(session, e)

		// Then: ErrInvalidMark is returned and the session still waits for a choice
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
		assert.Equal(t, entity.PhaseAwaitingPlayerChoice, CurrentPhase(session))
	})
}

func TestApplyHumanMove(t *testing.T) {
	t.Run("Applies move and passes the turn", func(t *testing.T) {
		// Given: a new game with the human on X
		session := newSession(t, x)

		// When: the human plays the center
		outcome, err := ApplyHumanMove(session, 4)

		// Then: the move is on the board and it is O's turn
		require.NoError(t, err)
		assert.Equal(t, entity.InProgress(), outcome)
		assert.Equal(t, x, session.Board[4])
		assert.Equal(t, o, session.Turn)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: the human played 0 and the computer answered
		session := newSession(t, x)
		_, err := ApplyHumanMove(session, 0)
		require.NoError(t, err)
		_, _, err = ApplyComputerMove(session)
		require.NoError(t, err)
		before := *session

		// When: the human plays 0 again
		_, err = ApplyHumanMove(session, 0)

		// Then: ErrInvalidMove is returned and the session is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *session)
	})

	t.Run("Error on invalid cell", func(t *testing.T) {
		session := newSession(t, x)

		_, err := ApplyHumanMove(session, 9)

		require.ErrorIs(t, err, apperror.ErrInvalidCell)
		assert.Equal(t, x, session.Turn)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: the human chose O, so X belongs to the computer
		session := newSession(t, o)

		// When: the human tries to move first
		_, err := ApplyHumanMove(session, 0)

		// Then: ErrNotYourTurn is returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.Board{}, session.Board)
	})

	t.Run("Error before a mark is chosen", func(t *testing.T) {
		session := entity.NewGameSession("123")

		_, err := ApplyHumanMove(session, 0)

		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Error on move after game finished", func(t *testing.T) {
		// Given: X already won
		session := newSession(t, x)
		session.Board = entity.Board{x, x, x, o, o}
		session.Turn = o

		// When: another move is attempted
		outcome, err := ApplyHumanMove(session, 8)

		// Then: ErrGameFinished is returned and the outcome is still X's win
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, entity.WinFor(x), outcome)
	})
}

func TestApplyComputerMove(t *testing.T) {
	t.Run("Computer opens as X", func(t *testing.T) {
		// Given: the human chose O
		session := newSession(t, o)

		// When: the computer moves
		cell, outcome, err := ApplyComputerMove(session)

		// Then: the first cell is taken, the game goes on and it is the human's turn
		require.NoError(t, err)
		assert.Equal(t, 0, cell)
		assert.Equal(t, entity.InProgress(), outcome)
		assert.Equal(t, x, session.Board[cell])
		assert.True(t, session.IsHumanTurn())
	})

	t.Run("Computer answers center with a corner", func(t *testing.T) {
		// Given: the human took the center as X
		session := newSession(t, x)
		_, err := ApplyHumanMove(session, 4)
		require.NoError(t, err)

		// When: the computer replies
		cell, _, err := ApplyComputerMove(session)

		// Then: a corner is chosen
		require.NoError(t, err)
		assert.Contains(t, []int{0, 2, 6, 8}, cell)
	})

	t.Run("Error when it is the human's turn", func(t *testing.T) {
		session := newSession(t, x)

		_, _, err := ApplyComputerMove(session)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Error on terminal board", func(t *testing.T) {
		// Given: a tied board with the computer formally to move
		session := newSession(t, x)
		session.Board = entity.Board{
			x, o, x,
			o, x, o,
			o, x, o,
		}
		session.Turn = o

		// When: the computer is asked to move
		cell, outcome, err := ApplyComputerMove(session)

		// Then: ErrNoLegalMove is returned
		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
		assert.Equal(t, -1, cell)
		assert.Equal(t, entity.Tie(), outcome)
	})

	t.Run("Error before a mark is chosen", func(t *testing.T) {
		_, _, err := ApplyComputerMove(entity.NewGameSession("123"))

		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})
}

func TestBoardSnapshot(t *testing.T) {
	// Given: a game with one move
	session := newSession(t, x)
	_, err := ApplyHumanMove(session, 4)
	require.NoError(t, err)

	// When: a snapshot is taken and then modified
	snapshot := BoardSnapshot(session)
	snapshot[0] = o

	// Then: the session board did not change
	expected := entity.Board{e, e, e, e, x, e, e, e, e}
	if diff := cmp.Diff(expected, session.Board); diff != "" {
		t.Fatalf("session board changed (-want +got):\n%s", diff)
	}
}

func TestFullGame_ComputerNeverLoses(t *testing.T) {
	// Given: a human that always takes the first free cell
	session := newSession(t, x)

	// When: the game is played to the end
	for CurrentPhase(session) == entity.PhaseInProgress {
		outcome, err := ApplyHumanMove(session, session.Board.EmptyCells()[0])
		require.NoError(t, err)

		if outcome.IsTerminal() {
			break
		}

		_, _, err = ApplyComputerMove(session)
		require.NoError(t, err)
	}

	// Then: the game is over and X did not win
	outcome := CurrentOutcome(session)
	require.True(t, outcome.IsTerminal())
	assert.False(t, outcome.IsWinFor(x))
}

func newSession(t *testing.T, human entity.Mark) *entity.GameSession {
	t.Helper()

	session := entity.NewGameSession("123")
	require.NoError(t, NewGame(session, human))

	return session
}
