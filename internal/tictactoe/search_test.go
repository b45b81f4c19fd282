package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestBestMove_Scenarios(t *testing.T) {
	t.Run("Answers a center opening with a corner", func(t *testing.T) {
		// Given: X took the center
		board := entity.Board{
			e, e, e,
			e, x, e,
			e, e, e,
		}

		// When: O looks for the best reply
		cell, err := BestMove(board, o)

		// Then: a corner is chosen
		require.NoError(t, err)
		assert.Contains(t, []int{0, 2, 6, 8}, cell)
	})

	t.Run("Blocks the open row", func(t *testing.T) {
		// Given: X holds 0 and 1, O holds 3 and 4
		board := entity.Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}

		// When: O looks for the best move
		cell, err := BestMove(board, o)

		// Then: cell 2 is taken, it blocks X and forks O
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Takes the winning cell", func(t *testing.T) {
		// Given: X can complete the left column, O has no line
		board := entity.Board{
			x, o, e,
			x, o, e,
			e, x, o,
		}

		// When: X searches
		decision, err := Search(board, x)

		// Then: X plays 6 and scores a win
		require.NoError(t, err)
		assert.Equal(t, 6, decision.Cell)
		assert.Equal(t, scoreWin, decision.Score)
	})

	t.Run("Opening position is a draw for either side", func(t *testing.T) {
		for _, computer := range []entity.Mark{x, o} {
			// When: the computer searches the empty board
			decision, err := Search(entity.Board{}, computer)

			// Then: every cell draws, so the first one is chosen
			require.NoError(t, err)
			assert.Equal(t, scoreTie, decision.Score)
			assert.Equal(t, 0, decision.Cell)
			assert.Positive(t, decision.Nodes)
		}
	})
}

func TestBestMove_Errors(t *testing.T) {
	t.Run("Full board has no legal move", func(t *testing.T) {
		// Given: a tied board
		board := entity.Board{
			x, o, x,
			o, x, o,
			o, x, o,
		}

		// When: a move is requested
		cell, err := BestMove(board, o)

		// Then: ErrNoLegalMove is returned
		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
		assert.Equal(t, -1, cell)
	})

	t.Run("Decided board has no legal move", func(t *testing.T) {
		// Given: X already won with free cells left
		board := entity.Board{x, x, x, o, o}

		// When: a move is requested
		_, err := BestMove(board, o)

		// Then: ErrNoLegalMove is returned
		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
	})

	t.Run("Empty mark is rejected", func(t *testing.T) {
		_, err := BestMove(entity.Board{}, e)

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestBestMove_Deterministic(t *testing.T) {
	// Given: a mid-game board
	board := entity.Board{
		x, e, e,
		e, o, e,
		e, e, x,
	}
	before := board

	// When: the same position is searched repeatedly
	first, err := BestMove(board, o)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		cell, err := BestMove(board, o)
		require.NoError(t, err)

		// Then: the same cell comes back every time
		assert.Equal(t, first, cell)
	}

	// Then: the caller's board is untouched
	assert.Equal(t, before, board)

	// Then: an edge is chosen, a corner would lose to the fork
	assert.Contains(t, []int{1, 3, 5, 7}, first)
}

func TestBestMove_NeverLoses(t *testing.T) {
	for _, computer := range []entity.Mark{o, x} {
		t.Run("computer plays "+string(computer), func(t *testing.T) {
			// Given: every sequence of human moves from the empty board
			// When: the computer answers each position with its best move
			// Then: the human never wins
			games := playAllLines(t, entity.Board{}, computer, x)
			assert.Positive(t, games)
		})
	}
}

// playAllLines walks every human reply against the computer's choices and returns the number of finished games.
func playAllLines(t *testing.T, board entity.Board, computer, toMove entity.Mark) int {
	t.Helper()

	outcome := board.Outcome()
	if outcome.IsTerminal() {
		require.False(t, outcome.IsWinFor(computer.Opponent()), "computer %s lost on %s", computer, board)
		return 1
	}

	if toMove == computer {
		cell, err := BestMove(board, computer)
		require.NoError(t, err)
		require.NoError(t, board.PlaceMark(cell, computer))

		return playAllLines(t, board, computer, toMove.Opponent())
	}

	games := 0
	for _, cell := range board.EmptyCells() {
		next := board
		require.NoError(t, next.PlaceMark(cell, toMove))
		games += playAllLines(t, next, computer, toMove.Opponent())
	}

	return games
}
