package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	scoreLoss = -1
	scoreTie  = 0
	scoreWin  = 1
)

// Decision is the result of a full minimax search.
type Decision struct {
	Cell  int
	Score int
	Nodes int
}

// BestMove - returns the optimal cell for the computer playing the given mark.
// Candidates are tried from cell 0 to 8 and the first one with the highest score wins.
func BestMove(board entity.Board, computer entity.Mark) (int, error) {
	decision, err := Search(board, computer)
	if err != nil {
		return -1, err
	}

	return decision.Cell, nil
}

// Search runs the exhaustive minimax search and reports the chosen cell with its score.
// The board is taken by value; the caller's board is never modified.
func Search(board entity.Board, computer entity.Mark) (Decision, error) {
	if !computer.IsPlayer() {
		return Decision{Cell: -1}, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, computer)
	}

	if board.Outcome().IsTerminal() {
		return Decision{Cell: -1}, fmt.Errorf("%w: board %s", apperror.ErrNoLegalMove, board)
	}

	s := &searcher{
		board:    board,
		computer: computer,
		human:    computer.Opponent(),
	}

	best := Decision{Cell: -1, Score: math.MinInt}
	for cell := range s.board {
		if s.board[cell] != entity.EmptyCell {
			continue
		}

		s.board[cell] = computer
		score := s.minimax(false)
		s.board[cell] = entity.EmptyCell

		if score > best.Score {
			best.Cell = cell
			best.Score = score
		}
	}

	best.Nodes = s.nodes

	return best, nil
}

// searcher explores hypothetical positions on its own board by placing a mark and undoing it.
type searcher struct {
	board    entity.Board
	computer entity.Mark
	human    entity.Mark
	nodes    int
}

func (that *searcher) minimax(maximizing bool) int {
	that.nodes++

	switch outcome := that.board.Outcome(); {
	case outcome.IsWinFor(that.computer):
		return scoreWin
	case outcome.IsWinFor(that.human):
		return scoreLoss
	case outcome.Status == entity.StatusTie:
		return scoreTie
	}

	mover, best := that.human, math.MaxInt
	if maximizing {
		mover, best = that.computer, math.MinInt
	}

	for cell := range that.board {
		if that.board[cell] != entity.EmptyCell {
			continue
		}

		that.board[cell] = mover
		score := that.minimax(!maximizing)
		that.board[cell] = entity.EmptyCell

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
