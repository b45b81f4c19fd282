package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// Mark is the content of a single cell, and doubles as the player identity.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

// BoardSize is the number of cells on the 3x3 board.
const BoardSize = 9

// WinCombos - the 8 winning lines: rows, columns and diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// IsPlayer reports whether m is X or O.
func (m Mark) IsPlayer() bool {
	return m == PlayerX || m == PlayerO
}

// Opponent returns the other player. Empty stays empty.
func (m Mark) Opponent() Mark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Board is the 3x3 grid in row-major order.
type Board [BoardSize]Mark

// PlaceMark - puts the player's mark into an empty cell. The board is left untouched on error.
func (that *Board) PlaceMark(cell int, player Mark) error {
	if !player.IsPlayer() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, player)
	}

	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, apperror.ErrInvalidCell, cell)
	}

	if that[cell] != EmptyCell {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, apperror.ErrCellOccupied, cell)
	}

	that[cell] = player

	return nil
}

// IsWin reports whether the player owns a complete winning line.
func (that *Board) IsWin(player Mark) bool {
	for _, combo := range WinCombos {
		if that[combo[0]] == player && that[combo[1]] == player && that[combo[2]] == player {
			return true
		}
	}

	return false
}

// IsFull reports whether no empty cell is left.
func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Outcome - derives the game result from the board contents. X is checked first.
func (that *Board) Outcome() Outcome {
	switch {
	case that.IsWin(PlayerX):
		return WinFor(PlayerX)
	case that.IsWin(PlayerO):
		return WinFor(PlayerO)
	case that.IsFull():
		return Tie()
	default:
		return InProgress()
	}
}

// Reset clears every cell.
func (that *Board) Reset() {
	*that = Board{}
}

// EmptyCells returns the free cell indexes in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// String renders the board as three rows separated by slashes, e.g. "XO./.X./..O".
func (that Board) String() string {
	var sb strings.Builder

	for i, cell := range that {
		if i > 0 && i%3 == 0 {
			sb.WriteByte('/')
		}

		if cell == EmptyCell {
			sb.WriteByte('.')
			continue
		}

		sb.WriteString(string(cell))
	}

	return sb.String()
}
