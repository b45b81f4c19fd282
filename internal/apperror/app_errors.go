package apperror

import "errors"

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidMark      = errors.New("invalid player mark")
	ErrNoLegalMove      = errors.New("no legal move")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrSessionNotFound  = errors.New("session not found")
)
