package entity

// Phase is the position of a session in the per-game state machine.
type Phase string

const (
	PhaseAwaitingPlayerChoice Phase = "awaiting_player_choice"
	PhaseInProgress           Phase = "in_progress"
	PhaseTerminal             Phase = "terminal"
)

// GameSession holds one human-vs-computer game. It is owned by the caller and
// passed explicitly to every game operation.
type GameSession struct {
	ID           string `json:"id"`
	Board        Board  `json:"board"`
	Turn         Mark   `json:"turn"`
	HumanMark    Mark   `json:"human_mark"`
	ComputerMark Mark   `json:"computer_mark"`
}

func NewGameSession(id string) *GameSession {
	return &GameSession{ID: id}
}

// Phase - derives the state machine position. Nothing but the seat binding and the board is consulted.
func (that *GameSession) Phase() Phase {
	if !that.HumanMark.IsPlayer() {
		return PhaseAwaitingPlayerChoice
	}

	if that.Board.Outcome().IsTerminal() {
		return PhaseTerminal
	}

	return PhaseInProgress
}

func (that *GameSession) IsHumanTurn() bool {
	return that.Turn == that.HumanMark
}

func (that *GameSession) IsComputerTurn() bool {
	return that.Turn == that.ComputerMark
}

// ToggleTurn passes the move to the other player.
func (that *GameSession) ToggleTurn() {
	that.Turn = that.Turn.Opponent()
}
