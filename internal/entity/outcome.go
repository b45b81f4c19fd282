package entity

type OutcomeStatus string

const (
	StatusInProgress OutcomeStatus = "in_progress"
	StatusWin        OutcomeStatus = "win"
	StatusTie        OutcomeStatus = "tie"
)

// Outcome is the result of a position. Winner is set only for StatusWin.
type Outcome struct {
	Status OutcomeStatus `json:"status"`
	Winner Mark          `json:"winner,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Tie() Outcome {
	return Outcome{Status: StatusTie}
}

func WinFor(player Mark) Outcome {
	return Outcome{Status: StatusWin, Winner: player}
}

func (that Outcome) IsTerminal() bool {
	return that.Status == StatusWin || that.Status == StatusTie
}

func (that Outcome) IsWinFor(player Mark) bool {
	return that.Status == StatusWin && that.Winner == player
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWin:
		return string(that.Winner) + " wins"
	case StatusTie:
		return "tie"
	default:
		return "in progress"
	}
}
