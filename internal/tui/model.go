package tui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

type gameManager interface {
	StartGame(ctx context.Context, id string, humanMark entity.Mark) (*usecase.TurnResult, error)
	PlayTurn(ctx context.Context, id string, cell int) (*usecase.TurnResult, error)
	GetSession(ctx context.Context, id string) (*entity.GameSession, error)
}

type screen int

const (
	screenChoice screen = iota
	screenBoard
)

type (
	// turnMsg carries the result of a start or a move.
	turnMsg struct {
		result  *usecase.TurnResult
		err     error
		started bool
	}

	resumeMsg struct {
		session *entity.GameSession
		err     error
	}
)

// Model is the terminal front end. It only renders state and forwards input to the game manager.
type Model struct {
	ctx     context.Context
	logger  *slog.Logger
	manager gameManager

	keys keyMap
	help help.Model

	screen      screen
	sessionID   string
	choice      entity.Mark
	cursor      int
	session     entity.GameSession
	outcome     entity.Outcome
	lastHuman   int
	lastComp    int
	notice      string
	err         error
	busy        bool
	confirmQuit bool
	width       int
}

// New - builds the model. A non-empty sessionID is resumed when it is stored.
func New(ctx context.Context, logger *slog.Logger, manager gameManager, sessionID string, defaultMark entity.Mark) Model {
	if !defaultMark.IsPlayer() {
		defaultMark = entity.PlayerX
	}

	return Model{
		ctx:       ctx,
		logger:    logger.With("component", "tui"),
		manager:   manager,
		keys:      newKeyMap(),
		help:      help.New(),
		screen:    screenChoice,
		sessionID: sessionID,
		choice:    defaultMark,
		cursor:    4,
		lastHuman: -1,
		lastComp:  -1,
	}
}

// SessionID returns the id of the session the model played, empty if no game was started.
func (m Model) SessionID() string {
	return m.sessionID
}

func (m Model) Init() tea.Cmd {
	if m.sessionID == "" {
		return nil
	}

	return m.resumeCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case resumeMsg:
		return m.handleResume(msg), nil
	case turnMsg:
		return m.handleTurn(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Exit) {
		return m, tea.Quit
	}

	if m.confirmQuit {
		switch {
		case key.Matches(msg, m.keys.Yes):
			return m, tea.Quit
		case key.Matches(msg, m.keys.No):
			m.confirmQuit = false
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		m.confirmQuit = true
		return m, nil
	}

	if m.busy {
		return m, nil
	}

	if m.screen == screenChoice {
		return m.handleChoiceKey(msg)
	}

	return m.handleBoardKey(msg)
}

func (m Model) handleChoiceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PickX):
		return m.start(entity.PlayerX)
	case key.Matches(msg, m.keys.PickO):
		return m.start(entity.PlayerO)
	case key.Matches(msg, m.keys.Left, m.keys.Right, m.keys.Up, m.keys.Down):
		m.choice = m.choice.Opponent()
	case key.Matches(msg, m.keys.Place):
		return m.start(m.choice)
	}

	return m, nil
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NewGame):
		m.screen = screenChoice
		m.notice = ""
		m.err = nil
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + 6) % entity.BoardSize
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 3) % entity.BoardSize
	case key.Matches(msg, m.keys.Left):
		m.cursor = m.cursor/3*3 + (m.cursor+2)%3
	case key.Matches(msg, m.keys.Right):
		m.cursor = m.cursor/3*3 + (m.cursor+1)%3
	case key.Matches(msg, m.keys.Place):
		return m.play(m.cursor)
	case key.Matches(msg, m.keys.Cell):
		m.cursor = int(msg.Runes[0] - '1')
		return m.play(m.cursor)
	}

	return m, nil
}

func (m Model) start(mark entity.Mark) (tea.Model, tea.Cmd) {
	m.choice = mark
	m.busy = true
	m.notice = ""
	m.err = nil

	ctx, manager, id := m.ctx, m.manager, m.sessionID

	return m, func() tea.Msg {
		result, err := manager.StartGame(ctx, id, mark)
		return turnMsg{result: result, err: err, started: true}
	}
}

func (m Model) play(cell int) (tea.Model, tea.Cmd) {
	if m.outcome.IsTerminal() {
		m.notice = "The game is over. Press n for a new game."
		return m, nil
	}

	m.busy = true
	m.notice = ""

	ctx, manager, id := m.ctx, m.manager, m.sessionID

	return m, func() tea.Msg {
		result, err := manager.PlayTurn(ctx, id, cell)
		return turnMsg{result: result, err: err}
	}
}

func (m Model) resumeCmd() tea.Cmd {
	ctx, manager, id := m.ctx, m.manager, m.sessionID

	return func() tea.Msg {
		session, err := manager.GetSession(ctx, id)
		return resumeMsg{session: session, err: err}
	}
}

func (m Model) handleTurn(msg turnMsg) Model {
	m.busy = false

	if msg.err != nil {
		switch {
		case errors.Is(msg.err, apperror.ErrCellOccupied):
			m.notice = "That cell is already taken."
		case errors.Is(msg.err, apperror.ErrInvalidMove):
			m.notice = "That is not a valid cell."
		case errors.Is(msg.err, apperror.ErrGameFinished):
			m.notice = "The game is over. Press n for a new game."
		default:
			m.logger.Error("game manager failed", "error", msg.err)
			m.err = msg.err
		}
		return m
	}

	result := msg.result
	if msg.started {
		m.screen = screenBoard
		m.cursor = 4
	}

	m.sessionID = result.Session.ID
	m.session = *result.Session
	m.outcome = result.Outcome
	m.lastHuman = result.HumanCell
	m.lastComp = result.ComputerCell

	return m
}

func (m Model) handleResume(msg resumeMsg) Model {
	if msg.err != nil {
		if !errors.Is(msg.err, apperror.ErrSessionNotFound) {
			m.logger.Error("failed to resume session", "session", m.sessionID, "error", msg.err)
			m.err = msg.err
		}
		return m
	}

	if msg.session.Phase() == entity.PhaseAwaitingPlayerChoice {
		return m
	}

	m.session = *msg.session
	m.choice = m.session.HumanMark
	m.outcome = m.session.Board.Outcome()
	m.screen = screenBoard
	m.notice = "Resumed your last game."

	return m
}
