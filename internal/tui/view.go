package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func (m Model) View() string {
	sections := []string{titleStyle.Render("Tic-Tac-Toe")}

	if m.screen == screenChoice {
		sections = append(sections, m.renderChoice())
	} else {
		sections = append(sections, boardStyle.Render(m.renderBoard()), m.renderStatus())
	}

	if m.notice != "" {
		sections = append(sections, noticeStyle.Render(m.notice))
	}

	if m.err != nil {
		sections = append(sections, errorStyle.Render("Error: "+m.err.Error()))
	}

	if m.confirmQuit {
		sections = append(sections, modalStyle.Render("Are you sure you want to quit?"))
	}

	sections = append(sections, m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) renderChoice() string {
	options := make([]string, 0, 2)
	for _, mark := range []entity.Mark{entity.PlayerX, entity.PlayerO} {
		style := choiceStyle
		if mark == m.choice {
			style = chosenStyle
		}
		options = append(options, style.Render(renderMark(mark)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"Choose your mark. X always moves first.",
		lipgloss.JoinHorizontal(lipgloss.Center, options...),
	)
}

func (m Model) renderBoard() string {
	separator := gridStyle.Render("───┼───┼───")

	rows := make([]string, 0, 5)
	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			cells = append(cells, m.renderCell(row*3+col))
		}
		rows = append(rows, strings.Join(cells, gridStyle.Render("│")))

		if row < 2 {
			rows = append(rows, separator)
		}
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderCell(cell int) string {
	mark := m.session.Board[cell]

	text := " " + renderMark(mark) + " "
	if mark == entity.EmptyCell {
		text = subtleStyle.Render(fmt.Sprintf(" %d ", cell+1))
	} else if cell == m.lastComp {
		text = " " + lastMoveMark.Render(renderMark(mark)) + " "
	}

	if cell == m.cursor && !m.outcome.IsTerminal() {
		return cursorStyle.Render(text)
	}

	return text
}

func (m Model) renderStatus() string {
	human, computer := m.session.HumanMark, m.session.ComputerMark

	var status string
	switch {
	case m.outcome.IsWinFor(human):
		status = fmt.Sprintf("%s wins! You beat the computer.", human)
	case m.outcome.IsWinFor(computer):
		status = fmt.Sprintf("%s wins! The computer takes this one.", computer)
	case m.outcome.Status == entity.StatusTie:
		status = "It's a tie!"
	case m.busy:
		status = "The computer is thinking..."
	default:
		status = fmt.Sprintf("It's %s's turn. Pick a cell.", m.session.Turn)
	}

	lines := []string{statusStyle.Render(status)}

	if m.lastComp >= 0 && !m.outcome.IsWinFor(human) {
		lines = append(lines, subtleStyle.Render(fmt.Sprintf("Computer (%s) played cell %d.", computer, m.lastComp+1)))
	}

	if m.outcome.IsTerminal() {
		lines = append(lines, subtleStyle.Render("Press n for a new game."))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderHelp() string {
	switch {
	case m.confirmQuit:
		return m.help.View(confirmKeys{m.keys})
	case m.screen == screenChoice:
		return m.help.View(choiceKeys{m.keys})
	default:
		return m.help.View(boardKeys{m.keys})
	}
}

func renderMark(mark entity.Mark) string {
	switch mark {
	case entity.PlayerX:
		return markXStyle.Render("X")
	case entity.PlayerO:
		return markOStyle.Render("O")
	default:
		return " "
	}
}
