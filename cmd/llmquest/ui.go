package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/llm-quest/llmquest/pkg/game"
)

const helpText = `Available commands:
  rooms       Check the connections of the current room.
  items       Check the items of the current room.
  inventory   Check the inventory.
  go <idx>    Go to the room with index <idx> in the connections.
  take <idx>  Take the item with index <idx> from the current room.
  save        Save your progress.
  help, ?     Show this message.
  quit, exit  Exit the game.`

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	worldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // yellow
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

// GameUI is the BubbleTea model that runs the gameplay loop.
type GameUI struct {
	player   *game.Player
	document string

	viewport  viewport.Model
	textinput textinput.Model
	gameLog   []string
	ready     bool
	width     int
	height    int
	won       bool
}

func NewGameUI(player *game.Player, document string) *GameUI {
	ti := textinput.New()
	ti.Placeholder = "Type a command..."
	ti.Focus()
	ti.CharLimit = 80

	ui := &GameUI{
		player:    player,
		document:  document,
		textinput: ti,
	}
	ui.appendWorld(fmt.Sprintf("Objective: %s", player.Objective))
	ui.appendWorld(fmt.Sprintf("Starting room: %s", player.CurrentRoom))
	ui.appendWorld("")
	ui.appendWorld(helpText)
	return ui
}

func (ui *GameUI) Init() tea.Cmd {
	return textinput.Blink
}

func (ui *GameUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ui.width = msg.Width
		ui.height = msg.Height
		if !ui.ready {
			ui.viewport = viewport.New(msg.Width, msg.Height-4)
			ui.ready = true
		} else {
			ui.viewport.Width = msg.Width
			ui.viewport.Height = msg.Height - 4
		}
		ui.textinput.Width = msg.Width - 4
		ui.refresh()

	case tea.KeyMsg:
		if ui.won {
			return ui, tea.Quit
		}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return ui, tea.Quit
		case tea.KeyEnter:
			line := ui.textinput.Value()
			ui.textinput.Reset()
			if strings.TrimSpace(line) == "" {
				return ui, nil
			}
			return ui.execute(line)
		}
	}

	var tiCmd, vpCmd tea.Cmd
	ui.textinput, tiCmd = ui.textinput.Update(msg)
	ui.viewport, vpCmd = ui.viewport.Update(msg)
	return ui, tea.Batch(tiCmd, vpCmd)
}

func (ui *GameUI) execute(line string) (tea.Model, tea.Cmd) {
	ui.appendPlayer("> " + line)

	cmd, err := game.ParseCommand(line)
	if err != nil {
		ui.appendWorld(capitalizeError(err))
		ui.refresh()
		return ui, nil
	}

	switch cmd.Kind {
	case game.CommandRooms:
		ui.appendWorld(ui.player.CheckRooms())
	case game.CommandItems:
		ui.appendWorld(ui.player.CheckItems())
	case game.CommandInventory:
		ui.appendWorld(ui.player.CheckInventory())
	case game.CommandGo:
		ui.appendWorld(ui.player.Go(cmd.Index))
	case game.CommandTake:
		result, found := ui.player.TakeItem(cmd.Index)
		if found {
			ui.gameLog = append(ui.gameLog, winStyle.Render(wordwrap.String(result, ui.wrapWidth())))
			ui.appendWorld("Thanks for playing! Press any key to exit.")
			ui.won = true
		} else {
			ui.appendWorld(result)
		}
	case game.CommandHelp:
		ui.appendWorld(helpText)
	case game.CommandQuit:
		return ui, tea.Quit
	case game.CommandSave:
		if err := ui.player.Snapshot(ui.document).Save(lastSnapshotName); err != nil {
			ui.appendWorld(fmt.Sprintf("Failed to save progress: %v", err))
		} else {
			ui.appendWorld("Progress saved.")
		}
	}

	ui.refresh()
	return ui, nil
}

func (ui *GameUI) wrapWidth() int {
	if ui.width > 4 {
		return ui.width - 4
	}
	return 76
}

func (ui *GameUI) appendWorld(text string) {
	ui.gameLog = append(ui.gameLog, worldStyle.Render(wordwrap.String(text, ui.wrapWidth())))
}

func (ui *GameUI) appendPlayer(text string) {
	ui.gameLog = append(ui.gameLog, playerStyle.Render(text))
}

func (ui *GameUI) refresh() {
	if !ui.ready {
		return
	}
	ui.viewport.SetContent(strings.Join(ui.gameLog, "\n"))
	ui.viewport.GotoBottom()
}

func (ui *GameUI) View() string {
	if !ui.ready {
		return "Loading..."
	}
	title := titleStyle.Render("llmquest")
	if ui.document != "" {
		title += helpStyle.Render("  " + ui.document)
	}
	return fmt.Sprintf("%s\n%s\n%s\n%s",
		title,
		ui.viewport.View(),
		ui.textinput.View(),
		helpStyle.Render("enter: run command • esc: quit"))
}

func capitalizeError(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}
