package game

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// CommandKind identifies one of the player commands.
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandRooms
	CommandItems
	CommandInventory
	CommandGo
	CommandTake
	CommandHelp
	CommandQuit
	CommandSave
)

// Command is a parsed player input line. Index is set only for the
// go/take commands and is always >= 1.
type Command struct {
	Kind  CommandKind
	Index int
}

// ParseCommand tokenizes and case-folds a raw input line. Indexed
// commands with a missing or invalid index return an error rather than
// CommandUnknown, so the caller can show a usage hint.
func ParseCommand(input string) (Command, error) {
	// A Caser is stateful, so build one per call.
	words := strings.Fields(cases.Fold().String(input))
	if len(words) == 0 {
		return Command{}, fmt.Errorf("command is not recognized")
	}

	switch words[0] {
	case "rooms":
		return Command{Kind: CommandRooms}, nil
	case "items":
		return Command{Kind: CommandItems}, nil
	case "inventory":
		return Command{Kind: CommandInventory}, nil
	case "help", "?":
		return Command{Kind: CommandHelp}, nil
	case "quit", "exit":
		return Command{Kind: CommandQuit}, nil
	case "save":
		return Command{Kind: CommandSave}, nil
	case "go", "take":
		kind := CommandGo
		if words[0] == "take" {
			kind = CommandTake
		}
		if len(words) < 2 {
			return Command{}, fmt.Errorf("provide a valid index >= 1")
		}
		idx, err := strconv.Atoi(words[1])
		if err != nil || idx < 1 {
			return Command{}, fmt.Errorf("provide a valid index >= 1")
		}
		return Command{Kind: kind, Index: idx}, nil
	}
	return Command{}, fmt.Errorf("command is not recognized")
}
