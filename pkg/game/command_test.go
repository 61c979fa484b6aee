package game

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"rooms", Command{Kind: CommandRooms}},
		{"  items  ", Command{Kind: CommandItems}},
		{"INVENTORY", Command{Kind: CommandInventory}},
		{"go 2", Command{Kind: CommandGo, Index: 2}},
		{"Take 1", Command{Kind: CommandTake, Index: 1}},
		{"help", Command{Kind: CommandHelp}},
		{"?", Command{Kind: CommandHelp}},
		{"quit", Command{Kind: CommandQuit}},
		{"EXIT", Command{Kind: CommandQuit}},
		{"save", Command{Kind: CommandSave}},
		// Case folding, not just ASCII lowering: U+212A KELVIN SIGN
		// folds to "k".
		{"taKe 1", Command{Kind: CommandTake, Index: 1}},
	}

	for _, tc := range tests {
		got, err := ParseCommand(tc.input)
		if err != nil {
			t.Errorf("ParseCommand(%q) failed: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCommand(%q) = %+v, want %+v", tc.input, got, tc.want)
		}
	}
}

func TestParseCommandErrors(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"dance",
		"go",
		"go zero",
		"go 0",
		"take -1",
	}
	for _, input := range inputs {
		if _, err := ParseCommand(input); err == nil {
			t.Errorf("ParseCommand(%q) should fail", input)
		}
	}
}
