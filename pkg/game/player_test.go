package game

import (
	"strings"
	"testing"
)

// testWorld builds a small world by hand: Hall (start) -> Vault, the
// Vault requires the Key which sits in the Hall, and the Crown (the
// objective) sits in the Vault.
func testWorld() *GameData {
	key := &Item{Name: "Key", Description: "opens the vault"}
	crown := &Item{Name: "Crown", Description: "the prize"}

	hall := &Room{Name: "Hall", Description: "a big hall", Items: []*Item{key}}
	vault := &Room{Name: "Vault", Description: "a locked vault",
		Items: []*Item{crown}, Requirements: []*Item{key}}
	hall.Connections = []*Room{vault}
	vault.Connections = []*Room{hall}

	return &GameData{
		Rooms:        []*Room{hall, vault},
		Objective:    crown,
		StartingRoom: hall,
	}
}

func TestPlayerCheckRooms(t *testing.T) {
	p := NewPlayer(testWorld())
	got := p.CheckRooms()
	if got != "1. Vault" {
		t.Errorf("CheckRooms = %q, want %q", got, "1. Vault")
	}

	p.CurrentRoom = &Room{Name: "Pit", Description: "no exits"}
	if got := p.CheckRooms(); !strings.Contains(got, "stuck") {
		t.Errorf("CheckRooms without connections = %q", got)
	}
}

func TestPlayerCheckItems(t *testing.T) {
	p := NewPlayer(testWorld())
	got := p.CheckItems()
	if got != "1. Key - opens the vault." {
		t.Errorf("CheckItems = %q", got)
	}

	p.CurrentRoom.Items = nil
	if got := p.CheckItems(); !strings.Contains(got, "`Hall`") {
		t.Errorf("CheckItems in an empty room = %q", got)
	}
}

func TestPlayerCheckInventory(t *testing.T) {
	p := NewPlayer(testWorld())
	if got := p.CheckInventory(); !strings.Contains(got, "no items") {
		t.Errorf("empty inventory = %q", got)
	}

	p.TakeItem(1)
	if got := p.CheckInventory(); got != "* Key - opens the vault." {
		t.Errorf("CheckInventory = %q", got)
	}
}

func TestPlayerGoRequirements(t *testing.T) {
	p := NewPlayer(testWorld())

	// Vault requires the Key, which the player does not hold yet.
	got := p.Go(1)
	if !strings.Contains(got, "you need: `Key`") {
		t.Errorf("Go without requirements = %q", got)
	}
	if p.CurrentRoom.Name != "Hall" {
		t.Errorf("player moved despite missing requirement, now in %s", p.CurrentRoom.Name)
	}

	p.TakeItem(1) // pick up the Key
	got = p.Go(1)
	if !strings.Contains(got, "You went to") {
		t.Errorf("Go with requirements = %q", got)
	}
	if p.CurrentRoom.Name != "Vault" {
		t.Errorf("player is in %s, want Vault", p.CurrentRoom.Name)
	}
}

func TestPlayerGoInvalidIndex(t *testing.T) {
	p := NewPlayer(testWorld())
	for _, idx := range []int{0, 2, -1} {
		if got := p.Go(idx); !strings.Contains(got, "no connection with index") {
			t.Errorf("Go(%d) = %q", idx, got)
		}
	}
}

func TestPlayerTakeItem(t *testing.T) {
	p := NewPlayer(testWorld())

	msg, won := p.TakeItem(1)
	if won {
		t.Error("taking the Key should not win the game")
	}
	if !strings.Contains(msg, "`Key`") {
		t.Errorf("TakeItem = %q", msg)
	}
	if len(p.CurrentRoom.Items) != 0 {
		t.Errorf("Key should be removed from the room, items = %v", p.CurrentRoom.Items)
	}

	if msg, _ := p.TakeItem(1); !strings.Contains(msg, "no item with index") {
		t.Errorf("TakeItem from empty room = %q", msg)
	}
}

func TestPlayerWinsOnObjective(t *testing.T) {
	p := NewPlayer(testWorld())
	p.TakeItem(1)
	p.Go(1)

	msg, won := p.TakeItem(1)
	if !won {
		t.Error("taking the objective should win the game")
	}
	if !strings.Contains(msg, "`Crown`") {
		t.Errorf("win message = %q", msg)
	}
}
