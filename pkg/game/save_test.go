package game

import (
	"os"
	"strings"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	p := NewPlayer(testWorld())
	p.TakeItem(1) // Key into inventory
	p.Go(1)       // into the Vault

	if err := p.Snapshot("worlds/castle.json").Save("last"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s, err := LoadSnapshot("last")
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if s.Document != "worlds/castle.json" {
		t.Errorf("document = %q", s.Document)
	}
	if s.CurrentRoom != "Vault" {
		t.Errorf("current room = %q, want Vault", s.CurrentRoom)
	}
	if len(s.Inventory) != 1 || s.Inventory[0] != "Key" {
		t.Errorf("inventory = %v, want [Key]", s.Inventory)
	}
}

func TestResume(t *testing.T) {
	// Resume against a fresh decode of the same world.
	gd := testWorld()
	s := &Snapshot{
		Document:    "castle.json",
		CurrentRoom: "Vault",
		Inventory:   []string{"Key"},
	}

	p, err := Resume(gd, s)
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if p.CurrentRoom.Name != "Vault" {
		t.Errorf("current room = %s, want Vault", p.CurrentRoom.Name)
	}
	if len(p.Inventory) != 1 || p.Inventory[0].Name != "Key" {
		t.Errorf("inventory = %v, want the Key", p.Inventory)
	}
	// The held Key must be gone from the Hall.
	if len(gd.Rooms[0].Items) != 0 {
		t.Errorf("Hall items = %v, want none", gd.Rooms[0].Items)
	}
}

func TestResumeUnknownNames(t *testing.T) {
	gd := testWorld()

	if _, err := Resume(gd, &Snapshot{CurrentRoom: "Attic"}); err == nil ||
		!strings.Contains(err.Error(), "`Attic`") {
		t.Errorf("expected unknown-room error, got %v", err)
	}

	if _, err := Resume(gd, &Snapshot{CurrentRoom: "Hall", Inventory: []string{"Sword"}}); err == nil ||
		!strings.Contains(err.Error(), "`Sword`") {
		t.Errorf("expected unknown-item error, got %v", err)
	}
}
