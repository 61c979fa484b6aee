package game

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SaveDir is where play-through snapshots are written.
const SaveDir = ".saves"

// Snapshot captures a player's progress by name, so it can be re-bound
// against a freshly decoded copy of the same document.
type Snapshot struct {
	Document    string   `yaml:"document"` // Filename of the decoded document
	CurrentRoom string   `yaml:"current_room"`
	Inventory   []string `yaml:"inventory,omitempty"`
}

// Snapshot records the player's current progress.
func (p *Player) Snapshot(document string) *Snapshot {
	names := make([]string, 0, len(p.Inventory))
	for _, item := range p.Inventory {
		names = append(names, item.Name)
	}
	return &Snapshot{
		Document:    document,
		CurrentRoom: p.CurrentRoom.Name,
		Inventory:   names,
	}
}

// Save writes the snapshot under SaveDir as YAML.
func (s *Snapshot) Save(name string) error {
	if err := os.MkdirAll(SaveDir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(SaveDir, name+".yaml"), data, 0644)
}

// LoadSnapshot reads a snapshot previously written by Save.
func LoadSnapshot(name string) (*Snapshot, error) {
	data, err := os.ReadFile(filepath.Join(SaveDir, name+".yaml"))
	if err != nil {
		return nil, err
	}
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Resume re-binds a snapshot against a decoded world. Every name in
// the snapshot must still resolve; items held in the snapshot are
// removed from their rooms so the world matches the recorded progress.
func Resume(gd *GameData, s *Snapshot) (*Player, error) {
	rooms := make(map[string]*Room, len(gd.Rooms))
	items := make(map[string]*Item)
	holders := make(map[string]*Room)
	for _, room := range gd.Rooms {
		rooms[room.Name] = room
		for _, item := range room.Items {
			items[item.Name] = item
			holders[item.Name] = room
		}
	}

	current, ok := rooms[s.CurrentRoom]
	if !ok {
		return nil, fmt.Errorf("snapshot room `%s` does not exist in the document", s.CurrentRoom)
	}

	p := &Player{
		CurrentRoom: current,
		Objective:   gd.Objective,
	}
	for _, name := range s.Inventory {
		item, ok := items[name]
		if !ok {
			return nil, fmt.Errorf("snapshot item `%s` does not exist in the document", name)
		}
		room := holders[name]
		for i, held := range room.Items {
			if held == item {
				room.Items = append(room.Items[:i], room.Items[i+1:]...)
				break
			}
		}
		p.Inventory = append(p.Inventory, item)
	}
	return p, nil
}
