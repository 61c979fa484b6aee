package game

import (
	"fmt"
	"strings"
)

// Player tracks a single play-through of a decoded world. It mutates
// only room item lists (removal on pickup) and its own inventory; the
// rest of the graph stays untouched.
type Player struct {
	CurrentRoom *Room
	Objective   *Item
	Inventory   []*Item
}

// NewPlayer starts a play-through in the world's starting room.
func NewPlayer(gd *GameData) *Player {
	return &Player{
		CurrentRoom: gd.StartingRoom,
		Objective:   gd.Objective,
	}
}

// CheckRooms lists the connections of the current room, numbered from 1.
func (p *Player) CheckRooms() string {
	if len(p.CurrentRoom.Connections) == 0 {
		return "There are no connected rooms. You are stuck."
	}
	lines := make([]string, 0, len(p.CurrentRoom.Connections))
	for i, room := range p.CurrentRoom.Connections {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, room.Name))
	}
	return strings.Join(lines, "\n")
}

// CheckItems lists the items of the current room, numbered from 1.
func (p *Player) CheckItems() string {
	if len(p.CurrentRoom.Items) == 0 {
		return fmt.Sprintf("There are no items in `%s`.", p.CurrentRoom.Name)
	}
	lines := make([]string, 0, len(p.CurrentRoom.Items))
	for i, item := range p.CurrentRoom.Items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
	}
	return strings.Join(lines, "\n")
}

// CheckInventory lists the items the player is carrying.
func (p *Player) CheckInventory() string {
	if len(p.Inventory) == 0 {
		return "There are no items in the inventory."
	}
	lines := make([]string, 0, len(p.Inventory))
	for _, item := range p.Inventory {
		lines = append(lines, fmt.Sprintf("* %s", item))
	}
	return strings.Join(lines, "\n")
}

func (p *Player) holds(item *Item) bool {
	for _, held := range p.Inventory {
		if held == item {
			return true
		}
	}
	return false
}

// Go moves the player to the connection with the given 1-based index.
// Entry is refused unless every requirement item of the target room is
// already in the inventory.
func (p *Player) Go(idx int) string {
	if idx < 1 || idx > len(p.CurrentRoom.Connections) {
		return fmt.Sprintf("There is no connection with index %d.", idx)
	}
	next := p.CurrentRoom.Connections[idx-1]

	canGo := true
	itemNames := make([]string, 0, len(next.Requirements))
	for _, item := range next.Requirements {
		itemNames = append(itemNames, fmt.Sprintf("`%s`", item.Name))
		if !p.holds(item) {
			canGo = false
		}
	}
	if !canGo {
		return fmt.Sprintf("You can't go to `%s`, you need: %s.", next.Name, strings.Join(itemNames, ", "))
	}
	p.CurrentRoom = next
	return fmt.Sprintf("You went to: %s", p.CurrentRoom)
}

// TakeItem removes the item with the given 1-based index from the
// current room. The second return value is true when the taken item is
// the objective, which ends the game.
func (p *Player) TakeItem(idx int) (string, bool) {
	if idx < 1 || idx > len(p.CurrentRoom.Items) {
		return fmt.Sprintf("There is no item with index %d.", idx), false
	}
	item := p.CurrentRoom.Items[idx-1]
	p.CurrentRoom.Items = append(p.CurrentRoom.Items[:idx-1], p.CurrentRoom.Items[idx:]...)
	if item == p.Objective {
		return fmt.Sprintf("You found `%s`!", p.Objective.Name), true
	}
	p.Inventory = append(p.Inventory, item)
	return fmt.Sprintf("You took `%s`.", item.Name), false
}
