package game

import "fmt"

// Item is a collectible object placed in a room. Items are immutable
// once the decoder has built them.
type Item struct {
	Name        string // Unique across the document
	Description string
}

func (i *Item) String() string {
	return fmt.Sprintf("%s - %s.", i.Name, i.Description)
}

// Room is a location in the world. Items is owned by the room and
// shrinks as the player picks things up. Requirements and Connections
// hold references into the document-wide entity registries; they are
// fixed after decode.
type Room struct {
	Name         string // Unique across the document
	Description  string
	Items        []*Item
	Requirements []*Item // Items the player must hold to enter
	Connections  []*Room // Rooms reachable from this one
}

func (r *Room) String() string {
	return fmt.Sprintf("%s - %s.", r.Name, r.Description)
}

// GameData is the decoded world: the full room collection plus the
// two singled-out entities every document must declare.
type GameData struct {
	Rooms        []*Room
	Objective    *Item // Taking this item wins the game
	StartingRoom *Room
}
