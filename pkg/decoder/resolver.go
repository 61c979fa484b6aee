package decoder

import "github.com/llm-quest/llmquest/pkg/game"

// resolver links name references to entities regardless of whether the
// referenced entity is declared before or after the reference. A name
// that is not registered yet is parked in a pending-request table and
// linked when (if ever) an entity with that name arrives. Requests that
// are never satisfied are dropped without error.
type resolver struct {
	items map[string]*game.Item
	rooms map[string]*game.Room

	requirementRequests map[string][]*game.Room
	connectionRequests  map[string][]*game.Room
}

func newResolver() *resolver {
	return &resolver{
		items:               make(map[string]*game.Item),
		rooms:               make(map[string]*game.Room),
		requirementRequests: make(map[string][]*game.Room),
		connectionRequests:  make(map[string][]*game.Room),
	}
}

// requestRequirement links the named item into room.Requirements if it
// already exists and is not one of the room's own items. Otherwise the
// request is parked; a room's own items never become requirements.
func (r *resolver) requestRequirement(itemName string, room *game.Room) {
	if existing, ok := r.items[itemName]; ok && !roomHolds(room, existing) {
		room.Requirements = append(room.Requirements, existing)
		return
	}
	r.requirementRequests[itemName] = append(r.requirementRequests[itemName], room)
}

// requestConnection links the named room into room.Connections if it
// already exists. A room naming itself is dropped entirely.
func (r *resolver) requestConnection(roomName string, room *game.Room) {
	if existing, ok := r.rooms[roomName]; ok {
		room.Connections = append(room.Connections, existing)
		return
	}
	if roomName != room.Name {
		r.connectionRequests[roomName] = append(r.connectionRequests[roomName], room)
	}
}

// satisfyItem registers a freshly built item and links every room that
// was waiting on its name.
func (r *resolver) satisfyItem(item *game.Item) {
	for _, requester := range r.requirementRequests[item.Name] {
		requester.Requirements = append(requester.Requirements, item)
	}
	delete(r.requirementRequests, item.Name)
	r.items[item.Name] = item
}

// satisfyRoom registers a freshly built room and links every room that
// declared a connection to its name before it existed.
func (r *resolver) satisfyRoom(room *game.Room) {
	for _, requester := range r.connectionRequests[room.Name] {
		requester.Connections = append(requester.Connections, room)
	}
	delete(r.connectionRequests, room.Name)
	r.rooms[room.Name] = room
}

func roomHolds(room *game.Room, item *game.Item) bool {
	for _, held := range room.Items {
		if held == item {
			return true
		}
	}
	return false
}
