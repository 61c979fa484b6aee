package decoder

import (
	"testing"

	"github.com/llm-quest/llmquest/pkg/game"
)

func TestResolverLinksExistingItem(t *testing.T) {
	r := newResolver()
	key := &game.Item{Name: "Key", Description: "d"}
	r.satisfyItem(key)

	room := &game.Room{Name: "A", Description: "d"}
	r.requestRequirement("Key", room)

	if len(room.Requirements) != 1 || room.Requirements[0] != key {
		t.Errorf("requirements = %v, want the existing Key", room.Requirements)
	}
	if len(r.requirementRequests) != 0 {
		t.Errorf("no request should be pending, got %v", r.requirementRequests)
	}
}

func TestResolverQueuesUnknownItem(t *testing.T) {
	r := newResolver()
	roomA := &game.Room{Name: "A", Description: "d"}
	roomB := &game.Room{Name: "B", Description: "d"}
	r.requestRequirement("Key", roomA)
	r.requestRequirement("Key", roomB)

	key := &game.Item{Name: "Key", Description: "d"}
	r.satisfyItem(key)

	for _, room := range []*game.Room{roomA, roomB} {
		if len(room.Requirements) != 1 || room.Requirements[0] != key {
			t.Errorf("room %s requirements = %v, want the Key", room.Name, room.Requirements)
		}
	}
	if len(r.requirementRequests) != 0 {
		t.Errorf("requests should be drained, got %v", r.requirementRequests)
	}
}

func TestResolverOwnItemNeverRequired(t *testing.T) {
	r := newResolver()
	key := &game.Item{Name: "Key", Description: "d"}
	r.satisfyItem(key)

	room := &game.Room{Name: "A", Description: "d", Items: []*game.Item{key}}
	r.requestRequirement("Key", room)

	if len(room.Requirements) != 0 {
		t.Errorf("a room's own item must not become a requirement, got %v", room.Requirements)
	}
}

func TestResolverSelfConnectionDropped(t *testing.T) {
	r := newResolver()
	room := &game.Room{Name: "A", Description: "d"}
	r.requestConnection("A", room)

	if len(room.Connections) != 0 {
		t.Errorf("self connection should be dropped, got %v", room.Connections)
	}
	if len(r.connectionRequests) != 0 {
		t.Errorf("self connection should not be queued, got %v", r.connectionRequests)
	}
}

func TestResolverConnectionOrder(t *testing.T) {
	r := newResolver()
	roomA := &game.Room{Name: "A", Description: "d"}
	r.requestConnection("C", roomA)
	r.requestConnection("B", roomA)

	roomB := &game.Room{Name: "B", Description: "d"}
	roomC := &game.Room{Name: "C", Description: "d"}
	r.satisfyRoom(roomB)
	r.satisfyRoom(roomC)

	// Links land in declaration order of the referenced rooms.
	if len(roomA.Connections) != 2 || roomA.Connections[0] != roomB || roomA.Connections[1] != roomC {
		t.Errorf("connections = %v, want [B C]", roomA.Connections)
	}
}
