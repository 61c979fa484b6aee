// Package decoder turns raw JSON content documents into a validated,
// cross-referenced world graph. Decoding is a single bottom-up pass:
// the generic JSON tree is built first, then every object is classified
// against the known shapes and handed to the matching builder, deepest
// objects first. Name references between entities may point forward or
// backward in the document; the resolver links them either way.
package decoder

import (
	"encoding/json"
	"fmt"

	"github.com/llm-quest/llmquest/pkg/game"
)

// session holds all mutable decode state for one document: the entity
// registries, the pending-request tables, and the two uniqueness slots.
// A session is created per Decode call and discarded after it.
type session struct {
	*resolver

	objective    *game.Item
	startingRoom *game.Room
}

// Decode parses and validates a complete content document. Malformed
// JSON text surfaces as a wrapped encoding/json error; a well-formed
// document with illegal content surfaces as a *ContentError. There is
// no partial result: any violation aborts the whole decode.
func Decode(data []byte) (*game.GameData, error) {
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	s := &session{resolver: newResolver()}
	root, err := s.build(tree)
	if err != nil {
		return nil, err
	}
	gd, ok := root.(*game.GameData)
	if !ok {
		return nil, contentErrf("The top-level JSON value must be a root object.")
	}
	return gd, nil
}

// build walks the generic tree bottom-up, replacing every JSON object
// with the entity it classifies as. Array order is preserved; scalars
// pass through untouched.
func (s *session) build(value any) (any, error) {
	switch node := value.(type) {
	case map[string]any:
		built := make(map[string]any, len(node))
		for field, child := range node {
			childValue, err := s.build(child)
			if err != nil {
				return nil, err
			}
			built[field] = childValue
		}
		return s.buildObject(built)
	case []any:
		built := make([]any, len(node))
		for i, child := range node {
			childValue, err := s.build(child)
			if err != nil {
				return nil, err
			}
			built[i] = childValue
		}
		return built, nil
	default:
		return value, nil
	}
}

func (s *session) buildObject(obj map[string]any) (any, error) {
	shape, err := classifyShape(obj)
	if err != nil {
		return nil, err
	}
	switch shape {
	case shapeRoot:
		return s.buildRoot(obj)
	case shapeRoom:
		return s.buildRoom(obj)
	default:
		return s.buildItem(obj)
	}
}

func (s *session) buildItem(obj map[string]any) (*game.Item, error) {
	name, ok := obj["itemName"].(string)
	if !ok || name == "" {
		return nil, contentErrf("Each item must have a non-empty `itemName` string.")
	}
	description, ok := obj["itemDescription"].(string)
	if !ok || description == "" {
		return nil, contentErrf("Each item must have a non-empty `itemDescription` string.")
	}
	item := &game.Item{Name: name, Description: description}

	if raw, present := obj["itemObjective"]; present {
		objective, ok := raw.(bool)
		if !ok {
			return nil, contentErrf("In item `%s`, the field `itemObjective` must be a boolean.", name)
		}
		if objective {
			if s.objective != nil {
				return nil, contentErrf("There must be only one item with the `itemObjective` field set to `true`.")
			}
			s.objective = item
		}
	}

	s.satisfyItem(item)
	return item, nil
}

func (s *session) buildRoom(obj map[string]any) (*game.Room, error) {
	name, ok := obj["roomName"].(string)
	if !ok || name == "" {
		return nil, contentErrf("Each room must have a non-empty `roomName` string.")
	}
	description, ok := obj["roomDescription"].(string)
	if !ok || description == "" {
		return nil, contentErrf("Each room must have a non-empty `roomDescription` string.")
	}
	room := &game.Room{Name: name, Description: description}

	if raw, present := obj["roomStart"]; present {
		start, ok := raw.(bool)
		if !ok {
			return nil, contentErrf("In room `%s`, the field `roomStart` must be a boolean.", name)
		}
		if start {
			if s.startingRoom != nil {
				return nil, contentErrf("There must be only one room with the `roomStart` field set to `true`.")
			}
			s.startingRoom = room
		}
	}

	if raw, present := obj["roomItems"]; present {
		items, ok := raw.([]any)
		if !ok {
			return nil, contentErrf("In room `%s`, the field `roomItems` must be an array.", name)
		}
		for _, element := range items {
			item, ok := element.(*game.Item)
			if !ok {
				return nil, contentErrf("In room `%s`, in the field `roomItems`, each array element must be an item object.", name)
			}
			room.Items = append(room.Items, item)
		}
	}

	if raw, present := obj["roomRequirements"]; present {
		requirements, ok := raw.([]any)
		if !ok {
			return nil, contentErrf("In room `%s`, the field `roomRequirements` must be an array.", name)
		}
		for _, element := range requirements {
			itemName, ok := element.(string)
			if !ok || itemName == "" {
				return nil, contentErrf("In room `%s`, in the field `roomRequirements`, each array element must be a non-empty string.", name)
			}
			s.requestRequirement(itemName, room)
		}
	}

	if raw, present := obj["roomConnections"]; present {
		connections, ok := raw.([]any)
		if !ok {
			return nil, contentErrf("In room `%s`, the field `roomConnections` must be an array.", name)
		}
		for _, element := range connections {
			roomName, ok := element.(string)
			if !ok || roomName == "" {
				return nil, contentErrf("In room `%s`, in the field `roomConnections`, each array element must be a non-empty string.", name)
			}
			s.requestConnection(roomName, room)
		}
	}

	s.satisfyRoom(room)
	return room, nil
}

func (s *session) buildRoot(obj map[string]any) (*game.GameData, error) {
	raw, ok := obj["rooms"].([]any)
	if !ok || len(raw) == 0 {
		return nil, contentErrf("There must be a non-empty `rooms` array.")
	}
	rooms := make([]*game.Room, 0, len(raw))
	for _, element := range raw {
		room, ok := element.(*game.Room)
		if !ok {
			return nil, contentErrf("Each array element in `rooms` must be a room object.")
		}
		rooms = append(rooms, room)
	}
	if s.objective == nil {
		return nil, contentErrf("There must be at least one item with `itemObjective` field set to `true`.")
	}
	if s.startingRoom == nil {
		return nil, contentErrf("There must be at least one room with `roomStart` field set to `true`.")
	}
	return &game.GameData{
		Rooms:        rooms,
		Objective:    s.objective,
		StartingRoom: s.startingRoom,
	}, nil
}
