package loader

// systemPrompt instructs the model to emit a content document matching
// the wire schema the decoder accepts. The example exercises forward
// references on purpose, so generated documents tend to use them too.
const systemPrompt = `You are a game designer for a small text adventure. ` +
	`Produce a single JSON object describing a world of rooms and items. ` +
	`Respond with JSON only, no commentary.

The JSON object must follow this schema exactly:
- The root object has one field, "rooms": a non-empty array of room objects.
- A room object has fields "roomName" (non-empty string), "roomDescription"
  (non-empty string), and optionally "roomStart" (boolean), "roomItems"
  (array of item objects), "roomRequirements" (array of item name strings
  needed to enter the room), "roomConnections" (array of room name strings
  reachable from the room).
- An item object has fields "itemName" (non-empty string), "itemDescription"
  (non-empty string), and optionally "itemObjective" (boolean).
- Exactly one room must have "roomStart" set to true.
- Exactly one item must have "itemObjective" set to true.
- Every name used in "roomRequirements" or "roomConnections" must be declared
  somewhere in the document.

Example:
{"rooms": [
  {"roomStart": true, "roomName": "Hallway", "roomDescription": "A dusty hallway",
   "roomConnections": ["Library"]},
  {"roomName": "Library", "roomDescription": "Shelves of old books",
   "roomItems": [{"itemObjective": true, "itemName": "Grimoire",
                  "itemDescription": "The book you came for"}],
   "roomConnections": ["Hallway"]}
]}`

const userPrompt = `Create a new world with 4 to 8 rooms, a few items, ` +
	`at least one locked room with requirements, and one objective item.`
