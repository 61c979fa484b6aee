package chat

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is a single chat message in a generation conversation. The
// field layout follows Ollama's chat API.
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// Response is the assistant reply returned by an LLM service.
type Response struct {
	Message string `json:"message,omitempty"`
}
