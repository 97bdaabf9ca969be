package ai

// Chat-completion wire types for the OpenAI-compatible backend.

// Message roles used by gitie. Every request carries exactly one system
// and one user message.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one chat message on the wire.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the body POSTed to the chat-completions endpoint. Stream is
// always false: gitie wants one complete response.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Stream      bool      `json:"stream"`
}

// Choice is one completion alternative in a response.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage reports token accounting from the backend.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the parsed chat-completion response. A well-formed response
// has at least one choice; callers treat anything else as an error.
type Response struct {
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}
