package mock

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

const echoPrefix = "Echo... "

// ContentPart is one piece of an output message.
type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// OutputMessage is a single assistant turn in the response envelope.
type OutputMessage struct {
	Type    string        `json:"type"`
	Role    string        `json:"role"`
	Content []ContentPart `json:"content"`
}

// Usage mirrors the Responses API token accounting. The mock never counts
// input tokens, so InputTokens stays zero.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Response is the create-response envelope.
type Response struct {
	ID      string          `json:"id"`
	Object  string          `json:"object"`
	Created int64           `json:"created"`
	Model   string          `json:"model"`
	Output  []OutputMessage `json:"output"`
	Usage   Usage           `json:"usage"`
}

// OutputText returns the text of the first output part, or "" for a response
// without one.
func (r Response) OutputText() string {
	if len(r.Output) == 0 || len(r.Output[0].Content) == 0 {
		return ""
	}
	return r.Output[0].Content[0].Text
}

// BuildResponse assembles the echo envelope for the given model and extracted
// text. Every call mints a fresh ID.
func BuildResponse(model, echo string) Response {
	text := echoPrefix + echo
	tokens := CountTokens(text)
	return Response{
		ID:      NewResponseID(),
		Object:  "responses",
		Created: time.Now().Unix(),
		Model:   model,
		Output: []OutputMessage{{
			Type:    "message",
			Role:    "assistant",
			Content: []ContentPart{{Type: "text", Text: text}},
		}},
		Usage: Usage{OutputTokens: tokens, TotalTokens: tokens},
	}
}

// NewResponseID returns "resp_" plus the 32 hex chars of a random UUID.
func NewResponseID() string {
	u := uuid.New()
	return "resp_" + hex.EncodeToString(u[:])
}

// CountTokens counts whitespace-separated tokens, the mock's stand-in for
// real tokenization.
func CountTokens(s string) int {
	return len(strings.Fields(s))
}
