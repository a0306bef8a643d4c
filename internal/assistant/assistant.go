// Package assistant turns free-form chat messages into calendar actions.
// An Oracle is the language model behind the chat endpoint; it either
// answers in plain text or asks for one of the declared tool calls, which
// the API layer then executes against the database.
package assistant

import (
	"context"
	"time"
)

// FunctionCall is a tool invocation requested by the model. Args holds
// the raw argument object as decoded JSON.
type FunctionCall struct {
	Name string
	Args map[string]any
}

// Reply is one model turn: either Text is set, or Call is.
type Reply struct {
	Text string
	Call *FunctionCall
}

// Oracle answers a single user message. The current time is passed along
// so relative phrases like "tomorrow at noon" resolve correctly.
type Oracle interface {
	Chat(ctx context.Context, message string, now time.Time) (Reply, error)
}

// Tool names the model may request.
const (
	ToolCreateEvent     = "createCalendarEvent"
	ToolGetEventsByDate = "getEventsByDate"
)
