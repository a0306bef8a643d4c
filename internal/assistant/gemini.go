package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultGeminiModel = "gemini-2.0-flash"
)

// GeminiOracle talks to the Gemini generateContent REST endpoint with
// function calling enabled for the calendar tools.
type GeminiOracle struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiOracle(apiKey, model string) *GeminiOracle {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiOracle{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type geminiPart struct {
	Text         string              `json:"text,omitempty"`
	FunctionCall *geminiFunctionCall `json:"functionCall,omitempty"`
}

type geminiFunctionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiSchema struct {
	Type        string                  `json:"type"`
	Description string                  `json:"description,omitempty"`
	Properties  map[string]geminiSchema `json:"properties,omitempty"`
	Required    []string                `json:"required,omitempty"`
}

type geminiFunctionDeclaration struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Parameters  geminiSchema `json:"parameters"`
}

type geminiTool struct {
	FunctionDeclarations []geminiFunctionDeclaration `json:"functionDeclarations"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	Tools             []geminiTool    `json:"tools,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func calendarTools() []geminiTool {
	return []geminiTool{{
		FunctionDeclarations: []geminiFunctionDeclaration{
			{
				Name:        ToolCreateEvent,
				Description: "Create a calendar event for the user.",
				Parameters: geminiSchema{
					Type: "object",
					Properties: map[string]geminiSchema{
						"title":     {Type: "string", Description: "Short title of the event."},
						"startTime": {Type: "string", Description: "Event start as an ISO 8601 timestamp."},
						"endTime":   {Type: "string", Description: "Event end as an ISO 8601 timestamp. Defaults to one hour after the start."},
						"notes":     {Type: "string", Description: "Optional free-form notes."},
					},
					Required: []string{"title", "startTime"},
				},
			},
			{
				Name:        ToolGetEventsByDate,
				Description: "List the user's calendar events on a given date.",
				Parameters: geminiSchema{
					Type: "object",
					Properties: map[string]geminiSchema{
						"date": {Type: "string", Description: "The date to look up, formatted YYYY-MM-DD."},
					},
					Required: []string{"date"},
				},
			},
		},
	}}
}

func systemPrompt(now time.Time) string {
	return fmt.Sprintf(
		"You are a helpful calendar assistant. The current date and time is %s. "+
			"When the user wants to schedule something, call createCalendarEvent. "+
			"When the user asks what is on their calendar, call getEventsByDate. "+
			"Resolve relative dates like 'tomorrow' against the current date. "+
			"Otherwise answer briefly in plain text.",
		now.Format(time.RFC3339),
	)
}

func (g *GeminiOracle) Chat(ctx context.Context, message string, now time.Time) (Reply, error) {
	sys := systemPrompt(now)
	reqBody := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: sys}}},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: message}}},
		},
		Tools: calendarTools(),
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return Reply{}, fmt.Errorf("could not marshal model request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return Reply{}, fmt.Errorf("could not build model request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	rsp, err := g.httpClient.Do(req)
	if err != nil {
		return Reply{}, fmt.Errorf("model request failed: %w", err)
	}
	defer rsp.Body.Close()

	body, err := io.ReadAll(rsp.Body)
	if err != nil {
		return Reply{}, fmt.Errorf("could not read model response: %w", err)
	}
	if rsp.StatusCode != http.StatusOK {
		return Reply{}, fmt.Errorf("model returned status %d: %s", rsp.StatusCode, body)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Reply{}, fmt.Errorf("could not decode model response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return Reply{}, fmt.Errorf("model returned no candidates")
	}

	for _, part := range parsed.Candidates[0].Content.Parts {
		if part.FunctionCall != nil {
			return Reply{Call: &FunctionCall{
				Name: part.FunctionCall.Name,
				Args: part.FunctionCall.Args,
			}}, nil
		}
		if part.Text != "" {
			return Reply{Text: part.Text}, nil
		}
	}

	return Reply{}, fmt.Errorf("model returned an empty reply")
}
