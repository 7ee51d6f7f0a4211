package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements Client on top of the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed client for the given model.
func NewGemini(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("missing Gemini API key")
	}
	if model == "" {
		return nil, errors.New("missing Gemini model name")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Complete sends the conversation to Gemini and returns its text and
// tool-call requests. The function-calling mode is AUTO: the model
// decides per turn whether to answer in text, call a tool, or both.
func (g *GeminiClient) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	if len(req.Turns) == 0 {
		return nil, errors.New("empty conversation")
	}

	model := g.client.GenerativeModel(g.model)
	if req.System != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.System)},
		}
	}
	if len(req.Tools) > 0 {
		model.Tools = []*genai.Tool{{FunctionDeclarations: toDeclarations(req.Tools)}}
		model.ToolConfig = &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode: genai.FunctionCallingAuto,
			},
		}
	}

	contents := make([]*genai.Content, 0, len(req.Turns))
	for _, turn := range req.Turns {
		contents = append(contents, toContent(turn))
	}

	session := model.StartChat()
	session.History = contents[:len(contents)-1]
	last := contents[len(contents)-1]

	resp, err := session.SendMessage(ctx, last.Parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	return parseResponse(resp)
}

// Close releases the underlying API connection.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// toContent maps one conversation turn onto the Gemini content shape:
// a tool call rides on a model turn, a tool response rides on a user
// turn, anything else is plain text.
func toContent(turn Turn) *genai.Content {
	switch {
	case turn.Call != nil:
		return &genai.Content{
			Role:  RoleModel,
			Parts: []genai.Part{genai.FunctionCall{Name: turn.Call.Name, Args: turn.Call.Args}},
		}
	case turn.Response != nil:
		return &genai.Content{
			Role:  RoleUser,
			Parts: []genai.Part{genai.FunctionResponse{Name: turn.Response.Name, Response: turn.Response.Response}},
		}
	default:
		role := turn.Role
		if role == "" {
			role = RoleUser
		}
		return &genai.Content{Role: role, Parts: []genai.Part{genai.Text(turn.Text)}}
	}
}

func toDeclarations(tools []ToolDefinition) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  toSchema(t.Parameters),
		})
	}
	return decls
}

func toSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        toSchemaType(s.Type),
		Description: s.Description,
		Required:    s.Required,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toSchema(prop)
		}
	}
	if s.Items != nil {
		out.Items = toSchema(s.Items)
	}
	return out
}

func toSchemaType(t SchemaType) genai.Type {
	switch t {
	case TypeObject:
		return genai.TypeObject
	case TypeArray:
		return genai.TypeArray
	case TypeString:
		return genai.TypeString
	case TypeNumber:
		return genai.TypeNumber
	case TypeInteger:
		return genai.TypeInteger
	case TypeBoolean:
		return genai.TypeBoolean
	default:
		return genai.TypeUnspecified
	}
}

// parseResponse extracts the text and tool-call parts of the first
// candidate, preserving the order of the calls.
func parseResponse(resp *genai.GenerateContentResponse) (*Completion, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("gemini: empty response")
	}

	completion := &Completion{}
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			text.WriteString(string(p))
		case genai.FunctionCall:
			completion.Calls = append(completion.Calls, ToolCall{Name: p.Name, Args: p.Args})
		}
	}
	completion.Text = text.String()
	return completion, nil
}
