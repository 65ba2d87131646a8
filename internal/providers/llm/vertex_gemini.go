package llm

import (
	"context"
	"errors"
	"strings"

	vertexgenai "cloud.google.com/go/vertexai/genai"

	"github.com/yoockh/docchat/internal/models"
)

type VertexGemini struct {
	client *vertexgenai.Client
	model  *vertexgenai.GenerativeModel
}

func NewVertexGemini(ctx context.Context, projectID, location, modelName, systemInstruction string) (*VertexGemini, error) {
	c, err := vertexgenai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	m := c.GenerativeModel(modelName)
	if systemInstruction != "" {
		m.SystemInstruction = &vertexgenai.Content{
			Parts: []vertexgenai.Part{vertexgenai.Text(systemInstruction)},
		}
	}
	return &VertexGemini{client: c, model: m}, nil
}

func (v *VertexGemini) Close() error { return v.client.Close() }

func (v *VertexGemini) Generate(ctx context.Context, history []Turn) (string, error) {
	if len(history) == 0 {
		return "", errors.New("empty history")
	}

	contents := buildContents(history)
	last := history[len(history)-1]

	cs := v.model.StartChat()
	cs.History = contents[:len(contents)-1]

	resp, err := cs.SendMessage(ctx, vertexgenai.Text(last.Content))
	if err != nil {
		return "", err
	}

	reply := extractText(resp)
	if reply == "" {
		return "", errors.New("model response contained no text")
	}
	return reply, nil
}

// mapRole translates a stored role into Gemini's vocabulary. Total by
// construction: anything that is not "assistant" is sent as "user".
func mapRole(role string) string {
	if role == models.RoleAssistant {
		return "model"
	}
	return "user"
}

func buildContents(history []Turn) []*vertexgenai.Content {
	contents := make([]*vertexgenai.Content, 0, len(history))
	for _, t := range history {
		contents = append(contents, &vertexgenai.Content{
			Role:  mapRole(t.Role),
			Parts: []vertexgenai.Part{vertexgenai.Text(t.Content)},
		})
	}
	return contents
}

func extractText(resp *vertexgenai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(vertexgenai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return b.String()
}
