package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	genai "google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

type Gemini struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

func NewGemini(ctx context.Context, apiKey, model string, log *zap.Logger) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	if log == nil {
		log = zap.NewNop()
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: c, model: model, log: log}, nil
}

func (g *Gemini) Ask(ctx context.Context, document, question string) (string, error) {
	if g.client == nil {
		return "", errors.New("gemini not configured")
	}
	if strings.TrimSpace(question) == "" {
		return "", errors.New("empty question")
	}
	res, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{
		genai.NewContentFromText(buildPrompt(document, question), genai.RoleUser),
	}, nil)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	answer := stripCodeFences(res.Text())
	g.log.Debug("gemini answered",
		zap.String("model", g.model),
		zap.Int("document_bytes", len(document)),
		zap.Int("answer_bytes", len(answer)),
	)
	return answer, nil
}
