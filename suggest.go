package wordsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const suggestPrompt = `Suggest %d distinct single words related to the theme %q for a word search puzzle.

Rules:
- Each word has at most %d letters.
- No phrases, no proper nouns unless the theme asks for them.
- Answer ONLY with a JSON array of strings, without comments or markdown.`

// GeminiClient suggests themed word lists through Gemini on Vertex AI.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates a client using Application Default Credentials.
func NewGeminiClient(ctx context.Context, cfg *Config) (*GeminiClient, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("gemini: project ID not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  cfg.ProjectID,
		Location: cfg.GeminiRegion,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: cfg.GeminiModel,
	}, nil
}

// LoadWords asks the model for words about theme.
func (g *GeminiClient) LoadWords(ctx context.Context, theme string, maxLen, limit int) ([]string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		genai.Text(fmt.Sprintf(suggestPrompt, limit, theme, maxLen)),
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.7)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	return parseSuggestions(resp.Text(), maxLen, limit)
}

// parseSuggestions decodes the model's JSON array, tolerating a markdown code fence around it.
func parseSuggestions(text string, maxLen, limit int) ([]string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}

	var raw []string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("parse suggestions JSON: %w\nraw response: %s", err, text)
	}

	words := cleanWords(raw, maxLen, limit)
	if len(words) == 0 {
		return nil, fmt.Errorf("no usable words in gemini response")
	}
	return words, nil
}
