// internal/assist/assist.go
package assist

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Generator is the call surface to the generative model: one prompt (plus an
// optional audio part), one structured JSON response constrained by a schema.
// No retries, no batching; callers get whatever the model returns or an error.
type Generator interface {
	Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
	GenerateFromAudio(ctx context.Context, prompt string, audio []byte, mimeType string, schema *genai.Schema) (string, error)
}

// GeminiGenerator implements Generator against the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	return g.generate(ctx, genai.Text(prompt), schema)
}

// GenerateFromAudio sends the prompt together with an inline audio part.
func (g *GeminiGenerator) GenerateFromAudio(ctx context.Context, prompt string, audio []byte, mimeType string, schema *genai.Schema) (string, error) {
	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(audio, mimeType),
	}, genai.RoleUser)

	return g.generate(ctx, []*genai.Content{content}, schema)
}

func (g *GeminiGenerator) generate(ctx context.Context, contents []*genai.Content, schema *genai.Schema) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx,
		g.model,
		contents,
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("empty model response")
	}

	return text, nil
}
