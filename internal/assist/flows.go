// internal/assist/flows.go
package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Service exposes the AI-assisted flows: call-note summarization, next-action
// suggestions and dictation transcription.
type Service struct {
	gen Generator
}

func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

type SummarizeInput struct {
	AccountName string   `json:"account_name"`
	Notes       []string `json:"notes"`
}

type AccountSummary struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
}

var summarySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary": {Type: genai.TypeString},
		"key_points": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"summary", "key_points"},
}

// SummarizeAccount condenses an account's call notes into a short summary.
func (s *Service) SummarizeAccount(ctx context.Context, input SummarizeInput) (*AccountSummary, error) {
	if len(input.Notes) == 0 {
		return nil, fmt.Errorf("no notes to summarize")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a sales assistant. Summarize the call notes for the account %q.\n", input.AccountName)
	b.WriteString("Respond with a concise summary and the key points a sales rep should remember.\n\nNotes:\n")
	for _, note := range input.Notes {
		fmt.Fprintf(&b, "- %s\n", note)
	}

	raw, err := s.gen.Generate(ctx, b.String(), summarySchema)
	if err != nil {
		return nil, fmt.Errorf("summarize flow: %w", err)
	}

	var summary AccountSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, fmt.Errorf("parsing summary response: %w", err)
	}

	return &summary, nil
}

type SuggestInput struct {
	AccountName string   `json:"account_name"`
	Status      string   `json:"status"`
	RecentNotes []string `json:"recent_notes"`
}

type SuggestedAction struct {
	Title     string `json:"title"`
	Rationale string `json:"rationale"`
}

type ActionSuggestions struct {
	Actions []SuggestedAction `json:"actions"`
}

var suggestSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"actions": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title":     {Type: genai.TypeString},
					"rationale": {Type: genai.TypeString},
				},
				Required: []string{"title", "rationale"},
			},
		},
	},
	Required: []string{"actions"},
}

// SuggestActions proposes next steps for an account based on its status and
// recent activity.
func (s *Service) SuggestActions(ctx context.Context, input SuggestInput) (*ActionSuggestions, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a sales assistant. The account %q currently has status %q.\n", input.AccountName, input.Status)
	b.WriteString("Suggest up to three concrete next actions for the sales rep.\n")
	if len(input.RecentNotes) > 0 {
		b.WriteString("\nRecent notes:\n")
		for _, note := range input.RecentNotes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}

	raw, err := s.gen.Generate(ctx, b.String(), suggestSchema)
	if err != nil {
		return nil, fmt.Errorf("suggest flow: %w", err)
	}

	var suggestions ActionSuggestions
	if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
		return nil, fmt.Errorf("parsing suggestions response: %w", err)
	}

	return &suggestions, nil
}

type TranscribeInput struct {
	Audio    []byte
	MIMEType string
}

type Transcript struct {
	Text string `json:"text"`
}

var transcribeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"text": {Type: genai.TypeString},
	},
	Required: []string{"text"},
}

// TranscribeCallNote turns a dictated voice memo into call-note text.
func (s *Service) TranscribeCallNote(ctx context.Context, input TranscribeInput) (*Transcript, error) {
	if len(input.Audio) == 0 {
		return nil, fmt.Errorf("no audio to transcribe")
	}
	if input.MIMEType == "" {
		return nil, fmt.Errorf("audio mime type is required")
	}

	prompt := "You are a sales assistant. Transcribe the attached voice memo into clean call-note text. " +
		"Fix obvious dictation artifacts but do not add information."

	raw, err := s.gen.GenerateFromAudio(ctx, prompt, input.Audio, input.MIMEType, transcribeSchema)
	if err != nil {
		return nil, fmt.Errorf("transcribe flow: %w", err)
	}

	var transcript Transcript
	if err := json.Unmarshal([]byte(raw), &transcript); err != nil {
		return nil, fmt.Errorf("parsing transcript response: %w", err)
	}

	return &transcript, nil
}
