package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/furkancak2r/vibe-track-insights/internal"
)

// Static generation parameters; not tunable at request time.
const (
	geminiModel           = "gemini-1.5-pro"
	geminiTemperature     = 0.7
	geminiTopK            = 40
	geminiTopP            = 0.95
	geminiMaxOutputTokens = 500
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiSafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiGenerateRequest struct {
	Contents         []geminiContent        `json:"contents"`
	SafetySettings   []geminiSafetySetting  `json:"safetySettings"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

var geminiSafetySettings = []geminiSafetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}

// SuggestionService asks a generative-language API for mood-based activity
// suggestions. GetActivitySuggestions is total: every failure path degrades to
// the static fallback table, never to an error.
type SuggestionService struct {
	http    httpDoer
	baseURL string
	model   string
	apiKey  string
	logger  internal.Logger
}

func NewSuggestionService(apiKey string, logger internal.Logger) *SuggestionService {
	return &SuggestionService{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		model:   geminiModel,
		apiKey:  strings.TrimSpace(apiKey),
		logger:  logger,
	}
}

func (s *SuggestionService) SetHTTPClient(client httpDoer) {
	if client == nil {
		s.http = &http.Client{Timeout: 30 * time.Second}
		return
	}
	s.http = client
}

func (s *SuggestionService) SetBaseURL(base string) {
	s.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
}

// GetActivitySuggestions returns AI-generated suggestions for the given mood,
// or the static fallback table when the upstream call fails in any way.
func (s *SuggestionService) GetActivitySuggestions(ctx context.Context, mood internal.MoodType, notes string) internal.ActivitySuggestion {
	suggestion, err := s.generate(ctx, mood, notes)
	if err != nil {
		s.logger.Warnf("suggestions: falling back to static table for mood %q: %v", mood, err)
		return FallbackSuggestions(mood)
	}
	return suggestion
}

func buildSuggestionPrompt(mood internal.MoodType, notes string) string {
	prompt := fmt.Sprintf("I'm feeling %s", mood)
	if notes != "" {
		prompt += " and here's why: " + notes
	}
	prompt += "\n\nPlease suggest 5 activities that might help me feel better or maintain my current mood if it's positive. " +
		`Format your response as a JSON object with two properties: "activities" (an array of 5 activity suggestions) and "message" (a brief supportive message based on my mood).`
	return prompt
}

func (s *SuggestionService) generate(ctx context.Context, mood internal.MoodType, notes string) (internal.ActivitySuggestion, error) {
	if s.apiKey == "" {
		return internal.ActivitySuggestion{}, fmt.Errorf("no API key configured")
	}

	payload := geminiGenerateRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: buildSuggestionPrompt(mood, notes)}}},
		},
		SafetySettings: geminiSafetySettings,
		GenerationConfig: geminiGenerationConfig{
			Temperature:     geminiTemperature,
			TopK:            geminiTopK,
			TopP:            geminiTopP,
			MaxOutputTokens: geminiMaxOutputTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return internal.ActivitySuggestion{}, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return internal.ActivitySuggestion{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(httpReq)
	if err != nil {
		return internal.ActivitySuggestion{}, fmt.Errorf("call generative API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return internal.ActivitySuggestion{}, fmt.Errorf("read response: %w", err)
	}

	var generated geminiGenerateResponse
	if err := json.Unmarshal(respBody, &generated); err != nil {
		return internal.ActivitySuggestion{}, fmt.Errorf("parse response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		errMsg := strings.TrimSpace(generated.Error.Message)
		if errMsg == "" {
			errMsg = resp.Status
		}
		return internal.ActivitySuggestion{}, fmt.Errorf("generative API error: %s", errMsg)
	}

	if len(generated.Candidates) == 0 {
		return internal.ActivitySuggestion{}, fmt.Errorf("generative API returned no candidates")
	}

	var text strings.Builder
	for _, part := range generated.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	var suggestion internal.ActivitySuggestion
	if err := json.Unmarshal([]byte(stripCodeFence(text.String())), &suggestion); err != nil {
		return internal.ActivitySuggestion{}, fmt.Errorf("parse suggestion JSON: %w", err)
	}
	if suggestion.Activities == nil {
		suggestion.Activities = []string{}
	}
	return suggestion, nil
}

// stripCodeFence unwraps a ```json ... ``` block; models routinely fence the
// JSON they are asked for.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// fallbackSuggestions is product content, not incidental code: the per-mood
// canned activities and messages served whenever the upstream is unavailable.
var fallbackSuggestions = map[internal.MoodType]internal.ActivitySuggestion{
	internal.MoodGreat: {
		Activities: []string{
			"Journal about what made today great",
			"Share your positive energy with friends or family",
			"Try a new challenging activity",
			"Make a gratitude list",
			"Plan something exciting for the future",
		},
		Message: "Wonderful! Harness this positive energy for something meaningful.",
	},
	internal.MoodGood: {
		Activities: []string{
			"Go for a walk outside",
			"Call a friend",
			"Do something creative",
			"Practice mindfulness meditation",
			"Cook a healthy meal",
		},
		Message: "Great to hear you are feeling good! Keep the positive momentum going.",
	},
	internal.MoodNeutral: {
		Activities: []string{
			"Try a new hobby",
			"Watch an inspiring documentary",
			"Organize your space",
			"Listen to uplifting music",
			"Learn something new",
		},
		Message: "A neutral mood is a perfect canvas for new experiences.",
	},
	internal.MoodBad: {
		Activities: []string{
			"Take a relaxing shower or bath",
			"Practice deep breathing for 5 minutes",
			"Go for a gentle walk outside",
			"Listen to calming music",
			"Reach out to a supportive friend",
		},
		Message: "I am sorry you are not feeling great. Be gentle with yourself today.",
	},
	internal.MoodTerrible: {
		Activities: []string{
			"Focus on basic self-care like hydrating and eating",
			"Use the 5-4-3-2-1 grounding technique",
			"Watch something comforting and familiar",
			"Practice gentle stretching",
			"Consider talking to a mental health professional",
		},
		Message: "I am sorry you are having such a difficult day. Remember that this feeling is temporary.",
	},
}

// FallbackSuggestions returns the static suggestion table entry for a mood.
func FallbackSuggestions(mood internal.MoodType) internal.ActivitySuggestion {
	return fallbackSuggestions[mood]
}
