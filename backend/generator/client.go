// Package generator asks a structured-output language model API for new
// multiple-choice questions on a topic.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"quizdeck/backend/config"
)

const (
	defaultAmount = 5
	maxRetries    = 3
)

// GeneratedQuestion mirrors the structured question payload requested from
// the model.
type GeneratedQuestion struct {
	QuestionText  string            `json:"question_text"`
	Options       map[string]string `json:"options"` // keyed A-D
	CorrectOption string            `json:"correct_option"`
}

type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:    cfg.GeneratorURL,
		model:      cfg.GeneratorModel,
		apiKey:     cfg.GeneratorKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// questionSchema constrains the model output to an array of four-option
// questions with a single correct letter.
var questionSchema = json.RawMessage(`{
  "type": "ARRAY",
  "items": {
    "type": "OBJECT",
    "properties": {
      "question_text": {"type": "STRING"},
      "options": {
        "type": "OBJECT",
        "properties": {
          "A": {"type": "STRING"},
          "B": {"type": "STRING"},
          "C": {"type": "STRING"},
          "D": {"type": "STRING"}
        }
      },
      "correct_option": {"type": "STRING", "enum": ["A", "B", "C", "D"]}
    },
    "required": ["question_text", "options", "correct_option"]
  }
}`)

// GenerateQuestions requests amount questions about the topic. Transient
// HTTP failures are retried with exponential backoff.
func (c *Client) GenerateQuestions(ctx context.Context, topic string, amount int) ([]GeneratedQuestion, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("generator API key is not configured")
	}
	if amount <= 0 {
		amount = defaultAmount
	}

	systemPrompt := fmt.Sprintf(
		"You are a quiz generator. Generate %d high-quality multiple-choice questions on the topic: %q. "+
			"Each question must have exactly four options (A, B, C, D) and one correct option.",
		amount, topic)
	userQuery := fmt.Sprintf("Generate %d unique, challenging multiple-choice questions about %s.", amount, topic)

	body, err := json.Marshal(generateRequest{
		Contents:          []content{{Parts: []part{{Text: userQuery}}}},
		SystemInstruction: &content{Parts: []part{{Text: systemPrompt}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   questionSchema,
		},
	})
	if err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	var resp *http.Response
	for attempt := 0; attempt < maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err = c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode == http.StatusOK {
			break
		}
		resp.Body.Close()
		if attempt == maxRetries-1 {
			return nil, fmt.Errorf("generator API returned status %d after %d retries", resp.StatusCode, maxRetries)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(1<<attempt) * time.Second):
		}
	}
	defer resp.Body.Close()

	var payload generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode generator response: %w", err)
	}
	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("generator returned no candidates")
	}

	var questions []GeneratedQuestion
	if err := json.Unmarshal([]byte(payload.Candidates[0].Content.Parts[0].Text), &questions); err != nil {
		return nil, fmt.Errorf("parse generated questions: %w", err)
	}

	return questions, nil
}
