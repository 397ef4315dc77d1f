// Package gemini implements the narrator.Completer interface on top of the
// Google Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/otterhq/suilens/internal/narrator"
	"github.com/otterhq/suilens/internal/pkg/resilience/retry"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// client implements the narrator.Completer interface using the Gemini API.
type client struct {
	genai   *genai.Client
	model   string
	retrier retry.Retry
}

// Ensure client implements the narrator.Completer interface at compile time.
var _ narrator.Completer = (*client)(nil)

// Option customizes the Gemini client during construction.
type Option func(*client)

// WithRetry overrides the retry policy applied to completion requests.
func WithRetry(r retry.Retry) Option {
	return func(c *client) {
		c.retrier = r
	}
}

// NewClient creates a Gemini completion client. An empty model selects
// DefaultModel. Completion requests are retried with exponential backoff on
// transient failures.
func NewClient(ctx context.Context, apiKey, model string, opts ...Option) (*client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		// API version v1 is what docs use for current Gemini models.
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model == "" {
		model = DefaultModel
	}

	c := &client{
		genai:   gc,
		model:   model,
		retrier: retry.New(retry.WithAttempts(2)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Complete sends the prompt as a single user turn and returns the model's
// text response.
func (c *client) Complete(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	var text string
	err := c.retrier.Execute(ctx, func() error {
		resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, nil)
		if err != nil {
			return fmt.Errorf("generate content: %w", err)
		}

		text = resp.Text()
		return nil
	})
	if err != nil {
		return "", err
	}

	return text, nil
}
