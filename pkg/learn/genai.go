package learn

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"tableflip.dev/academia/pkg/logging"
)

// DefaultModel is used when GenAI.Model is empty.
const DefaultModel = "gemini-2.5-flash"

// GenAI queries Gemini with the Google Search tool enabled. The client is
// built on first use so a missing key only fails the Learn feature.
type GenAI struct {
	APIKey string
	Model  string
	Logger *zap.Logger

	mu     sync.Mutex
	client *genai.Client
}

var _ Querier = (*GenAI)(nil)

func (g *GenAI) getClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		return g.client, nil
	}
	if g.APIKey == "" {
		return nil, ErrMissingCredential
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("learn: create client: %w", err)
	}
	g.client = client
	return client, nil
}

// Query implements Querier.
func (g *GenAI) Query(ctx context.Context, topic string) (*Result, error) {
	log := logging.OrNop(g.Logger).With(zap.Bool("currentEvents", topic == CurrentEvents))
	client, err := g.getClient(ctx)
	if err != nil {
		return nil, err
	}
	model := g.Model
	if model == "" {
		model = DefaultModel
	}

	log.Debug("querying model", zap.String("model", model))
	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(Prompt(topic)), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		log.Warn("model query failed", zap.Error(err))
		return nil, classify(err)
	}

	res, err := ParseResponse(resp.Text())
	if err != nil {
		log.Warn("unusable model response", zap.Error(err))
		return nil, err
	}
	log.Debug("model answered", zap.Int("articles", len(res.Articles)), zap.Int("videos", len(res.Videos)))
	return res, nil
}

// classify maps upstream failures onto the package errors.
func classify(err error) error {
	if strings.Contains(err.Error(), "API key not valid") {
		return fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	return fmt.Errorf("learn: query: %w", err)
}
