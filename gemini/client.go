// Package gemini sends rasterized submission pages to a hosted
// multimodal model and parses the grading reply.
package gemini

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"google.golang.org/genai"

	"github.com/rrmudry/labgrader/conf"
)

// Client grades submissions through the Gemini API. A grading failure
// of any kind is reported as a returned error; the caller decides
// whether to substitute a sentinel row. Grade never panics.
type Client struct {
	genai         *genai.Client
	model         string
	rubric        string
	maxImageWidth int
	logger        *slog.Logger
}

func New(ctx context.Context, cfg conf.Config) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	rubric := cfg.Rubric
	if rubric == "" {
		rubric = DefaultRubric
	}

	return &Client{
		genai:         gc,
		model:         cfg.Model,
		rubric:        rubric,
		maxImageWidth: cfg.MaxImageWidth,
		logger:        slog.Default().With("module", "gemini"),
	}, nil
}

// Grade submits one request containing the rubric followed by every
// page image in order and parses the reply into a Result.
func (c *Client) Grade(ctx context.Context, pages []image.Image) (Result, error) {
	parts := []*genai.Part{genai.NewPartFromText(c.rubric)}
	for i, page := range pages {
		data, mimeType, err := encodePage(page, c.maxImageWidth)
		if err != nil {
			return Result{}, fmt.Errorf("failed to encode page %d: %w", i+1, err)
		}
		parts = append(parts, genai.NewPartFromBytes(data, mimeType))
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	c.logger.Debug("sending grading request", "model", c.model, "pages", len(pages))
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return Result{}, fmt.Errorf("grading request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return Result{}, ErrEmptyResponse
	}

	return parseResult(text)
}

// ListModels returns the model identifiers available to the
// configured API key. It is an explicitly invoked diagnostic, never
// called automatically from a grading error path.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	var names []string
	for m, err := range c.genai.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
		names = append(names, m.Name)
	}
	return names, nil
}
