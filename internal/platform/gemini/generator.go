package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/config"
	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/generation"
	"google.golang.org/genai"
)

// promptTemplate is the fixed instruction sent to the model. The task
// description is embedded verbatim; the 8-word limit is a request to the
// generator, not a validated constraint.
const promptTemplate = "Gere um título curto e objetivo (máximo de 8 palavras) para uma tarefa com a seguinte descrição: %s. Responda apenas com o título, sem aspas e sem explicações."

// Generator implements the generation.TitleGenerator interface using
// Google's Gemini API to derive task titles from descriptions.
type Generator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string
}

var _ generation.TitleGenerator = (*Generator)(nil)

// NewGenerator creates a new Generator with the provided dependencies.
// It validates the LLM configuration and initializes the Gemini client;
// no request is made until GenerateTitle is called.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger: logger,
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// GenerateTitle requests a short title for the given description.
// Exactly one attempt is made; any API failure is returned to the caller,
// which owns the fallback policy.
func (g *Generator) GenerateTitle(ctx context.Context, description string) (string, error) {
	if description == "" {
		return "", generation.ErrEmptyDescription
	}

	prompt := buildPrompt(description)

	g.logger.DebugContext(ctx, "requesting title from Gemini",
		"model", g.model,
		"description_length", len(description))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	title := sanitizeTitle(resp.Text())
	if title == "" {
		return "", fmt.Errorf("%w: empty title in response", generation.ErrInvalidResponse)
	}

	g.logger.DebugContext(ctx, "title generated successfully",
		"title_length", len(title))

	return title, nil
}

// buildPrompt embeds the raw description into the fixed instructional prompt.
func buildPrompt(description string) string {
	return fmt.Sprintf(promptTemplate, description)
}

// sanitizeTitle strips every single and double quote, wherever it appears,
// and trims surrounding whitespace from the model output.
func sanitizeTitle(raw string) string {
	cleaned := strings.NewReplacer(`"`, "", "'", "").Replace(raw)
	return strings.TrimSpace(cleaned)
}
