package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"vitalab/labparse/internal/catalog"
	"vitalab/labparse/internal/logging"
)

// AIStrategy resolves analyte names through the Gemini API. It is the last
// strategy in the chain and only handles names the catalog could not. A nil
// client (no API key configured) makes every Resolve a no-op, so wiring the
// strategy unconditionally is safe.
type AIStrategy struct {
	catalog *catalog.Catalog
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
	logger  logging.Logger
}

// NewAIStrategy creates an AIStrategy backed by the Gemini API. Returns a
// disabled strategy when apiKey is empty.
func NewAIStrategy(ctx context.Context, cat *catalog.Catalog, apiKey, modelName string, timeout time.Duration, logger logging.Logger) (*AIStrategy, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	s := &AIStrategy{
		catalog: cat,
		timeout: timeout,
		logger:  logger,
	}
	if apiKey == "" {
		logger.Debug("No API key configured, AI resolution disabled")
		return s, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	s.client = client
	s.model = client.GenerativeModel(modelName)
	return s, nil
}

// Name returns the name of this strategy for logging and debugging.
func (s *AIStrategy) Name() string {
	return "AI"
}

// Close releases the underlying API client.
func (s *AIStrategy) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Resolve asks Gemini to match the raw name against the known analyte names.
// The response is validated against the catalog before it is trusted.
func (s *AIStrategy) Resolve(ctx context.Context, rawName string) (string, bool, error) {
	if s.client == nil {
		s.logger.Debug("AI client not available, skipping AI resolution",
			logging.Field{Key: "strategy", Value: s.Name()},
			logging.Field{Key: logging.FieldAnalyte, Value: rawName})
		return "", false, nil
	}
	if strings.TrimSpace(rawName) == "" {
		return "", false, nil
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	prompt := fmt.Sprintf(`A medical lab report labels a test as:
%s

Which of the following analyte names does it refer to?
%s

Respond in this format:
Analyte: [Exact Name From The List]

If none of the listed analytes match, respond with:
Analyte: None`,
		rawName,
		strings.Join(s.catalog.Names(), ", "))

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", false, fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", false, fmt.Errorf("no response from Gemini API")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	proposed := extractAnalyteFromResponse(responseText)
	if proposed == "" || strings.EqualFold(proposed, "None") {
		s.logger.Debug("AI found no matching analyte",
			logging.Field{Key: "strategy", Value: s.Name()},
			logging.Field{Key: logging.FieldAnalyte, Value: rawName})
		return "", false, nil
	}

	canonical, ok := s.catalog.Resolve(proposed)
	if !ok {
		s.logger.Warn("AI proposed an analyte outside the catalog, ignoring",
			logging.Field{Key: "strategy", Value: s.Name()},
			logging.Field{Key: logging.FieldAnalyte, Value: rawName},
			logging.Field{Key: "proposed", Value: proposed})
		return "", false, nil
	}

	s.logger.Debug("Analyte name resolved using AI",
		logging.Field{Key: "strategy", Value: s.Name()},
		logging.Field{Key: logging.FieldAnalyte, Value: rawName},
		logging.Field{Key: "canonical", Value: canonical})
	return canonical, true, nil
}

// extractAnalyteFromResponse parses the Gemini response for the answer line.
// A response without the expected prefix is taken verbatim, trimmed.
func extractAnalyteFromResponse(response string) string {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Analyte:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "Analyte:"))
		}
	}
	return strings.TrimSpace(response)
}
