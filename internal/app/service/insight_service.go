package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/novashop/novashop-backend/config"
	"github.com/novashop/novashop-backend/pkg/logger"
)

// Fallback copy shown when no real insight is available. These are part of the
// storefront contract: the insight call never surfaces an error, it degrades
// to one of these strings.
const (
	FallbackNoAPIKey      = "Dit product is momenteel erg populair! Een uitstekende keuze voor kwaliteit en stijl."
	FallbackProviderError = "Een van onze best beoordeelde producten! Klanten waarderen vooral het gebruiksgemak."
	FallbackEmptyResponse = "Perfect voor jouw dagelijks gebruik."
)

// InsightService produces short promotional copy for a product. The result is
// purely cosmetic: it never affects cart or catalog state, and the call never
// fails from the caller's point of view.
type InsightService interface {
	FetchInsight(ctx context.Context, name, description string) string
}

type insightService struct {
	config *config.Config
	client *http.Client
}

// NewInsightService creates the insight service. The HTTP client carries a
// bounded timeout so a hanging provider degrades to the fallback instead of
// stalling forever.
func NewInsightService(cfg *config.Config) InsightService {
	return &insightService{
		config: cfg,
		client: &http.Client{Timeout: cfg.Gemini.Timeout},
	}
}

// Gemini generateContent request/response structures.
type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// FetchInsight returns promotional copy for the product. Without an API key it
// short-circuits to the canned fallback without touching the network. Provider
// failures of any kind are absorbed here and replaced by fallback copy; a
// blank response gets its own substitute. Single attempt, no caching.
func (s *insightService) FetchInsight(ctx context.Context, name, description string) string {
	if s.config.Gemini.APIKey == "" {
		logger.Debug("Insight requested without API key, using fallback", map[string]interface{}{
			"product": name,
		})
		return FallbackNoAPIKey
	}

	text, err := s.callGemini(ctx, s.buildPrompt(name, description))
	if err != nil {
		logger.Warn("Insight provider call failed, using fallback", map[string]interface{}{
			"product": name,
			"error":   err.Error(),
		})
		return FallbackProviderError
	}

	if strings.TrimSpace(text) == "" {
		logger.Debug("Insight provider returned empty text, using fallback", map[string]interface{}{
			"product": name,
		})
		return FallbackEmptyResponse
	}

	return strings.TrimSpace(text)
}

// buildPrompt asks for a short, enthusiastic "why you need this" blurb.
func (s *insightService) buildPrompt(name, description string) string {
	return fmt.Sprintf(
		"Schrijf een korte, verleidelijke 'waarom je dit nodig hebt' sectie voor het volgende product: %q. "+
			"Beschrijving: %q. Houd het onder de 100 woorden en gebruik een enthousiaste toon.",
		name, description,
	)
}

// callGemini performs a single generateContent call.
func (s *insightService) callGemini(ctx context.Context, prompt string) (string, error) {
	reqData := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature: s.config.Gemini.Temperature,
		},
	}

	jsonData, err := json.Marshal(reqData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent",
		strings.TrimRight(s.config.Gemini.BaseURL, "/"), s.config.Gemini.Model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.config.Gemini.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %v", err)
	}

	if geminiResp.Error != nil {
		return "", fmt.Errorf("Gemini API error: %s", geminiResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
