package datamuse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/property-locator/internal/config"
	"github.com/property-locator/internal/domain/repository"
	"go.uber.org/zap"
)

const maxSuggestions = 5

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

type suggestion struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// NewDatamuseClient создает клиент для Datamuse /sug (подсказки с исправлением опечаток)
func NewDatamuseClient(cfg *config.SuggesterConfig, logger *zap.Logger) repository.SuggestionRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}
}

// Suggest возвращает подсказки в порядке убывания релевантности
func (c *client) Suggest(ctx context.Context, text string) ([]string, error) {
	params := url.Values{}
	params.Set("s", text)
	params.Set("max", fmt.Sprintf("%d", maxSuggestions))

	reqURL := fmt.Sprintf("%s/sug?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("datamuse API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var items []suggestion
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	words := make([]string, 0, len(items))
	for _, it := range items {
		if w := strings.TrimSpace(it.Word); w != "" {
			words = append(words, w)
		}
	}

	c.logger.Debug("Datamuse suggestions received",
		zap.String("text", text),
		zap.Strings("suggestions", words))

	return words, nil
}
