package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/property-locator/internal/config"
	"github.com/property-locator/internal/domain"
	"github.com/property-locator/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// searchResult - элемент ответа /search (координаты приходят строками)
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`
}

// NewNominatimClient создает клиент для Nominatim Search API.
// Timeout ограничивает одну попытку; повторы выполняет вызывающая сторона.
func NewNominatimClient(cfg *config.GeocoderConfig, logger *zap.Logger) repository.GeocoderRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Geocode возвращает координаты первого найденного места.
// domain.ErrLocationNotFound - пустой или некорректный ответ, повтор бессмысленен;
// остальные ошибки (сеть, таймаут, 5xx, 429) - временные.
func (c *client) Geocode(ctx context.Context, query string) (*domain.Coordinates, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("accept-language", "en")

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling Nominatim search API", zap.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Nominatim request failed", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Warn("Nominatim API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return nil, fmt.Errorf("nominatim API error: status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: nominatim API status %d", domain.ErrLocationNotFound, resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.Warn("Failed to decode Nominatim response", zap.Error(err))
		return nil, fmt.Errorf("%w: malformed response: %v", domain.ErrLocationNotFound, err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: no results for %q", domain.ErrLocationNotFound, query)
	}

	lat, errLat := strconv.ParseFloat(results[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(results[0].Lon, 64)
	if errLat != nil || errLon != nil {
		return nil, fmt.Errorf("%w: malformed coordinates %q,%q", domain.ErrLocationNotFound, results[0].Lat, results[0].Lon)
	}

	coords := domain.Coordinates{Lat: lat, Lon: lon}
	if !coords.Valid() {
		return nil, fmt.Errorf("%w: coordinates out of range", domain.ErrLocationNotFound)
	}

	c.logger.Debug("Nominatim search successful",
		zap.String("query", query),
		zap.String("display_name", results[0].DisplayName),
		zap.Float64("lat", lat),
		zap.Float64("lon", lon))

	return &coords, nil
}
