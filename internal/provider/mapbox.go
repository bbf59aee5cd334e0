package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

const defaultMapboxBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// MapboxClient - клиент прямого геокодирования Mapbox.
// Запрашивается ровно одно лучшее совпадение (limit=1).
type MapboxClient struct {
	token      string
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewMapboxClient(token string, timeout time.Duration, logger *logrus.Logger) *MapboxClient {
	return &MapboxClient{
		token:   token,
		baseURL: defaultMapboxBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// ForwardGeocode переводит имя места в координаты.
// Ноль совпадений - это (nil, nil), а не ошибка: неразрешимое имя
// не должно отравлять кеш вызывающего сервиса.
func (c *MapboxClient) ForwardGeocode(ctx context.Context, placeName string) (*models.Coordinates, error) {
	u := fmt.Sprintf("%s/%s.json", c.baseURL, url.PathEscape(placeName))
	params := url.Values{
		"access_token": {c.token},
		"limit":        {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocode request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("mapbox API error: status %d: %s", resp.StatusCode, body)
	}

	var mapboxResp mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&mapboxResp); err != nil {
		return nil, fmt.Errorf("failed to decode mapbox response: %w", err)
	}

	if len(mapboxResp.Features) == 0 {
		return nil, nil
	}

	f := mapboxResp.Features[0]
	if len(f.Center) != 2 {
		return nil, nil
	}
	// Mapbox отдает порядок lon,lat
	return &models.Coordinates{Lat: f.Center[1], Lng: f.Center[0]}, nil
}

// Типы ответа Mapbox API

type mapboxResponse struct {
	Features []mapboxFeature `json:"features"`
}

type mapboxFeature struct {
	Center    []float64 `json:"center"` // [lon, lat]
	PlaceName string    `json:"place_name"`
}
