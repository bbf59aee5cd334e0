package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/sirupsen/logrus"
)

// BulletinFeed - клиент внешней ленты официальных оповещений
type BulletinFeed struct {
	feedURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewBulletinFeed(feedURL string, timeout time.Duration, logger *logrus.Logger) *BulletinFeed {
	return &BulletinFeed{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchBulletins загружает текущий снимок ленты оповещений
func (f *BulletinFeed) FetchBulletins(ctx context.Context) ([]*models.Bulletin, error) {
	if f.feedURL == "" {
		return nil, fmt.Errorf("updates feed URL is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create bulletins request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bulletins request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("bulletins feed error: status %d: %s", resp.StatusCode, body)
	}

	var bulletins []*models.Bulletin
	if err := json.NewDecoder(resp.Body).Decode(&bulletins); err != nil {
		return nil, fmt.Errorf("failed to decode bulletins feed: %w", err)
	}
	return bulletins, nil
}
