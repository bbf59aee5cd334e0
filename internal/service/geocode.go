package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shenikar/disaster_response_system/internal/cache"
	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/observability"
	"github.com/sirupsen/logrus"
)

// ErrNoLocation возвращается, когда ни извлечение, ни геокодирование
// не дали результата. Это пользовательская ошибка (4xx), а не сбой.
var ErrNoLocation = errors.New("no location could be determined")

const (
	// Ключи без нормализации: разные сырые строки дают разные записи,
	// даже если семантически совпадают. Задокументированное ограничение.
	extractCachePrefix = "extract_location_"
	geocodeCachePrefix = "geocode_"

	locationExtractionPrompt = "Extract the location name from the following text. " +
		"Respond with only the location name and nothing else. " +
		"If no location is mentioned, respond with an empty string.\n\nText: "
)

type geocodeService struct {
	store    cache.Store
	ai       TextGenerator
	geocoder ForwardGeocoder
	logger   *logrus.Logger
	metrics  *observability.Metrics
	ttl      time.Duration
}

func NewGeocodeService(store cache.Store, ai TextGenerator, geocoder ForwardGeocoder, logger *logrus.Logger, cfg *config.Config, metrics *observability.Metrics) GeocodeService {
	return &geocodeService{
		store:    store,
		ai:       ai,
		geocoder: geocoder,
		logger:   logger,
		metrics:  metrics,
		ttl:      cfg.CacheTTL,
	}
}

// GeocodeText выполняет двухступенчатую цепочку: извлечение имени места
// из свободного текста, затем геокодирование имени. Обрывается на первой
// пустой ступени - геокодер никогда не вызывается с пустым именем.
func (s *geocodeService) GeocodeText(ctx context.Context, text string) (*models.GeocodeResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geocode",
		"method":  "GeocodeText",
	})

	placeName := s.extractLocation(ctx, text)
	if placeName == "" {
		log.Info("No location extracted from text")
		return nil, ErrNoLocation
	}

	coords := s.geocode(ctx, placeName)
	if coords == nil {
		log.WithField("place_name", placeName).Info("Extracted location could not be geocoded")
		return nil, ErrNoLocation
	}

	log.WithField("place_name", placeName).Info("Text geocoded successfully")
	return &models.GeocodeResult{LocationName: placeName, Coordinates: *coords}, nil
}

// extractLocation получает имя места из свободного текста через генеративную
// модель. Кеш ключуется полным сырым текстом. Пустой ответ модели и ошибка
// провайдера эквивалентны: локация не извлечена, в кеш ничего не пишется.
func (s *geocodeService) extractLocation(ctx context.Context, text string) string {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geocode",
		"method":  "extractLocation",
	})

	key := extractCachePrefix + text
	var placeName string
	if cacheGet(ctx, s.store, log, s.metrics, "extract_location", key, &placeName) {
		return placeName
	}

	response, err := s.ai.GenerateText(ctx, locationExtractionPrompt+text)
	if err != nil {
		s.metrics.ProviderRequest("gemini", "error")
		log.WithError(err).Warn("Location extraction provider failed")
		return ""
	}

	placeName = strings.TrimSpace(response)
	if placeName == "" {
		s.metrics.ProviderRequest("gemini", "empty")
		return ""
	}
	s.metrics.ProviderRequest("gemini", "success")

	cacheSet(ctx, s.store, log, key, placeName, s.ttl)
	return placeName
}

// geocode переводит имя места в координаты. Кеш ключуется именем места,
// отдельно от кеша извлечения: разные тексты часто сходятся к одному имени,
// и это вычисление разделяется между несвязанными вызовами. "Не найдено"
// не кешируется, а ошибка провайдера деградирует до того же исхода.
func (s *geocodeService) geocode(ctx context.Context, placeName string) *models.Coordinates {
	log := s.logger.WithFields(logrus.Fields{
		"service": "geocode",
		"method":  "geocode",
	})

	key := geocodeCachePrefix + placeName
	var coords models.Coordinates
	if cacheGet(ctx, s.store, log, s.metrics, "geocode", key, &coords) {
		return &coords
	}

	result, err := s.geocoder.ForwardGeocode(ctx, placeName)
	if err != nil {
		s.metrics.ProviderRequest("mapbox", "error")
		log.WithError(err).WithField("place_name", placeName).Warn("Geocoding provider failed")
		return nil
	}
	if result == nil {
		s.metrics.ProviderRequest("mapbox", "empty")
		return nil
	}
	s.metrics.ProviderRequest("mapbox", "success")

	cacheSet(ctx, s.store, log, key, result, s.ttl)
	return result
}
