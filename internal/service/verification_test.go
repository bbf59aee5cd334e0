package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_response_system/internal/cache"
	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestVerificationService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestVerificationService(t *testing.T, cacheFailures bool) (*verificationService, *mocks.MockTextGenerator, *mocks.MockReportRepository, *cache.MemoryStore) {
	ctrl := gomock.NewController(t)
	aiMock := mocks.NewMockTextGenerator(ctrl)
	reportsMock := mocks.NewMockReportRepository(ctrl)
	store := cache.NewMemoryStore()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		CacheTTL:            time.Minute,
		VerifyCacheFailures: cacheFailures,
	}

	service := NewVerificationService(store, aiMock, reportsMock, logger, cfg, nil)
	return service.(*verificationService), aiMock, reportsMock, store
}

func TestVerifyImage_Success(t *testing.T) {
	// Подготовка
	service, aiMock, reportsMock, _ := newTestVerificationService(t, true)
	ctx := context.Background()
	disasterID := uuid.New()
	imageURL := "https://example.com/flood.jpg"

	// Ожидания
	aiMock.EXPECT().
		GenerateText(ctx, gomock.Any()).
		Return("Снимок выглядит подлинным, следы монтажа не обнаружены.", nil).
		Times(1)

	reportsMock.EXPECT().
		UpdateStatusByImageURL(ctx, imageURL, models.VerificationVerified).
		Return(int64(2), nil).
		Times(1)

	// Действие
	result, err := service.VerifyImage(ctx, disasterID, imageURL)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.VerificationVerified, result.Status)
	assert.Equal(t, "Снимок выглядит подлинным, следы монтажа не обнаружены.", result.Reasoning)
	// Оценка назначается в диапазоне "вероятно подлинное"
	assert.GreaterOrEqual(t, result.Score, 7)
	assert.LessOrEqual(t, result.Score, 10)
}

func TestVerifyImage_SecondCallServedFromCache(t *testing.T) {
	// Подготовка
	service, aiMock, reportsMock, _ := newTestVerificationService(t, true)
	ctx := context.Background()
	disasterID := uuid.New()
	imageURL := "https://example.com/flood.jpg"

	// Ожидания
	// Модель отрабатывает однажды, но статусы отчетов проставляются на каждый
	// вызов: к этому моменту отчетов с тем же изображением могло прибавиться
	aiMock.EXPECT().
		GenerateText(ctx, gomock.Any()).
		Return("Снимок выглядит подлинным.", nil).
		Times(1)

	reportsMock.EXPECT().
		UpdateStatusByImageURL(ctx, imageURL, models.VerificationVerified).
		Return(int64(1), nil).
		Times(2)

	// Действие
	first, err := service.VerifyImage(ctx, disasterID, imageURL)
	require.NoError(t, err)
	second, err := service.VerifyImage(ctx, disasterID, imageURL)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestVerifyImage_ProviderFails_DegradedResultCached(t *testing.T) {
	// Подготовка
	service, aiMock, reportsMock, store := newTestVerificationService(t, true)
	ctx := context.Background()
	disasterID := uuid.New()
	imageURL := "https://example.com/broken.jpg"
	providerErr := fmt.Errorf("модель недоступна")

	// Ожидания
	// Провайдер падает однажды, повторный вызов идет из кеша
	aiMock.EXPECT().
		GenerateText(ctx, gomock.Any()).
		Return("", providerErr).
		Times(1)

	reportsMock.EXPECT().
		UpdateStatusByImageURL(ctx, imageURL, models.VerificationPending).
		Return(int64(1), nil).
		Times(2)

	// Действие
	first, err := service.VerifyImage(ctx, disasterID, imageURL)
	require.NoError(t, err)
	second, err := service.VerifyImage(ctx, disasterID, imageURL)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 5, first.Score)
	assert.Equal(t, "Unable to verify", first.Reasoning)
	assert.Equal(t, models.VerificationPending, first.Status)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.Len())
}

func TestVerifyImage_ProviderFails_RetriedWhenCachingDisabled(t *testing.T) {
	// Подготовка
	service, aiMock, reportsMock, store := newTestVerificationService(t, false)
	ctx := context.Background()
	disasterID := uuid.New()
	imageURL := "https://example.com/broken.jpg"
	providerErr := fmt.Errorf("модель недоступна")

	// Ожидания
	// Без кеширования отказов каждый вызов снова идет к провайдеру
	aiMock.EXPECT().
		GenerateText(ctx, gomock.Any()).
		Return("", providerErr).
		Times(2)

	reportsMock.EXPECT().
		UpdateStatusByImageURL(ctx, imageURL, models.VerificationPending).
		Return(int64(1), nil).
		Times(2)

	// Действие
	_, err := service.VerifyImage(ctx, disasterID, imageURL)
	require.NoError(t, err)
	_, err = service.VerifyImage(ctx, disasterID, imageURL)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestVerifyImage_EmptyReasoningTreatedAsFailure(t *testing.T) {
	// Подготовка
	service, aiMock, reportsMock, _ := newTestVerificationService(t, true)
	ctx := context.Background()
	disasterID := uuid.New()
	imageURL := "https://example.com/empty.jpg"

	// Ожидания
	aiMock.EXPECT().
		GenerateText(ctx, gomock.Any()).
		Return("   \n", nil).
		Times(1)

	reportsMock.EXPECT().
		UpdateStatusByImageURL(ctx, imageURL, models.VerificationPending).
		Return(int64(0), nil).
		Times(1)

	// Действие
	result, err := service.VerifyImage(ctx, disasterID, imageURL)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.VerificationPending, result.Status)
	assert.Equal(t, "Unable to verify", result.Reasoning)
}

func TestVerifyImage_PersistenceFails(t *testing.T) {
	// Подготовка
	service, aiMock, reportsMock, _ := newTestVerificationService(t, true)
	ctx := context.Background()
	disasterID := uuid.New()
	imageURL := "https://example.com/flood.jpg"
	dbError := fmt.Errorf("бд недоступна")

	// Ожидания
	aiMock.EXPECT().
		GenerateText(ctx, gomock.Any()).
		Return("Снимок выглядит подлинным.", nil).
		Times(1)

	reportsMock.EXPECT().
		UpdateStatusByImageURL(ctx, imageURL, models.VerificationVerified).
		Return(int64(0), dbError).
		Times(1)

	// Действие
	result, err := service.VerifyImage(ctx, disasterID, imageURL)

	// Проверки
	// Отказ персистентности, в отличие от отказа провайдера, поднимается наверх
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "could not update report statuses")
}
