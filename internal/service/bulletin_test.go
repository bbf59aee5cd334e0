package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/disaster_response_system/internal/cache"
	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestBulletinService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestBulletinService(t *testing.T) (*bulletinService, *mocks.MockBulletinSource, *clockwork.FakeClock) {
	ctrl := gomock.NewController(t)
	sourceMock := mocks.NewMockBulletinSource(ctrl)
	clock := clockwork.NewFakeClock()
	store := cache.NewMemoryStoreWithClock(clock)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		CacheTTL: time.Hour,
	}

	service := NewBulletinService(store, sourceMock, logger, cfg, nil)
	return service.(*bulletinService), sourceMock, clock
}

func TestOfficialUpdates_FetchedAndCached(t *testing.T) {
	// Подготовка
	service, sourceMock, _ := newTestBulletinService(t)
	ctx := context.Background()
	expected := []*models.Bulletin{
		{ID: "b-1", Title: "Эвакуация северного района", Source: "МЧС"},
	}

	// Ожидания: источник отрабатывает один раз на два вызова
	sourceMock.EXPECT().
		FetchBulletins(ctx).
		Return(expected, nil).
		Times(1)

	// Действие
	first := service.OfficialUpdates(ctx)
	second := service.OfficialUpdates(ctx)

	// Проверки
	assert.Equal(t, expected, first)
	assert.Equal(t, first, second)
}

func TestOfficialUpdates_SourceFails(t *testing.T) {
	// Подготовка
	service, sourceMock, _ := newTestBulletinService(t)
	ctx := context.Background()
	feedError := fmt.Errorf("лента недоступна")

	// Ожидания
	sourceMock.EXPECT().
		FetchBulletins(ctx).
		Return(nil, feedError).
		Times(1)

	// Действие
	bulletins := service.OfficialUpdates(ctx)

	// Проверки
	// Отказ источника дает пустой список, не nil и не ошибку
	require.NotNil(t, bulletins)
	assert.Empty(t, bulletins)
}

func TestOfficialUpdates_NilFeedNormalized(t *testing.T) {
	// Подготовка
	service, sourceMock, _ := newTestBulletinService(t)
	ctx := context.Background()

	// Ожидания
	sourceMock.EXPECT().
		FetchBulletins(ctx).
		Return(nil, nil).
		Times(1)

	// Действие
	bulletins := service.OfficialUpdates(ctx)

	// Проверки
	require.NotNil(t, bulletins)
	assert.Empty(t, bulletins)
}

func TestOfficialUpdates_RefetchedAfterTTL(t *testing.T) {
	// Подготовка
	service, sourceMock, clock := newTestBulletinService(t)
	ctx := context.Background()
	stale := []*models.Bulletin{{ID: "b-1", Title: "Старое оповещение"}}
	fresh := []*models.Bulletin{{ID: "b-2", Title: "Новое оповещение"}}

	// Ожидания
	gomock.InOrder(
		sourceMock.EXPECT().FetchBulletins(ctx).Return(stale, nil).Times(1),
		sourceMock.EXPECT().FetchBulletins(ctx).Return(fresh, nil).Times(1),
	)

	// Действие
	first := service.OfficialUpdates(ctx)
	clock.Advance(time.Hour + time.Second)
	second := service.OfficialUpdates(ctx)

	// Проверки
	assert.Equal(t, stale, first)
	assert.Equal(t, fresh, second)
}
