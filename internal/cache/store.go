package cache

import (
	"context"
	"time"
)

// DefaultTTL - срок жизни кешированного значения по умолчанию
const DefaultTTL = 60 * time.Minute

// Store - контракт TTL-хранилища ключ/значение, лежащего под всеми
// дорогими вычислениями (геокодирование, извлечение локаций, проверка
// изображений, оповещения). Просроченная запись неотличима от отсутствующей.
//
// Ошибки хранилища не являются ошибками фичи: вызывающий код обязан
// трактовать ошибку Get как промах, а ошибку Set - логировать и глотать.
type Store interface {
	// Get десериализует живое значение в dest и возвращает true при попадании
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set перезаписывает значение (last-writer-wins) и сбрасывает окно TTL
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
