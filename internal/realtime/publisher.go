package realtime

import "context"

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// Publisher - интерфейс для публикации событий в реальном времени.
// Публикация fire-and-forget: она не должна ни блокировать, ни ронять
// мутирующий запрос, который ее вызвал.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
