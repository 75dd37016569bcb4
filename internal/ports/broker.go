package ports

//go:generate mockgen -source=broker.go -destination=../mocks/broker_mock.go -package=mocks

import "context"

// IProducer публикует события истории (saved, removed, cleared) в брокер.
// key — id записи (пустой для cleared), value — JSON domain.EntryEvent. Топик берётся из конфига реализации.
type IProducer interface {
	Send(ctx context.Context, key, value []byte) error
}
