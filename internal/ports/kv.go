package ports

//go:generate mockgen -source=kv.go -destination=../mocks/kv_mock.go -package=mocks

import "context"

// KVStore — долговременное хранилище байтовых значений по ключу (файл, Redis, PostgreSQL, MongoDB).
// Отсутствие ключа — found == false без ошибки.
type KVStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
