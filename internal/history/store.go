// Package history — журнал сохранённых расчётов поверх одного байтового значения в KV-хранилище
// с кэшем в памяти.
package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ventanaCalc/internal/domain"
	"ventanaCalc/internal/ports"
)

// Key — ключ, под которым лежит журнал.
const Key = "history_entries"

// CorruptSuffix — суффикс ключа, куда перед первой перезаписью откладывается нечитаемый журнал.
const CorruptSuffix = ".corrupt"

// ErrStorage оборачивает любые ошибки чтения/записи KV-хранилища.
var ErrStorage = errors.New("history storage")

var _ ports.HistoryStore = (*Store)(nil)

// Option настраивает Store.
type Option func(*Store)

// WithKey меняет ключ журнала.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator подменяет генератор id.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(s *Store) { s.newID = gen }
}

// Store реализует ports.HistoryStore. Кэш загружается при первом обращении и дальше
// считается единственным источником правды до конца жизни процесса.
type Store struct {
	kv    ports.KVStore
	key   string
	log   *slog.Logger
	now   func() time.Time
	newID func() (string, error)

	mu      sync.Mutex // держится на весь цикл load -> mutate -> persist
	loaded  bool
	entries []domain.HistoryEntry
	corrupt []byte // нечитаемый журнал, ещё не отложенный под key+CorruptSuffix
}

// New создаёт журнал поверх KV-хранилища.
func New(kv ports.KVStore, log *slog.Logger, opts ...Option) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{
		kv:    kv,
		key:   Key,
		log:   log,
		now:   time.Now,
		newID: uuidV7,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func uuidV7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

// load читает журнал из хранилища, если кэш ещё пуст. Вызывать под s.mu.
func (s *Store) load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	data, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.log.Debug("history load failed", "key", s.key, "error", err)
		return storageErr("read", err)
	}
	s.entries = s.decode(data, found)
	s.loaded = true
	return nil
}

// decode разбирает журнал. Битые данные не роняют вызывающего: журнал считается пустым.
func (s *Store) decode(data []byte, found bool) []domain.HistoryEntry {
	if !found || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.log.Warn("history blob malformed, starting empty", "key", s.key, "bytes", len(data), "error", err)
		s.corrupt = bytes.Clone(data)
		return nil
	}
	seen := make(map[string]struct{}, len(entries))
	out := entries[:0]
	for _, e := range entries {
		if _, dup := seen[e.ID]; dup {
			s.log.Warn("history duplicate id dropped", "id", e.ID)
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}
	return out
}

// persist пишет полный журнал. Кэш не трогает: его меняет вызывающий после успеха.
func (s *Store) persist(ctx context.Context, entries []domain.HistoryEntry) error {
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.setAside(ctx); err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		s.log.Debug("history persist failed", "key", s.key, "error", err)
		return storageErr("write", err)
	}
	return nil
}

// setAside копирует нечитаемый журнал под key+CorruptSuffix до того, как его затрёт запись.
func (s *Store) setAside(ctx context.Context) error {
	if s.corrupt == nil {
		return nil
	}
	backup := s.key + CorruptSuffix
	if err := s.kv.Set(ctx, backup, s.corrupt); err != nil {
		s.log.Debug("history backup failed", "key", backup, "error", err)
		return storageErr("backup", err)
	}
	s.log.Warn("malformed history kept aside", "key", backup, "bytes", len(s.corrupt))
	s.corrupt = nil
	return nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

// GetAll возвращает копию журнала, последние сначала.
func (s *Store) GetAll(ctx context.Context) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	out := make([]domain.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Get возвращает запись по id.
func (s *Store) Get(ctx context.Context, id string) (domain.HistoryEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return domain.HistoryEntry{}, false, err
	}
	if i := s.indexOf(id); i >= 0 {
		return s.entries[i], true, nil
	}
	return domain.HistoryEntry{}, false, nil
}

// Save добавляет запись в начало журнала. Либо запись легла в хранилище и в кэш,
// либо ни то, ни другое не изменилось.
func (s *Store) Save(ctx context.Context, in domain.NewEntry) (domain.HistoryEntry, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return domain.HistoryEntry{}, domain.ErrEmptyDescription
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return domain.HistoryEntry{}, err
	}

	id, err := s.uniqueID()
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	entry := domain.HistoryEntry{
		ID:          id,
		Description: desc,
		CreatedAt:   s.now().UTC(),
		SystemID:    in.SystemID,
		SystemName:  in.SystemName,
		Width:       in.Width,
		Height:      in.Height,
		Results:     in.Results,
	}

	next := make([]domain.HistoryEntry, 0, len(s.entries)+1)
	next = append(next, entry)
	next = append(next, s.entries...)
	if err := s.persist(ctx, next); err != nil {
		return domain.HistoryEntry{}, err
	}
	s.entries = next
	return entry, nil
}

const maxIDAttempts = 8

func (s *Store) uniqueID() (string, error) {
	for range maxIDAttempts {
		id, err := s.newID()
		if err != nil {
			return "", fmt.Errorf("generate id: %w", err)
		}
		if id != "" && s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", errors.New("generate id: no unique id after retries")
}

// Remove удаляет запись по id. Отсутствующий id — не ошибка.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	next := make([]domain.HistoryEntry, 0, len(s.entries)-1)
	next = append(next, s.entries[:i]...)
	next = append(next, s.entries[i+1:]...)
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.entries = next
	return nil
}

// ClearAll удаляет запись журнала из хранилища и сбрасывает кэш.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.setAside(ctx); err != nil {
		return err
	}
	if err := s.kv.Delete(ctx, s.key); err != nil {
		s.log.Debug("history clear failed", "key", s.key, "error", err)
		return storageErr("delete", err)
	}
	s.entries = nil
	s.loaded = true
	return nil
}
