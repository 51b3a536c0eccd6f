// Package memtx реализует транзакционную дисциплину для in-memory хранилищ.
//
// Хранилище и менеджер разделяют один sync.RWMutex. DoSerializable берёт
// write-блокировку на весь замыкающий вызов и помечает контекст, чтобы
// вложенные вызовы методов хранилища не пытались взять блокировку повторно.
// Это in-memory аналог сериализуемой транзакции БД: проверка ёмкости слота
// и вставка бронирования выполняются как одна атомарная критическая секция.
package memtx

import (
	"context"
	"sync"
)

type ctxKey struct{}

// Manager менеджер транзакций поверх разделяемого RWMutex
type Manager struct {
	mu *sync.RWMutex
}

// NewManager создает менеджер транзакций над мьютексом хранилища
func NewManager(mu *sync.RWMutex) *Manager {
	return &Manager{mu: mu}
}

// DoSerializable выполняет fn под эксклюзивной блокировкой хранилища.
// Внутри fn не должно быть I/O и сетевых вызовов — только работа с памятью.
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTransaction(ctx) {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(markInTransaction(ctx))
}

// DoReadOnly выполняет fn под разделяемой (read) блокировкой хранилища
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTransaction(ctx) {
		return fn(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return fn(markInTransaction(ctx))
}

// InTransaction возвращает true, если контекст уже выполняется под блокировкой
func InTransaction(ctx context.Context) bool {
	held, ok := ctx.Value(ctxKey{}).(bool)
	return ok && held
}

func markInTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, true)
}
