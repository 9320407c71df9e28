// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/danielhkuo/cycletrack/models"
)

// Memory is an in-memory PeriodStore used by tests and as a reference
// implementation of the port's contract. FailNext, when set, causes the next
// write to return that error without mutating anything, which is how tests
// exercise the persistence-failure path.
type Memory struct {
	mu       sync.Mutex
	periods  map[string]models.Period
	nextID   int
	FailNext error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{periods: make(map[string]models.Period)}
}

func (m *Memory) failure() error {
	if err := m.FailNext; err != nil {
		m.FailNext = nil
		return err
	}
	return nil
}

func (m *Memory) ListPeriods(ctx context.Context) ([]models.Period, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Period, 0, len(m.periods))
	for _, p := range m.periods {
		out = append(out, p)
	}
	return out, nil
}

func (m *Memory) InsertPeriod(ctx context.Context, start time.Time, end *time.Time) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.failure(); err != nil {
		return "", err
	}

	start, end = normalizeDates(start, end)
	m.nextID++
	id := fmt.Sprintf("mem-%d", m.nextID)
	m.periods[id] = models.Period{ID: id, Start: start, End: end}
	return id, nil
}

func (m *Memory) UpdatePeriod(ctx context.Context, id string, start time.Time, end *time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.failure(); err != nil {
		return err
	}

	if _, ok := m.periods[id]; !ok {
		return ErrNotFound
	}
	start, end = normalizeDates(start, end)
	m.periods[id] = models.Period{ID: id, Start: start, End: end}
	return nil
}

func (m *Memory) DeletePeriod(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.failure(); err != nil {
		return err
	}

	if _, ok := m.periods[id]; !ok {
		return ErrNotFound
	}
	delete(m.periods, id)
	return nil
}
