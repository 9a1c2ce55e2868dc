package ordering_test

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/model"
	"taskflow/internal/ordering"
)

// memStore keeps cards and columns in maps and mirrors the SQL semantics of
// the repository implementation closely enough for engine tests.
type memStore struct {
	cards   map[uuid.UUID]*model.Card
	columns map[uuid.UUID]*model.Column
	seq     int
}

func newMemStore() *memStore {
	return &memStore{
		cards:   map[uuid.UUID]*model.Card{},
		columns: map[uuid.UUID]*model.Column{},
	}
}

func (m *memStore) addColumn(position int) uuid.UUID {
	id := uuid.New()
	m.columns[id] = &model.Column{ID: id, Position: position}
	return id
}

func (m *memStore) addCard(columnID uuid.UUID, position int) uuid.UUID {
	id := uuid.New()
	col := columnID
	m.seq++
	m.cards[id] = &model.Card{
		ID:        id,
		ColumnID:  &col,
		Position:  position,
		CreatedAt: time.Unix(int64(m.seq), 0),
	}
	return id
}

func (m *memStore) active(columnID *uuid.UUID) []model.Card {
	var out []model.Card
	for _, c := range m.cards {
		if !c.IsArchived && c.InColumn(columnID) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// order returns the ids of a partition in display order.
func (m *memStore) order(columnID uuid.UUID) []uuid.UUID {
	var ids []uuid.UUID
	for _, c := range m.active(&columnID) {
		ids = append(ids, c.ID)
	}
	return ids
}

func (m *memStore) positions(columnID *uuid.UUID) []int {
	var out []int
	for _, c := range m.active(columnID) {
		out = append(out, c.Position)
	}
	return out
}

func (m *memStore) activeTotal() int {
	n := 0
	for _, c := range m.cards {
		if !c.IsArchived {
			n++
		}
	}
	return n
}

func (m *memStore) ActiveCards(_ context.Context, columnID *uuid.UUID) ([]model.Card, error) {
	return m.active(columnID), nil
}

func (m *memStore) CountActiveCards(_ context.Context, columnID *uuid.UUID) (int64, error) {
	return int64(len(m.active(columnID))), nil
}

func (m *memStore) ShiftCards(_ context.Context, columnID *uuid.UUID, from int, exclude uuid.UUID) error {
	for _, c := range m.cards {
		if !c.IsArchived && c.InColumn(columnID) && c.Position >= from && c.ID != exclude {
			c.Position++
		}
	}
	return nil
}

func (m *memStore) PlaceCard(_ context.Context, cardID uuid.UUID, columnID *uuid.UUID, position int) error {
	c := m.cards[cardID]
	c.ColumnID = columnID
	c.Position = position
	return nil
}

func (m *memStore) SetCardPositions(_ context.Context, changes []ordering.Assignment) error {
	for _, a := range changes {
		if c, ok := m.cards[a.ID]; ok {
			c.Position = a.Position
		}
	}
	return nil
}

func (m *memStore) MarkArchived(_ context.Context, cardID uuid.UUID, at time.Time) error {
	c := m.cards[cardID]
	c.IsArchived = true
	c.ArchivedAt = &at
	return nil
}

func (m *memStore) MarkRestored(_ context.Context, cardID uuid.UUID, columnID *uuid.UUID, position int) error {
	c := m.cards[cardID]
	c.IsArchived = false
	c.ArchivedAt = nil
	c.ColumnID = columnID
	c.Position = position
	return nil
}

func (m *memStore) ListColumns(_ context.Context) ([]model.Column, error) {
	var out []model.Column
	for _, c := range m.columns {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (m *memStore) CountColumns(_ context.Context) (int64, error) {
	return int64(len(m.columns)), nil
}

func (m *memStore) FirstColumn(ctx context.Context) (*model.Column, error) {
	cols, _ := m.ListColumns(ctx)
	if len(cols) == 0 {
		return nil, nil
	}
	return &cols[0], nil
}

func (m *memStore) ColumnExists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.columns[id]
	return ok, nil
}

func (m *memStore) SetColumnPositions(_ context.Context, changes []ordering.Assignment) error {
	for _, a := range changes {
		if c, ok := m.columns[a.ID]; ok {
			c.Position = a.Position
		}
	}
	return nil
}

func (m *memStore) deleteColumn(id uuid.UUID) {
	delete(m.columns, id)
}

var _ ordering.Store = (*memStore)(nil)

func pickCard(m *memStore, rng *rand.Rand, archived bool) (model.Card, bool) {
	var pool []model.Card
	for _, c := range m.cards {
		if c.IsArchived == archived {
			pool = append(pool, *c)
		}
	}
	if len(pool) == 0 {
		return model.Card{}, false
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].CreatedAt.Before(pool[j].CreatedAt) })
	return pool[rng.Intn(len(pool))], true
}
