package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type testEntity struct {
	ID     string
	Status string
}

func (e *testEntity) Key() string { return e.ID }

func seed(n int) *Store[*testEntity] {
	s := New[*testEntity]()
	for i := 0; i < n; i++ {
		s.Insert(&testEntity{ID: fmt.Sprintf("ent_%02d", i), Status: "running"})
	}
	return s
}

func TestStoreInsertGet(t *testing.T) {
	s := seed(3)
	require.Equal(t, 3, s.Len())

	got, ok := s.Get("ent_01")
	require.True(t, ok)
	require.Equal(t, "ent_01", got.ID)

	_, ok = s.Get("ent_99")
	require.False(t, ok)
}

func TestStoreListInsertionOrder(t *testing.T) {
	s := seed(5)
	items, hasMore := s.List(nil, "", 0)
	require.Len(t, items, 5)
	require.False(t, hasMore)
	for i, v := range items {
		require.Equal(t, fmt.Sprintf("ent_%02d", i), v.ID)
	}
}

func TestStoreListCursor(t *testing.T) {
	s := seed(5)

	items, _ := s.List(nil, "ent_02", 0)
	require.Len(t, items, 2)
	require.Equal(t, "ent_03", items[0].ID)

	// Unknown cursor restarts from the beginning.
	items, _ = s.List(nil, "ent_xx", 0)
	require.Len(t, items, 5)
	require.Equal(t, "ent_00", items[0].ID)
}

func TestStoreListHasMoreApproximation(t *testing.T) {
	s := seed(4)

	items, hasMore := s.List(nil, "", 2)
	require.Len(t, items, 2)
	require.True(t, hasMore)

	// Exactly-full final page is a tolerated false positive.
	items, hasMore = s.List(nil, "ent_01", 2)
	require.Len(t, items, 2)
	require.True(t, hasMore)

	items, hasMore = s.List(nil, "ent_02", 2)
	require.Len(t, items, 1)
	require.False(t, hasMore)
}

func TestStoreListFilter(t *testing.T) {
	s := seed(4)
	require.NoError(t, s.Update("ent_02", func(e *testEntity) error {
		e.Status = "cancelled"
		return nil
	}))

	items, _ := s.List(func(e *testEntity) bool { return e.Status == "cancelled" }, "", 0)
	require.Len(t, items, 1)
	require.Equal(t, "ent_02", items[0].ID)
}

func TestStoreUpdateUnknown(t *testing.T) {
	s := seed(1)
	err := s.Update("ent_99", func(e *testEntity) error { return nil })
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDelete(t *testing.T) {
	s := seed(3)
	require.True(t, s.Delete("ent_01"))
	require.False(t, s.Delete("ent_01"))
	require.Equal(t, 2, s.Len())

	items, _ := s.List(nil, "", 0)
	require.Equal(t, "ent_00", items[0].ID)
	require.Equal(t, "ent_02", items[1].ID)
}

func TestLogAppendAndList(t *testing.T) {
	l := NewLog[*testEntity]()
	for i := 0; i < 4; i++ {
		l.Append("batch_1", &testEntity{ID: fmt.Sprintf("evt_%02d", i)})
	}
	l.Append("batch_2", &testEntity{ID: "evt_other"})

	events, hasMore := l.List("batch_1", "", 20)
	require.Len(t, events, 4)
	require.False(t, hasMore)
	require.Equal(t, "evt_00", events[0].ID)

	events, _ = l.List("batch_1", "evt_01", 20)
	require.Len(t, events, 2)
	require.Equal(t, "evt_02", events[0].ID)

	// Unknown cursor returns the full (limited) list from the start.
	events, _ = l.List("batch_1", "evt_zz", 2)
	require.Len(t, events, 2)
	require.Equal(t, "evt_00", events[0].ID)
}

func TestLogUnknownParentIsEmpty(t *testing.T) {
	l := NewLog[*testEntity]()
	events, hasMore := l.List("nope", "", 20)
	require.Empty(t, events)
	require.False(t, hasMore)
}
