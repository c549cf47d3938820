package coordinator

import (
	"context"
	"sync"
	"time"
)

// MemStore is an in-memory Store for tests. Records are deep-copied on
// every read and write so callers never share set instances with the
// store.
type MemStore struct {
	mu    sync.Mutex
	plans map[string]*State
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{plans: make(map[string]*State)}
}

func (m *MemStore) Create(_ context.Context, st *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.plans[st.PlanID]; ok {
		return ErrAlreadyExists
	}
	m.plans[st.PlanID] = copyState(st)
	return nil
}

func (m *MemStore) Get(_ context.Context, planID string) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.plans[planID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyState(st), nil
}

func (m *MemStore) Save(_ context.Context, st *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.plans[st.PlanID]; !ok {
		return ErrNotFound
	}
	m.plans[st.PlanID] = copyState(st)
	return nil
}

func (m *MemStore) ListExpired(_ context.Context, now time.Time) ([]*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*State
	for _, st := range m.plans {
		if !st.Status.IsTerminal() && !st.DeadlineAt.After(now) {
			out = append(out, copyState(st))
		}
	}
	return out, nil
}

func copyState(st *State) *State {
	dup := *st
	dup.GeneratedImages = NewStringSet(st.GeneratedImages.Sorted())
	dup.ExtractedMetadata = NewStringSet(st.ExtractedMetadata.Sorted())
	dup.ValidSheets = NewStringSet(st.ValidSheets.Sorted())
	dup.DetectedCallouts = NewStringSet(st.DetectedCallouts.Sorted())
	dup.DetectedLayouts = NewStringSet(st.DetectedLayouts.Sorted())
	dup.GeneratedTiles = NewStringSet(st.GeneratedTiles.Sorted())
	dup.SheetNumberMap = make(map[string]string, len(st.SheetNumberMap))
	for k, v := range st.SheetNumberMap {
		dup.SheetNumberMap[k] = v
	}
	return &dup
}
