package cart

import (
	"context"
	"errors"
	"fmt"

	"webstore-portal/catalog"
	"webstore-portal/models"
)

type mockItemClient struct {
	GetItemFn func(ctx context.Context, itemID int64) (*models.Item, error)
	Calls     []int64
}

func (m *mockItemClient) GetItem(ctx context.Context, itemID int64) (*models.Item, error) {
	m.Calls = append(m.Calls, itemID)
	if m.GetItemFn != nil {
		return m.GetItemFn(ctx, itemID)
	}
	return &models.Item{
		ID:    itemID,
		Title: fmt.Sprintf("Item %d", itemID),
		Price: 1000 + itemID,
		Image: fmt.Sprintf("http://img/%d-a.jpg,http://img/%d-b.jpg", itemID, itemID),
	}, nil
}

func failingItems() *mockItemClient {
	return &mockItemClient{GetItemFn: func(ctx context.Context, itemID int64) (*models.Item, error) {
		return nil, catalog.ErrItemUnavailable
	}}
}

type memStore struct {
	values map[string]string
	sets   int
	getErr error
	setErr error
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}}
}

func (s *memStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memStore) Set(ctx context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.sets++
	s.values[key] = value
	return nil
}

var errBackendDown = errors.New("backend down")

const testPrefix = "CART_REDIS_KEY:"

func newTestManager(shared *memStore, items *mockItemClient) *Manager {
	return NewManager(Options{
		CookieKey:    "TT_CART",
		CookieMaxAge: 3600,
		KeyPrefix:    testPrefix,
	}, shared, items)
}
