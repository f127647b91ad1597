package storage

import "context"

// MockStore stores nothing. It only mints the URL the object would live at.
type MockStore struct {
	PublicBase string
}

func NewMockStore(publicBase string) *MockStore {
	return &MockStore{PublicBase: publicBase}
}

func (m *MockStore) Put(_ context.Context, obj Object) (string, error) {
	return publicURL(m.PublicBase, obj.Key), nil
}
