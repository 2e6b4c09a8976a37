package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/solar-quote/models"
)

// memoryTokenStore keeps the CRM token for the lifetime of the process.
type memoryTokenStore struct {
	mu    sync.RWMutex
	token *models.CRMToken
}

// NewMemoryTokenStore returns an empty in-process [TokenStore].
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{}
}

func (s *memoryTokenStore) Load(_ context.Context) (models.CRMToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == nil {
		return models.CRMToken{}, ErrTokenNotFound
	}
	return *s.token, nil
}

func (s *memoryTokenStore) Save(_ context.Context, token models.CRMToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = &token
	return nil
}

func (s *memoryTokenStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
	return nil
}
