package services

import (
	"context"
	"sync"
)

// MockEmailService is a mock implementation of EmailService for testing
type MockEmailService struct {
	mu   sync.Mutex
	sent []EmailParams

	// FailWith, when set, is returned by every send call
	FailWith error
}

// NewMockEmailService creates a new mock email service
func NewMockEmailService() *MockEmailService {
	return &MockEmailService{}
}

// SendServicioCompletado records the params instead of delivering anything
func (m *MockEmailService) SendServicioCompletado(ctx context.Context, params EmailParams) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, params)
	return nil
}

// Sent returns a copy of every recorded email
func (m *MockEmailService) Sent() []EmailParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]EmailParams, len(m.sent))
	copy(out, m.sent)
	return out
}
