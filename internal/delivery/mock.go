package delivery

import (
	"context"
	"fmt"
	"sync"
)

// MockAdapter implements Adapter for testing. It records sent messages
// and can be made to fail.
type MockAdapter struct {
	mu     sync.Mutex
	sent   []Outbound
	closed bool
	// FailWith, when set, is returned by every Send.
	FailWith error
}

// NewMockAdapter creates a MockAdapter.
func NewMockAdapter() *MockAdapter {
	return &MockAdapter{}
}

// Send records the outbound message.
func (m *MockAdapter) Send(ctx context.Context, msg Outbound) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("mock adapter: already closed")
	}
	if m.FailWith != nil {
		return m.FailWith
	}
	m.sent = append(m.sent, msg)
	return nil
}

// Close marks the adapter closed.
func (m *MockAdapter) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// LastSent returns the most recently sent message.
func (m *MockAdapter) LastSent() (Outbound, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return Outbound{}, false
	}
	return m.sent[len(m.sent)-1], true
}

// SentCount returns the number of messages sent.
func (m *MockAdapter) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}
