package testutil

import (
	"context"
	"fmt"
	"sync"
)

// MockStrategy is a scripted translation strategy.
type MockStrategy struct {
	StrategyName     string
	StrategyPriority int
	Translations     map[string]string
	Errors           map[string]error
	// Declines lists texts CanHandle rejects.
	Declines map[string]bool

	mu       sync.Mutex
	Calls    []string
	requests int
}

// NewMockStrategy creates a MockStrategy answering from translations.
func NewMockStrategy(name string, priority int, translations map[string]string) *MockStrategy {
	return &MockStrategy{
		StrategyName:     name,
		StrategyPriority: priority,
		Translations:     translations,
		Errors:           map[string]error{},
		Declines:         map[string]bool{},
	}
}

func (m *MockStrategy) Name() string { return m.StrategyName }

func (m *MockStrategy) Priority() int { return m.StrategyPriority }

// CanHandle returns false for texts in Declines.
func (m *MockStrategy) CanHandle(text string) bool {
	return !m.Declines[text]
}

// Translate mocks translating text. Unknown texts are echoed back.
func (m *MockStrategy) Translate(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, fmt.Sprintf("Translate: %s", text))
	m.requests++
	m.mu.Unlock()

	if err, ok := m.Errors[text]; ok {
		return text, err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	return text, nil
}

// CallCount returns the number of Translate calls.
func (m *MockStrategy) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockRemoteStrategy is a MockStrategy that counts as an outbound service.
type MockRemoteStrategy struct {
	*MockStrategy
}

// NewMockRemoteStrategy creates a MockRemoteStrategy.
func NewMockRemoteStrategy(name string, priority int, translations map[string]string) *MockRemoteStrategy {
	return &MockRemoteStrategy{MockStrategy: NewMockStrategy(name, priority, translations)}
}

// RequestCount returns the number of Translate calls since the last reset.
func (m *MockRemoteStrategy) RequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests
}

// ResetRequestCount zeroes the request counter.
func (m *MockRemoteStrategy) ResetRequestCount() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = 0
}
